package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cursorkit/cursorkit/cursors"
	"github.com/cursorkit/cursorkit/report"
)

var (
	reportFormat string
	reportFilter string
)

var reportCmd = &cobra.Command{
	Use:   "report [subject...]",
	Short: "Print capability gap reports for built-in subjects",
	RunE: func(cmd *cobra.Command, args []string) error {
		subjects := cursors.Subjects()

		names := args
		if len(names) == 0 {
			for name := range subjects {
				names = append(names, name)
			}
			sort.Strings(names)
		}

		var opts []report.Option
		if reportFilter != "" {
			opts = append(opts, report.WithFilter(reportFilter))
		}

		out := cmd.OutOrStdout()
		for _, name := range names {
			t, ok := subjects[name]
			if !ok {
				return fmt.Errorf("unknown subject %q (try: cursorkit report)", name)
			}
			rep, err := checker.GapReport(t, opts...)
			if err != nil {
				return err
			}

			switch reportFormat {
			case "yaml":
				b, err := rep.YAML()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "---\n%s", b)
			case "table":
				renderTable(out, name, rep)
			default:
				return fmt.Errorf("unknown format %q (want table or yaml)", reportFormat)
			}
		}
		return nil
	},
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	gapStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

func renderTable(out io.Writer, name string, rep report.Report) {
	fmt.Fprintf(out, "%s %s\n", titleStyle.Render(name), dimStyle.Render("("+rep.Type+")"))
	for _, e := range rep.Entries {
		if e.Satisfied {
			fmt.Fprintf(out, "  %s %s\n", okStyle.Render("ok"), e.Capability)
			continue
		}
		fmt.Fprintf(out, "  %s %s\n", gapStyle.Render("--"), e.Capability)
		for _, v := range e.Violations {
			fmt.Fprintf(out, "       %s\n", dimStyle.Render(v))
		}
	}
	fmt.Fprintln(out)
}

func init() {
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "table", "output format: table or yaml")
	reportCmd.Flags().StringVar(&reportFilter, "capability", "", "glob filter for capability IDs, e.g. '*Cursor'")
}
