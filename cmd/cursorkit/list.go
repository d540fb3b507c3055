package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the capability taxonomy",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := checker.Registry()
		cat := reg.Catalogue()

		header := lipgloss.NewStyle().Bold(true)
		dim := lipgloss.NewStyle().Faint(true)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, header.Render("CAPABILITY"), "\t", header.Render("EXTENDS"), "\t", header.Render("REQUIREMENTS"))
		for _, id := range reg.List() {
			def, _ := cat.Get(id)
			reqs, err := cat.Flatten(id)
			if err != nil {
				return err
			}
			extends := "-"
			if len(def.Extends) > 0 {
				parts := make([]string, len(def.Extends))
				for i, b := range def.Extends {
					parts[i] = string(b)
				}
				extends = strings.Join(parts, ", ")
			}
			fmt.Fprintf(out, "%s\t%s\t%s\n", id, dim.Render(extends),
				fmt.Sprintf("%d own, %d effective", len(def.Requires), len(reqs)))
		}
		return nil
	},
}
