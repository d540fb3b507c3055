package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cursorkit/cursorkit/cursors"
	"github.com/cursorkit/cursorkit/parser"
)

var checkManifestPath string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run an expectation manifest against the built-in subjects",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(checkManifestPath)
		if err != nil {
			return err
		}

		var p parser.ManifestParser
		if strings.HasSuffix(checkManifestPath, ".json") {
			p = parser.NewJSONManifestParser()
		} else {
			p = parser.NewYamlManifestParser()
		}

		manifest, err := p.Parse(data)
		if err != nil {
			return err
		}

		mismatches, err := checker.RunManifest(manifest, cursors.Subjects())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(mismatches) == 0 {
			fmt.Fprintf(out, "ok: %d checks hold\n", len(manifest.Checks))
			return nil
		}
		for _, m := range mismatches {
			fmt.Fprintf(out, "mismatch: %s\n", m)
		}
		return fmt.Errorf("%d expectation(s) not met", len(mismatches))
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkManifestPath, "file", "f", "", "path to the expectation manifest")
	checkCmd.MarkFlagRequired("file")
}
