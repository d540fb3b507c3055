package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/huh"

	"github.com/cursorkit/cursorkit/capability"
	"github.com/cursorkit/cursorkit/cursors"
)

// runInteractive prompts for a subject and a capability, then prints the
// verdict. Loops until the user quits.
func runInteractive(out io.Writer) error {
	subjects := cursors.Subjects()
	names := make([]string, 0, len(subjects))
	for name := range subjects {
		names = append(names, name)
	}
	sort.Strings(names)

	for {
		var subject string
		var capID string

		subjectOpts := make([]huh.Option[string], 0, len(names)+1)
		for _, name := range names {
			subjectOpts = append(subjectOpts, huh.NewOption(name, name))
		}
		subjectOpts = append(subjectOpts, huh.NewOption("(quit)", ""))

		capOpts := make([]huh.Option[string], 0, 8)
		for _, id := range checker.Registry().List() {
			capOpts = append(capOpts, huh.NewOption(string(id), string(id)))
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Subject type").
					Options(subjectOpts...).
					Value(&subject),
			),
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Capability").
					Options(capOpts...).
					Value(&capID),
			).WithHideFunc(func() bool { return subject == "" }),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if subject == "" {
			return nil
		}

		err := checker.Check(subjects[subject], capability.ID(capID))
		if err == nil {
			fmt.Fprintf(out, "%s satisfies %s\n\n", subject, capID)
			continue
		}
		fmt.Fprintf(out, "%v\n\n", err)
	}
}
