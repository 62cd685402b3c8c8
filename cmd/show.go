package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/Akashdeep-Patra/listkit/internal/collection"
)

var (
	titleColor    = color.New(color.Bold, color.Underline)
	headerColor   = color.New(color.Bold, color.FgHiYellow)
	disabledColor = color.New(color.Faint)
	okColor       = color.New(color.FgGreen)
)

// loadDocument reads path, or returns the built-in sample when path is empty.
func loadDocument(path string) (*collection.Document, error) {
	if path == "" {
		return collection.SampleDocument(), nil
	}
	src, err := collection.NewFileSource(path)
	if err != nil {
		return nil, err
	}
	return src.Load()
}

func buildShowCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show [FILE]",
		Short: "Print a collection as a table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			doc, err := loadDocument(path)
			if err != nil {
				return err
			}
			if _, err := collection.ToCollection(doc); err != nil {
				return err
			}
			printDocument(doc)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	return cmd
}

func printDocument(doc *collection.Document) {
	if doc.Title != "" {
		fmt.Fprintln(color.Output, titleColor.Sprint(doc.Title))
		fmt.Fprintln(color.Output)
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48
	tbl.AddRow(headerColor.Sprint("#"), headerColor.Sprint("ID"), headerColor.Sprint("LABEL"), headerColor.Sprint("FLAGS"))
	for i, rec := range doc.Items {
		label := rec.Label
		var flags []string
		switch {
		case rec.Header:
			flags = append(flags, "header")
			label = titleColor.Sprint(label)
		case rec.Disabled:
			flags = append(flags, "disabled")
			label = disabledColor.Sprint(label)
		}
		tbl.AddRow(i+1, rec.ID, label, disabledColor.Sprint(strings.Join(flags, ",")))
	}
	fmt.Fprintln(color.Output, tbl)
}

func buildValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check collection files against the schema",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var failed int
			for _, path := range args {
				doc, err := loadDocument(path)
				if err == nil {
					_, err = collection.ToCollection(doc)
				}
				if err != nil {
					failed++
					fmt.Fprintf(color.Output, "%s %s: %v\n", color.RedString("FAIL"), path, err)
					continue
				}
				fmt.Fprintf(color.Output, "%s %s (%d items)\n", okColor.Sprint("OK"), path, len(doc.Items))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files invalid", failed, len(args))
			}
			return nil
		},
	}
}
