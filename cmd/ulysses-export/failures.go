package main

import (
	"path/filepath"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/julien-sobczak/ulysses-export/internal/export"
)

// renderFailures lists the sheets that could not be exported.
// Paths are relative to the input directory when possible.
func renderFailures(inputDir string, failures []export.Failure, colored bool) string {
	if len(failures) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := table.Row{"Sheet", "Error"}
	if colored {
		red := color.New(color.FgRed, color.Bold).SprintFunc()
		header = table.Row{red("Sheet"), red("Error")}
	}
	tw.AppendHeader(header)

	for _, failure := range failures {
		sheet := filepath.Dir(failure.Job.SourcePath)
		if rel, err := filepath.Rel(inputDir, sheet); err == nil {
			sheet = rel
		}
		tw.AppendRow(table.Row{sheet, failure.Err.Error()})
	}
	tw.SortBy([]table.SortBy{{Number: 1, Mode: table.Asc}})

	return tw.Render()
}
