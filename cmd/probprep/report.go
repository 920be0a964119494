package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	probprep "github.com/alnah/go-probprep"
)

// printSaved reports the written problem directory. Verbose mode adds a
// table of every file and the elapsed time.
func printSaved(w io.Writer, res *probprep.Result, saved *probprep.SavedFiles, verbose bool, elapsed time.Duration) {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(w, "%s %s\n", green("Created"), saved.Dir)

	if !verbose {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, WidthMax: 12},
		{Number: 2, Align: text.AlignLeft, WidthMax: 80},
	})

	t.AppendRow(table.Row{"Title", res.Problem.Title})
	t.AppendRow(table.Row{"URL", res.Problem.URL})
	t.AppendRow(table.Row{"Language", res.Language})
	t.AppendSeparator()
	t.AppendRow(table.Row{"README", fmt.Sprintf("%s (%d bytes)", saved.Readme, len(res.Readme))})
	t.AppendRow(table.Row{"Source", fmt.Sprintf("%s (%d bytes)", saved.Source, len(res.Source))})
	if saved.HTML != "" {
		t.AppendRow(table.Row{"HTML", fmt.Sprintf("%s (%d bytes)", saved.HTML, len(res.HTML))})
	}
	t.AppendSeparator()
	t.AppendRow(table.Row{"Elapsed", elapsed.Round(time.Millisecond).String()})
	t.Render()
}
