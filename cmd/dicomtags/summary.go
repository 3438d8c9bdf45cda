package main

import (
	"os"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"dicomtags/internal/tagtable"
)

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderSummary(s tagtable.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Field", "Value"})
	tw.AppendRows([]table.Row{
		{"Root", s.Root},
		{"Output", s.Output},
		{"Directories", strconv.Itoa(s.Directories)},
		{"Files visited", strconv.Itoa(s.Visited)},
		{"Rows written", strconv.Itoa(s.Rows)},
		{"Skipped", strconv.Itoa(s.Skipped)},
		{"Elapsed", s.Elapsed.Round(time.Millisecond).String()},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
