// Package output provides formatting of the run report.
//
// The report is a few plain lines on standard output: the file count of the
// scanned directory and the per-cell pixel size of the grid. A table of the
// full layout is available for diagnostics.
package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/otuschhoff/pagegrid/pkg/geometry"
)

// Formatter writes report lines to an output stream.
type Formatter struct {
	w        io.Writer
	noHeader bool // Omit header row in table output
}

// NewFormatter creates a new Formatter writing to w.
func NewFormatter(w io.Writer, noHeader bool) *Formatter {
	return &Formatter{
		w:        w,
		noHeader: noHeader,
	}
}

// FileCount prints the number of regular files found in dir.
func (f *Formatter) FileCount(dir string, count int) error {
	_, err := fmt.Fprintf(f.w, "Number of files in %s: %d\n", dir, count)
	return err
}

// Cells prints the column width and row height of layout.
func (f *Formatter) Cells(layout geometry.Layout) error {
	if _, err := fmt.Fprintf(f.w, "Column width: %s pixels\n", formatPixels(layout.CellWidth)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(f.w, "Row height: %s pixels\n", formatPixels(layout.CellHeight))
	return err
}

// LayoutTable renders canvas and cell dimensions for grid as a table.
func (f *Formatter) LayoutTable(layout geometry.Layout, grid geometry.Grid) string {
	t := table.NewWriter()

	if !f.noHeader {
		t.AppendHeader(table.Row{
			"Element",
			"Count",
			"Width (px)",
			"Height (px)",
		})
	}

	t.AppendRows([]table.Row{
		{"Canvas", 1, formatPixels(layout.CanvasWidth), formatPixels(layout.CanvasHeight)},
		{"Cell", grid.Rows * grid.Columns, formatPixels(layout.CellWidth), formatPixels(layout.CellHeight)},
	})

	t.SetStyle(table.StyleLight)
	return fmt.Sprintf("%s\n", t.Render())
}

// formatPixels renders a pixel length in the shortest form that round-trips.
// Examples: "3520", "1173.3333333333333"
func formatPixels(px float64) string {
	return strconv.FormatFloat(px, 'f', -1, 64)
}
