package render

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
)

// ErrUnknownFormat is returned for a table format outside Formats.
var ErrUnknownFormat = errors.New("render: unknown table format")

// Formats lists the accepted table formats.
var Formats = []string{"table", "md", "csv", "tsv", "html", "simple"}

// Table writes header and rows to w in the given format.
func Table(w io.Writer, format string, header table.Row, rows []table.Row) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	if len(header) > 0 {
		t.AppendHeader(header)
	}
	t.AppendRows(rows)

	switch format {
	case "table", "":
		t.Render()
	case "md":
		t.RenderMarkdown()
	case "csv":
		t.RenderCSV()
	case "tsv":
		t.RenderTSV()
	case "html":
		t.RenderHTML()
	case "simple":
		t.Style().Options.DrawBorder = false
		t.Style().Options.SeparateHeader = false
		t.Style().Options.SeparateRows = false
		t.Style().Box.MiddleVertical = " "
		t.Render()
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}

	return nil
}
