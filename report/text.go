package report

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// TextWriter renders report documents as plain text with an aligned
// table body.
type TextWriter struct{}

// WriteDocument writes the document to w.
func (TextWriter) WriteDocument(w io.Writer, doc Document) error {
	var b strings.Builder

	b.WriteString(doc.Heading + "\n")
	for _, line := range doc.OrgLines {
		b.WriteString(line + "\n")
	}
	b.WriteString(strings.Repeat("-", 60) + "\n")
	b.WriteString("Report for: " + doc.ReportFor + "\n")
	b.WriteString("Generated: " + doc.Generated + "\n\n")

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Staff Name", "Date", "Task Name", "Status"})
	for _, row := range doc.Rows {
		tw.AppendRow(table.Row{row.StaffName, row.Date, row.Title, row.Status})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
