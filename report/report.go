// Package report derives printable tabular views of tasks.
//
// The projection is the single shared input for both the on-screen
// preview and the exported document: both consumers render the row set
// produced by Project, so the same filter always yields identical rows
// in identical order.
package report

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/nhaseem/taskman/roster"
)

// AllStaff selects tasks for every staff member.
const AllStaff = "all"

// DefaultHeading is the first line of a generated report document.
const DefaultHeading = "Task Management System"

// ErrNoDocumentWriter indicates report generation was requested without
// a document-generation capability attached.
var ErrNoDocumentWriter = errors.New("no document writer available")

// Row is one line of the report.
type Row struct {
	StaffName string `json:"staffName"`
	Date      string `json:"date"`
	Title     string `json:"title"`
	Status    string `json:"status"`
}

// Project returns one row per task matching staffID, in dataset order.
// AllStaff (or an empty filter) selects every task. Staff names resolve
// exactly as in task search: unresolvable references render as the
// Unknown sentinel.
func Project(ds roster.Dataset, staffID string) []Row {
	all := staffID == AllStaff || staffID == ""

	names := make(map[string]string, len(ds.Staff))
	for _, member := range ds.Staff {
		names[member.ID] = member.Name
	}

	rows := make([]Row, 0, len(ds.Tasks))
	for _, task := range ds.Tasks {
		if !all && task.StaffID != staffID {
			continue
		}
		name, ok := names[task.StaffID]
		if !ok {
			name = roster.UnknownStaffName
		}
		rows = append(rows, Row{
			StaffName: name,
			Date:      task.Date,
			Title:     task.Title,
			Status:    string(task.Status),
		})
	}
	return rows
}

// TitleSuffix returns the heading suffix for the selected filter: the
// staff member's name, or "All Staff" for the everyone scope. A filter
// that matches no record resolves to the Unknown sentinel, the same way
// an unresolvable task reference does.
func TitleSuffix(ds roster.Dataset, staffID string) string {
	if staffID == AllStaff || staffID == "" {
		return "All Staff"
	}
	for _, member := range ds.Staff {
		if member.ID == staffID {
			return member.Name
		}
	}
	return roster.UnknownStaffName
}

// Filename returns the conventional report filename for the given time.
func Filename(now time.Time) string {
	return fmt.Sprintf("Task_Report_%s.txt", now.Format(roster.DateFormat))
}

// Document is the full report content handed to a DocumentWriter.
type Document struct {
	// Heading is the document title line.
	Heading string

	// OrgLines are organization heading lines printed under the title.
	OrgLines []string

	// ReportFor names the selected staff scope.
	ReportFor string

	// Generated is the generation date.
	Generated string

	// Rows is the projected table body.
	Rows []Row
}

// DocumentWriter renders a report document into printable form.
// Document generation facilities (PDF and the like) plug in here; the
// core does not implement them.
type DocumentWriter interface {
	WriteDocument(w io.Writer, doc Document) error
}

// Options configures report generation.
type Options struct {
	// StaffID scopes the report to one staff member. AllStaff or ""
	// selects everyone.
	StaffID string

	// Heading overrides DefaultHeading when non-empty.
	Heading string

	// OrgLines are printed under the heading.
	OrgLines []string

	// Now is the generation time. Zero means time.Now().
	Now time.Time
}

// Generate projects the report and renders it through writer into w.
// A nil writer aborts before any projection work.
func Generate(w io.Writer, writer DocumentWriter, ds roster.Dataset, opts Options) error {
	if writer == nil {
		return ErrNoDocumentWriter
	}

	if opts.Heading == "" {
		opts.Heading = DefaultHeading
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	doc := Document{
		Heading:   opts.Heading,
		OrgLines:  opts.OrgLines,
		ReportFor: TitleSuffix(ds, opts.StaffID),
		Generated: opts.Now.Format(roster.DateFormat),
		Rows:      Project(ds, opts.StaffID),
	}

	if err := writer.WriteDocument(w, doc); err != nil {
		return fmt.Errorf("write report document: %w", err)
	}
	return nil
}
