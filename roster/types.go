// Package roster implements the staff and task data store.
//
// The store owns the in-memory dataset, exposes the CRUD operations,
// and after every successful mutation persists the whole dataset to the
// durable medium and fires a refresh notification. The query and report
// surfaces read from the same dataset and never mutate it.
//
// The public API mirrors the CLI commands:
//   - AddStaff, UpdateStaff, RemoveStaff, ImportStaffRows for staff
//   - AddTask, UpdateTask, RemoveTask, ToggleTaskStatus for tasks
//   - SearchStaff, SearchTasks, CountByStatus for querying
//   - ExportDataset, ImportDataset for whole-dataset backup
package roster

// Status represents the completion state of a task.
type Status string

const (
	// StatusPending indicates the task has not been completed yet.
	// New tasks always start pending.
	StatusPending Status = "pending"

	// StatusCompleted indicates the task is done.
	StatusCompleted Status = "completed"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusPending, StatusCompleted}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Toggled returns the opposite status.
func (s Status) Toggled() Status {
	if s == StatusPending {
		return StatusCompleted
	}
	return StatusPending
}

// UnknownStaffName is the display name resolved for tasks whose staff
// reference no longer matches any record.
const UnknownStaffName = "Unknown"

// DateFormat is the wire format for task dates.
const DateFormat = "2006-01-02"

// MaxTitleLength is the maximum allowed length for a task title.
const MaxTitleLength = 500
