package roster

import "slices"

// Staff represents a single staff member.
type Staff struct {
	// ID is a unique identifier (8-char alphanumeric), assigned at
	// creation and never mutated.
	ID string `json:"id"`

	// No is the caller-supplied staff number. The system does not
	// guarantee uniqueness.
	No string `json:"no"`

	// Name is the display name.
	Name string `json:"name"`
}

// Task represents a single task assigned to a staff member.
type Task struct {
	// ID is a unique identifier (8-char alphanumeric), assigned at
	// creation and never mutated.
	ID string `json:"id"`

	// StaffID references a Staff ID. The reference is weak: it may
	// point at a record that no longer exists and is resolved to a
	// display name at read time.
	StaffID string `json:"staffId"`

	// Title is the short summary of the task (max 500 chars).
	Title string `json:"title"`

	// Description provides additional context about the task.
	Description string `json:"description,omitempty"`

	// Date is the record date in YYYY-MM-DD form. Defaults to the
	// current date at entry time.
	Date string `json:"date"`

	// DueDate is the optional due date in YYYY-MM-DD form ("" = none).
	DueDate string `json:"dueDate,omitempty"`

	// Status is the current completion state.
	Status Status `json:"status"`
}

// EnrichedTask is a task joined with its staff member's display name.
// The name is resolved fresh from the current staff collection on every
// read, never cached.
type EnrichedTask struct {
	Task
	StaffName string `json:"staffName"`
}

// Dataset is the aggregate of all staff and task records, the unit of
// persistence. Insertion order is preserved in both collections and is
// the stable default display order.
type Dataset struct {
	Staff []Staff `json:"staff"`
	Tasks []Task  `json:"tasks"`
}

func (ds Dataset) clone() Dataset {
	return Dataset{
		Staff: slices.Clone(ds.Staff),
		Tasks: slices.Clone(ds.Tasks),
	}
}

// staffNames returns a lookup from staff ID to display name.
func (ds Dataset) staffNames() map[string]string {
	names := make(map[string]string, len(ds.Staff))
	for _, member := range ds.Staff {
		names[member.ID] = member.Name
	}
	return names
}
