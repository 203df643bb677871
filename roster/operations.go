package roster

import (
	"fmt"
	"time"
)

// AddStaff creates a staff member with a fresh ID and appends it to the
// collection.
func (s *Store) AddStaff(no, name string) (*Staff, error) {
	if err := ValidateStaffNo(no); err != nil {
		return nil, err
	}
	if err := ValidateStaffName(name); err != nil {
		return nil, err
	}

	member := Staff{
		ID:   GenerateID(no+name, time.Now()),
		No:   no,
		Name: name,
	}

	err := s.mutate(func(ds *Dataset) bool {
		ds.Staff = append(ds.Staff, member)
		return true
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// StaffUpdate configures fields to update on a staff member.
// Nil pointers mean "don't update this field".
type StaffUpdate struct {
	No   *string
	Name *string
}

// UpdateStaff merges update over the staff record with the given ID.
// An unknown ID is a silent no-op with no persistence or notification
// side effects.
func (s *Store) UpdateStaff(id string, update StaffUpdate) error {
	if update.No != nil {
		if err := ValidateStaffNo(*update.No); err != nil {
			return err
		}
	}
	if update.Name != nil {
		if err := ValidateStaffName(*update.Name); err != nil {
			return err
		}
	}

	return s.mutate(func(ds *Dataset) bool {
		for i := range ds.Staff {
			if ds.Staff[i].ID != id {
				continue
			}
			if update.No != nil {
				ds.Staff[i].No = *update.No
			}
			if update.Name != nil {
				ds.Staff[i].Name = *update.Name
			}
			return true
		}
		return false
	})
}

// RemoveStaff deletes the staff record with the given ID after asking
// the prompter for confirmation. Tasks referencing the record are kept;
// their staff name resolves to UnknownStaffName from then on. Returns
// true when a record was removed.
func (s *Store) RemoveStaff(id string) (bool, error) {
	confirmed, err := s.prompter.Confirm("Are you sure you want to delete this staff member?")
	if err != nil {
		return false, fmt.Errorf("prompt: %w", err)
	}
	if !confirmed {
		return false, nil
	}

	removed := false
	err = s.mutate(func(ds *Dataset) bool {
		for i := range ds.Staff {
			if ds.Staff[i].ID == id {
				ds.Staff = append(ds.Staff[:i], ds.Staff[i+1:]...)
				removed = true
				return true
			}
		}
		return false
	})
	return removed, err
}

// TaskOptions configures a new task.
type TaskOptions struct {
	// StaffID links the task to a staff member. The link is weak: it
	// is resolved at read time and is not required to match an
	// existing record.
	StaffID string

	// Description provides additional context.
	Description string

	// Date is the record date (YYYY-MM-DD). Defaults to the current
	// date when empty.
	Date string

	// DueDate is an optional due date (YYYY-MM-DD).
	DueDate string
}

// AddTask creates a task with the given title. New tasks always start
// pending.
func (s *Store) AddTask(title string, opts TaskOptions) (*Task, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}

	now := time.Now()
	if opts.Date == "" {
		opts.Date = now.Format(DateFormat)
	}
	if err := ValidateDate(opts.Date); err != nil {
		return nil, err
	}
	if opts.DueDate != "" {
		if err := ValidateDate(opts.DueDate); err != nil {
			return nil, err
		}
	}

	task := Task{
		ID:          GenerateID(title, now),
		StaffID:     opts.StaffID,
		Title:       title,
		Description: opts.Description,
		Date:        opts.Date,
		DueDate:     opts.DueDate,
		Status:      StatusPending,
	}

	err := s.mutate(func(ds *Dataset) bool {
		ds.Tasks = append(ds.Tasks, task)
		return true
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// TaskUpdate configures fields to update on a task.
// Nil pointers mean "don't update this field".
type TaskUpdate struct {
	StaffID     *string
	Title       *string
	Description *string
	Date        *string
	DueDate     *string
	Status      *Status
}

// UpdateTask merges update over the task with the given ID. An unknown
// ID is a silent no-op with no persistence or notification side
// effects.
func (s *Store) UpdateTask(id string, update TaskUpdate) error {
	if update.Title != nil {
		if err := ValidateTitle(*update.Title); err != nil {
			return err
		}
	}
	if update.Date != nil {
		if err := ValidateDate(*update.Date); err != nil {
			return err
		}
	}
	if update.DueDate != nil && *update.DueDate != "" {
		if err := ValidateDate(*update.DueDate); err != nil {
			return err
		}
	}
	if update.Status != nil {
		normalized, err := normalizeStatusInput(*update.Status)
		if err != nil {
			return err
		}
		update.Status = &normalized
	}

	return s.mutate(func(ds *Dataset) bool {
		for i := range ds.Tasks {
			if ds.Tasks[i].ID != id {
				continue
			}
			if update.StaffID != nil {
				ds.Tasks[i].StaffID = *update.StaffID
			}
			if update.Title != nil {
				ds.Tasks[i].Title = *update.Title
			}
			if update.Description != nil {
				ds.Tasks[i].Description = *update.Description
			}
			if update.Date != nil {
				ds.Tasks[i].Date = *update.Date
			}
			if update.DueDate != nil {
				ds.Tasks[i].DueDate = *update.DueDate
			}
			if update.Status != nil {
				ds.Tasks[i].Status = *update.Status
			}
			return true
		}
		return false
	})
}

// RemoveTask deletes the task with the given ID after asking the
// prompter for confirmation. Returns true when a record was removed.
func (s *Store) RemoveTask(id string) (bool, error) {
	confirmed, err := s.prompter.Confirm("Delete this task?")
	if err != nil {
		return false, fmt.Errorf("prompt: %w", err)
	}
	if !confirmed {
		return false, nil
	}

	removed := false
	err = s.mutate(func(ds *Dataset) bool {
		for i := range ds.Tasks {
			if ds.Tasks[i].ID == id {
				ds.Tasks = append(ds.Tasks[:i], ds.Tasks[i+1:]...)
				removed = true
				return true
			}
		}
		return false
	})
	return removed, err
}

// ToggleTaskStatus flips a task between pending and completed. An
// unknown ID is a silent no-op.
func (s *Store) ToggleTaskStatus(id string) error {
	return s.mutate(func(ds *Dataset) bool {
		for i := range ds.Tasks {
			if ds.Tasks[i].ID == id {
				ds.Tasks[i].Status = ds.Tasks[i].Status.Toggled()
				return true
			}
		}
		return false
	})
}
