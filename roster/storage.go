package roster

import (
	"encoding/json"
	"fmt"

	"github.com/nhaseem/taskman/internal/kv"
)

// Storage keys. Each collection persists as its own JSON array so that
// either can be read back independently.
const (
	// StaffKey is the medium key holding the staff collection.
	StaffKey = "staff"

	// TasksKey is the medium key holding the task collection.
	TasksKey = "tasks"
)

// loadCollection reads one collection from the medium. Missing or
// unparseable content degrades to an empty collection.
func loadCollection[T any](medium kv.Store, key string) ([]T, error) {
	data, ok, err := medium.Get(key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok || len(data) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func loadDataset(medium kv.Store) (Dataset, error) {
	staff, err := loadCollection[Staff](medium, StaffKey)
	if err != nil {
		return Dataset{}, err
	}
	tasks, err := loadCollection[Task](medium, TasksKey)
	if err != nil {
		return Dataset{}, err
	}
	return Dataset{Staff: staff, Tasks: tasks}, nil
}

// saveDataset writes both collections, overwriting prior content.
func saveDataset(medium kv.Store, ds Dataset) error {
	staffJSON, err := json.MarshalIndent(ds.Staff, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal staff: %w", err)
	}
	tasksJSON, err := json.MarshalIndent(ds.Tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	if err := medium.Set(StaffKey, staffJSON); err != nil {
		return fmt.Errorf("write staff: %w", err)
	}
	if err := medium.Set(TasksKey, tasksJSON); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}
