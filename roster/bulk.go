package roster

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ImportStaffRows creates one staff record per row of (staff number,
// staff name) cells. The header row is assumed to be already stripped
// by the caller. Rows missing either cell are skipped silently; they do
// not abort the batch. Returns the number of records created. The batch
// persists and notifies once, after all rows are applied.
func (s *Store) ImportStaffRows(rows [][]string) (int, error) {
	now := time.Now()

	var created []Staff
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		no := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		if no == "" || name == "" {
			continue
		}
		created = append(created, Staff{
			ID:   GenerateID(no+name, now),
			No:   no,
			Name: name,
		})
	}

	if len(created) == 0 {
		return 0, nil
	}

	err := s.mutate(func(ds *Dataset) bool {
		ds.Staff = append(ds.Staff, created...)
		return true
	})
	if err != nil {
		return 0, err
	}
	return len(created), nil
}

// ExportDataset serializes the whole dataset as a single JSON document
// with a staff and a tasks member, suitable for round-trip reimport.
func (s *Store) ExportDataset() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal dataset: %w", err)
	}
	return data, nil
}

// ImportDataset parses data and wholly replaces the current dataset
// with it. The document must contain both a staff and a tasks member;
// otherwise the import is rejected and the current dataset is left
// unchanged.
func (s *Store) ImportDataset(data []byte) error {
	var doc struct {
		Staff *[]Staff `json:"staff"`
		Tasks *[]Task  `json:"tasks"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse dataset document: %w", err)
	}
	if doc.Staff == nil || doc.Tasks == nil {
		return ErrInvalidDataset
	}

	imported := Dataset{Staff: *doc.Staff, Tasks: *doc.Tasks}
	return s.mutate(func(ds *Dataset) bool {
		*ds = imported
		return true
	})
}
