package roster

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestImportStaffRows(t *testing.T) {
	store, _ := newTestStore(t)

	count, err := store.ImportStaffRows([][]string{
		{"A1", "Alice"},
		{"", "Bob"},
		{"A2", "Carol"},
	})
	if err != nil {
		t.Fatalf("import rows: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 created records, got %d", count)
	}

	ds := store.Dataset()
	if len(ds.Staff) != 2 {
		t.Fatalf("expected 2 staff, got %d", len(ds.Staff))
	}
	if ds.Staff[0].Name != "Alice" || ds.Staff[1].Name != "Carol" {
		t.Errorf("rows imported out of order: %+v", ds.Staff)
	}
	if ds.Staff[0].ID == ds.Staff[1].ID {
		t.Error("bulk-imported records must get distinct IDs")
	}
}

func TestImportStaffRows_SkipsMalformedRows(t *testing.T) {
	store, _ := newTestStore(t)

	count, err := store.ImportStaffRows([][]string{
		{"A1"},
		{"  ", "Blank No"},
		{"A2", "   "},
		nil,
	})
	if err != nil {
		t.Fatalf("import rows: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 created records, got %d", count)
	}
	if got := len(store.Dataset().Staff); got != 0 {
		t.Errorf("expected no staff, got %d", got)
	}
}

func TestImportStaffRows_SinglePersistForBatch(t *testing.T) {
	store, medium := newTestStore(t)

	notifications := 0
	store.Subscribe(func() { notifications++ })
	before := medium.Writes

	if _, err := store.ImportStaffRows([][]string{
		{"A1", "Alice"},
		{"A2", "Bob"},
		{"A3", "Carol"},
	}); err != nil {
		t.Fatalf("import rows: %v", err)
	}

	if got := medium.Writes - before; got != 2 {
		t.Errorf("batch must persist once (2 key writes), got %d", got)
	}
	if notifications != 1 {
		t.Errorf("batch must notify once, got %d", notifications)
	}
}

func TestExportDataset_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	member, err := store.AddStaff("A1", "Alice")
	if err != nil {
		t.Fatalf("add staff: %v", err)
	}
	if _, err := store.AddTask("Review files", TaskOptions{StaffID: member.ID, DueDate: "2026-02-01"}); err != nil {
		t.Fatalf("add task: %v", err)
	}

	exported, err := store.ExportDataset()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	other, _ := newTestStore(t)
	if err := other.ImportDataset(exported); err != nil {
		t.Fatalf("reimport: %v", err)
	}

	want := store.Dataset()
	got := other.Dataset()
	if len(got.Staff) != len(want.Staff) || got.Staff[0] != want.Staff[0] {
		t.Errorf("staff did not round-trip: %+v vs %+v", got.Staff, want.Staff)
	}
	if len(got.Tasks) != len(want.Tasks) || got.Tasks[0] != want.Tasks[0] {
		t.Errorf("tasks did not round-trip: %+v vs %+v", got.Tasks, want.Tasks)
	}
}

func TestExportDataset_Shape(t *testing.T) {
	store, _ := newTestStore(t)

	exported, err := store.ExportDataset()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(exported, &doc); err != nil {
		t.Fatalf("export is not a JSON object: %v", err)
	}
	if _, ok := doc["staff"]; !ok {
		t.Error("export must contain a staff member")
	}
	if _, ok := doc["tasks"]; !ok {
		t.Error("export must contain a tasks member")
	}
}

func TestImportDataset_ReplacesWholeDataset(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.AddStaff("OLD", "Old Staff"); err != nil {
		t.Fatalf("add staff: %v", err)
	}

	notifications := 0
	store.Subscribe(func() { notifications++ })

	doc := `{
		"staff": [{"id": "s1", "no": "A1", "name": "Alice"}],
		"tasks": [{"id": "t1", "staffId": "s1", "title": "Review", "date": "2026-01-05", "status": "pending"}]
	}`
	if err := store.ImportDataset([]byte(doc)); err != nil {
		t.Fatalf("import: %v", err)
	}

	ds := store.Dataset()
	if len(ds.Staff) != 1 || ds.Staff[0].ID != "s1" {
		t.Errorf("dataset not replaced: %+v", ds.Staff)
	}
	if len(ds.Tasks) != 1 || ds.Tasks[0].ID != "t1" {
		t.Errorf("tasks not replaced: %+v", ds.Tasks)
	}
	if notifications != 1 {
		t.Errorf("import must notify once, got %d", notifications)
	}
}

func TestImportDataset_RejectsWrongShape(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing tasks", `{"staff":[],"notTasks":[]}`},
		{"missing staff", `{"tasks":[]}`},
		{"null collection", `{"staff":null,"tasks":[]}`},
		{"not an object", `[1,2,3]`},
		{"not json", `{broken`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore(t)
			if _, err := store.AddStaff("A1", "Alice"); err != nil {
				t.Fatalf("add staff: %v", err)
			}

			err := store.ImportDataset([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected rejection")
			}

			ds := store.Dataset()
			if len(ds.Staff) != 1 || ds.Staff[0].Name != "Alice" {
				t.Errorf("rejected import must leave the dataset unchanged: %+v", ds.Staff)
			}
		})
	}
}

func TestImportDataset_ErrInvalidDataset(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.ImportDataset([]byte(`{"staff":[],"notTasks":[]}`))
	if !errors.Is(err, ErrInvalidDataset) {
		t.Errorf("expected ErrInvalidDataset, got %v", err)
	}
}
