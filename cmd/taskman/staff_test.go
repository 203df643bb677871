package main

import (
	"reflect"
	"testing"
)

func TestDataRowsStripsHeader(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want [][]string
	}{
		{
			name: "headered sheet",
			rows: [][]string{{"Staff No", "Staff Name"}, {"C3", "Carmen"}, {"D4", "Dana"}},
			want: [][]string{{"C3", "Carmen"}, {"D4", "Dana"}},
		},
		{
			name: "header only",
			rows: [][]string{{"Staff No", "Staff Name"}},
			want: [][]string{},
		},
		{
			name: "empty sheet",
			rows: [][]string{},
			want: [][]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dataRows(tt.rows)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d rows, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if !reflect.DeepEqual(got[i], tt.want[i]) {
					t.Errorf("row %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}
