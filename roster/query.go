package roster

import "strings"

// SearchStaff returns staff whose number or name contains query as a
// case-insensitive substring. An empty query returns all staff in
// collection order.
func (s *Store) SearchStaff(query string) []Staff {
	query = strings.ToLower(query)

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]Staff, 0, len(s.data.Staff))
	for _, member := range s.data.Staff {
		if query != "" &&
			!strings.Contains(strings.ToLower(member.No), query) &&
			!strings.Contains(strings.ToLower(member.Name), query) {
			continue
		}
		result = append(result, member)
	}
	return result
}

// SearchTasks enriches every task with its staff member's display name,
// then returns those whose title or resolved staff name contains query
// as a case-insensitive substring. An empty query returns all tasks in
// collection order.
func (s *Store) SearchTasks(query string) []EnrichedTask {
	query = strings.ToLower(query)

	s.mu.Lock()
	enriched := enrichTasks(s.data)
	s.mu.Unlock()

	if query == "" {
		return enriched
	}

	result := make([]EnrichedTask, 0, len(enriched))
	for _, task := range enriched {
		if !strings.Contains(strings.ToLower(task.Title), query) &&
			!strings.Contains(strings.ToLower(task.StaffName), query) {
			continue
		}
		result = append(result, task)
	}
	return result
}

// enrichTasks resolves every task's staff name against the current
// staff collection. Unresolvable references get UnknownStaffName.
func enrichTasks(ds Dataset) []EnrichedTask {
	names := ds.staffNames()

	result := make([]EnrichedTask, 0, len(ds.Tasks))
	for _, task := range ds.Tasks {
		name, ok := names[task.StaffID]
		if !ok {
			name = UnknownStaffName
		}
		result = append(result, EnrichedTask{Task: task, StaffName: name})
	}
	return result
}

// StatusCounts holds dashboard totals.
type StatusCounts struct {
	Staff     int `json:"staff"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

// CountByStatus reports the staff total and the task totals per status.
func (s *Store) CountByStatus() StatusCounts {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := StatusCounts{Staff: len(s.data.Staff)}
	for _, task := range s.data.Tasks {
		switch task.Status {
		case StatusCompleted:
			counts.Completed++
		default:
			counts.Pending++
		}
	}
	return counts
}
