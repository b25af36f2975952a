package database

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func mustInsert(t *testing.T, s *Store, title, desc, due string, p Priority) int64 {
	t.Helper()

	id, err := s.Insert(title, desc, due, p)
	if err != nil {
		t.Fatalf("inserting %q: %v", title, err)
	}
	return id
}

func TestInsertAndList_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	id := mustInsert(t, s, "Buy milk", "two liters", "2025-01-01", PriorityHigh)
	if id == 0 {
		t.Fatal("expected a non-zero id")
	}

	tasks, err := s.List(ListOptions{})
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}

	task := tasks[0]
	if task.ID != id {
		t.Errorf("id = %d, want %d", task.ID, id)
	}
	if task.Title != "Buy milk" || task.Description != "two liters" {
		t.Errorf("unexpected title/description: %q / %q", task.Title, task.Description)
	}
	if task.DueDate != "2025-01-01" {
		t.Errorf("due date = %q, want 2025-01-01", task.DueDate)
	}
	if task.Priority != PriorityHigh {
		t.Errorf("priority = %q, want High", task.Priority)
	}
	if task.Completed {
		t.Error("new task should not be completed")
	}
	if task.CreatedAt.IsZero() {
		t.Error("created_at should be set on insert")
	}
}

func TestInsert_RejectsEmptyTitle(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Insert("   ", "", "", PriorityMedium)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "title" {
		t.Errorf("field = %q, want title", verr.Field)
	}
}

func TestInsert_RejectsMalformedDueDate(t *testing.T) {
	s := newTestStore(t)

	for _, due := range []string{"01-01-2025", "2025/01/01", "2025-13-40", "tomorrow"} {
		_, err := s.Insert("task", "", due, PriorityMedium)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("due %q: expected ValidationError, got %v", due, err)
		}
	}
}

func TestInsert_EmptyPriorityDefaultsToMedium(t *testing.T) {
	s := newTestStore(t)

	id := mustInsert(t, s, "task", "", "", "")
	task, err := s.Get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if task.Priority != PriorityMedium {
		t.Errorf("priority = %q, want Medium", task.Priority)
	}
}

func TestUpdate_ReplacesMutableFields(t *testing.T) {
	s := newTestStore(t)

	id := mustInsert(t, s, "original", "old desc", "2025-01-01", PriorityLow)
	before, err := s.Get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	updated := before
	updated.Title = "renamed"
	updated.Description = "new desc"
	updated.DueDate = "2025-06-30"
	updated.Priority = PriorityHigh
	updated.Completed = true

	if err := s.Update(updated); err != nil {
		t.Fatalf("update: %v", err)
	}

	after, err := s.Get(id)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if after.Title != "renamed" || after.Description != "new desc" {
		t.Errorf("title/description not updated: %q / %q", after.Title, after.Description)
	}
	if after.DueDate != "2025-06-30" || after.Priority != PriorityHigh || !after.Completed {
		t.Errorf("due/priority/completed not updated: %+v", after)
	}
	if after.ID != before.ID {
		t.Errorf("id changed from %d to %d", before.ID, after.ID)
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("created_at changed from %v to %v", before.CreatedAt, after.CreatedAt)
	}
}

func TestUpdate_MissingIDReturnsNotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.Update(Task{ID: 42, Title: "ghost", Priority: PriorityMedium})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_IsIdempotent(t *testing.T) {
	s := newTestStore(t)

	id := mustInsert(t, s, "doomed", "", "", PriorityMedium)
	if err := s.Delete(id); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := s.Delete(id); err != nil {
		t.Fatalf("second delete should not error: %v", err)
	}

	if _, err := s.Get(id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestGet_MissingIDReturnsNotFound(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Get(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestList_FilterMatchesTitleOrDescription(t *testing.T) {
	s := newTestStore(t)

	mustInsert(t, s, "Buy food", "", "", PriorityMedium)
	mustInsert(t, s, "Pay rent", "for the apartment", "", PriorityMedium)
	mustInsert(t, s, "Call mom", "ask about FOOD recipe", "", PriorityMedium)

	tasks, err := s.List(ListOptions{Filter: "foo"})
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(tasks))
	}
	if tasks[0].Title != "Buy food" || tasks[1].Title != "Call mom" {
		t.Errorf("unexpected matches: %q, %q", tasks[0].Title, tasks[1].Title)
	}
}

func TestList_SortByPriorityUsesEnumOrder(t *testing.T) {
	s := newTestStore(t)

	mustInsert(t, s, "medium", "", "", PriorityMedium)
	mustInsert(t, s, "high", "", "", PriorityHigh)
	mustInsert(t, s, "low", "", "", PriorityLow)

	tasks, err := s.List(ListOptions{SortBy: "priority", SortOrder: SortDesc})
	if err != nil {
		t.Fatalf("listing: %v", err)
	}

	got := []Priority{tasks[0].Priority, tasks[1].Priority, tasks[2].Priority}
	want := []Priority{PriorityHigh, PriorityMedium, PriorityLow}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("descending priority order = %v, want %v", got, want)
		}
	}
}

// Matches the documented example: Low sorts before High ascending,
// regardless of how the values compare alphabetically.
func TestList_PriorityScenario(t *testing.T) {
	s := newTestStore(t)

	id1 := mustInsert(t, s, "Buy milk", "", "2025-01-01", PriorityLow)
	id2 := mustInsert(t, s, "Pay rent", "", "", PriorityHigh)

	tasks, err := s.List(ListOptions{SortBy: "priority", SortOrder: SortAsc})
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	if tasks[0].ID != id1 || tasks[1].ID != id2 {
		t.Fatalf("ascending priority order = [%d, %d], want [%d, %d]",
			tasks[0].ID, tasks[1].ID, id1, id2)
	}
}

func TestList_InvalidSortColumnFallsBackToID(t *testing.T) {
	s := newTestStore(t)

	mustInsert(t, s, "first", "", "", PriorityHigh)
	mustInsert(t, s, "second", "", "", PriorityLow)

	// A hostile sort column must not reach the query
	tasks, err := s.List(ListOptions{SortBy: "id; DROP TABLE tasks--", SortOrder: "sideways"})
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	if len(tasks) != 2 || tasks[0].Title != "first" || tasks[1].Title != "second" {
		t.Fatalf("expected id-ascending fallback, got %+v", tasks)
	}

	// Table must still exist afterwards
	if _, err := s.List(ListOptions{}); err != nil {
		t.Fatalf("store damaged by hostile sort input: %v", err)
	}
}

func TestClearCompleted_RemovesOnlyCompleted(t *testing.T) {
	s := newTestStore(t)

	keep := mustInsert(t, s, "pending", "", "", PriorityMedium)
	done1 := mustInsert(t, s, "done one", "", "", PriorityMedium)
	done2 := mustInsert(t, s, "done two", "", "", PriorityMedium)

	for _, id := range []int64{done1, done2} {
		task, err := s.Get(id)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		task.Completed = true
		if err := s.Update(task); err != nil {
			t.Fatalf("update: %v", err)
		}
	}

	n, err := s.ClearCompleted()
	if err != nil {
		t.Fatalf("clear completed: %v", err)
	}
	if n != 2 {
		t.Errorf("cleared %d tasks, want 2", n)
	}

	tasks, err := s.List(ListOptions{})
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != keep {
		t.Fatalf("expected only task %d to survive, got %+v", keep, tasks)
	}
}

func TestInit_IsIdempotent(t *testing.T) {
	s := newTestStore(t)

	mustInsert(t, s, "survivor", "", "", PriorityMedium)
	if err := s.Init(); err != nil {
		t.Fatalf("second init: %v", err)
	}

	tasks, err := s.List(ListOptions{})
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("init wiped existing data, got %d tasks", len(tasks))
	}
}

func TestParsePriority(t *testing.T) {
	cases := []struct {
		in   string
		want Priority
	}{
		{"", PriorityMedium},
		{"low", PriorityLow},
		{"LOW", PriorityLow},
		{" Medium ", PriorityMedium},
		{"High", PriorityHigh},
	}
	for _, c := range cases {
		got, err := ParsePriority(c.in)
		if err != nil {
			t.Errorf("ParsePriority(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParsePriority(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	if _, err := ParsePriority("urgent"); err == nil {
		t.Error("ParsePriority(\"urgent\") should fail")
	}
}
