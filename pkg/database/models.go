package database

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the fixed calendar format for due dates.
const DateFormat = "2006-01-02"

// Priority represents the urgency of a task
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// ParsePriority converts user input to a Priority, case-insensitively.
// Empty input defaults to Medium.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	}
	return "", &ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown priority %q", s)}
}

// Rank returns the position of the priority in its declared order,
// Low < Medium < High. Unknown values rank below Low.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	}
	return 0
}

// Task represents a single task record
type Task struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	DueDate     string    `db:"due_date"` // YYYY-MM-DD, empty means no due date
	Priority    Priority  `db:"priority"`
	Completed   bool      `db:"completed"`
	CreatedAt   time.Time `db:"created_at"`
}

// SortOrder represents the direction of a sorted listing
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// ListOptions controls filtering and ordering of List. The zero value
// returns every task in store-default order (id ascending).
type ListOptions struct {
	// Filter matches tasks whose title or description contains the
	// text, case-insensitively.
	Filter string

	// SortBy names a task column. Anything outside the known column
	// set falls back to "id".
	SortBy string

	// SortOrder is ASC or DESC. Anything else is treated as ASC.
	SortOrder SortOrder
}
