package domain

import "time"

// DueDateLayout is the wire and storage format for due dates. Due dates are
// calendar dates with no time component.
const DueDateLayout = "2006-01-02"

type Task struct {
	ID      int64
	OwnerID int64
	Name    string
	Done    bool
	DueDate *time.Time // nil means no deadline
}

// Overdue reports whether the task has a due date strictly before today and
// is still pending. Completed tasks are never overdue. The due date is a bare
// calendar date while today carries a wall clock and location, so the
// comparison is between formatted dates, never instants.
func (t Task) Overdue(today time.Time) bool {
	if t.DueDate == nil || t.Done {
		return false
	}
	return t.DueDate.Format(DueDateLayout) < today.Format(DueDateLayout)
}

// TaskList is the owner's task sequence plus the completion summary shown on
// the dashboard. Tasks are ordered pending-first, newest-first within each
// group.
type TaskList struct {
	Tasks     []Task
	Total     int
	Completed int
	Percent   int // round-half-up of Completed/Total, 0 when Total is 0
}
