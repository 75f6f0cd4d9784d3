package domain

import "time"

type Todo struct {
	ID          int64      `db:"id" json:"id"`
	UserID      int64      `db:"user_id" json:"user_id"`
	Text        string     `db:"text" json:"text"`
	CreatedAt   Timestamp  `db:"created_at" json:"created_at"`
	DueDate     *Timestamp `db:"due_date" json:"due_date"`
	Completed   bool       `db:"completed" json:"completed"`
	CompletedAt *Timestamp `db:"completed_at" json:"completed_at"`
	Comment     *string    `db:"comment" json:"comment"`

	// Urgency is derived, not stored; list responses fill it in against
	// server time so clients with skewed clocks still see sane flags.
	Urgency Urgency `db:"-" json:"urgency,omitempty"`
}

// Urgency classifies an open todo by how soon it needs attention.
type Urgency string

const (
	UrgencyNone    Urgency = ""
	UrgencyFresh   Urgency = "fresh"
	UrgencyDueSoon Urgency = "due_soon"
	UrgencyOverdue Urgency = "overdue"
)

const urgencyWindow = 24 * time.Hour

// UrgencyAt classifies the todo relative to now. Completed todos carry no
// urgency. Overdue beats everything; a future due date inside the window
// beats freshness; a todo created inside the window with no pressing due
// date counts as fresh.
func (t *Todo) UrgencyAt(now time.Time) Urgency {
	if t.Completed {
		return UrgencyNone
	}
	if t.DueDate != nil {
		due := t.DueDate.Time
		if due.Before(now) {
			return UrgencyOverdue
		}
		if due.Sub(now) < urgencyWindow {
			return UrgencyDueSoon
		}
	}
	if now.Sub(t.CreatedAt.Time) < urgencyWindow {
		return UrgencyFresh
	}
	return UrgencyNone
}
