package repository

import (
	"context"
	"time"

	"todo_webapp/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TodoRepository struct {
	db *pgxpool.Pool
}

func NewTodoRepository(db *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{db: db}
}

// ListByUser returns every todo the user owns, in insertion order.
// Presentation-level sorting is the client's job.
func (r *TodoRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Todo, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, text, created_at, due_date, completed, completed_at, comment
		 FROM todos
		 WHERE user_id = $1
		 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Todo
	for rows.Next() {
		var (
			t           domain.Todo
			createdAt   time.Time
			dueDate     *time.Time
			completedAt *time.Time
		)
		if err := rows.Scan(&t.ID, &t.UserID, &t.Text, &createdAt, &dueDate, &t.Completed, &completedAt, &t.Comment); err != nil {
			return nil, err
		}
		t.CreatedAt = domain.NewTimestamp(createdAt)
		t.DueDate = domain.FromTimePtr(dueDate)
		t.CompletedAt = domain.FromTimePtr(completedAt)
		res = append(res, &t)
	}
	return res, rows.Err()
}

// Create inserts the todo with a server-stamped creation time, truncated to
// wire precision, and fills in the assigned id.
func (r *TodoRepository) Create(ctx context.Context, t *domain.Todo) error {
	createdAt := time.Now().UTC().Truncate(time.Second)

	var due *time.Time
	if t.DueDate != nil {
		due = &t.DueDate.Time
	}

	if err := r.db.QueryRow(ctx,
		`INSERT INTO todos (user_id, text, created_at, due_date)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		t.UserID, t.Text, createdAt, due,
	).Scan(&t.ID); err != nil {
		return err
	}

	t.CreatedAt = domain.NewTimestamp(createdAt)
	return nil
}

// SetCompletion writes the full completion triple in one statement, filtered
// by both id and owner so a forged id for someone else's todo matches zero
// rows. Zero rows affected is not an error. Passing completed=false with nil
// comment/completedAt clears the pair, keeping completed_at tied to completed.
func (r *TodoRepository) SetCompletion(ctx context.Context, userID, id int64, completed bool, comment *string, completedAt *time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE todos
		 SET completed = $1, comment = $2, completed_at = $3
		 WHERE id = $4 AND user_id = $5`,
		completed, comment, completedAt, id, userID,
	)
	return err
}

// Delete removes the todo when owned by userID. Deleting an absent or
// foreign id affects zero rows and reports success.
func (r *TodoRepository) Delete(ctx context.Context, userID, id int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM todos WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	return err
}
