package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"todo_webapp/internal/domain"
	"todo_webapp/internal/repository"
)

var ErrEmptyText = errors.New("todo text must not be empty")

// CompletionPatch is the mutable part of a todo. Completing sets the triple;
// reopening (Completed=false) clears comment and completed_at so the pair
// never outlives the flag.
type CompletionPatch struct {
	Completed   bool
	Comment     *string
	CompletedAt *time.Time
}

type TodoService struct {
	todos *repository.TodoRepository
}

func NewTodoService(todos *repository.TodoRepository) *TodoService {
	return &TodoService{todos: todos}
}

func (s *TodoService) List(ctx context.Context, userID int64) ([]*domain.Todo, error) {
	return s.todos.ListByUser(ctx, userID)
}

// Create persists a new open todo for userID. The creation timestamp is
// stamped server-side; whatever the client claims is ignored.
func (s *TodoService) Create(ctx context.Context, userID int64, text string, dueDate *domain.Timestamp) (*domain.Todo, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	t := &domain.Todo{
		UserID:  userID,
		Text:    text,
		DueDate: dueDate,
	}
	if err := s.todos.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update applies the completion patch to the todo when userID owns it.
// A foreign or absent id matches nothing and succeeds silently.
func (s *TodoService) Update(ctx context.Context, userID, id int64, patch CompletionPatch) error {
	comment := patch.Comment
	completedAt := patch.CompletedAt
	if !patch.Completed {
		comment = nil
		completedAt = nil
	}
	return s.todos.SetCompletion(ctx, userID, id, patch.Completed, comment, completedAt)
}

func (s *TodoService) Delete(ctx context.Context, userID, id int64) error {
	return s.todos.Delete(ctx, userID, id)
}
