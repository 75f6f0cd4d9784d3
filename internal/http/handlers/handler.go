package handlers

import (
	"todo_webapp/internal/http/middleware"
	"todo_webapp/internal/repository"
	"todo_webapp/internal/service"
	"todo_webapp/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB    *pgxpool.Pool
	Auth  *service.AuthService
	Todos *service.TodoService
	Hub   *ws.Hub
}

func NewHandler(db *pgxpool.Pool, hub *ws.Hub) *Handler {
	return &Handler{
		DB:    db,
		Auth:  service.NewAuthService(repository.NewUserRepository(db)),
		Todos: service.NewTodoService(repository.NewTodoRepository(db)),
		Hub:   hub,
	}
}

// userID extracts the authenticated user id set by the JWT middleware.
func userID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(middleware.CtxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
