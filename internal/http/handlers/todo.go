package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"todo_webapp/internal/domain"
	"todo_webapp/internal/logger"
	"todo_webapp/internal/service"

	"github.com/gin-gonic/gin"
)

type createTodoRequest struct {
	Text string `json:"text"`
	// CreatedAt is required on the wire for compatibility with existing
	// clients, but the server stamps its own creation time; trusting the
	// browser clock corrupts created_at on skewed machines.
	CreatedAt *domain.Timestamp `json:"createdAt"`
	DueDate   *domain.Timestamp `json:"dueDate"`
}

type updateTodoRequest struct {
	Completed   bool              `json:"completed"`
	Comment     *string           `json:"comment"`
	CompletedAt *domain.Timestamp `json:"completedAt"`
}

func (h *Handler) ListTodos(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	todos, err := h.Todos.List(c.Request.Context(), uid)
	if err != nil {
		logger.Error("list todos failed", "user_id", uid, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	for _, t := range todos {
		t.Urgency = t.UrgencyAt(now)
	}
	if todos == nil {
		todos = []*domain.Todo{}
	}
	c.JSON(http.StatusOK, todos)
}

func (h *Handler) CreateTodo(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createTodoRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if req.Text == "" || req.CreatedAt == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text and createdAt are required"})
		return
	}

	todo, err := h.Todos.Create(c.Request.Context(), uid, req.Text, req.DueDate)
	if err != nil {
		if errors.Is(err, service.ErrEmptyText) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("create todo failed", "user_id", uid, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.Hub.NotifyTasksChanged(uid)
	c.JSON(http.StatusOK, todo)
}

func (h *Handler) UpdateTodo(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return
	}

	var req updateTodoRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	patch := service.CompletionPatch{
		Completed: req.Completed,
		Comment:   req.Comment,
	}
	if req.CompletedAt != nil {
		patch.CompletedAt = &req.CompletedAt.Time
	}

	if err := h.Todos.Update(c.Request.Context(), uid, id, patch); err != nil {
		logger.Error("update todo failed", "user_id", uid, "todo_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.Hub.NotifyTasksChanged(uid)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) DeleteTodo(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return
	}

	// deleting an absent or foreign id is a documented no-op
	if err := h.Todos.Delete(c.Request.Context(), uid, id); err != nil {
		logger.Error("delete todo failed", "user_id", uid, "todo_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.Hub.NotifyTasksChanged(uid)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
