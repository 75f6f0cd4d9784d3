package http

import (
	"todo_webapp/internal/config"
	"todo_webapp/internal/http/handlers"
	"todo_webapp/internal/http/middleware"
	"todo_webapp/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	hub := ws.NewHub()
	h := handlers.NewHandler(db, hub)
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	api := r.Group("/api")
	api.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))

	// Auth endpoints get a much tighter window against brute force.
	authRL := middleware.RedisRateLimit(cfg.AuthRateLimit, cfg.AuthRateWindow)
	api.POST("/register", authRL, h.Register)
	api.POST("/login", authRL, h.Login)

	// Per-user limiter for mutations; reads stay on the shared IP window.
	userRL := middleware.UserRateLimit(cfg.UserRateLimit, cfg.UserRateWindow)
	api.GET("/todos", middleware.JWT(), h.ListTodos)
	api.POST("/todos", middleware.JWT(), userRL, h.CreateTodo)
	api.PUT("/todos/:id", middleware.JWT(), userRL, h.UpdateTodo)
	api.DELETE("/todos/:id", middleware.JWT(), userRL, h.DeleteTodo)

	// Multi-tab sync channel
	r.GET("/ws", h.WS(hub))

	// Frontend static files
	r.StaticFile("/", cfg.StaticDir+"/login.html")
	r.StaticFile("/index.html", cfg.StaticDir+"/index.html")
	r.StaticFile("/login.html", cfg.StaticDir+"/login.html")
	r.StaticFile("/register.html", cfg.StaticDir+"/register.html")
	r.StaticFile("/styles.css", cfg.StaticDir+"/styles.css")
	r.StaticFile("/app.js", cfg.StaticDir+"/app.js")
}
