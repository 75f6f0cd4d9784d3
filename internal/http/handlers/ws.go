package handlers

import (
	"net/http"
	"os"

	"todo_webapp/internal/logger"
	"todo_webapp/internal/service"
	"todo_webapp/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WS upgrades the connection and parks it in the hub so this tab gets a
// refetch hint whenever another tab mutates the list. Browsers cannot set
// headers on WebSocket upgrades, so the token rides in the query string.
func (h *Handler) WS(hub *ws.Hub) gin.HandlerFunc {
	allowedOrigin := os.Getenv("ALLOWED_ORIGIN")
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if allowedOrigin == "" {
				return true
			}
			return r.Header.Get("Origin") == allowedOrigin
		},
	}

	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token required"})
			return
		}

		claims, err := service.ParseJWT(token)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid or expired token"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warn("ws upgrade failed", "user_id", claims.UserID, "error", err)
			return
		}

		client := ws.NewClient(claims.UserID, conn, hub)
		go client.Run()
	}
}
