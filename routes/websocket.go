package routes

import (
	"github.com/gin-gonic/gin"

	"stillpad-notes/stillpad/services"
)

// RegisterWebSocketRoutes attaches the note event stream at /ws.
func RegisterWebSocketRoutes(router *gin.Engine, webSocketService services.WebSocketServiceInterface) {
	router.GET("/ws", func(c *gin.Context) {
		webSocketService.HandleConnection(c.Writer, c.Request)
	})
}
