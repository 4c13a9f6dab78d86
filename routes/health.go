package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stillpad-notes/stillpad/services"
)

func RegisterHealthRoutes(router *gin.Engine, noteService services.NoteServiceInterface) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "notes": noteService.NoteCount()})
	})
}
