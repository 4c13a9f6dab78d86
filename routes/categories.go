package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stillpad-notes/stillpad/services"
)

func RegisterCategoryRoutes(group *gin.RouterGroup, noteService services.NoteServiceInterface) {
	group.GET("/categories", func(c *gin.Context) { GetCategories(c, noteService) })
}

// GetCategories lists every category with at least one note. Order is
// unspecified.
func GetCategories(c *gin.Context, noteService services.NoteServiceInterface) {
	c.JSON(http.StatusOK, noteService.GetCategories())
}
