package routes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stillpad-notes/stillpad/models"
	"stillpad-notes/stillpad/services"
	"stillpad-notes/stillpad/store"
)

func RegisterNoteRoutes(group *gin.RouterGroup, noteService services.NoteServiceInterface) {
	// Collection endpoints with query parameters
	group.GET("/notes", func(c *gin.Context) { GetNotesByCategory(c, noteService) })
	group.POST("/notes", func(c *gin.Context) { CreateNote(c, noteService) })

	// Resource-specific endpoints
	group.GET("/notes/:id", func(c *gin.Context) { GetNoteByID(c, noteService) })
	group.DELETE("/notes/:id", func(c *gin.Context) { DeleteNote(c, noteService) })
}

// RegisterAdminRoutes exposes destructive maintenance endpoints; main only
// registers them outside production.
func RegisterAdminRoutes(group *gin.RouterGroup, noteService services.NoteServiceInterface) {
	group.DELETE("/notes", func(c *gin.Context) { ClearAllNotes(c, noteService) })
}

func CreateNote(c *gin.Context, noteService services.NoteServiceInterface) {
	var req models.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := noteService.CreateNote(req)
	if err != nil {
		var validationErr *store.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": note})
}

func GetNotesByCategory(c *gin.Context, noteService services.NoteServiceInterface) {
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category query parameter is required"})
		return
	}

	limit := store.DefaultReadLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": store.NewValidationError("limit must be a positive integer").Error()})
			return
		}
		limit = parsed
	}

	offset := 0
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": store.NewValidationError("offset must be a non-negative integer").Error()})
			return
		}
		offset = parsed
	}

	list, err := noteService.ReadNotesByCategory(category, limit, offset)
	if err != nil {
		var validationErr *store.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": list})
}

func GetNoteByID(c *gin.Context, noteService services.NoteServiceInterface) {
	id := c.Param("id")

	note, err := noteService.GetNoteByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, note)
}

func DeleteNote(c *gin.Context, noteService services.NoteServiceInterface) {
	id := c.Param("id")

	if !noteService.DeleteNote(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func ClearAllNotes(c *gin.Context, noteService services.NoteServiceInterface) {
	noteService.ClearAllNotes()
	c.Status(http.StatusNoContent)
}
