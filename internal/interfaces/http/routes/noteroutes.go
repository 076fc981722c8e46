package routes

import (
	"github.com/gin-gonic/gin"

	notehandlers "careline/internal/interfaces/http/handlers/note"
	"careline/internal/interfaces/http/middleware"
)

type NoteRouteConfig struct {
	NoteHandler    *notehandlers.NoteHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupNoteRoutes(engine *gin.Engine, config *NoteRouteConfig) {
	notes := engine.Group("/notes")
	notes.Use(config.AuthMiddleware.RequireAuth())
	{
		notes.POST("", config.NoteHandler.CreateNote)
		notes.GET("", config.NoteHandler.ListNotes)
		notes.GET("/:id", config.NoteHandler.GetNote)
		notes.PATCH("/:id", config.NoteHandler.UpdateNote)
		notes.DELETE("/:id", config.NoteHandler.DeleteNote)
	}
}
