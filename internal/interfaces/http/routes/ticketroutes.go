package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "careline/internal/interfaces/http/handlers/ticket"
	"careline/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler   *tickethandlers.TicketHandler
	FollowUpHandler *tickethandlers.FollowUpHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Thread endpoints (must come BEFORE bare /:id to avoid conflicts)
		tickets.POST("/:id/followups", config.FollowUpHandler.CreateFollowUp)
		tickets.GET("/:id/followups", config.FollowUpHandler.ListFollowUps)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PATCH("/:id", config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", config.TicketHandler.DeleteTicket)
	}

	followUps := engine.Group("/followups")
	followUps.Use(config.AuthMiddleware.RequireAuth())
	{
		followUps.PATCH("/:id", config.FollowUpHandler.UpdateFollowUp)
		followUps.DELETE("/:id", config.FollowUpHandler.DeleteFollowUp)
	}
}
