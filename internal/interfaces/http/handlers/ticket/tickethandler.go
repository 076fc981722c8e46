package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careline/internal/application/ticket/usecases"
	"careline/internal/interfaces/http/middleware"
	"careline/internal/shared/errors"
	"careline/internal/shared/logger"
	"careline/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	updateTicketUC usecases.UpdateTicketExecutor
	deleteTicketUC usecases.DeleteTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		updateTicketUC: updateTicketUC,
		deleteTicketUC: deleteTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		logger:         log,
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing caller identity"))
		return
	}

	req, err := parseCreateTicketRequest(c)
	if err != nil {
		h.logger.Warnw("invalid request for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	upload, closeUpload, err := toUpload(req.Attachment)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer closeUpload()

	result, err := h.createTicketUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Caller:      caller,
		Description: req.Description,
		Attachment:  upload,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing caller identity"))
		return
	}

	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		Caller:   caller,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing caller identity"))
		return
	}

	req := parseListTicketsRequest(c)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Caller:  caller,
		Scope:   req.Scope,
		Page:    req.Page,
		PerPage: req.PerPage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PerPage)
}

// UpdateTicket handles PATCH /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing caller identity"))
		return
	}

	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	req, err := parseUpdateTicketRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	upload, closeUpload, err := toUpload(req.Attachment)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer closeUpload()

	result, err := h.updateTicketUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		Caller:      caller,
		TicketID:    ticketID,
		Description: req.Description,
		Attachment:  upload,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing caller identity"))
		return
	}

	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		Caller:   caller,
		TicketID: ticketID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
