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

type FollowUpHandler struct {
	createFollowUpUC usecases.CreateFollowUpExecutor
	updateFollowUpUC usecases.UpdateFollowUpExecutor
	deleteFollowUpUC usecases.DeleteFollowUpExecutor
	listFollowUpsUC  usecases.ListFollowUpsExecutor
	logger           logger.Interface
}

func NewFollowUpHandler(
	createFollowUpUC usecases.CreateFollowUpExecutor,
	updateFollowUpUC usecases.UpdateFollowUpExecutor,
	deleteFollowUpUC usecases.DeleteFollowUpExecutor,
	listFollowUpsUC usecases.ListFollowUpsExecutor,
	log logger.Interface,
) *FollowUpHandler {
	return &FollowUpHandler{
		createFollowUpUC: createFollowUpUC,
		updateFollowUpUC: updateFollowUpUC,
		deleteFollowUpUC: deleteFollowUpUC,
		listFollowUpsUC:  listFollowUpsUC,
		logger:           log,
	}
}

// CreateFollowUp handles POST /tickets/:id/followups
func (h *FollowUpHandler) CreateFollowUp(c *gin.Context) {
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

	req, err := parseCreateTicketRequest(c)
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

	result, err := h.createFollowUpUC.Execute(c.Request.Context(), usecases.CreateFollowUpCommand{
		Caller:      caller,
		TicketID:    ticketID,
		Description: req.Description,
		Attachment:  upload,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Follow-up created successfully")
}

// ListFollowUps handles GET /tickets/:id/followups
func (h *FollowUpHandler) ListFollowUps(c *gin.Context) {
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

	pagination := utils.ParsePagination(c)

	result, err := h.listFollowUpsUC.Execute(c.Request.Context(), usecases.ListFollowUpsQuery{
		Caller:   caller,
		TicketID: ticketID,
		Page:     pagination.Page,
		PerPage:  pagination.PerPage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Thread, result.Total, result.Page, result.PerPage)
}

// UpdateFollowUp handles PATCH /followups/:id
func (h *FollowUpHandler) UpdateFollowUp(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing caller identity"))
		return
	}

	followUpID, err := parseIDParam(c, "id")
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

	result, err := h.updateFollowUpUC.Execute(c.Request.Context(), usecases.UpdateFollowUpCommand{
		Caller:      caller,
		FollowUpID:  followUpID,
		Description: req.Description,
		Attachment:  upload,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Follow-up updated successfully", result)
}

// DeleteFollowUp handles DELETE /followups/:id
func (h *FollowUpHandler) DeleteFollowUp(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing caller identity"))
		return
	}

	followUpID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteFollowUpUC.Execute(c.Request.Context(), usecases.DeleteFollowUpCommand{
		Caller:     caller,
		FollowUpID: followUpID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
