package note

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careline/internal/application/note/usecases"
	"careline/internal/interfaces/http/middleware"
	"careline/internal/shared/errors"
	"careline/internal/shared/logger"
	"careline/internal/shared/utils"
)

type NoteHandler struct {
	createNoteUC usecases.CreateNoteExecutor
	updateNoteUC usecases.UpdateNoteExecutor
	deleteNoteUC usecases.DeleteNoteExecutor
	getNoteUC    usecases.GetNoteExecutor
	listNotesUC  usecases.ListNotesExecutor
	logger       logger.Interface
}

func NewNoteHandler(
	createNoteUC usecases.CreateNoteExecutor,
	updateNoteUC usecases.UpdateNoteExecutor,
	deleteNoteUC usecases.DeleteNoteExecutor,
	getNoteUC usecases.GetNoteExecutor,
	listNotesUC usecases.ListNotesExecutor,
	log logger.Interface,
) *NoteHandler {
	return &NoteHandler{
		createNoteUC: createNoteUC,
		updateNoteUC: updateNoteUC,
		deleteNoteUC: deleteNoteUC,
		getNoteUC:    getNoteUC,
		listNotesUC:  listNotesUC,
		logger:       log,
	}
}

// CreateNote handles POST /notes
func (h *NoteHandler) CreateNote(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing caller identity"))
		return
	}

	req, err := parseCreateNoteRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createNoteUC.Execute(c.Request.Context(), usecases.CreateNoteCommand{
		Caller:  caller,
		Content: req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Note created successfully")
}

// GetNote handles GET /notes/:id
func (h *NoteHandler) GetNote(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing caller identity"))
		return
	}

	noteID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getNoteUC.Execute(c.Request.Context(), usecases.GetNoteQuery{
		Caller: caller,
		NoteID: noteID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Note retrieved successfully", result)
}

// ListNotes handles GET /notes
func (h *NoteHandler) ListNotes(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing caller identity"))
		return
	}

	pagination := utils.ParsePagination(c)

	result, err := h.listNotesUC.Execute(c.Request.Context(), usecases.ListNotesQuery{
		Caller:  caller,
		Page:    pagination.Page,
		PerPage: pagination.PerPage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Notes, result.Total, result.Page, result.PerPage)
}

// UpdateNote handles PATCH /notes/:id
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing caller identity"))
		return
	}

	noteID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	req, err := parseUpdateNoteRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateNoteUC.Execute(c.Request.Context(), usecases.UpdateNoteCommand{
		Caller:  caller,
		NoteID:  noteID,
		Content: req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Note updated successfully", result)
}

// DeleteNote handles DELETE /notes/:id
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing caller identity"))
		return
	}

	noteID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteNoteUC.Execute(c.Request.Context(), usecases.DeleteNoteCommand{
		Caller: caller,
		NoteID: noteID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
