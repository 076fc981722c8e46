package note

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"careline/internal/shared/errors"
	"careline/internal/shared/utils"
)

// Notes carry no attachments, so requests are plain JSON.

type CreateNoteRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}

type UpdateNoteRequest struct {
	Content *string `json:"content" validate:"omitempty,max=5000"`
}

func parseCreateNoteRequest(c *gin.Context) (*CreateNoteRequest, error) {
	req := &CreateNoteRequest{}
	if err := c.ShouldBindJSON(req); err != nil {
		return nil, errors.NewValidationError("invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	return req, nil
}

func parseUpdateNoteRequest(c *gin.Context) (*UpdateNoteRequest, error) {
	req := &UpdateNoteRequest{}
	if err := c.ShouldBindJSON(req); err != nil {
		return nil, errors.NewValidationError("invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if req.Content == nil {
		return nil, errors.NewValidationError("nothing to update")
	}
	return req, nil
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + name)
	}
	return uint(id), nil
}
