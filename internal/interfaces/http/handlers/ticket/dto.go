package ticket

import (
	stderrors "errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"careline/internal/application/ticket/usecases"
	"careline/internal/shared/errors"
	"careline/internal/shared/utils"
)

// Requests arrive as multipart/form-data so a description and an attachment
// can travel together. The attachment form field is optional.

const attachmentField = "attachment"

type CreateTicketRequest struct {
	Description string `json:"description" validate:"required,max=5000"`
	Attachment  *multipart.FileHeader
}

type UpdateTicketRequest struct {
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Attachment  *multipart.FileHeader
}

type ListTicketsRequest struct {
	Scope   usecases.ListScope
	Page    int
	PerPage int
}

func parseCreateTicketRequest(c *gin.Context) (*CreateTicketRequest, error) {
	req := &CreateTicketRequest{Description: c.PostForm("description")}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	file, err := formFile(c)
	if err != nil {
		return nil, err
	}
	req.Attachment = file

	return req, nil
}

func parseUpdateTicketRequest(c *gin.Context) (*UpdateTicketRequest, error) {
	req := &UpdateTicketRequest{}

	if description, ok := c.GetPostForm("description"); ok {
		req.Description = &description
	}

	file, err := formFile(c)
	if err != nil {
		return nil, err
	}
	req.Attachment = file

	if req.Description == nil && req.Attachment == nil {
		return nil, errors.NewValidationError("nothing to update")
	}

	return req, nil
}

func parseListTicketsRequest(c *gin.Context) *ListTicketsRequest {
	pagination := utils.ParsePagination(c)
	scope := usecases.ListScope(c.DefaultQuery("scope", string(usecases.ScopeOwn)))

	return &ListTicketsRequest{
		Scope:   scope,
		Page:    pagination.Page,
		PerPage: pagination.PerPage,
	}
}

// formFile reads the optional attachment field. A missing file is not an
// error; any other multipart failure is.
func formFile(c *gin.Context) (*multipart.FileHeader, error) {
	file, err := c.FormFile(attachmentField)
	if err != nil {
		if stderrors.Is(err, http.ErrMissingFile) || stderrors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, errors.NewValidationError("invalid attachment upload")
	}
	return file, nil
}

// toUpload opens the multipart file for streaming into the file store.
func toUpload(file *multipart.FileHeader) (*usecases.AttachmentUpload, func(), error) {
	if file == nil {
		return nil, func() {}, nil
	}

	f, err := file.Open()
	if err != nil {
		return nil, nil, errors.NewValidationError("failed to read attachment upload")
	}

	upload := &usecases.AttachmentUpload{
		Filename: file.Filename,
		Content:  f,
		Size:     file.Size,
	}
	return upload, func() { f.Close() }, nil
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + name)
	}
	return uint(id), nil
}
