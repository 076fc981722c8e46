package note

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notedto "careline/internal/application/note/dto"
	"careline/internal/application/note/usecases"
	"careline/internal/domain/identity"
	"careline/internal/shared/constants"
	"careline/internal/shared/errors"
	"careline/internal/shared/logger"
)

type mockCreateNoteUC struct {
	gotCmd usecases.CreateNoteCommand
	result *notedto.NoteDTO
	err    error
}

func (m *mockCreateNoteUC) Execute(_ context.Context, cmd usecases.CreateNoteCommand) (*notedto.NoteDTO, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockUpdateNoteUC struct {
	gotCmd usecases.UpdateNoteCommand
	result *notedto.NoteDTO
	err    error
}

func (m *mockUpdateNoteUC) Execute(_ context.Context, cmd usecases.UpdateNoteCommand) (*notedto.NoteDTO, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockDeleteNoteUC struct {
	err error
}

func (m *mockDeleteNoteUC) Execute(_ context.Context, _ usecases.DeleteNoteCommand) error {
	return m.err
}

type mockGetNoteUC struct {
	result *notedto.NoteDTO
	err    error
}

func (m *mockGetNoteUC) Execute(_ context.Context, _ usecases.GetNoteQuery) (*notedto.NoteDTO, error) {
	return m.result, m.err
}

type mockListNotesUC struct {
	gotQuery usecases.ListNotesQuery
	result   *usecases.ListNotesResult
	err      error
}

func (m *mockListNotesUC) Execute(_ context.Context, query usecases.ListNotesQuery) (*usecases.ListNotesResult, error) {
	m.gotQuery = query
	return m.result, m.err
}

func injectCaller(caller identity.Caller) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyCaller, caller)
		c.Next()
	}
}

func newTestEngine(caller identity.Caller, register func(*gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	group := engine.Group("", injectCaller(caller))
	register(group)
	return engine
}

func newHandler(create *mockCreateNoteUC, update *mockUpdateNoteUC, del *mockDeleteNoteUC, get *mockGetNoteUC, list *mockListNotesUC) *NoteHandler {
	return NewNoteHandler(create, update, del, get, list, logger.NewLogger())
}

func jsonBody(t *testing.T, payload interface{}) *bytes.Buffer {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return bytes.NewBuffer(raw)
}

func TestNoteHandler_CreateNote(t *testing.T) {
	uc := &mockCreateNoteUC{result: &notedto.NoteDTO{ID: 1, CreatorID: 7, Content: "slept badly"}}
	handler := newHandler(uc, &mockUpdateNoteUC{}, &mockDeleteNoteUC{}, &mockGetNoteUC{}, &mockListNotesUC{})

	engine := newTestEngine(identity.Caller{ID: 7}, func(g *gin.RouterGroup) {
		g.POST("/notes", handler.CreateNote)
	})

	req := httptest.NewRequest(http.MethodPost, "/notes", jsonBody(t, map[string]string{"content": "slept badly"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "slept badly", uc.gotCmd.Content)
	assert.Equal(t, uint(7), uc.gotCmd.Caller.ID)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
}

func TestNoteHandler_CreateNoteMissingContent(t *testing.T) {
	handler := newHandler(&mockCreateNoteUC{}, &mockUpdateNoteUC{}, &mockDeleteNoteUC{}, &mockGetNoteUC{}, &mockListNotesUC{})

	engine := newTestEngine(identity.Caller{ID: 7}, func(g *gin.RouterGroup) {
		g.POST("/notes", handler.CreateNote)
	})

	req := httptest.NewRequest(http.MethodPost, "/notes", jsonBody(t, map[string]string{}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNoteHandler_UpdateNote(t *testing.T) {
	uc := &mockUpdateNoteUC{result: &notedto.NoteDTO{ID: 5, CreatorID: 7, Content: "feeling better"}}
	handler := newHandler(&mockCreateNoteUC{}, uc, &mockDeleteNoteUC{}, &mockGetNoteUC{}, &mockListNotesUC{})

	engine := newTestEngine(identity.Caller{ID: 7}, func(g *gin.RouterGroup) {
		g.PATCH("/notes/:id", handler.UpdateNote)
	})

	req := httptest.NewRequest(http.MethodPatch, "/notes/5", jsonBody(t, map[string]string{"content": "feeling better"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(5), uc.gotCmd.NoteID)
	require.NotNil(t, uc.gotCmd.Content)
	assert.Equal(t, "feeling better", *uc.gotCmd.Content)
}

func TestNoteHandler_UpdateNoteEmptyBody(t *testing.T) {
	uc := &mockUpdateNoteUC{}
	handler := newHandler(&mockCreateNoteUC{}, uc, &mockDeleteNoteUC{}, &mockGetNoteUC{}, &mockListNotesUC{})

	engine := newTestEngine(identity.Caller{ID: 7}, func(g *gin.RouterGroup) {
		g.PATCH("/notes/:id", handler.UpdateNote)
	})

	req := httptest.NewRequest(http.MethodPatch, "/notes/5", jsonBody(t, map[string]string{}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNoteHandler_ListNotesParsesQuery(t *testing.T) {
	uc := &mockListNotesUC{result: &usecases.ListNotesResult{Page: 2, PerPage: 5}}
	handler := newHandler(&mockCreateNoteUC{}, &mockUpdateNoteUC{}, &mockDeleteNoteUC{}, &mockGetNoteUC{}, uc)

	engine := newTestEngine(identity.Caller{ID: 7}, func(g *gin.RouterGroup) {
		g.GET("/notes", handler.ListNotes)
	})

	req := httptest.NewRequest(http.MethodGet, "/notes?page=2&perpage=5", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, uc.gotQuery.Page)
	assert.Equal(t, 5, uc.gotQuery.PerPage)
	assert.Equal(t, uint(7), uc.gotQuery.Caller.ID)
}

func TestNoteHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: errors.NewNotFoundError("Note not found."), wantStatus: http.StatusNotFound},
		{name: "forbidden", err: errors.NewForbiddenError("Access Denied"), wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newHandler(&mockCreateNoteUC{}, &mockUpdateNoteUC{}, &mockDeleteNoteUC{}, &mockGetNoteUC{err: tt.err}, &mockListNotesUC{})

			engine := newTestEngine(identity.Caller{ID: 1}, func(g *gin.RouterGroup) {
				g.GET("/notes/:id", handler.GetNote)
			})

			req := httptest.NewRequest(http.MethodGet, "/notes/5", nil)
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestNoteHandler_DeleteNote(t *testing.T) {
	handler := newHandler(&mockCreateNoteUC{}, &mockUpdateNoteUC{}, &mockDeleteNoteUC{}, &mockGetNoteUC{}, &mockListNotesUC{})

	engine := newTestEngine(identity.Caller{ID: 1}, func(g *gin.RouterGroup) {
		g.DELETE("/notes/:id", handler.DeleteNote)
	})

	req := httptest.NewRequest(http.MethodDelete, "/notes/5", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
