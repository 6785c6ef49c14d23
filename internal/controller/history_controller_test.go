package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-research-be/internal/dto"
	"ai-research-be/internal/entity"
	"ai-research-be/internal/pkg/serverutils"
	"ai-research-be/internal/service"
)

type stubHistoryService struct {
	sessions map[string]*entity.Session
}

func (s *stubHistoryService) GetBySessionId(sessionId string) (*entity.Session, error) {
	return s.sessions[sessionId], nil
}

func (s *stubHistoryService) GetByName(name string) (dto.HistoryResponse, error) {
	out := make(dto.HistoryResponse)
	for id, session := range s.sessions {
		if session.UserName == name {
			out[id] = session
		}
	}
	return out, nil
}

type stubExportService struct {
	payload []byte
	err     error
}

func (s *stubExportService) ExportPDF(name string, w io.Writer) error {
	if s.err != nil {
		return s.err
	}
	_, err := w.Write(s.payload)
	return err
}

func newHistoryApp(history service.IHistoryService, export service.IExportService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewHistoryController(history, export).RegisterRoutes(app.Group("/api"))
	return app
}

func getPath(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func seededHistory() *stubHistoryService {
	return &stubHistoryService{sessions: map[string]*entity.Session{
		"s1": {
			UserName: "alice",
			History: []entity.HistoryEntry{{
				Query:   "first question",
				Docs:    []entity.DocumentRef{},
				Summary: "first summary",
				Mode:    "chat",
			}},
			LastSummary: "first summary",
		},
	}}
}

func TestHistoryBySessionId(t *testing.T) {
	app := newHistoryApp(seededHistory(), &stubExportService{})

	resp := getPath(t, app, "/api/research/v1/history?session_id=s1")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope serverutils.Response[entity.Session]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "alice", envelope.Data.UserName)
	require.Len(t, envelope.Data.History, 1)
	assert.Equal(t, "first question", envelope.Data.History[0].Query)
}

func TestHistoryUnknownSessionIdIsEmptyNotError(t *testing.T) {
	app := newHistoryApp(seededHistory(), &stubExportService{})

	resp := getPath(t, app, "/api/research/v1/history?session_id=nobody")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope serverutils.Response[entity.Session]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Empty(t, envelope.Data.History)
	assert.Empty(t, envelope.Data.UserName)
}

func TestHistoryByName(t *testing.T) {
	app := newHistoryApp(seededHistory(), &stubExportService{})

	resp := getPath(t, app, "/api/research/v1/history?name=alice")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope serverutils.Response[dto.HistoryResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Contains(t, envelope.Data, "s1")
	assert.Equal(t, "alice", envelope.Data["s1"].UserName)
}

func TestHistoryMissingParams(t *testing.T) {
	app := newHistoryApp(seededHistory(), &stubExportService{})

	resp := getPath(t, app, "/api/research/v1/history")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestExportPdfHappyPath(t *testing.T) {
	payload := []byte("%PDF-1.4 fake")
	app := newHistoryApp(seededHistory(), &stubExportService{payload: payload})

	resp := getPath(t, app, "/api/research/v1/export/pdf?name=alice")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="alice_history.pdf"`, resp.Header.Get(fiber.HeaderContentDisposition))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, payload, body)
}

func TestExportPdfMissingName(t *testing.T) {
	app := newHistoryApp(seededHistory(), &stubExportService{})

	resp := getPath(t, app, "/api/research/v1/export/pdf")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestExportPdfNoHistoryIs404(t *testing.T) {
	app := newHistoryApp(seededHistory(), &stubExportService{err: service.ErrNoHistory})

	resp := getPath(t, app, "/api/research/v1/export/pdf?name=nobody")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
