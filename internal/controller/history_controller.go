package controller

import (
	"bytes"
	"errors"
	"fmt"

	"ai-research-be/internal/dto"
	"ai-research-be/internal/entity"
	"ai-research-be/internal/pkg/serverutils"
	"ai-research-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHistoryController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	ExportPdf(ctx *fiber.Ctx) error
}

type historyController struct {
	history service.IHistoryService
	export  service.IExportService
}

func NewHistoryController(history service.IHistoryService, export service.IExportService) IHistoryController {
	return &historyController{
		history: history,
		export:  export,
	}
}

func (c *historyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/research/v1")
	h.Get("/history", c.Get)
	h.Get("/export/pdf", c.ExportPdf)
}

// Get serves history either for one exact session id or for every session
// matching a display name.
func (c *historyController) Get(ctx *fiber.Ctx) error {
	sessionId := ctx.Query("session_id")
	name := ctx.Query("name")

	if sessionId == "" && name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing session_id or name parameter")
	}

	if sessionId != "" {
		session, err := c.history.GetBySessionId(sessionId)
		if err != nil {
			return err
		}
		if session == nil {
			// An unknown session id yields an empty session rather than
			// an error.
			session = &entity.Session{History: []entity.HistoryEntry{}}
		}
		return ctx.JSON(serverutils.SuccessResponse("Success get session history", session))
	}

	sessions, err := c.history.GetByName(name)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[dto.HistoryResponse]("Success get history by name", sessions))
}

func (c *historyController) ExportPdf(ctx *fiber.Ctx) error {
	name := ctx.Query("name")
	if name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing name parameter")
	}

	var buf bytes.Buffer
	if err := c.export.ExportPDF(name, &buf); err != nil {
		if errors.Is(err, service.ErrNoHistory) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s_history.pdf"`, name))
	return ctx.Send(buf.Bytes())
}
