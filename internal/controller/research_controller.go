package controller

import (
	"ai-research-be/internal/constant"
	"ai-research-be/internal/dto"
	"ai-research-be/internal/pkg/serverutils"
	"ai-research-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IResearchController interface {
	RegisterRoutes(r fiber.Router)
	Run(ctx *fiber.Ctx) error
}

type researchController struct {
	service service.IResearchService
}

func NewResearchController(service service.IResearchService) IResearchController {
	return &researchController{service: service}
}

func (c *researchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/research/v1")
	h.Post("/run", c.Run)
}

func (c *researchController) Run(ctx *fiber.Ctx) error {
	var req dto.RunRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	// Session id and user name default to each other; an anonymous call
	// lands in a shared default session.
	if req.SessionId == "" {
		req.SessionId = req.UserName
	}
	if req.SessionId == "" {
		req.SessionId = constant.DefaultSessionId
	}
	if req.UserName == "" {
		req.UserName = req.SessionId
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Run(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success run research query", res))
}
