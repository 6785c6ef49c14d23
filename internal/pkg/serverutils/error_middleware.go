package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"ai-research-be/pkg/llm"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors bubbling out of controllers into
// the JSON error envelope. Validation failures become 400, LLM upstream
// failures 502, missing credentials 500, explicit fiber errors keep their
// status.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			return ctx.Status(fiber.StatusBadRequest).
				JSON(NewErrorResponse(fiber.StatusBadRequest, validationMessage(vErrs)))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).
				JSON(NewErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		var upstream *llm.UpstreamError
		if errors.As(err, &upstream) {
			return ctx.Status(fiber.StatusBadGateway).
				JSON(NewErrorResponse(fiber.StatusBadGateway, "language model call failed"))
		}

		if errors.Is(err, llm.ErrMissingAPIKey) {
			return ctx.Status(fiber.StatusInternalServerError).
				JSON(NewErrorResponse(fiber.StatusInternalServerError, "language model credential not configured"))
		}

		return ctx.Status(fiber.StatusInternalServerError).
			JSON(NewErrorResponse(fiber.StatusInternalServerError, "internal server error"))
	}
}

func validationMessage(vErrs validator.ValidationErrors) string {
	fields := make([]string, len(vErrs))
	for i, fe := range vErrs {
		fields[i] = fmt.Sprintf("%s (%s)", strings.ToLower(fe.Field()), fe.Tag())
	}
	return "invalid request: " + strings.Join(fields, ", ")
}
