package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/arquetipo/clientes-api/internal/application/dto"
	"github.com/arquetipo/clientes-api/internal/domain"
	"github.com/arquetipo/clientes-api/internal/infrastructure/operations"
)

// respondError traduce errores de casos de uso al código HTTP y cuerpo de error.
func respondError(c *fiber.Ctx, err error) error {
	status, code := statusFor(err)
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

// authError como respondError pero con un code propio del middleware (MISSING_TOKEN, ...).
func authError(c *fiber.Ctx, code string, err error) error {
	status, _ := statusFor(err)
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, operations.ErrUpstream):
		return fiber.StatusBadGateway, "UPSTREAM_ERROR"
	case errors.Is(err, operations.ErrMalformedPayload):
		return fiber.StatusBadGateway, "UPSTREAM_PAYLOAD"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fiber.StatusGatewayTimeout, "UPSTREAM_TIMEOUT"
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo de la petición inválido"})
}
