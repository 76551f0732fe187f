package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/internal/domain"
)

// writeDomainError traduce un error de dominio a HTTP:
// NotFound→404, Conflict→409, PreconditionFailed→400, PersistenceFailure→502.
func writeDomainError(c *fiber.Ctx, err error) error {
	var se *domain.StoreError
	if !errors.As(err, &se) {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	status := fiber.StatusInternalServerError
	switch se.Kind {
	case domain.KindNotFound:
		status = fiber.StatusNotFound
	case domain.KindConflict:
		status = fiber.StatusConflict
	case domain.KindPreconditionFailed:
		status = fiber.StatusBadRequest
	case domain.KindPersistenceFailure:
		status = fiber.StatusBadGateway
	}
	return c.Status(status).JSON(dto.ErrorResponse{
		Code:      se.Kind.String(),
		Message:   se.Reason,
		Operation: se.Op,
	})
}
