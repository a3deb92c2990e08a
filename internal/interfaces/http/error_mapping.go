package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/application/dto"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/application/usecase"
	domain "github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain"
)

// respondError traduce errores de dominio a respuestas HTTP. Las reglas de
// negocio violadas van con 409; la entrada malformada con 400; el resto es 500.
func respondError(c *fiber.Ctx, err error) error {
	var verr *usecase.TermsValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Code:    "VALIDATION",
			Message: verr.Error(),
			Errores: verr.Errores,
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotDeletable), errors.Is(err, domain.ErrOrderClosed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrHasInventory):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "HAS_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrHasPendingOrders):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "HAS_OPEN_ORDERS", Message: err.Error()})
	case errors.Is(err, domain.ErrSupplierInactive):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SUPPLIER_INACTIVE", Message: err.Error()})
	case errors.Is(err, domain.ErrSupplierNeedsTerms):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SUPPLIER_NEEDS_TERMS", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
