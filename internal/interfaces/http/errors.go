package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nagadco/tasnifoh/internal/application/dto"
	"github.com/nagadco/tasnifoh/internal/domain"
)

// writeDomainError maps tagged domain errors to HTTP statuses and the
// Arabic messages the admin UI shows verbatim.
func writeDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "التصنيف غير موجود"})
	case errors.Is(err, domain.ErrDuplicateName):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "DUPLICATE_NAME", Message: "اسم التصنيف العربي مكرر"})
	case errors.Is(err, domain.ErrHasChildren):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "HAS_CHILDREN", Message: "لا يمكن حذف تصنيف له تصنيفات فرعية"})
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "مدخلات غير صالحة"})
	case errors.Is(err, domain.ErrStorageUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "STORAGE_UNAVAILABLE", Message: "تعذر الوصول إلى بيانات التصنيفات"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error()})
	}
}
