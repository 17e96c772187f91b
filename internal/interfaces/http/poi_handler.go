package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nagadco/tasnifoh/internal/application/dto"
	"github.com/nagadco/tasnifoh/internal/application/usecase"
)

// POIHandler serves the read-only POI dataset.
type POIHandler struct {
	uc *usecase.POIUseCase
}

// NewPOIHandler builds the handler.
func NewPOIHandler(uc *usecase.POIUseCase) *POIHandler {
	return &POIHandler{uc: uc}
}

// List godoc
// @Summary      List points of interest
// @Tags         pois
// @Produce      json
// @Success      200  {object}  dto.POIListResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/pois [get]
func (h *POIHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.POIListResponse{Items: items, Total: len(items)})
}
