package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nagadco/tasnifoh/internal/application/dto"
	"github.com/nagadco/tasnifoh/internal/application/usecase"
	"github.com/nagadco/tasnifoh/internal/domain/entity"
	"github.com/nagadco/tasnifoh/internal/domain/matching"
)

// SuggestHandler serves ranked category suggestions for store names.
type SuggestHandler struct {
	uc *usecase.SuggestUseCase
}

// NewSuggestHandler builds the handler.
func NewSuggestHandler(uc *usecase.SuggestUseCase) *SuggestHandler {
	return &SuggestHandler{uc: uc}
}

// Suggest godoc
// @Summary      Rank category suggestions for a store name
// @Tags         suggest
// @Produce      json
// @Param        q      query  string  true   "Free-text store name"
// @Param        limit  query  int     false  "Max results"  default(5)
// @Success      200  {object}  dto.SuggestResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/categories/suggest [get]
func (h *SuggestHandler) Suggest(c *fiber.Ctx) error {
	query := c.Query("q")
	limit := c.QueryInt("limit", matching.DefaultMaxResults)
	matches, err := h.uc.Suggest(query, limit)
	if err != nil {
		return writeDomainError(c, err)
	}
	if matches == nil {
		matches = []entity.CategoryMatch{} // never null in JSON
	}
	return c.JSON(dto.SuggestResponse{Query: query, Matches: matches})
}

// Best godoc
// @Summary      Top-1 category suggestion
// @Tags         suggest
// @Produce      json
// @Param        q  query  string  true  "Free-text store name"
// @Success      200  {object}  entity.CategoryMatch
// @Success      204  "No qualifying category"
// @Router       /api/categories/best [get]
func (h *SuggestHandler) Best(c *fiber.Ctx) error {
	best, err := h.uc.Best(c.Query("q"))
	if err != nil {
		return writeDomainError(c, err)
	}
	if best == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(best)
}
