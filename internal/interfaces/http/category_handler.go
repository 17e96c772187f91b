package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nagadco/tasnifoh/internal/application/dto"
	"github.com/nagadco/tasnifoh/internal/application/usecase"
)

// CategoryHandler serves taxonomy browse and maintenance endpoints.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler builds the handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Param        search  query  string  false  "Unscored substring filter over Arabic name and keywords"
// @Success      200  {object}  dto.CategoryListResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Query("search"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.CategoryListResponse{Items: items, Total: len(items)})
}

// GetByID godoc
// @Summary      Get one category
// @Tags         categories
// @Produce      json
// @Param        id   path  int  true  "Category id"
// @Success      200  {object}  entity.Category
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "المعرف مطلوب"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Create a category
// @Tags         categories
// @Security     APIToken
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "New category"
// @Success      201   {object}  entity.Category
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "صيغة الطلب غير صحيحة"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Update a category (partial)
// @Tags         categories
// @Security     APIToken
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "Category id"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Fields to change"
// @Success      200   {object}  entity.Category
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "المعرف مطلوب"})
	}
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "صيغة الطلب غير صحيحة"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a category
// @Tags         categories
// @Security     APIToken
// @Produce      json
// @Param        id   path  int  true  "Category id"
// @Success      200  {object}  entity.Category
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "المعرف مطلوب"})
	}
	out, err := h.uc.Delete(id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// AddKeyword godoc
// @Summary      Append search keywords to a category
// @Tags         categories
// @Security     APIToken
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "Category id"
// @Param        body  body  dto.AddKeywordRequest  true  "Keywords (at least one language)"
// @Success      200   {object}  entity.Category
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/keywords [post]
func (h *CategoryHandler) AddKeyword(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "المعرف مطلوب"})
	}
	var in dto.AddKeywordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "صيغة الطلب غير صحيحة"})
	}
	out, err := h.uc.AddKeyword(id, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}
