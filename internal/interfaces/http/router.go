package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nagadco/tasnifoh/internal/application/usecase"
)

// RouterDeps holds the router's dependencies.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	SuggestUC  *usecase.SuggestUseCase
	POIUC      *usecase.POIUseCase
	APIToken   string
}

// Router registers the API routes. Reads are public; mutations are
// gated by the shared-secret token middleware.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	suggestHandler := NewSuggestHandler(deps.SuggestUC)

	// Static paths before the :id parameter.
	categories.Get("/suggest", suggestHandler.Suggest)
	categories.Get("/best", suggestHandler.Best)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)

	gated := TokenMiddleware(deps.APIToken)
	categories.Post("/", gated, categoryHandler.Create)
	categories.Put("/:id", gated, categoryHandler.Update)
	categories.Delete("/:id", gated, categoryHandler.Delete)
	categories.Post("/:id/keywords", gated, categoryHandler.AddKeyword)

	pois := api.Group("/pois")
	poiHandler := NewPOIHandler(deps.POIUC)
	pois.Get("/", poiHandler.List)
}
