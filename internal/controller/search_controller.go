package controller

import (
	"errors"

	"pathfinder-be/internal/dto"
	"pathfinder-be/internal/pkg/serverutils"
	"pathfinder-be/internal/service"
	"pathfinder-be/pkg/datastore"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router, ready fiber.Handler)
	Search(ctx *fiber.Ctx) error
	QuickSearch(ctx *fiber.Ctx) error
}

type searchController struct {
	service  service.ISearchService
	validate *validator.Validate
}

func NewSearchController(service service.ISearchService) ISearchController {
	return &searchController{
		service:  service,
		validate: validator.New(),
	}
}

func (c *searchController) RegisterRoutes(r fiber.Router, ready fiber.Handler) {
	h := r.Group("/search", ready)
	h.Get("/", c.Search)
	h.Get("/quick", c.QuickSearch)
}

// Search handles GET /api/search?q=term&limit=n
func (c *searchController) Search(ctx *fiber.Ctx) error {
	req, err := c.parse(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Search(ctx.UserContext(), req.Query, req.Limit)
	if err != nil {
		return searchError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Search results", res))
}

// QuickSearch handles GET /api/search/quick?q=term
func (c *searchController) QuickSearch(ctx *fiber.Ctx) error {
	req, err := c.parse(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.QuickSearch(ctx.UserContext(), req.Query)
	if err != nil {
		return searchError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Search results", res))
}

func (c *searchController) parse(ctx *fiber.Ctx) (*dto.SearchRequest, error) {
	var req dto.SearchRequest
	if err := ctx.QueryParser(&req); err != nil {
		return nil, err
	}
	if err := c.validate.Struct(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

func searchError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, datastore.ErrNotReady) {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(serverutils.ErrorResponse(503, err.Error()))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
}
