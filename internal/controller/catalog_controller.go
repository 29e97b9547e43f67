package controller

import (
	"errors"
	"net/url"

	"pathfinder-be/internal/pkg/serverutils"
	"pathfinder-be/internal/service"
	"pathfinder-be/pkg/datastore"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router, ready fiber.Handler)
	GetStatus(ctx *fiber.Ctx) error
	GetStreams(ctx *fiber.Ctx) error
	GetStream(ctx *fiber.Ctx) error
	GetRecommendations(ctx *fiber.Ctx) error
	GetStreamJobs(ctx *fiber.Ctx) error
	GetStreamExams(ctx *fiber.Ctx) error
	GetExamCategories(ctx *fiber.Ctx) error
	GetExamsByCategory(ctx *fiber.Ctx) error
	GetExamsByLevel(ctx *fiber.Ctx) error
	GetPreparationResources(ctx *fiber.Ctx) error
	GetTrendingCareers(ctx *fiber.Ctx) error
	GetStats(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

// RegisterRoutes mounts the catalog routes. Everything except /status sits
// behind the ready middleware.
func (c *catalogController) RegisterRoutes(r fiber.Router, ready fiber.Handler) {
	r.Get("/status", c.GetStatus)

	streams := r.Group("/streams", ready)
	streams.Get("/", c.GetStreams)
	streams.Get("/:id", c.GetStream)
	streams.Get("/:id/recommendations", c.GetRecommendations)
	streams.Get("/:id/jobs", c.GetStreamJobs)
	streams.Get("/:id/exams", c.GetStreamExams)

	exams := r.Group("/exams", ready)
	exams.Get("/categories", c.GetExamCategories)
	exams.Get("/categories/:name", c.GetExamsByCategory)
	exams.Get("/levels/:level", c.GetExamsByLevel)
	exams.Get("/resources", c.GetPreparationResources)

	r.Get("/careers/trending", ready, c.GetTrendingCareers)
	r.Get("/stats", ready, c.GetStats)
}

func (c *catalogController) GetStatus(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Status", c.service.Status()))
}

func (c *catalogController) GetStreams(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Streams", c.service.GetAllStreams()))
}

func (c *catalogController) GetStream(ctx *fiber.Ctx) error {
	stream, err := c.service.GetStream(ctx.Params("id"))
	if err != nil {
		return notFoundOr500(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Stream", stream))
}

func (c *catalogController) GetRecommendations(ctx *fiber.Ctx) error {
	rec, err := c.service.GetRecommendations(ctx.Params("id"))
	if err != nil {
		return notFoundOr500(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Career recommendations", rec))
}

func (c *catalogController) GetStreamJobs(ctx *fiber.Ctx) error {
	jobs, err := c.service.GetJobsByStream(ctx.Params("id"))
	if err != nil {
		return notFoundOr500(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Job opportunities", jobs))
}

func (c *catalogController) GetStreamExams(ctx *fiber.Ctx) error {
	exams, err := c.service.GetExamsByStream(ctx.Params("id"))
	if err != nil {
		return notFoundOr500(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Government exams", exams))
}

func (c *catalogController) GetExamCategories(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Exam categories", c.service.GetExamCategories()))
}

func (c *catalogController) GetExamsByCategory(ctx *fiber.Ctx) error {
	name, err := url.PathUnescape(ctx.Params("name"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid category name"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Exams", c.service.GetExamsByCategory(name)))
}

func (c *catalogController) GetExamsByLevel(ctx *fiber.Ctx) error {
	level, err := url.PathUnescape(ctx.Params("level"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid exam level"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Exams", c.service.GetExamsByLevel(level)))
}

func (c *catalogController) GetPreparationResources(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Preparation resources", c.service.GetPreparationResources()))
}

func (c *catalogController) GetTrendingCareers(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Trending careers", c.service.GetTrendingCareers()))
}

func (c *catalogController) GetStats(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Stats", c.service.GetStats()))
}

func notFoundOr500(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, datastore.ErrNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
}
