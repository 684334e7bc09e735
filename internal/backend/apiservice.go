package backend

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jo-hoe/aiexplorer/internal/dashboard"
	"github.com/jo-hoe/aiexplorer/internal/models"
	"github.com/jo-hoe/aiexplorer/internal/navigation"
	"github.com/jo-hoe/aiexplorer/internal/provider"
	"github.com/jo-hoe/aiexplorer/internal/workflow"

	"github.com/labstack/echo/v4"
)

// Core is what the API needs from the application core.
type Core interface {
	Searcher() provider.Searcher
	Generator() provider.Generator
	Repository() dashboard.Repository
}

type APIService struct {
	core Core
}

type SearchRequest struct {
	Query string `json:"query" validate:"required,notblank"`
}

type SearchResponse struct {
	Query   string                `json:"query"`
	Results []models.SearchResult `json:"results"`
	Total   int                   `json:"total"`
}

type ImageRequest struct {
	Prompt string `json:"prompt" validate:"required,notblank"`
	Model  string `json:"model" validate:"omitempty,oneof=flux stable-diffusion midjourney"`
}

func NewAPIService(core Core) *APIService {
	return &APIService{core: core}
}

func (s *APIService) SetRoutes(e *echo.Echo) {
	// Set probe route
	e.GET("/probe", func(c echo.Context) error {
		return c.String(http.StatusOK, "API Service is running")
	})

	api := e.Group("/api")
	api.POST("/search", s.searchHandler)
	api.POST("/images", s.generateHandler)
	api.GET("/dashboard", s.dashboardHandler)
	api.GET("/routes", s.routesHandler)
}

func (s *APIService) searchHandler(ctx echo.Context) error {
	var req SearchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	results, err := workflow.Search(ctx.Request().Context(), s.core.Searcher(), req.Query)
	if err != nil {
		return providerError(ctx, "searchHandler", err)
	}
	return ctx.JSON(http.StatusOK, SearchResponse{Query: req.Query, Results: results, Total: len(results)})
}

func (s *APIService) generateHandler(ctx echo.Context) error {
	var req ImageRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	if req.Model == "" {
		req.Model = string(models.DefaultModel)
	}

	image, err := workflow.Generate(ctx.Request().Context(), s.core.Generator(), req.Prompt, req.Model)
	if err != nil {
		return providerError(ctx, "generateHandler", err)
	}
	return ctx.JSON(http.StatusOK, image)
}

func (s *APIService) dashboardHandler(ctx echo.Context) error {
	tab, err := dashboard.ParseTab(ctx.QueryParam("tab"))
	if err != nil {
		slog.Warn("dashboardHandler: invalid tab", "status", http.StatusBadRequest, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	page, err := dashboard.Build(ctx.Request().Context(), s.core.Repository(), ctx.QueryParam("filter"), tab)
	if err != nil {
		slog.Error("dashboardHandler: failed to load records", "status", http.StatusInternalServerError, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load dashboard")
	}
	return ctx.JSON(http.StatusOK, page)
}

func (s *APIService) routesHandler(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, navigation.Routes())
}

func bindAndValidate(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return err
	}
	return ctx.Validate(req)
}

func providerError(ctx echo.Context, handler string, err error) error {
	switch {
	case errors.Is(err, workflow.ErrEmptyInput), errors.Is(err, models.ErrUnknownModel):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case ctx.Request().Context().Err() != nil:
		slog.Info(handler+": request cancelled", "error", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "request cancelled")
	default:
		slog.Error(handler+": provider failed", "status", http.StatusBadGateway, "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, "provider failed")
	}
}
