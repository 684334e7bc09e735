package frontend

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jo-hoe/aiexplorer/internal/core"
	"github.com/jo-hoe/aiexplorer/internal/dashboard"
	"github.com/jo-hoe/aiexplorer/internal/intent"
	"github.com/jo-hoe/aiexplorer/internal/models"
	"github.com/jo-hoe/aiexplorer/internal/navigation"
	"github.com/jo-hoe/aiexplorer/internal/provider"
	"github.com/jo-hoe/aiexplorer/internal/session"
	"github.com/jo-hoe/aiexplorer/internal/workflow"
	"github.com/labstack/echo/v4"
)

const (
	mimePNG    = "image/png"
	mimeSVG    = "image/svg+xml"
	sessionKey = "session"
)

type FrontendService struct {
	coreService *core.CoreService
	config      *core.ServiceConfig
}

type pageData struct {
	Title   string
	Nav     []navigation.Item
	Content any
}

type tabItem struct {
	Tab    dashboard.Tab
	Label  string
	Active bool
}

type dashboardData struct {
	Page dashboard.Page
	Tabs []tabItem
}

type imageGenData struct {
	Models   []models.Model
	Selected models.Model
	State    workflow.ImageGenState
}

func NewFrontendService(config *core.ServiceConfig, coreService *core.CoreService) *FrontendService {
	return &FrontendService{
		coreService: coreService,
		config:      config,
	}
}

func (service *FrontendService) SetRoutes(e *echo.Echo) {
	e.Renderer = NewTemplate()

	withSession := service.sessionMiddleware
	e.GET(navigation.Landing.Path(), service.landingHandler)
	e.GET(navigation.Dashboard.Path(), service.dashboardHandler, withSession)
	e.GET(navigation.Search.Path(), service.searchHandler, withSession)
	e.GET(navigation.ImageGen.Path(), service.imageGenHandler, withSession)
	e.GET(navigation.Login.Path(), service.staticPageHandler(navigation.Login, "login", "Sign In"))
	e.GET(navigation.Register.Path(), service.staticPageHandler(navigation.Register, "register", "Get Started"))

	htmx := e.Group("/htmx", service.sessionMiddleware)
	htmx.GET("/dashboard", service.htmxDashboardHandler)
	htmx.POST("/search", service.htmxSearchHandler)
	htmx.GET("/search/results", service.htmxSearchResultsHandler)
	htmx.POST("/search/save", service.htmxSaveAllResultsHandler)
	htmx.POST("/search/save/:index", service.htmxSaveResultHandler)
	htmx.POST("/images", service.htmxGenerateHandler)
	htmx.GET("/images", service.htmxListImagesHandler)
	htmx.GET("/image/:id/thumb", service.htmxThumbnailHandler)
	htmx.POST("/image/:id/save", service.htmxImageIntentHandler(intent.ActionSave))
	htmx.POST("/image/:id/download", service.htmxImageIntentHandler(intent.ActionDownload))

	e.GET(provider.PlaceholderImageURL, service.assetHandler("views/placeholder.svg"))
	e.GET("/icon.svg", service.assetHandler("views/icon.svg"))
}

// sessionMiddleware attaches the caller's session, issuing a cookie when the
// browser has none or presents one that has expired.
func (service *FrontendService) sessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		name := service.config.Session.CookieName

		var id string
		if cookie, err := ctx.Cookie(name); err == nil {
			id = cookie.Value
		}
		sess := service.coreService.Sessions().Open(id)
		if sess.ID != id {
			ctx.SetCookie(&http.Cookie{
				Name:     name,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx.Set(sessionKey, sess)
		return next(ctx)
	}
}

func currentSession(ctx echo.Context) *session.Session {
	return ctx.Get(sessionKey).(*session.Session)
}

func (service *FrontendService) render(ctx echo.Context, route navigation.Route, name, title string, content any) error {
	return ctx.Render(http.StatusOK, name, pageData{
		Title:   title,
		Nav:     navigation.Items(route.Path()),
		Content: content,
	})
}

func (service *FrontendService) landingHandler(ctx echo.Context) error {
	return service.render(ctx, navigation.Landing, "landing", "Home", nil)
}

func (service *FrontendService) staticPageHandler(route navigation.Route, name, title string) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		return service.render(ctx, route, name, title, nil)
	}
}

func (service *FrontendService) dashboardHandler(ctx echo.Context) error {
	view := currentSession(ctx).MountDashboard()
	data, err := service.dashboardData(ctx, view)
	if err != nil {
		return err
	}
	return service.render(ctx, navigation.Dashboard, "dashboard", "Dashboard", data)
}

func (service *FrontendService) searchHandler(ctx echo.Context) error {
	view := currentSession(ctx).MountSearch()
	return service.render(ctx, navigation.Search, "search", "Web Search", view.Snapshot())
}

func (service *FrontendService) imageGenHandler(ctx echo.Context) error {
	view := currentSession(ctx).MountImages()
	state := view.Snapshot()
	return service.render(ctx, navigation.ImageGen, "imagegen", "Image Generation", imageGenData{
		Models:   models.Models(),
		Selected: state.Model,
		State:    state,
	})
}

func (service *FrontendService) htmxDashboardHandler(ctx echo.Context) error {
	view := currentSession(ctx).Dashboard()

	params := ctx.QueryParams()
	if params.Has("filter") {
		view.SetFilter(params.Get("filter"))
	}
	if params.Has("tab") {
		tab, err := dashboard.ParseTab(params.Get("tab"))
		if err != nil {
			slog.Warn("htmxDashboardHandler: invalid tab", "status", http.StatusBadRequest, "error", err)
			return ctx.String(http.StatusBadRequest, "Invalid tab")
		}
		view.SetTab(tab)
	}

	data, err := service.dashboardData(ctx, view)
	if err != nil {
		return err
	}
	service.setNoCache(ctx)
	return ctx.Render(http.StatusOK, "dashboard-content", data)
}

func (service *FrontendService) dashboardData(ctx echo.Context, view *dashboard.View) (dashboardData, error) {
	page, err := view.Render(ctx.Request().Context())
	if err != nil {
		slog.Error("dashboard: failed to load records", "status", http.StatusInternalServerError, "error", err)
		return dashboardData{}, echo.NewHTTPError(http.StatusInternalServerError, "Failed to load dashboard")
	}

	tabs := make([]tabItem, 0, len(dashboard.Tabs()))
	for _, t := range dashboard.Tabs() {
		tabs = append(tabs, tabItem{Tab: t, Label: t.Label(), Active: t == page.Tab})
	}
	return dashboardData{Page: page, Tabs: tabs}, nil
}

func (service *FrontendService) htmxSearchHandler(ctx echo.Context) error {
	view := currentSession(ctx).Search()
	if err := view.Submit(ctx.FormValue("query")); err != nil && !errors.Is(err, workflow.ErrEmptyInput) {
		slog.Error("htmxSearchHandler: failed to submit search", "status", http.StatusConflict, "error", err)
		return ctx.String(http.StatusConflict, "Search page is no longer active")
	}
	return service.renderSearchResults(ctx, view)
}

func (service *FrontendService) htmxSearchResultsHandler(ctx echo.Context) error {
	return service.renderSearchResults(ctx, currentSession(ctx).Search())
}

func (service *FrontendService) renderSearchResults(ctx echo.Context, view *workflow.SearchView) error {
	service.setNoCache(ctx)
	return ctx.Render(http.StatusOK, "search-results", view.Snapshot())
}

func (service *FrontendService) htmxSaveResultHandler(ctx echo.Context) error {
	sess := currentSession(ctx)
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		slog.Warn("htmxSaveResultHandler: invalid index", "status", http.StatusBadRequest, "index", ctx.Param("index"))
		return ctx.String(http.StatusBadRequest, "Invalid result index")
	}
	result, ok := sess.Search().Result(index)
	if !ok {
		slog.Warn("htmxSaveResultHandler: result not found", "status", http.StatusNotFound, "index", index)
		return ctx.String(http.StatusNotFound, "Result not found")
	}
	return service.recordIntent(ctx, intent.ActionSave, intent.KindSearchResult, sess.ID, result)
}

func (service *FrontendService) htmxSaveAllResultsHandler(ctx echo.Context) error {
	sess := currentSession(ctx)
	results := sess.Search().Snapshot().Results
	if len(results) == 0 {
		return ctx.NoContent(http.StatusNoContent)
	}
	return service.recordIntent(ctx, intent.ActionSave, intent.KindSearchResult, sess.ID, results)
}

func (service *FrontendService) htmxGenerateHandler(ctx echo.Context) error {
	view := currentSession(ctx).Images()
	err := view.Submit(ctx.FormValue("prompt"), ctx.FormValue("model"))
	switch {
	case err == nil, errors.Is(err, workflow.ErrEmptyInput):
	case errors.Is(err, models.ErrUnknownModel):
		slog.Warn("htmxGenerateHandler: unknown model", "status", http.StatusBadRequest, "error", err)
		return ctx.String(http.StatusBadRequest, "Unknown model")
	default:
		slog.Error("htmxGenerateHandler: failed to submit generation", "status", http.StatusConflict, "error", err)
		return ctx.String(http.StatusConflict, "Image page is no longer active")
	}
	return service.renderImageList(ctx, view)
}

func (service *FrontendService) htmxListImagesHandler(ctx echo.Context) error {
	return service.renderImageList(ctx, currentSession(ctx).Images())
}

func (service *FrontendService) renderImageList(ctx echo.Context, view *workflow.ImageGenView) error {
	service.setNoCache(ctx)
	return ctx.Render(http.StatusOK, "image-list", view.Snapshot())
}

func (service *FrontendService) htmxThumbnailHandler(ctx echo.Context) error {
	id := ctx.Param("id")
	image, ok := currentSession(ctx).Images().Image(id)
	if !ok {
		slog.Warn("htmxThumbnailHandler: image not available", "status", http.StatusNotFound, "image_id", id)
		return ctx.String(http.StatusNotFound, "Image not available")
	}

	source, err := localAsset(image.URL)
	if err != nil {
		slog.Warn("htmxThumbnailHandler: image source not local",
			"status", http.StatusNotFound, "image_id", id, "url", image.URL, "error", err)
		return ctx.String(http.StatusNotFound, "Image not available")
	}
	thumbnail, err := service.coreService.Thumbnail(source)
	if err != nil || len(thumbnail) == 0 {
		slog.Warn("htmxThumbnailHandler: thumbnail not available",
			"status", http.StatusNotFound, "image_id", id, "error", err)
		return ctx.String(http.StatusNotFound, "Thumbnail not available")
	}

	service.setNoCache(ctx)
	return ctx.Blob(http.StatusOK, mimePNG, thumbnail)
}

func (service *FrontendService) htmxImageIntentHandler(action intent.Action) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		sess := currentSession(ctx)
		id := ctx.Param("id")
		image, ok := sess.Images().Image(id)
		if !ok {
			slog.Warn("htmxImageIntentHandler: image not found", "status", http.StatusNotFound, "image_id", id, "action", action)
			return ctx.String(http.StatusNotFound, "Image not found")
		}
		return service.recordIntent(ctx, action, intent.KindImage, sess.ID, image)
	}
}

func (service *FrontendService) recordIntent(ctx echo.Context, action intent.Action, kind intent.Kind, sessionID string, record any) error {
	if err := service.coreService.RecordIntent(ctx.Request().Context(), action, kind, sessionID, record); err != nil {
		slog.Error("recordIntent: failed to record intent",
			"status", http.StatusInternalServerError, "action", action, "kind", kind, "error", err)
		return ctx.String(http.StatusInternalServerError, "Failed to record request")
	}
	return ctx.NoContent(http.StatusNoContent)
}

var errNotLocal = errors.New("not a local asset")

// localAsset resolves the URLs the generator hands out to embedded files.
func localAsset(url string) ([]byte, error) {
	if url != provider.PlaceholderImageURL {
		return nil, errNotLocal
	}
	return assetsFS.ReadFile("views/placeholder.svg")
}

func (service *FrontendService) assetHandler(path string) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		data, err := assetsFS.ReadFile(path)
		if err != nil {
			slog.Error("assetHandler: failed to read asset", "status", http.StatusInternalServerError, "path", path, "error", err)
			return ctx.String(http.StatusInternalServerError, "Failed to load asset")
		}
		// Cache for 7 days
		ctx.Response().Header().Set("Cache-Control", "public, max-age=604800, immutable")
		return ctx.Blob(http.StatusOK, mimeSVG, data)
	}
}

func (service *FrontendService) setNoCache(ctx echo.Context) {
	ctx.Response().Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	ctx.Response().Header().Set("Pragma", "no-cache")
	ctx.Response().Header().Set("Expires", "0")
}
