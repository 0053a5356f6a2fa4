// Package geoweb is a structured content publishing and rendering service
// built with Go, Echo, and templ. Articles arrive as block-structured JSON
// through an authenticated webhook, are persisted in SQLite, and are
// served as rendered pages enriched with Schema.org structured data for
// SEO/GEO consumption.
package geoweb

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// App is the central application. It wires together the store, the read
// cache, the publish webhook, the public pages, and the admin surface.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *ArticleCache

	loginLimiter   *AttemptLimiter
	webhookLimiter *AttemptLimiter
}

// New creates a new App with the given configuration.
func New(cfg SiteConfig) *App {
	cfg.setDefaults()
	return &App{
		Config: cfg,
		Echo:   echo.New(),
	}
}

// Start initializes the database, cache, middleware, and routes, then
// starts the server.
func (a *App) Start() error {
	if a.Config.APISecretKey == "" {
		return fmt.Errorf("geoweb: APISecretKey is required")
	}
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("geoweb: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("geoweb: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("geoweb: init store: %w", err)
	}
	a.Store = store
	a.Cache = NewArticleCache(store, a.Config.CacheTTL)
	a.loginLimiter = NewAttemptLimiter(5, time.Minute)
	a.webhookLimiter = NewAttemptLimiter(10, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// User's static assets
	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	// Public routes
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/blog/", a.handleBlogIndex)
	e.GET("/blog/:slug/", a.handleArticle)

	// Webhook write path
	e.POST("/api/webhooks/publish", a.handleWebhookPublish)

	// Admin routes
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.GET("/admin/article/:slug/", a.handleAdminArticle)
	e.GET("/admin/images/", a.handleImageList)
	e.POST("/admin/images/upload/", a.handleImageUpload)
	e.POST("/admin/images/:filename/delete/", a.handleImageDelete)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
