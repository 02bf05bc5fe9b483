// Package platzhalter serves on-demand placeholder rectangle images over
// HTTP. A request like GET /400x300?bg=333&br_s=4 renders a PNG with the
// dimensions as a centered label, stores it in an embedded SQLite cache
// keyed by a fingerprint of the request, and serves repeats straight from
// the cache.
package platzhalter

import (
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
)

// App is the central platzhalter application. It wires together the store,
// cache, renderer, handlers, and middleware.
type App struct {
	Config   Config
	Echo     *echo.Echo
	Store    *Store
	Cache    *ImageCache
	Renderer *Renderer

	customRoutes []func(*App)
}

// New creates a new platzhalter App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the store, cache, renderer, middleware, and routes, then
// starts the server.
func (a *App) Start() error {
	if err := a.setup(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// setup wires all dependencies and routes without binding the listen
// address.
func (a *App) setup() error {
	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("platzhalter: init store: %w", err)
	}
	a.Store = store
	a.Cache = NewImageCache(store)

	renderer, err := NewRenderer(a.Config.RenderConcurrency)
	if err != nil {
		return fmt.Errorf("platzhalter: init renderer: %w", err)
	}
	a.Renderer = renderer

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Static routes take precedence over the dimensions parameter.
	e.GET("/favicon.ico", handleFavicon)
	if a.Config.MetricsEnabled {
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	e.GET("/:dimensions", a.handleImage)
}

// Close releases the store. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if
// empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
