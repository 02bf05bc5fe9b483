package platzhalter

import "runtime"

// Config holds all configuration for a platzhalter server.
type Config struct {
	Addr         string // Listen address (default "127.0.0.1:8080")
	DatabasePath string // SQLite path for the image cache (default "data/platzhalter.db")

	WatermarkText string // Watermark label (default "powered by eringen.dev")

	RenderConcurrency int  // Max concurrent renders (default NumCPU)
	MetricsEnabled    bool // Serve Prometheus request metrics on /metrics
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = "127.0.0.1:8080"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/platzhalter.db"
	}
	if c.WatermarkText == "" {
		c.WatermarkText = "powered by eringen.dev"
	}
	if c.RenderConcurrency == 0 {
		c.RenderConcurrency = runtime.NumCPU()
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
