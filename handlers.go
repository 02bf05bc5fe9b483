package platzhalter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// handleImage is the cache-or-render path: validate, fingerprint, look up,
// render on miss, store, respond. A failed store write fails the whole
// request even though the render succeeded, so the store stays the single
// source of truth for what has been served.
func (a *App) handleImage(c echo.Context) error {
	spec, err := ParseRequestSpec(c.Param("dimensions"), c.QueryParams())
	if err != nil {
		return err
	}

	fp := spec.Fingerprint()
	data, ok, err := a.Cache.Get(fp)
	if err != nil {
		return err
	}
	if ok {
		return respondPNG(c, data)
	}

	data, err = a.Renderer.Render(ComposeLayout(spec, a.Config.WatermarkText))
	if err != nil {
		return fmt.Errorf("render image: %w", err)
	}
	if err := a.Cache.Put(fp, data); err != nil {
		return err
	}
	return respondPNG(c, data)
}

// respondPNG writes image bytes with an immutability hint: a fingerprint
// fully determines its bytes, so clients may cache forever.
func respondPNG(c echo.Context, data []byte) error {
	c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	return c.Blob(http.StatusOK, "image/png", data)
}

// handleFavicon always answers 404. Browsers probe the path and it would
// otherwise fall into the dimensions route.
func handleFavicon(c echo.Context) error {
	return c.NoContent(http.StatusNotFound)
}

// httpErrorHandler maps validation failures to 400s carrying their reason
// and everything else to an opaque 500, logged server-side.
func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if errors.Is(err, ErrInvalidDimensions) || errors.Is(err, ErrDimensionTooLarge) {
		_ = c.String(http.StatusBadRequest, err.Error())
		return
	}
	if he, ok := err.(*echo.HTTPError); ok {
		a.Echo.DefaultHTTPErrorHandler(he, c)
		return
	}
	c.Logger().Errorf("server error: %v", err)
	_ = c.String(http.StatusInternalServerError, "internal server error")
}
