package platzhalter

import (
	"errors"
	"net/url"
	"regexp"
	"strconv"
)

// Request validation errors, surfaced to clients as 400s.
var (
	ErrInvalidDimensions = errors.New("invalid dimensions")
	ErrDimensionTooLarge = errors.New("max dimension is 3000x3000")
)

// maxDimension bounds both axes. The dimension pattern already enforces the
// lower bound of 10 by requiring two digits per axis.
const maxDimension = 3000

// Patterns are compiled once at startup and shared for the life of the
// process.
var (
	dimensionPattern = regexp.MustCompile(`^([1-9][0-9]+)x([1-9][0-9]+)$`)
	hexPattern       = regexp.MustCompile(`^(?:[0-9a-fA-F]{2}){3}$|^[0-9a-fA-F]{3}$`)
)

// ImageConfig carries the optional styling parameters of a request. Absence
// of a field is meaningful and survives into the fingerprint; defaults are
// applied only at layout time.
type ImageConfig struct {
	Background *Color
	Border     *Color
	BorderSize *uint8
}

// RequestSpec is the canonical form of one placeholder request. It is built
// once from untrusted input and read-only afterwards. RawDimensions is kept
// verbatim because it doubles as the rendered label.
type RequestSpec struct {
	RawDimensions string
	Width, Height int
	Config        ImageConfig
}

// ParseRequestSpec validates the dimensions path segment and the optional
// bg/br/br_s query parameters. Only the dimensions can fail a request;
// malformed colors and border sizes are dropped rather than rejected.
func ParseRequestSpec(dimensions string, query url.Values) (*RequestSpec, error) {
	m := dimensionPattern.FindStringSubmatch(dimensions)
	if m == nil {
		return nil, ErrInvalidDimensions
	}
	width, err := strconv.Atoi(m[1])
	if err != nil || width > maxDimension {
		return nil, ErrDimensionTooLarge
	}
	height, err := strconv.Atoi(m[2])
	if err != nil || height > maxDimension {
		return nil, ErrDimensionTooLarge
	}

	spec := &RequestSpec{RawDimensions: dimensions, Width: width, Height: height}
	spec.Config.Background = optionalColor(query.Get("bg"))
	spec.Config.Border = optionalColor(query.Get("br"))
	if v := query.Get("br_s"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 8); err == nil {
			size := uint8(n)
			spec.Config.BorderSize = &size
		}
	}
	return spec, nil
}

// optionalColor parses a hex query value, treating anything malformed as
// absent.
func optionalColor(v string) *Color {
	if !hexPattern.MatchString(v) {
		return nil
	}
	c, err := ParseHex(v)
	if err != nil {
		return nil
	}
	return &c
}
