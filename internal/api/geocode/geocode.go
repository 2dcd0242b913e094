package geocode

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the provider answered normally but had no
// match for the query. Transport and decoding problems are returned as
// distinct errors so the caller can log them apart.
var ErrNotFound = errors.New("geocode: no results")

// Result is the best-effort location for a free-text query.
type Result struct {
	Latitude         float64
	Longitude        float64
	FormattedAddress string
}

// Geocoder resolves a free-text query to coordinates. Implementations never
// panic into the pipeline; absence is reported as ErrNotFound.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*Result, error)
}
