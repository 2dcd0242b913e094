package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const defaultEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"

var _ Geocoder = (*GoogleMapsGeocoder)(nil)

// GoogleMapsGeocoder resolves queries through the Google Maps Geocoding API.
type GoogleMapsGeocoder struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewGoogleMapsGeocoder creates a new Google Maps geocoder. The API key is
// injected here; this package holds no credential state of its own.
func NewGoogleMapsGeocoder(apiKey string, timeout time.Duration, logger *slog.Logger) *GoogleMapsGeocoder {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GoogleMapsGeocoder{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type googleMapsResponse struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		FormattedAddress string `json:"formatted_address"`
	} `json:"results"`
	Status       string `json:"status"` // OK, ZERO_RESULTS, etc.
	ErrorMessage string `json:"error_message,omitempty"`
}

func (g *GoogleMapsGeocoder) Geocode(ctx context.Context, query string) (*Result, error) {
	ctx, span := otel.Tracer("GoogleMapsGeocoder").Start(ctx, "Geocode", trace.WithAttributes(
		attribute.String("geocode.query", query),
	))
	defer span.End()

	params := url.Values{}
	params.Set("address", query)
	params.Set("key", g.apiKey)

	reqURL := g.endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building geocoding request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.WarnContext(ctx, "Geocoding request failed", slog.String("query", query), slog.Any("error", err))
		span.RecordError(err)
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		span.SetStatus(codes.Error, "unexpected HTTP status")
		return nil, fmt.Errorf("google maps returned status %d", resp.StatusCode)
	}

	var gmResp googleMapsResponse
	if err := json.NewDecoder(resp.Body).Decode(&gmResp); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("decoding geocoding response: %w", err)
	}

	// A well-formed answer with no match is not a transport problem; callers
	// treat both as absence but they are logged apart.
	if gmResp.Status == "ZERO_RESULTS" || (gmResp.Status == "OK" && len(gmResp.Results) == 0) {
		g.logger.InfoContext(ctx, "Geocoding returned no results", slog.String("query", query))
		return nil, ErrNotFound
	}

	if gmResp.Status != "OK" {
		g.logger.WarnContext(ctx, "Geocoding failed",
			slog.String("query", query),
			slog.String("status", gmResp.Status),
			slog.String("error_message", gmResp.ErrorMessage),
		)
		span.SetStatus(codes.Error, gmResp.Status)
		return nil, fmt.Errorf("google maps status: %s", gmResp.Status)
	}

	result := gmResp.Results[0]
	span.SetStatus(codes.Ok, "Geocoded")

	return &Result{
		Latitude:         result.Geometry.Location.Lat,
		Longitude:        result.Geometry.Location.Lng,
		FormattedAddress: result.FormattedAddress,
	}, nil
}
