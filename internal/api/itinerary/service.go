package itinerary

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/voyplan/go-trip-planner/app/observability/metrics"
	"github.com/voyplan/go-trip-planner/config"
	"github.com/voyplan/go-trip-planner/internal/api/geocode"
	"github.com/voyplan/go-trip-planner/internal/types"
)

const (
	attribution        = "Powered by Google Gemini"
	defaultTemperature = 0.7
	defaultMaxTokens   = 2000

	defaultGeocodeConcurrency = 4
	defaultGeocodeTimeout     = 10 * time.Second
)

// TextGenerator is the slice of the AI client the service depends on.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error)
}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for trip plan generation.
type Service interface {
	GenerateTripPlan(ctx context.Context, req types.TripPlanRequest) (*types.TripPlanResponse, error)
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger   *slog.Logger
	aiClient TextGenerator
	geocoder geocode.Geocoder

	temperature        float32
	maxOutputTokens    int32
	geocodeConcurrency int64
	geocodeTimeout     time.Duration
}

// NewServiceImpl creates a new trip plan service instance.
func NewServiceImpl(aiClient TextGenerator, geocoder geocode.Geocoder, cfg *config.Config, logger *slog.Logger) *ServiceImpl {
	s := &ServiceImpl{
		logger:             logger,
		aiClient:           aiClient,
		geocoder:           geocoder,
		temperature:        cfg.Services.Gemini.Temperature,
		maxOutputTokens:    cfg.Services.Gemini.MaxOutputTokens,
		geocodeConcurrency: cfg.Itinerary.GeocodeConcurrency,
		geocodeTimeout:     cfg.Itinerary.GeocodeTimeout,
	}
	if s.temperature <= 0 {
		s.temperature = defaultTemperature
	}
	if s.maxOutputTokens <= 0 {
		s.maxOutputTokens = defaultMaxTokens
	}
	if s.geocodeConcurrency <= 0 {
		s.geocodeConcurrency = defaultGeocodeConcurrency
	}
	if s.geocodeTimeout <= 0 {
		s.geocodeTimeout = defaultGeocodeTimeout
	}
	return s
}

// GenerateTripPlan runs the full pipeline: geocode the destination, generate
// the itinerary text, extract and annotate POI markers, then enrich each kept
// POI with coordinates. A destination geocoding or generation failure aborts
// the request; per-POI geocoding failures never do.
func (s *ServiceImpl) GenerateTripPlan(ctx context.Context, req types.TripPlanRequest) (*types.TripPlanResponse, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GenerateTripPlan", trace.WithAttributes(
		attribute.String("trip.destination", req.Destination),
		attribute.String("trip.language", req.Language),
	))
	defer span.End()

	start := time.Now()
	m := metrics.Get()
	defer func() {
		m.PlanRequestsTotal.Add(ctx, 1)
		m.PlanDurationSeconds.Record(ctx, time.Since(start).Seconds())
	}()

	location, err := s.geocoder.Geocode(ctx, req.Destination)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to geocode destination",
			slog.String("destination", req.Destination), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Destination geocoding failed")
		return nil, types.ErrGeocodingFailed(err)
	}

	prompt := tripPlanPrompt(req.Destination, location.Latitude, location.Longitude,
		req.StartDate, req.EndDate, languageName(req.Language))
	span.SetAttributes(attribute.Int("prompt.length", len(prompt)))

	plan, err := s.aiClient.GenerateContent(ctx, prompt, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(s.temperature),
		MaxOutputTokens: s.maxOutputTokens,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to generate trip plan", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Text generation failed")
		return nil, types.ErrGenerationFailed(err)
	}
	plan = strings.TrimSpace(plan)

	pois, annotated := ExtractPOIs(plan)
	m.PoisExtractedTotal.Add(ctx, int64(len(pois)))
	s.enrichPOIs(ctx, pois, req.Destination)
	if pois == nil {
		pois = []types.POI{}
	}

	span.SetAttributes(attribute.Int("pois.count", len(pois)))
	span.SetStatus(codes.Ok, "Trip plan generated")

	return &types.TripPlanResponse{
		ID:          uuid.New(),
		Destination: req.Destination,
		Coordinates: types.DestinationCoordinates{
			Lat:              location.Latitude,
			Lon:              location.Longitude,
			FormattedAddress: location.FormattedAddress,
		},
		Dates:       types.TripDates{Start: req.StartDate, End: req.EndDate},
		Language:    req.Language,
		Plan:        annotated,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Attribution: attribution,
		Pois:        pois,
	}, nil
}
