package itinerary

import (
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/voyplan/go-trip-planner/internal/api"
	"github.com/voyplan/go-trip-planner/internal/types"
)

type Handler struct {
	service Service
	logger  *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// GenerateTripPlan handles POST /api/v1/plan: validates the request, resolves
// the response language and delegates to the service. Validation failures are
// rejected before any upstream call is made.
func (h *Handler) GenerateTripPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GenerateTripPlan", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/plan"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GenerateTripPlan"))
	l.DebugContext(ctx, "Generate trip plan handler invoked")

	var req types.TripPlanRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, types.ErrCodeInvalidJSON, "Invalid JSON data provided")
		return
	}

	if req.Destination == "" {
		l.ErrorContext(ctx, "Destination is required")
		api.ErrorResponse(w, r, http.StatusBadRequest, types.ErrCodeMissingDestination, "Destination is required")
		return
	}
	if req.StartDate == "" {
		l.ErrorContext(ctx, "Start date is required")
		api.ErrorResponse(w, r, http.StatusBadRequest, types.ErrCodeMissingStartDate, "Start date is required")
		return
	}
	if req.EndDate == "" {
		l.ErrorContext(ctx, "End date is required")
		api.ErrorResponse(w, r, http.StatusBadRequest, types.ErrCodeMissingEndDate, "End date is required")
		return
	}

	if req.Language == "" {
		req.Language = negotiateLanguage(r.Header.Get("Accept-Language"))
	}
	span.SetAttributes(attribute.String("trip.language", req.Language))
	l = l.With(slog.String("destination", req.Destination), slog.String("language", req.Language))

	resp, err := h.service.GenerateTripPlan(ctx, req)
	if err != nil {
		var apiErr *types.APIError
		if errors.As(err, &apiErr) {
			l.ErrorContext(ctx, "Trip plan generation failed",
				slog.String("error_code", apiErr.Code), slog.Any("error", err))
			api.ErrorResponse(w, r, apiErr.Status, apiErr.Code, apiErr.Message)
			return
		}
		// Internal detail stays in the log; the caller gets a generic code.
		l.ErrorContext(ctx, "Unexpected error generating trip plan", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, types.ErrCodeUnexpected,
			"An unexpected error occurred. Please try again later.")
		return
	}

	l.InfoContext(ctx, "Trip plan generated", slog.Int("pois", len(resp.Pois)))
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
	span.SetAttributes(semconv.HTTPResponseStatusCodeKey.Int(http.StatusOK))
}
