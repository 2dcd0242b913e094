package types

import "github.com/google/uuid"

// TripPlanRequest is the body of POST /api/v1/plan.
type TripPlanRequest struct {
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	// Language is optional; when empty the handler negotiates one from the
	// Accept-Language header, defaulting to English.
	Language string `json:"language,omitempty"`
}

// DestinationCoordinates is the resolved location of the trip destination.
type DestinationCoordinates struct {
	Lat              float64 `json:"lat"`
	Lon              float64 `json:"lon"`
	FormattedAddress string  `json:"formatted_address"`
}

type TripDates struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TripPlanResponse is the success payload: the annotated plan text plus the
// enriched POI list.
type TripPlanResponse struct {
	ID          uuid.UUID              `json:"id"`
	Destination string                 `json:"destination"`
	Coordinates DestinationCoordinates `json:"coordinates"`
	Dates       TripDates              `json:"dates"`
	Language    string                 `json:"language"`
	Plan        string                 `json:"plan"`
	GeneratedAt string                 `json:"generated_at"`
	Attribution string                 `json:"attribution"`
	Pois        []POI                  `json:"pois"`
}
