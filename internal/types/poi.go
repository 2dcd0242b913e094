package types

// Coordinates is a geographic point attached to a POI after enrichment.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// POI is one point of interest extracted from a generated itinerary. Records
// live for a single request/response cycle and are never persisted.
type POI struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	// Type is an open category (attraction, restaurant, hotel, museum, park,
	// shopping, transport, ...) passed through verbatim from the marker.
	Type    string `json:"type"`
	Keyword string `json:"keyword"` // text enclosed by the marker tag
	// Line is the full source line containing the keyword; falls back to the
	// keyword itself when no line matches.
	Line      string `json:"line"`
	LineIndex int    `json:"line_index"`
	Context   string `json:"context"`
	Icon      string `json:"icon"`
	// Coordinates is nil when geocoding failed or was skipped.
	Coordinates *Coordinates `json:"coordinates"`
}
