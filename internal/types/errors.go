package types

import "net/http"

// Machine-readable error codes returned alongside every error response.
const (
	ErrCodeMissingDestination = "MISSING_DESTINATION"
	ErrCodeMissingStartDate   = "MISSING_START_DATE"
	ErrCodeMissingEndDate     = "MISSING_END_DATE"
	ErrCodeGeocoding          = "GEOCODING_ERROR"
	ErrCodeGeneration         = "GENERATION_ERROR"
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeUnexpected         = "UNEXPECTED_ERROR"
)

// APIError carries the HTTP status and error code for the response boundary.
// Message is what the caller sees; Err is the wrapped internal cause and is
// only ever logged, never serialized.
type APIError struct {
	Code    string
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func NewAPIError(code string, status int, message string, err error) *APIError {
	return &APIError{Code: code, Status: status, Message: message, Err: err}
}

// Upstream failures the pipeline can abort with.
func ErrGeocodingFailed(err error) *APIError {
	return NewAPIError(ErrCodeGeocoding, http.StatusInternalServerError,
		"Unable to locate the destination. Please try again later.", err)
}

func ErrGenerationFailed(err error) *APIError {
	return NewAPIError(ErrCodeGeneration, http.StatusInternalServerError,
		"Unable to generate trip plan. Please try again later.", err)
}
