package itinerary

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/voyplan/go-trip-planner/internal/types"
)

// MockService is a mock implementation of Service
type MockService struct {
	mock.Mock
}

func (m *MockService) GenerateTripPlan(ctx context.Context, req types.TripPlanRequest) (*types.TripPlanResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TripPlanResponse), args.Error(1)
}

func newTestHandler(service Service) *Handler {
	return NewHandler(service, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func doPlanRequest(t *testing.T, handler *Handler, body string, header http.Header) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plan", strings.NewReader(body))
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	handler.GenerateTripPlan(rec, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestGenerateTripPlanHandler_MissingDestination(t *testing.T) {
	service := new(MockService)
	handler := newTestHandler(service)

	rec, resp := doPlanRequest(t, handler, `{"start_date":"2026-09-01","end_date":"2026-09-05"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, types.ErrCodeMissingDestination, resp["error_code"])

	// No upstream call of any kind is attempted.
	service.AssertNotCalled(t, "GenerateTripPlan", mock.Anything, mock.Anything)
}

func TestGenerateTripPlanHandler_MissingDates(t *testing.T) {
	service := new(MockService)
	handler := newTestHandler(service)

	rec, resp := doPlanRequest(t, handler, `{"destination":"Paris","end_date":"2026-09-05"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, types.ErrCodeMissingStartDate, resp["error_code"])

	rec, resp = doPlanRequest(t, handler, `{"destination":"Paris","start_date":"2026-09-01"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, types.ErrCodeMissingEndDate, resp["error_code"])

	service.AssertNotCalled(t, "GenerateTripPlan", mock.Anything, mock.Anything)
}

func TestGenerateTripPlanHandler_MalformedBody(t *testing.T) {
	service := new(MockService)
	handler := newTestHandler(service)

	rec, resp := doPlanRequest(t, handler, `{"destination":`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, types.ErrCodeInvalidJSON, resp["error_code"])
	service.AssertNotCalled(t, "GenerateTripPlan", mock.Anything, mock.Anything)
}

func TestGenerateTripPlanHandler_IgnoresUnknownFields(t *testing.T) {
	service := new(MockService)
	handler := newTestHandler(service)

	service.On("GenerateTripPlan", mock.Anything, mock.Anything).
		Return(&types.TripPlanResponse{Destination: "Paris", Pois: []types.POI{}}, nil)

	// Extra keys in the body are tolerated, not rejected.
	rec, _ := doPlanRequest(t, handler,
		`{"destination":"Paris","start_date":"2026-09-01","end_date":"2026-09-05","language":"en","client_version":"1.4.2"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	service.AssertExpectations(t)
}

func TestGenerateTripPlanHandler_Success(t *testing.T) {
	service := new(MockService)
	handler := newTestHandler(service)

	service.On("GenerateTripPlan", mock.Anything, mock.MatchedBy(func(req types.TripPlanRequest) bool {
		return req.Destination == "Paris" && req.Language == "en"
	})).Return(&types.TripPlanResponse{
		ID:          uuid.New(),
		Destination: "Paris",
		Language:    "en",
		Plan:        "annotated plan",
		Pois:        []types.POI{},
	}, nil)

	rec, resp := doPlanRequest(t, handler,
		`{"destination":"Paris","start_date":"2026-09-01","end_date":"2026-09-05","language":"en"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Paris", resp["destination"])
	assert.Equal(t, "annotated plan", resp["plan"])
	service.AssertExpectations(t)
}

func TestGenerateTripPlanHandler_NegotiatesLanguageFromHeader(t *testing.T) {
	service := new(MockService)
	handler := newTestHandler(service)

	service.On("GenerateTripPlan", mock.Anything, mock.MatchedBy(func(req types.TripPlanRequest) bool {
		return req.Language == "fr"
	})).Return(&types.TripPlanResponse{Language: "fr", Pois: []types.POI{}}, nil)

	header := http.Header{}
	header.Set("Accept-Language", "fr-FR,fr;q=0.9,en;q=0.8")
	rec, _ := doPlanRequest(t, handler,
		`{"destination":"Paris","start_date":"2026-09-01","end_date":"2026-09-05"}`, header)

	assert.Equal(t, http.StatusOK, rec.Code)
	service.AssertExpectations(t)
}

func TestGenerateTripPlanHandler_UpstreamErrorCodes(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"geocoding failure", types.ErrGeocodingFailed(assert.AnError), http.StatusInternalServerError, types.ErrCodeGeocoding},
		{"generation failure", types.ErrGenerationFailed(assert.AnError), http.StatusInternalServerError, types.ErrCodeGeneration},
		{"unexpected failure", assert.AnError, http.StatusInternalServerError, types.ErrCodeUnexpected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service := new(MockService)
			handler := newTestHandler(service)
			service.On("GenerateTripPlan", mock.Anything, mock.Anything).Return(nil, tc.err)

			rec, resp := doPlanRequest(t, handler,
				`{"destination":"Paris","start_date":"2026-09-01","end_date":"2026-09-05"}`, nil)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCode, resp["error_code"])
			// Internal error detail never leaks to the caller.
			assert.NotContains(t, resp["error"], assert.AnError.Error())
		})
	}
}
