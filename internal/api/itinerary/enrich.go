package itinerary

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/voyplan/go-trip-planner/app/observability/metrics"
	"github.com/voyplan/go-trip-planner/internal/types"
)

// enrichPOIs geocodes each kept POI scoped to the trip destination. Lookups
// run with bounded concurrency and a per-lookup timeout; a failed or timed
// out lookup leaves that POI's coordinates nil and never affects the others.
// Records are updated in place, so output order by id is preserved.
func (s *ServiceImpl) enrichPOIs(ctx context.Context, pois []types.POI, destination string) {
	sem := semaphore.NewWeighted(s.geocodeConcurrency)
	var wg sync.WaitGroup
	for i := range pois {
		if err := sem.Acquire(ctx, 1); err != nil {
			// Request context gone; remaining POIs stay un-enriched.
			break
		}
		wg.Add(1)
		go func(poi *types.POI) {
			defer wg.Done()
			defer sem.Release(1)
			s.enrichPOI(ctx, poi, destination)
		}(&pois[i])
	}
	wg.Wait()
}

func (s *ServiceImpl) enrichPOI(ctx context.Context, poi *types.POI, destination string) {
	query := poi.Name
	if destination != "" {
		query = fmt.Sprintf("%s, %s", poi.Name, destination)
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.geocodeTimeout)
	defer cancel()

	result, err := s.geocoder.Geocode(lookupCtx, query)
	if err != nil {
		// Absence, transport errors and timeouts all resolve the same way
		// for the record: no coordinates.
		metrics.Get().GeocodeFailuresTotal.Add(ctx, 1)
		s.logger.WarnContext(ctx, "Failed to geocode POI", slog.String("name", poi.Name), slog.Any("error", err))
		return
	}

	poi.Coordinates = &types.Coordinates{Lat: result.Latitude, Lon: result.Longitude}
	s.logger.InfoContext(ctx, "Successfully geocoded POI",
		slog.String("name", poi.Name),
		slog.Float64("lat", result.Latitude),
		slog.Float64("lon", result.Longitude),
	)
}
