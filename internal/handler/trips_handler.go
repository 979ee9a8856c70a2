package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/skywhalehq/gomongolia-guide-admin-web/internal/dashboard"
	"github.com/skywhalehq/gomongolia-guide-admin-web/internal/model"
	"github.com/skywhalehq/gomongolia-guide-admin-web/internal/snapshot"
	"github.com/skywhalehq/gomongolia-guide-admin-web/pkg/logger"
	"github.com/skywhalehq/gomongolia-guide-admin-web/prometheus"
)

// TripsViewModel is the derived state of the trips page. Guides are
// reconstructed from the trips themselves, deduplicated by id and sorted
// by reward; no independent user list is fetched for this page.
type TripsViewModel struct {
	Trips  []model.Trip        `json:"trips"`
	Guides []model.User        `json:"guides"`
	Stats  dashboard.TripStats `json:"stats"`
	Meta   *staleMeta          `json:"meta,omitempty"`
}

func buildTripsViewModel(trips []model.Trip, term, status string) TripsViewModel {
	return TripsViewModel{
		Trips:  dashboard.FilterTrips(trips, term, status),
		Guides: dashboard.SortUsersByReward(dashboard.GuidesFromTrips(trips)),
		Stats:  dashboard.ComputeTripStats(trips, time.Now()),
	}
}

// ListTrips handles the trips dashboard page
func (h *DashboardHandler) ListTrips(c echo.Context) error {
	log := logger.FromContext(c)
	term := c.QueryParam("search")
	status := c.QueryParam("status")
	if status == "" {
		status = dashboard.FilterAll
	}

	start := time.Now()
	trips, err := h.client.FetchTrips(c.Request().Context())
	prometheus.TrackUpstreamFetch(snapshot.PageTrips)(start)
	if err != nil {
		prometheus.RecordFetchError(snapshot.PageTrips)
		return h.tripsFallback(c, term, status, err)
	}

	prometheus.UpdateRecordsFetched(snapshot.PageTrips, float64(len(trips)))
	if err := h.snapshots.SaveTrips(trips); err != nil {
		log.Warn("Failed to save trips snapshot", zap.Error(err))
	}

	vm := buildTripsViewModel(trips, term, status)
	log.Info("Trips view-model derived",
		zap.Int("total", vm.Stats.Total),
		zap.Int("filtered", len(vm.Trips)),
		zap.Int("guides", len(vm.Guides)),
		zap.String("status", status))
	return respond(c, http.StatusOK, "ok", vm)
}

// tripsFallback serves the last-known-good trips payload when the fetch
// fails, or the bare failure message when no snapshot exists.
func (h *DashboardHandler) tripsFallback(c echo.Context, term, status string, fetchErr error) error {
	log := logger.FromContext(c)

	trips, fetchedAt, err := h.snapshots.LoadTrips()
	if err != nil {
		log.Error("Trips fetch failed with no snapshot to fall back on", zap.Error(fetchErr))
		return fetchError(c, fetchErr)
	}

	prometheus.RecordSnapshotFallback(snapshot.PageTrips)
	log.Warn("Serving trips from snapshot",
		zap.Time("fetched_at", fetchedAt),
		zap.Error(fetchErr))

	vm := buildTripsViewModel(trips, term, status)
	vm.Meta = &staleMeta{
		Stale:      true,
		FetchedAt:  fetchedAt,
		FetchError: fetchErr.Error(),
	}
	return respond(c, http.StatusOK, "stale", vm)
}

// GetTrip handles the trip detail view
func (h *DashboardHandler) GetTrip(c echo.Context) error {
	log := logger.FromContext(c)
	id := cast.ToUint(c.Param("id"))

	trips, err := h.client.FetchTrips(c.Request().Context())
	if err != nil {
		prometheus.RecordFetchError(snapshot.PageTrips)
		log.Error("Trip detail fetch failed", zap.Error(err))
		return fetchError(c, err)
	}

	for i := range trips {
		if trips[i].ID == id {
			return respond(c, http.StatusOK, "ok", trips[i])
		}
	}

	log.Warn("Trip not found", zap.Uint("trip_id", id))
	return c.JSON(http.StatusNotFound, echo.Map{"message": "trip not found"})
}
