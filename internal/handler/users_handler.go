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

// UsersViewModel is the derived state of the users page: the filtered
// list plus statistics computed over the full record set.
type UsersViewModel struct {
	Users []model.User        `json:"users"`
	Stats dashboard.UserStats `json:"stats"`
	Meta  *staleMeta          `json:"meta,omitempty"`
}

// ListUsers handles the users dashboard page
func (h *DashboardHandler) ListUsers(c echo.Context) error {
	log := logger.FromContext(c)
	term := c.QueryParam("search")
	userType := c.QueryParam("type")
	if userType == "" {
		userType = dashboard.FilterAll
	}

	start := time.Now()
	users, err := h.client.FetchUsers(c.Request().Context())
	prometheus.TrackUpstreamFetch(snapshot.PageUsers)(start)
	if err != nil {
		prometheus.RecordFetchError(snapshot.PageUsers)
		return h.usersFallback(c, term, userType, err)
	}

	prometheus.UpdateRecordsFetched(snapshot.PageUsers, float64(len(users)))
	if err := h.snapshots.SaveUsers(users); err != nil {
		log.Warn("Failed to save users snapshot", zap.Error(err))
	}

	vm := UsersViewModel{
		Users: dashboard.FilterUsers(users, term, userType),
		Stats: dashboard.ComputeUserStats(users, time.Now()),
	}
	log.Info("Users view-model derived",
		zap.Int("total", vm.Stats.Total),
		zap.Int("filtered", len(vm.Users)),
		zap.String("type", userType))
	return respond(c, http.StatusOK, "ok", vm)
}

// usersFallback serves the last-known-good users payload when the fetch
// fails, or the bare failure message when no snapshot exists.
func (h *DashboardHandler) usersFallback(c echo.Context, term, userType string, fetchErr error) error {
	log := logger.FromContext(c)

	users, fetchedAt, err := h.snapshots.LoadUsers()
	if err != nil {
		log.Error("Users fetch failed with no snapshot to fall back on", zap.Error(fetchErr))
		return fetchError(c, fetchErr)
	}

	prometheus.RecordSnapshotFallback(snapshot.PageUsers)
	log.Warn("Serving users from snapshot",
		zap.Time("fetched_at", fetchedAt),
		zap.Error(fetchErr))

	vm := UsersViewModel{
		Users: dashboard.FilterUsers(users, term, userType),
		Stats: dashboard.ComputeUserStats(users, time.Now()),
		Meta: &staleMeta{
			Stale:      true,
			FetchedAt:  fetchedAt,
			FetchError: fetchErr.Error(),
		},
	}
	return respond(c, http.StatusOK, "stale", vm)
}

// GetUser handles the user detail view. The record comes from a fresh
// fetch of the same list the table is built from; there is no per-user
// endpoint upstream.
func (h *DashboardHandler) GetUser(c echo.Context) error {
	log := logger.FromContext(c)
	id := cast.ToUint(c.Param("id"))

	users, err := h.client.FetchUsers(c.Request().Context())
	if err != nil {
		prometheus.RecordFetchError(snapshot.PageUsers)
		log.Error("User detail fetch failed", zap.Error(err))
		return fetchError(c, err)
	}

	for i := range users {
		if users[i].ID == id {
			return respond(c, http.StatusOK, "ok", users[i])
		}
	}

	log.Warn("User not found", zap.Uint("user_id", id))
	return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
}
