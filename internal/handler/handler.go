package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skywhalehq/gomongolia-guide-admin-web/internal/snapshot"
	"github.com/skywhalehq/gomongolia-guide-admin-web/pkg/upstream"
)

// DashboardHandler serves the derived view-models for the admin dashboard.
// Every list request fetches the full record set from the platform API,
// derives the view-model synchronously and responds; nothing is cached
// between requests beyond the last-known-good snapshot.
type DashboardHandler struct {
	client    *upstream.Client
	snapshots snapshot.Store
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(client *upstream.Client, snapshots snapshot.Store) *DashboardHandler {
	return &DashboardHandler{
		client:    client,
		snapshots: snapshots,
	}
}

// respond wraps a payload in the same {message, data} envelope convention
// the platform API uses.
func respond(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, echo.Map{
		"message": message,
		"data":    data,
	})
}

// fetchError surfaces a fetch failure verbatim as the response message.
// All failure paths collapse to this one shape.
func fetchError(c echo.Context, err error) error {
	return c.JSON(http.StatusBadGateway, echo.Map{
		"message": err.Error(),
	})
}

// staleMeta annotates a view-model served from the snapshot store.
type staleMeta struct {
	Stale      bool      `json:"stale"`
	FetchedAt  time.Time `json:"fetched_at"`
	FetchError string    `json:"fetch_error"`
}
