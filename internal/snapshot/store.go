package snapshot

import (
	"errors"
	"time"

	"github.com/skywhalehq/gomongolia-guide-admin-web/internal/model"
)

// Page names used as snapshot keys.
const (
	PageUsers = "users"
	PageTrips = "trips"
)

// ErrNoSnapshot is returned when no snapshot exists for the requested page.
var ErrNoSnapshot = errors.New("no snapshot available")

// Store keeps the last successfully fetched payload per dashboard page so
// list endpoints can degrade to stale data when the platform API is down.
type Store interface {
	SaveUsers(users []model.User) error
	LoadUsers() ([]model.User, time.Time, error)
	SaveTrips(trips []model.Trip) error
	LoadTrips() ([]model.Trip, time.Time, error)
}
