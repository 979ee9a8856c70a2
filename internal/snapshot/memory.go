package snapshot

import (
	"sync"
	"time"

	"github.com/skywhalehq/gomongolia-guide-admin-web/internal/model"
)

// MemoryStore holds the last-known-good payloads in memory. This is the
// default backend; snapshots do not survive a restart.
type MemoryStore struct {
	mu sync.RWMutex

	users          []model.User
	usersFetchedAt time.Time
	hasUsers       bool

	trips          []model.Trip
	tripsFetchedAt time.Time
	hasTrips       bool
}

// NewMemoryStore creates a new in-memory snapshot store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) SaveUsers(users []model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = make([]model.User, len(users))
	copy(m.users, users)
	m.usersFetchedAt = time.Now()
	m.hasUsers = true
	return nil
}

func (m *MemoryStore) LoadUsers() ([]model.User, time.Time, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.hasUsers {
		return nil, time.Time{}, ErrNoSnapshot
	}
	users := make([]model.User, len(m.users))
	copy(users, m.users)
	return users, m.usersFetchedAt, nil
}

func (m *MemoryStore) SaveTrips(trips []model.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.trips = make([]model.Trip, len(trips))
	copy(m.trips, trips)
	m.tripsFetchedAt = time.Now()
	m.hasTrips = true
	return nil
}

func (m *MemoryStore) LoadTrips() ([]model.Trip, time.Time, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.hasTrips {
		return nil, time.Time{}, ErrNoSnapshot
	}
	trips := make([]model.Trip, len(m.trips))
	copy(trips, m.trips)
	return trips, m.tripsFetchedAt, nil
}
