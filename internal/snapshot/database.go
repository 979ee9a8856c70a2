package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/skywhalehq/gomongolia-guide-admin-web/internal/model"
)

// Snapshot is the persisted last-known-good payload for one page.
type Snapshot struct {
	gorm.Model
	Page      string    `json:"page" gorm:"uniqueIndex"`
	Payload   []byte    `json:"payload"`
	FetchedAt time.Time `json:"fetched_at"`
}

// DatabaseStore persists snapshots in Postgres so stale fallback survives
// restarts. Selected with SNAPSHOT_DRIVER=postgres.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a Postgres-backed snapshot store
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

func (s *DatabaseStore) save(page string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s snapshot: %w", page, err)
	}

	var snap Snapshot
	result := s.db.Where("page = ?", page).First(&snap)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to load %s snapshot: %w", page, result.Error)
		}
		snap = Snapshot{Page: page, Payload: body, FetchedAt: time.Now()}
		if err := s.db.Create(&snap).Error; err != nil {
			return fmt.Errorf("failed to create %s snapshot: %w", page, err)
		}
		return nil
	}

	snap.Payload = body
	snap.FetchedAt = time.Now()
	if err := s.db.Save(&snap).Error; err != nil {
		return fmt.Errorf("failed to update %s snapshot: %w", page, err)
	}
	return nil
}

func (s *DatabaseStore) load(page string, out interface{}) (time.Time, error) {
	var snap Snapshot
	result := s.db.Where("page = ?", page).First(&snap)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return time.Time{}, ErrNoSnapshot
		}
		return time.Time{}, fmt.Errorf("failed to load %s snapshot: %w", page, result.Error)
	}
	if err := json.Unmarshal(snap.Payload, out); err != nil {
		return time.Time{}, fmt.Errorf("failed to decode %s snapshot: %w", page, err)
	}
	return snap.FetchedAt, nil
}

func (s *DatabaseStore) SaveUsers(users []model.User) error {
	return s.save(PageUsers, users)
}

func (s *DatabaseStore) LoadUsers() ([]model.User, time.Time, error) {
	var users []model.User
	fetchedAt, err := s.load(PageUsers, &users)
	if err != nil {
		return nil, time.Time{}, err
	}
	return users, fetchedAt, nil
}

func (s *DatabaseStore) SaveTrips(trips []model.Trip) error {
	return s.save(PageTrips, trips)
}

func (s *DatabaseStore) LoadTrips() ([]model.Trip, time.Time, error) {
	var trips []model.Trip
	fetchedAt, err := s.load(PageTrips, &trips)
	if err != nil {
		return nil, time.Time{}, err
	}
	return trips, fetchedAt, nil
}
