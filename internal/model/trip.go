package model

import "time"

// Trip status values derived from the is_finished/is_cancelled flags.
const (
	TripStatusFinished  = "finished"
	TripStatusCancelled = "cancelled"
	TripStatusActive    = "active"
)

// Company is embedded by value inside a Trip.
type Company struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Tourist is a headcount group attached to a trip, not an individual person.
type Tourist struct {
	Male        int    `json:"male"`
	Female      int    `json:"female"`
	CountryCode string `json:"country_code"`
}

// Trip is a trip record as returned by the platform API. The guide and
// driver references may be absent.
type Trip struct {
	ID          uint       `json:"id"`
	Code        string     `json:"code"`
	Guide       *User      `json:"guide"`
	Driver      *User      `json:"driver"`
	Company     Company    `json:"company"`
	Tourists    []Tourist  `json:"tourists"`
	IsFinished  bool       `json:"is_finished"`
	IsCancelled bool       `json:"is_cancelled"`
	TotalAmount float64    `json:"total_amount"`
	ExpiresAt   *time.Time `json:"expires_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Status maps the flag pair to a single display status. The flags are not
// mutually exclusive upstream; is_finished takes precedence over
// is_cancelled, matching how the platform has always displayed them.
func (t *Trip) Status() string {
	switch {
	case t.IsFinished:
		return TripStatusFinished
	case t.IsCancelled:
		return TripStatusCancelled
	default:
		return TripStatusActive
	}
}
