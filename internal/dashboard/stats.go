package dashboard

import (
	"time"

	"github.com/skywhalehq/gomongolia-guide-admin-web/internal/model"
)

// recentWindow is the lookback for "recent" counts. A timestamp exactly
// on the boundary is excluded.
const recentWindow = 7 * 24 * time.Hour

// UserStats are the aggregate statistics shown on the users page.
type UserStats struct {
	Total            int            `json:"total"`
	Active           int            `json:"active"`
	ActivePercent    float64        `json:"active_percent"`
	Onboarded        int            `json:"onboarded"`
	OnboardedPercent float64        `json:"onboarded_percent"`
	RecentLogins     int            `json:"recent_logins"`
	TypeDistribution map[string]int `json:"type_distribution"`
}

// GuideStats are computed over the deduplicated guide set only.
type GuideStats struct {
	Total            int     `json:"total"`
	Onboarded        int     `json:"onboarded"`
	OnboardedPercent float64 `json:"onboarded_percent"`
	TotalReward      float64 `json:"total_reward"`
}

// TouristStats are headcount totals over all tourist groups.
type TouristStats struct {
	Male   int `json:"male"`
	Female int `json:"female"`
	Total  int `json:"total"`
}

// TripStats are the aggregate statistics shown on the trips page.
type TripStats struct {
	Total            int          `json:"total"`
	Finished         int          `json:"finished"`
	FinishedPercent  float64      `json:"finished_percent"`
	Cancelled        int          `json:"cancelled"`
	CancelledPercent float64      `json:"cancelled_percent"`
	Active           int          `json:"active"`
	ActivePercent    float64      `json:"active_percent"`
	Recent           int          `json:"recent"`
	TotalAmount      float64      `json:"total_amount"`
	Tourists         TouristStats `json:"tourists"`
	Guides           GuideStats   `json:"guides"`
}

// Percentage returns count/total*100, defined as 0 when total is 0.
func Percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// withinRecentWindow reports whether ts falls strictly within the recent
// window ending at now. A nil timestamp never qualifies.
func withinRecentWindow(ts *time.Time, now time.Time) bool {
	return ts != nil && ts.After(now.Add(-recentWindow))
}

// ComputeUserStats aggregates over the full user list as of now.
func ComputeUserStats(users []model.User, now time.Time) UserStats {
	stats := UserStats{
		Total:            len(users),
		TypeDistribution: make(map[string]int),
	}
	for i := range users {
		u := &users[i]
		if u.IsActive {
			stats.Active++
		}
		if u.IsOnboarded {
			stats.Onboarded++
		}
		if withinRecentWindow(u.LastLoginAt, now) {
			stats.RecentLogins++
		}
		stats.TypeDistribution[u.TypeOrUnknown()]++
	}
	stats.ActivePercent = Percentage(stats.Active, stats.Total)
	stats.OnboardedPercent = Percentage(stats.Onboarded, stats.Total)
	return stats
}

// ComputeGuideStats aggregates over a guide set. Callers must pass a set
// already deduplicated by id.
func ComputeGuideStats(guides []model.User) GuideStats {
	stats := GuideStats{Total: len(guides)}
	for i := range guides {
		if guides[i].IsOnboarded {
			stats.Onboarded++
		}
		stats.TotalReward += guides[i].Reward()
	}
	stats.OnboardedPercent = Percentage(stats.Onboarded, stats.Total)
	return stats
}

// ComputeTripStats aggregates over the full trip list as of now. Status
// counts follow the display precedence: a trip flagged both finished and
// cancelled counts as finished.
func ComputeTripStats(trips []model.Trip, now time.Time) TripStats {
	stats := TripStats{Total: len(trips)}
	for i := range trips {
		t := &trips[i]
		switch t.Status() {
		case model.TripStatusFinished:
			stats.Finished++
		case model.TripStatusCancelled:
			stats.Cancelled++
		default:
			stats.Active++
		}
		created := t.CreatedAt
		if withinRecentWindow(&created, now) {
			stats.Recent++
		}
		stats.TotalAmount += t.TotalAmount
		for _, group := range t.Tourists {
			stats.Tourists.Male += group.Male
			stats.Tourists.Female += group.Female
		}
	}
	stats.Tourists.Total = stats.Tourists.Male + stats.Tourists.Female
	stats.FinishedPercent = Percentage(stats.Finished, stats.Total)
	stats.CancelledPercent = Percentage(stats.Cancelled, stats.Total)
	stats.ActivePercent = Percentage(stats.Active, stats.Total)
	stats.Guides = ComputeGuideStats(GuidesFromTrips(trips))
	return stats
}
