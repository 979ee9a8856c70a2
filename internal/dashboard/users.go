package dashboard

import (
	"sort"

	"github.com/skywhalehq/gomongolia-guide-admin-web/internal/model"
)

// DedupUsersByID removes duplicate users keyed by id, first occurrence
// wins. Order of the survivors is preserved, so the operation is
// idempotent.
func DedupUsersByID(users []model.User) []model.User {
	seen := make(map[uint]struct{}, len(users))
	deduped := make([]model.User, 0, len(users))
	for i := range users {
		if _, ok := seen[users[i].ID]; ok {
			continue
		}
		seen[users[i].ID] = struct{}{}
		deduped = append(deduped, users[i])
	}
	return deduped
}

// SortUsersByReward orders users by reward amount descending with a null
// reward treated as zero, ties broken onboarded-first. The sort is stable
// for fully equal keys. The input slice is not modified.
func SortUsersByReward(users []model.User) []model.User {
	sorted := make([]model.User, len(users))
	copy(sorted, users)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := sorted[i].Reward(), sorted[j].Reward()
		if ri != rj {
			return ri > rj
		}
		return sorted[i].IsOnboarded && !sorted[j].IsOnboarded
	})
	return sorted
}

// GuidesFromTrips reconstructs the guide set from the trips list alone.
// No independent user list exists on the trips view, so the embedded
// guide records are collected and deduplicated by id.
func GuidesFromTrips(trips []model.Trip) []model.User {
	guides := make([]model.User, 0, len(trips))
	for i := range trips {
		if trips[i].Guide != nil {
			guides = append(guides, *trips[i].Guide)
		}
	}
	return DedupUsersByID(guides)
}
