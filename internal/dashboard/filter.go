package dashboard

import (
	"strings"

	"github.com/skywhalehq/gomongolia-guide-admin-web/internal/model"
)

// FilterAll is the sentinel category that matches every record.
const FilterAll = "all"

// matchesTerm reports whether any field contains term, case-insensitive.
// An empty term matches everything.
func matchesTerm(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// UserMatchesSearch checks the fixed set of searchable user fields.
func UserMatchesSearch(u *model.User, term string) bool {
	return matchesTerm(strings.ToLower(strings.TrimSpace(term)),
		u.Name, u.Surname, u.Phone, u.PlateNumber, u.CarModel)
}

// TripMatchesSearch checks the trip code, company name and the names and
// plate numbers of the attached guide and driver.
func TripMatchesSearch(t *model.Trip, term string) bool {
	fields := []string{t.Code, t.Company.Name}
	if t.Guide != nil {
		fields = append(fields, t.Guide.Name, t.Guide.Surname)
	}
	if t.Driver != nil {
		fields = append(fields, t.Driver.Name, t.Driver.Surname, t.Driver.PlateNumber)
	}
	return matchesTerm(strings.ToLower(strings.TrimSpace(term)), fields...)
}

// FilterUsers returns the users matching both the search term and the
// type filter. An empty or "all" type matches every user; a missing user
// type compares as "unknown".
func FilterUsers(users []model.User, term, userType string) []model.User {
	filtered := make([]model.User, 0, len(users))
	for i := range users {
		u := &users[i]
		if !UserMatchesSearch(u, term) {
			continue
		}
		if userType != "" && userType != FilterAll && u.TypeOrUnknown() != userType {
			continue
		}
		filtered = append(filtered, *u)
	}
	return filtered
}

// FilterTrips returns the trips matching both the search term and the
// status filter ("all", "finished", "cancelled" or "active").
func FilterTrips(trips []model.Trip, term, status string) []model.Trip {
	filtered := make([]model.Trip, 0, len(trips))
	for i := range trips {
		t := &trips[i]
		if !TripMatchesSearch(t, term) {
			continue
		}
		if status != "" && status != FilterAll && t.Status() != status {
			continue
		}
		filtered = append(filtered, *t)
	}
	return filtered
}
