package dashboard

import (
	"testing"

	"github.com/skywhalehq/gomongolia-guide-admin-web/internal/model"
)

func sampleUsers() []model.User {
	return []model.User{
		{ID: 1, Name: "Bat", Surname: "Erdene", Phone: "99112233", Type: model.UserTypeGuide, PlateNumber: ""},
		{ID: 2, Name: "Saruul", Surname: "Gantulga", Phone: "88001122", Type: model.UserTypeDriver, PlateNumber: "UB 1234", CarModel: "Land Cruiser"},
		{ID: 3, Name: "Tuya", Surname: "Bold", Phone: "95556677"},
	}
}

func TestFilterUsersUnmatchedTermYieldsEmpty(t *testing.T) {
	got := FilterUsers(sampleUsers(), "zzzzz", FilterAll)
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d users", len(got))
	}
}

func TestFilterUsersEmptyTermMatchesAll(t *testing.T) {
	got := FilterUsers(sampleUsers(), "", FilterAll)
	if len(got) != 3 {
		t.Errorf("expected all 3 users, got %d", len(got))
	}
}

func TestFilterUsersSearchIsCaseInsensitive(t *testing.T) {
	got := FilterUsers(sampleUsers(), "ub 12", FilterAll)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected plate number match on user 2, got %+v", got)
	}

	got = FilterUsers(sampleUsers(), "SARUUL", FilterAll)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected name match on user 2, got %+v", got)
	}
}

func TestFilterUsersByType(t *testing.T) {
	got := FilterUsers(sampleUsers(), "", model.UserTypeGuide)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only the guide, got %+v", got)
	}

	// A user without a type sits in the "unknown" bucket
	got = FilterUsers(sampleUsers(), "", model.UserTypeUnknown)
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected only the untyped user, got %+v", got)
	}
}

func TestFilterUsersCombinesSearchAndType(t *testing.T) {
	// "bat" matches user 1 by name, but the driver filter excludes it
	got := FilterUsers(sampleUsers(), "bat", model.UserTypeDriver)
	if len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}

func sampleTrips() []model.Trip {
	guide := model.User{ID: 10, Name: "Oyun", Surname: "Tsetseg"}
	driver := model.User{ID: 20, Name: "Dorj", Surname: "Batbayar", PlateNumber: "UB 9999"}
	return []model.Trip{
		{ID: 1, Code: "TRP-001", Guide: &guide, Driver: &driver, Company: model.Company{Name: "Nomad Tours"}, IsFinished: true},
		{ID: 2, Code: "TRP-002", Company: model.Company{Name: "Steppe Travel"}, IsCancelled: true},
		{ID: 3, Code: "TRP-003", Company: model.Company{Name: "Nomad Tours"}},
		// Both flags set: finished takes precedence
		{ID: 4, Code: "TRP-004", Company: model.Company{Name: "Gobi Trips"}, IsFinished: true, IsCancelled: true},
	}
}

func TestFilterTripsByStatus(t *testing.T) {
	trips := sampleTrips()

	finished := FilterTrips(trips, "", model.TripStatusFinished)
	if len(finished) != 2 {
		t.Errorf("expected 2 finished trips, got %d", len(finished))
	}

	cancelled := FilterTrips(trips, "", model.TripStatusCancelled)
	if len(cancelled) != 1 || cancelled[0].ID != 2 {
		t.Errorf("expected only trip 2 cancelled, got %+v", cancelled)
	}

	active := FilterTrips(trips, "", model.TripStatusActive)
	if len(active) != 1 || active[0].ID != 3 {
		t.Errorf("expected only trip 3 active, got %+v", active)
	}

	all := FilterTrips(trips, "", FilterAll)
	if len(all) != 4 {
		t.Errorf("expected all 4 trips, got %d", len(all))
	}
}

func TestFilterTripsSearchesEmbeddedFields(t *testing.T) {
	trips := sampleTrips()

	byCompany := FilterTrips(trips, "nomad", FilterAll)
	if len(byCompany) != 2 {
		t.Errorf("expected 2 trips by company name, got %d", len(byCompany))
	}

	byGuide := FilterTrips(trips, "oyun", FilterAll)
	if len(byGuide) != 1 || byGuide[0].ID != 1 {
		t.Errorf("expected trip 1 by guide name, got %+v", byGuide)
	}

	byPlate := FilterTrips(trips, "ub 99", FilterAll)
	if len(byPlate) != 1 || byPlate[0].ID != 1 {
		t.Errorf("expected trip 1 by driver plate, got %+v", byPlate)
	}
}
