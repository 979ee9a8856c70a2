package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/skywhalehq/gomongolia-guide-admin-web/internal/snapshot"
	"github.com/skywhalehq/gomongolia-guide-admin-web/pkg/config"
	"github.com/skywhalehq/gomongolia-guide-admin-web/pkg/upstream"
	"github.com/skywhalehq/gomongolia-guide-admin-web/prometheus"
)

func TestMain(m *testing.M) {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	prometheus.InitMetrics(cfg)
	os.Exit(m.Run())
}

func newHandler(baseURL string) *DashboardHandler {
	client := upstream.NewClient(&config.UpstreamConfig{
		BaseURL:   baseURL,
		UsersPath: "/api/users",
		TripsPath: "/api/trips",
		Timeout:   2 * time.Second,
	}, zap.NewNop())
	return NewDashboardHandler(client, snapshot.NewMemoryStore())
}

func doRequest(t *testing.T, h echo.HandlerFunc, target string, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

type usersResponse struct {
	Message string         `json:"message"`
	Data    UsersViewModel `json:"data"`
}

type tripsResponse struct {
	Message string         `json:"message"`
	Data    TripsViewModel `json:"data"`
}

const usersBody = `{"message":"ok","data":[
	{"id":1,"name":"Bat","surname":"Erdene","type":"guide","is_active":true,"is_onboarded":true},
	{"id":2,"name":"Saruul","surname":"Gantulga","type":"driver","plate_number":"UB 1234"},
	{"id":3,"name":"Tuya","surname":"Bold"}
]}`

const tripsBody = `{"message":"ok","data":[
	{"id":1,"code":"TRP-001","is_finished":true,"total_amount":500,
	 "guide":{"id":10,"name":"Oyun","is_onboarded":true,"reward_amount":5},
	 "company":{"id":1,"name":"Nomad Tours"}},
	{"id":2,"code":"TRP-002","is_cancelled":true,"total_amount":300,
	 "guide":{"id":11,"name":"Dulguun","reward_amount":10},
	 "company":{"id":2,"name":"Steppe Travel"}},
	{"id":3,"code":"TRP-003","total_amount":200,
	 "guide":{"id":10,"name":"Oyun","is_onboarded":true,"reward_amount":5},
	 "company":{"id":1,"name":"Nomad Tours"}}
]}`

func TestListUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(usersBody))
	}))
	defer srv.Close()

	rec := doRequest(t, newHandler(srv.URL).ListUsers, "/api/dashboard/users")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp usersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data.Users) != 3 {
		t.Errorf("expected 3 users, got %d", len(resp.Data.Users))
	}
	if resp.Data.Stats.Total != 3 || resp.Data.Stats.Active != 1 {
		t.Errorf("unexpected stats: %+v", resp.Data.Stats)
	}
	if resp.Data.Meta != nil {
		t.Error("fresh response must not carry stale meta")
	}
}

func TestListUsersAppliesFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(usersBody))
	}))
	defer srv.Close()

	rec := doRequest(t, newHandler(srv.URL).ListUsers, "/api/dashboard/users?search=saruul&type=driver")

	var resp usersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data.Users) != 1 || resp.Data.Users[0].ID != 2 {
		t.Errorf("expected only user 2, got %+v", resp.Data.Users)
	}
	// Stats stay computed over the full set
	if resp.Data.Stats.Total != 3 {
		t.Errorf("stats must cover the full list, got total %d", resp.Data.Stats.Total)
	}
}

func TestListUsersFetchFailureNoSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"not found"}`))
	}))
	defer srv.Close()

	rec := doRequest(t, newHandler(srv.URL).ListUsers, "/api/dashboard/users")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["message"] != "not found" {
		t.Errorf("expected upstream message verbatim, got %q", resp["message"])
	}
}

func TestListUsersStaleFallback(t *testing.T) {
	failing := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"message":"maintenance"}`))
			return
		}
		w.Write([]byte(usersBody))
	}))
	defer srv.Close()

	h := newHandler(srv.URL)

	// First request populates the snapshot
	doRequest(t, h.ListUsers, "/api/dashboard/users")

	failing = true
	rec := doRequest(t, h.ListUsers, "/api/dashboard/users")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected stale 200, got %d", rec.Code)
	}

	var resp usersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "stale" {
		t.Errorf("expected stale message, got %q", resp.Message)
	}
	if resp.Data.Meta == nil || !resp.Data.Meta.Stale {
		t.Fatal("expected stale meta on fallback response")
	}
	if resp.Data.Meta.FetchError != "maintenance" {
		t.Errorf("expected fetch error verbatim, got %q", resp.Data.Meta.FetchError)
	}
	if len(resp.Data.Users) != 3 {
		t.Errorf("expected snapshot users, got %d", len(resp.Data.Users))
	}
}

func TestGetUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(usersBody))
	}))
	defer srv.Close()

	h := newHandler(srv.URL)

	rec := doRequest(t, h.GetUser, "/api/dashboard/users/2", "id", "2")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doRequest(t, h.GetUser, "/api/dashboard/users/99", "id", "99")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestListTrips(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(tripsBody))
	}))
	defer srv.Close()

	rec := doRequest(t, newHandler(srv.URL).ListTrips, "/api/dashboard/trips")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp tripsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data.Trips) != 3 {
		t.Errorf("expected 3 trips, got %d", len(resp.Data.Trips))
	}
	// Guide 10 appears on two trips but must be deduplicated; guide 11
	// has the higher reward and sorts first
	if len(resp.Data.Guides) != 2 {
		t.Fatalf("expected 2 guides, got %d", len(resp.Data.Guides))
	}
	if resp.Data.Guides[0].ID != 11 || resp.Data.Guides[1].ID != 10 {
		t.Errorf("unexpected guide order: %+v", resp.Data.Guides)
	}
	if resp.Data.Stats.TotalAmount != 1000 {
		t.Errorf("unexpected total amount: %v", resp.Data.Stats.TotalAmount)
	}
	if resp.Data.Stats.Guides.Total != 2 {
		t.Errorf("unexpected guide stats: %+v", resp.Data.Stats.Guides)
	}
}

func TestListTripsByStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(tripsBody))
	}))
	defer srv.Close()

	rec := doRequest(t, newHandler(srv.URL).ListTrips, "/api/dashboard/trips?status=cancelled")

	var resp tripsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data.Trips) != 1 || resp.Data.Trips[0].ID != 2 {
		t.Errorf("expected only cancelled trip 2, got %+v", resp.Data.Trips)
	}
}

func TestGetTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(tripsBody))
	}))
	defer srv.Close()

	h := newHandler(srv.URL)

	rec := doRequest(t, h.GetTrip, "/api/dashboard/trips/1", "id", "1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doRequest(t, h.GetTrip, "/api/dashboard/trips/42", "id", "42")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
