package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/medboard/medboard/internal/config"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	e, seeder := buildServer(cfg, zerolog.Nop())
	if err := seeder.SeedDemo(context.Background()); err != nil {
		t.Fatalf("seeding: %v", err)
	}
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthEndpoint(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestLoginThenAuthenticatedRequest(t *testing.T) {
	srv := testServer(t)

	body := `{"email":"sarah.johnson@centralmedical.com","password":"any","role":"doctor"}`
	resp, err := http.Post(srv.URL+"/api/v1/auth/login", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200", resp.StatusCode)
	}

	var login struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		t.Fatalf("decoding login response: %v", err)
	}
	if login.Token == "" {
		t.Fatal("expected a token")
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/dashboard/doctor", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusOK {
		t.Errorf("dashboard status = %d, want 200", resp2.StatusCode)
	}
}

func TestProtectedRouteRejectsAnonymous(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/doctors")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRouteTableIncludesBookingFlow(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	e, _ := buildServer(cfg, zerolog.Nop())

	want := map[string]bool{
		"POST /api/v1/auth/login":              false,
		"GET /api/v1/doctors":                  false,
		"GET /api/v1/doctors/day-slots":        false,
		"GET /api/v1/doctors/:id/availability": false,
		"POST /api/v1/appointments":            false,
		"GET /api/v1/revenues":                 false,
		"GET /api/v1/dashboard/admin":          false,
	}
	for _, r := range e.Routes() {
		key := r.Method + " " + r.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for key, seen := range want {
		if !seen {
			t.Errorf("route %s not registered", key)
		}
	}
}
