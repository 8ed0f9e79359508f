package server

import (
	"net/http/httptest"
	"testing"

	"backend-globetrotter/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestHealthRoute(t *testing.T) {
	s := NewServer(config.Config{JWTSecret: "secret", ServerPort: ":0"}, nil, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 status")
	}
}

func TestTripRoutesRequireAuth(t *testing.T) {
	s := NewServer(config.Config{JWTSecret: "secret", ServerPort: ":0"}, nil, nil)

	req := httptest.NewRequest("GET", "/trips/", nil)
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("expected 401 without a token, got %d", resp.StatusCode)
	}
}

func TestSharedTripRouteIsPublic(t *testing.T) {
	s := NewServer(config.Config{JWTSecret: "secret", ServerPort: ":0"}, nil, nil)

	req := httptest.NewRequest("GET", "/trips/shared/share-none", nil)
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	// 404 not 401: the route resolves without a token.
	if resp.StatusCode != 404 {
		t.Fatalf("expected 404 for an unknown share id, got %d", resp.StatusCode)
	}
}

func TestNewServerWithRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	s := NewServer(config.Config{JWTSecret: "secret", ServerPort: ":0"}, nil, client)
	if s.Trips == nil || s.Stream == nil {
		t.Fatalf("expected wired services")
	}
}
