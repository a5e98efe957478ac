package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/desertthunder/playhead/internal/shared"
	"golang.org/x/time/rate"
)

func TestParseQuota(t *testing.T) {
	t.Run("valid quotas", func(t *testing.T) {
		cases := []struct {
			quota string
			limit rate.Limit
			burst int
		}{
			{"60/m", rate.Limit(1), 60},
			{"10/s", rate.Limit(10), 10},
			{"3600/h", rate.Limit(1), 3600},
		}

		for _, tc := range cases {
			limit, burst, err := parseQuota(tc.quota)
			if err != nil {
				t.Errorf("%s: unexpected error: %v", tc.quota, err)
				continue
			}
			if limit != tc.limit || burst != tc.burst {
				t.Errorf("%s: expected (%v, %d), got (%v, %d)", tc.quota, tc.limit, tc.burst, limit, burst)
			}
		}
	})

	t.Run("invalid quotas", func(t *testing.T) {
		for _, quota := range []string{"", "60", "x/m", "-5/m", "0/m", "60/fortnight"} {
			_, _, err := parseQuota(quota)
			if !errors.Is(err, shared.ErrInvalidConfig) {
				t.Errorf("%q: expected ErrInvalidConfig, got %v", quota, err)
			}
		}
	})
}

func TestRateLimiter(t *testing.T) {
	t.Run("exhausts per-client burst", func(t *testing.T) {
		limiter, err := NewRateLimiter("2/h")
		if err != nil {
			t.Fatalf("failed to create limiter: %v", err)
		}

		if !limiter.Allow("client-1") || !limiter.Allow("client-1") {
			t.Fatal("first two requests should be allowed")
		}
		if limiter.Allow("client-1") {
			t.Error("third request should be rejected")
		}

		// A different client has its own bucket.
		if !limiter.Allow("client-2") {
			t.Error("other clients should not share the bucket")
		}
	})

	t.Run("middleware responds 429 when exhausted", func(t *testing.T) {
		limiter, err := NewRateLimiter("1/h")
		if err != nil {
			t.Fatalf("failed to create limiter: %v", err)
		}

		handler := limiter.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			if rec.Code != want {
				t.Errorf("request %d: expected %d, got %d", i+1, want, rec.Code)
			}
		}
	})
}
