package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-smart-cards/internal/logger"
	"github.com/MKhiriev/go-smart-cards/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func executeGuestLimit(h *Handler, remoteAddr string) (*httptest.ResponseRecorder, bool) {
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusCreated)
	})

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/guest", nil))
	req.RemoteAddr = remoteAddr

	rr := httptest.NewRecorder()
	h.limitGuests(next).ServeHTTP(rr, req)
	return rr, nextCalled
}

func TestLimitGuests_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		allowed        bool
		err            error
		wantStatus     int
		wantNextCalled bool
	}{
		{name: "within allowance", allowed: true, wantStatus: http.StatusCreated, wantNextCalled: true},
		{name: "over allowance", allowed: false, wantStatus: http.StatusTooManyRequests},
		{name: "limiter down fails open", err: errors.New("redis: connection refused"), wantStatus: http.StatusCreated, wantNextCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			limiter := mock.NewMockRequestLimiter(ctrl)
			limiter.EXPECT().Allow(gomock.Any(), "203.0.113.7").Return(tt.allowed, tt.err)

			h := &Handler{guestLimiter: limiter, logger: logger.Nop()}
			rr, nextCalled := executeGuestLimit(h, "203.0.113.7:51234")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
			if tt.wantStatus == http.StatusTooManyRequests {
				assert.Equal(t, kindRateLimited, decodeError(t, rr).Kind)
			}
		})
	}
}

func TestLimitGuests_NilLimiterPassesThrough(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	rr, nextCalled := executeGuestLimit(h, "203.0.113.7:51234")

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		remoteAddr string
		want       string
	}{
		{"203.0.113.7:51234", "203.0.113.7"},
		{"[2001:db8::1]:443", "2001:db8::1"},
		// RealIP rewrites RemoteAddr without a port
		{"198.51.100.4", "198.51.100.4"},
	}

	for _, tt := range tests {
		t.Run(tt.remoteAddr, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}
