package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-smart-cards/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteProfile_Success(t *testing.T) {
	svcs := newMockServices()
	svcs.UserService = &mockUserService{
		deleteUserFn: func(_ context.Context, requesterID, userID string) error {
			assert.Equal(t, "u1", requesterID)
			assert.Equal(t, "u1", userID)
			return nil
		},
	}
	h := newTestHandler(svcs)

	rec := httptest.NewRecorder()
	h.deleteProfile(rec, withRequester(httptest.NewRequest(http.MethodDelete, "/api/users/profile", nil), "u1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"User and all associated data removed"}`, rec.Body.String())

	cookie := sessionCookieFrom(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestDeleteProfile_PartialCascadeKeepsSession(t *testing.T) {
	svcs := newMockServices()
	svcs.UserService = &mockUserService{
		deleteUserFn: func(context.Context, string, string) error {
			return fmt.Errorf("user u1 kept, 1 of 2 deck cascades failed: %w", store.ErrExecutingStatement)
		},
	}
	h := newTestHandler(svcs)

	rec := httptest.NewRecorder()
	h.deleteProfile(rec, withRequester(httptest.NewRequest(http.MethodDelete, "/api/users/profile", nil), "u1"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, kindStoreError, decodeError(t, rec).Kind)
	assert.Empty(t, rec.Result().Cookies())
}

func TestDeleteProfile_NoRequester(t *testing.T) {
	h := newTestHandler(newMockServices())

	rec := httptest.NewRecorder()
	h.deleteProfile(rec, httptest.NewRequest(http.MethodDelete, "/api/users/profile", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
