package relay

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mvirden/Confidant_Go/internal/auth"
	"github.com/mvirden/Confidant_Go/internal/domain"
)

// stubAuthenticator accepts one fixed token
type stubAuthenticator struct {
	token  string
	claims *auth.Claims
}

func (s *stubAuthenticator) Authenticate(tokenString string) (*auth.Claims, error) {
	if tokenString == s.token {
		return s.claims, nil
	}
	return nil, domain.ErrInvalidToken
}

func TestHandler_RejectsInvalidToken(t *testing.T) {
	hub := NewHub()
	defer hub.Stop()

	handler := Handler(hub, &stubAuthenticator{token: "good", claims: &auth.Claims{UserID: "user-1"}})

	tests := []struct {
		name    string
		request func() *http.Request
	}{
		{
			name: "no token at all",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/relay/connect", nil)
			},
		},
		{
			name: "bad header token",
			request: func() *http.Request {
				r := httptest.NewRequest(http.MethodGet, "/relay/connect", nil)
				r.Header.Set("Authorization", "Bearer bad")
				return r
			},
		},
		{
			name: "bad query token",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/relay/connect?token=bad", nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler(rec, tt.request())

			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Contains(t, rec.Body.String(), "Invalid token")
			assert.Equal(t, 0, hub.ConnectionCount(), "rejected request must not join the hub")
		})
	}
}

func TestHandler_RefusesAfterShutdown(t *testing.T) {
	hub := NewHub()
	hub.Stop()

	handler := Handler(hub, &stubAuthenticator{token: "good", claims: &auth.Claims{UserID: "user-1"}})

	r := httptest.NewRequest(http.MethodGet, "/relay/connect?token=good", nil)
	rec := httptest.NewRecorder()
	handler(rec, r)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandler_StreamsConnectedEvent(t *testing.T) {
	hub := NewHub()

	handler := Handler(hub, &stubAuthenticator{token: "good", claims: &auth.Claims{UserID: "user-1", Username: "alice"}})

	r := httptest.NewRequest(http.MethodGet, "/relay/connect", nil)
	r.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()

	// Stopping the hub closes the client channel, which ends the event
	// loop once the initial event has been written.
	done := make(chan struct{})
	go func() {
		defer close(done)
		handler(rec, r)
	}()

	// Wait for the connection to land, then shut down to unblock the loop
	for hub.ConnectionCount() == 0 {
		time.Sleep(time.Millisecond)
	}
	hub.Stop()
	<-done

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "event: connected\n")
	assert.Contains(t, body, `"user_id":"user-1"`)
	assert.Contains(t, body, `"connection_id"`)
}

func TestBearerToken(t *testing.T) {
	withHeader := httptest.NewRequest(http.MethodGet, "/relay/connect", nil)
	withHeader.Header.Set("Authorization", "Bearer header-token")
	assert.Equal(t, "header-token", bearerToken(withHeader))

	withQuery := httptest.NewRequest(http.MethodGet, "/relay/connect?token=query-token", nil)
	assert.Equal(t, "query-token", bearerToken(withQuery))

	// Header wins when both are present
	both := httptest.NewRequest(http.MethodGet, "/relay/connect?token=query-token", nil)
	both.Header.Set("Authorization", "Bearer header-token")
	assert.Equal(t, "header-token", bearerToken(both))

	neither := httptest.NewRequest(http.MethodGet, "/relay/connect", nil)
	assert.Equal(t, "", bearerToken(neither))
}
