package auth

import (
	"context"
	"testing"
	"time"

	"git.noga.studio/noga/site/src/models"
	"github.com/stretchr/testify/assert"
)

func TestNewSessionCookie(t *testing.T) {
	session := &models.Session{
		ID:        "sessionid",
		ExpiresAt: time.Now().Add(3 * time.Hour).Round(time.Second),
	}

	cookie := NewSessionCookie(session)
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, "sessionid", cookie.Value)
	assert.True(t, cookie.HttpOnly)

	// The cookie lives exactly as long as the session row, so re-issuing it
	// after a refresh extends it in the browser too.
	assert.Equal(t, session.ExpiresAt, cookie.Expires)
}

func TestRefreshSessionOnlyWritesNearExpiry(t *testing.T) {
	expiry := time.Now().Add(time.Hour)
	session := &models.Session{ID: "sessionid", ExpiresAt: expiry}

	// The conn is never touched for a session this far from expiry.
	refreshed, err := RefreshSession(context.Background(), nil, session)
	assert.NoError(t, err)
	assert.False(t, refreshed)
	assert.Equal(t, expiry, session.ExpiresAt)
}
