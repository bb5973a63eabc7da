package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"time"

	"git.noga.studio/noga/site/src/config"
	"git.noga.studio/noga/site/src/db"
	"git.noga.studio/noga/site/src/jobs"
	"git.noga.studio/noga/site/src/models"
	"git.noga.studio/noga/site/src/oops"
	"git.noga.studio/noga/site/src/utils"
	"github.com/jackc/pgx/v5/pgxpool"
)

const SessionCookieName = "NogaSession"
const CSRFFieldName = "csrf_token"

const sessionDuration = time.Hour * 24 * 14

// Sessions nearing expiry get extended instead of forcing a re-login.
const refreshThreshold = time.Minute * 5

func makeSessionId() string {
	return randomToken(40)
}

func makeCSRFToken() string {
	return randomToken(30)
}

func randomToken(length int) string {
	tokenBytes := make([]byte, length)
	_, err := io.ReadFull(rand.Reader, tokenBytes)
	if err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(tokenBytes)[:length]
}

var ErrNoSession = errors.New("no session found")

func GetSession(ctx context.Context, conn db.ConnOrTx, id string) (*models.Session, error) {
	sess, err := db.QueryOne[models.Session](ctx, conn, "SELECT * FROM sessions WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return nil, ErrNoSession
		}
		return nil, oops.New(err, "failed to get session")
	}
	if sess.ExpiresAt.Before(time.Now()) {
		return nil, ErrNoSession
	}

	return sess, nil
}

func CreateSession(ctx context.Context, conn db.ConnOrTx, email string) (*models.Session, error) {
	session := models.Session{
		ID:        makeSessionId(),
		Email:     email,
		CSRFToken: makeCSRFToken(),
		ExpiresAt: time.Now().Add(sessionDuration),
	}

	_, err := conn.Exec(ctx,
		"INSERT INTO sessions (id, email, csrf_token, expires_at) VALUES ($1, $2, $3, $4)",
		session.ID, session.Email, session.CSRFToken, session.ExpiresAt,
	)
	if err != nil {
		return nil, oops.New(err, "failed to persist session")
	}

	return &session, nil
}

// RefreshSession pushes the expiry out when the session is close to running
// out. Callers can invoke this on every authenticated request; it only writes
// when the session is within the refresh threshold, and reports whether it
// did so the caller can re-issue the cookie.
func RefreshSession(ctx context.Context, conn db.ConnOrTx, session *models.Session) (bool, error) {
	if time.Until(session.ExpiresAt) > refreshThreshold {
		return false, nil
	}

	newExpiry := time.Now().Add(sessionDuration)
	_, err := conn.Exec(ctx,
		"UPDATE sessions SET expires_at = $1 WHERE id = $2",
		newExpiry, session.ID,
	)
	if err != nil {
		return false, oops.New(err, "failed to refresh session")
	}
	session.ExpiresAt = newExpiry

	return true, nil
}

// Deletes a session by id. Deleting a nonexistent session is not an error.
func DeleteSession(ctx context.Context, conn db.ConnOrTx, id string) error {
	_, err := conn.Exec(ctx, "DELETE FROM sessions WHERE id = $1", id)
	if err != nil {
		return oops.New(err, "failed to delete session")
	}

	return nil
}

func DeleteSessionsForUser(ctx context.Context, conn db.ConnOrTx, email string) error {
	_, err := conn.Exec(ctx, "DELETE FROM sessions WHERE LOWER(email) = LOWER($1)", email)
	if err != nil {
		return oops.New(err, "failed to delete user sessions")
	}

	return nil
}

// NewSessionCookie mirrors the session's own expiry so the browser keeps the
// cookie exactly as long as the DB row is valid, including after a refresh.
func NewSessionCookie(session *models.Session) *http.Cookie {
	return &http.Cookie{
		Name:  SessionCookieName,
		Value: session.ID,

		Domain:  config.Config.Auth.CookieDomain,
		Path:    "/",
		Expires: session.ExpiresAt,

		Secure:   config.Config.Auth.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

var DeleteSessionCookie = &http.Cookie{
	Name:   SessionCookieName,
	Domain: config.Config.Auth.CookieDomain,
	Path:   "/",
	MaxAge: -1,
}

func DeleteExpiredSessions(ctx context.Context, conn db.ConnOrTx) (int64, error) {
	tag, err := conn.Exec(ctx, "DELETE FROM sessions WHERE expires_at <= CURRENT_TIMESTAMP")
	if err != nil {
		return 0, oops.New(err, "failed to delete expired sessions")
	}

	return tag.RowsAffected(), nil
}

func PeriodicallyDeleteExpiredSessions(conn *pgxpool.Pool) *jobs.Job {
	job := jobs.New("periodically delete expired sessions")
	go func() {
		defer job.Finish()

		t := time.NewTicker(1 * time.Minute)
		for {
			select {
			case <-t.C:
				err := func() (err error) {
					defer utils.RecoverPanicAsError(&err)

					n, err := DeleteExpiredSessions(job.Ctx, conn)
					if err == nil {
						if n > 0 {
							job.Logger.Info().Int64("num deleted sessions", n).Msg("Deleted expired sessions")
						}
					} else {
						job.Logger.Error().Err(err).Msg("Failed to delete expired sessions")
					}
					return nil
				}()
				if err != nil {
					job.Logger.Error().Err(err).Msg("Panicked in PeriodicallyDeleteExpiredSessions")
				}
			case <-job.Canceled():
				return
			}
		}
	}()
	return job
}
