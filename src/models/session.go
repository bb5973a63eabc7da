package models

import "time"

type Session struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	CSRFToken string    `db:"csrf_token"`
	ExpiresAt time.Time `db:"expires_at"`
}
