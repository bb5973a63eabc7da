package models

import (
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	ID uuid.UUID `db:"id"`

	Name           string `db:"name"`
	ContactMethod  string `db:"contact_method"`
	ContactDetails string `db:"contact_details"`
	Consent        bool   `db:"consent"`

	CreatedAt time.Time `db:"created_at"`
}
