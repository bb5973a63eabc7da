package models

import (
	"strings"
	"time"
)

type User struct {
	ID int `db:"id"`

	Email    string `db:"email"`
	Password string `db:"password"`
	Name     string `db:"name"`

	DateJoined time.Time  `db:"date_joined"`
	LastLogin  *time.Time `db:"last_login"`
}

func (u *User) BestName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// The superadmin is the single account allowed to manage other admin
// accounts. It is identified by exact (case-insensitive) email match.
func (u *User) IsSuperadmin(superadminEmail string) bool {
	return superadminEmail != "" && strings.EqualFold(u.Email, superadminEmail)
}
