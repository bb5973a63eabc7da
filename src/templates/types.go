package templates

import (
	"html/template"

	"git.noga.studio/noga/site/src/models"
)

// BaseData is available to every page through the base layout.
type BaseData struct {
	Title           string
	MetaDescription string
	CanonicalUrl    string
	OgImage         string

	// "en" or "he". Dir is derived from it in the layout.
	Locale string

	CurrentUrl string
	LoginUrl   string
	LogoutUrl  string
	AdminUrl   string

	User    *User
	Session *Session

	SaleBanner *SaleBanner
	Settings   SiteSettings
}

type User struct {
	ID           int
	Email        string
	Name         string
	IsSuperadmin bool
}

type Session struct {
	CSRFToken string
}

type SaleBanner struct {
	Text        string
	ButtonLabel string
}

type SiteSettings struct {
	TelegramUrl  string
	InstagramUrl string
}

type BlogPostListItem struct {
	Title    string
	Subtitle string
	Excerpt  string
	ReadTime string
	Date     string
	Url      string
}

type BlogPost struct {
	Title    string
	Subtitle string
	Content  template.HTML
	ReadTime string
	Date     string
	OgImage  string
}

func UserToTemplate(u *models.User, superadminEmail string) User {
	return User{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.BestName(),
		IsSuperadmin: u.IsSuperadmin(superadminEmail),
	}
}

func SessionToTemplate(s *models.Session) Session {
	return Session{
		CSRFToken: s.CSRFToken,
	}
}
