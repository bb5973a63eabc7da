package models

import "time"

type BlogPost struct {
	ID     int    `db:"id"`
	Slug   string `db:"slug"`
	Locale string `db:"locale"`
	Status Status `db:"status"`

	Title    string `db:"title"`
	Subtitle string `db:"subtitle"`
	Excerpt  string `db:"excerpt"`

	// Canonical content is an HTML string. Legacy rows stored a JSON array of
	// paragraph strings; those get normalized on read (see content package).
	Content string `db:"content"`

	ReadTime string `db:"read_time"`
	OgImage  string `db:"og_image"`

	MetaTitle       string `db:"meta_title"`
	MetaDescription string `db:"meta_description"`

	PublishedAt time.Time `db:"published_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
