package models

import (
	"encoding/json"
	"strings"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// LineItem is the canonical shape for bullet-style content. Legacy rows stored
// bullets as bare strings; newer rows store {text, muted} objects. We accept
// both on the way in and always write the object form back out.
type LineItem struct {
	Text  string `json:"text"`
	Muted bool   `json:"muted"`
}

func (li *LineItem) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "\"") {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*li = LineItem{Text: s}
		return nil
	}

	type plain LineItem
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*li = LineItem(p)
	return nil
}

type HeroSection struct {
	ID     int    `db:"id"`
	Locale string `db:"locale"`
	Status Status `db:"status"`

	HeadingTop      string   `db:"heading_top"`
	HeadingBottom   string   `db:"heading_bottom"`
	SubheadingLines []string `db:"subheading_lines"`
	CtaLabel        string   `db:"cta_label"`
}

type StatsSection struct {
	ID     int    `db:"id"`
	Locale string `db:"locale"`
	Status Status `db:"status"`

	Tag         string `db:"tag"`
	TitleTop    string `db:"title_top"`
	TitleBottom string `db:"title_bottom"`
	Description string `db:"description"`
}

type StatsItem struct {
	ID        int `db:"id"`
	SectionID int `db:"section_id"`

	Value       string `db:"value"`
	Note        string `db:"note"`
	Description string `db:"description"`
	Ordering    int    `db:"ordering"`
}

type ProgramSection struct {
	ID     int    `db:"id"`
	Locale string `db:"locale"`
	Status Status `db:"status"`

	TitleLines      []string `db:"title_lines"`
	Paragraphs      []string `db:"paragraphs"`
	ButtonMoreLabel string   `db:"button_more_label"`
	ButtonLessLabel string   `db:"button_less_label"`

	// How many modules are visible before expanding. Always at least 1.
	PreviewCount int `db:"preview_count"`
}

type ProgramModule struct {
	ID        int `db:"id"`
	SectionID int `db:"section_id"`

	Title    string `db:"title"`
	Body     string `db:"body"`
	Ordering int    `db:"ordering"`
}

type WhoIsForSection struct {
	ID     int    `db:"id"`
	Locale string `db:"locale"`
	Status Status `db:"status"`

	Tag         string `db:"tag"`
	TitlePrefix string `db:"title_prefix"`
	TitleSuffix string `db:"title_suffix"`
}

type WhoIsForItem struct {
	ID        int `db:"id"`
	SectionID int `db:"section_id"`

	NumberLabel string   `db:"number_label"`
	Title       string   `db:"title"`
	Bullets     []string `db:"bullets"`
	Ordering    int      `db:"ordering"`
}

type ResultsSection struct {
	ID     int    `db:"id"`
	Locale string `db:"locale"`
	Status Status `db:"status"`

	TitleTop       string   `db:"title_top"`
	TitleHighlight string   `db:"title_highlight"`
	Bullets        []string `db:"bullets"`
	CtaLabel       string   `db:"cta_label"`
}

type AdvantagesSection struct {
	ID     int    `db:"id"`
	Locale string `db:"locale"`
	Status Status `db:"status"`

	Tag         string `db:"tag"`
	TitleTop    string `db:"title_top"`
	TitleBottom string `db:"title_bottom"`
	Quote       string `db:"quote"`
	Lead        string `db:"lead"`
}

type AdvantagesCard struct {
	ID        int `db:"id"`
	SectionID int `db:"section_id"`

	Value       string `db:"value"`
	Description string `db:"description"`
	Ordering    int    `db:"ordering"`
}

type ParticipationSection struct {
	ID     int    `db:"id"`
	Locale string `db:"locale"`
	Status Status `db:"status"`

	Tag             string `db:"tag"`
	TitleTop        string `db:"title_top"`
	TitleBottom     string `db:"title_bottom"`
	ModalCloseLabel string `db:"modal_close_label"`
}

type Tariff struct {
	ID        int `db:"id"`
	SectionID int `db:"section_id"`

	Title    string     `db:"title"`
	Mode     string     `db:"mode"`
	Bullets  []LineItem `db:"bullets"`
	Extras   []LineItem `db:"extras"`
	Price    string     `db:"price"`
	OldPrice string     `db:"old_price"`
	CtaLabel string     `db:"cta_label"`
	Ordering int        `db:"ordering"`
}

type FaqSection struct {
	ID     int    `db:"id"`
	Locale string `db:"locale"`
	Status Status `db:"status"`

	Tag string `db:"tag"`
}

type FaqItem struct {
	ID        int `db:"id"`
	SectionID int `db:"section_id"`

	Question string `db:"question"`
	Answer   string `db:"answer"`
	Ordering int    `db:"ordering"`
}

// PageHeader is the kicker/title/subtitle block at the top of the about and
// blog pages, one row per (page, locale).
type PageHeader struct {
	ID     int    `db:"id"`
	Page   string `db:"page"`
	Locale string `db:"locale"`

	Kicker   string `db:"kicker"`
	Title    string `db:"title"`
	Subtitle string `db:"subtitle"`
}

type SaleBanner struct {
	ID     int    `db:"id"`
	Locale string `db:"locale"`

	Enabled     bool   `db:"enabled"`
	Text        string `db:"text"`
	ButtonLabel string `db:"button_label"`
}

// SiteSettings is a singleton (id = 1).
type SiteSettings struct {
	ID int `db:"id"`

	TelegramUrl  string `db:"telegram_url"`
	InstagramUrl string `db:"instagram_url"`
}

// SeoPage holds per-page SEO metadata, keyed by (slug, locale).
type SeoPage struct {
	ID     int    `db:"id"`
	Slug   string `db:"slug"`
	Locale string `db:"locale"`

	MetaTitle       string `db:"meta_title"`
	MetaDescription string `db:"meta_description"`
	H1              string `db:"h1"`
	CanonicalUrl    string `db:"canonical_url"`
	OgImage         string `db:"og_image"`
}
