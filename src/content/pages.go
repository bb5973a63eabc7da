package content

import (
	"context"

	"git.noga.studio/noga/site/src/db"
	"git.noga.studio/noga/site/src/models"
	"git.noga.studio/noga/site/src/oops"
)

// Page names for page_headers rows.
const (
	PageAbout = "about"
	PageBlog  = "blog"
)

func FetchPageHeader(ctx context.Context, conn db.ConnOrTx, page string, locale string) (*models.PageHeader, error) {
	return db.QueryOne[models.PageHeader](ctx, conn,
		"SELECT * FROM page_headers WHERE page = $1 AND locale = $2",
		page, locale,
	)
}

func SavePageHeader(ctx context.Context, conn db.ConnOrTx, header models.PageHeader) error {
	_, err := conn.Exec(ctx,
		`
		INSERT INTO page_headers (page, locale, kicker, title, subtitle)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (page, locale) DO UPDATE SET
			kicker = EXCLUDED.kicker,
			title = EXCLUDED.title,
			subtitle = EXCLUDED.subtitle
		`,
		header.Page, header.Locale, header.Kicker, header.Title, header.Subtitle,
	)
	if err != nil {
		return oops.New(err, "failed to save page header")
	}
	return nil
}

func FetchSaleBanner(ctx context.Context, conn db.ConnOrTx, locale string) (*models.SaleBanner, error) {
	return db.QueryOne[models.SaleBanner](ctx, conn,
		"SELECT * FROM sale_banners WHERE locale = $1",
		locale,
	)
}

func SaveSaleBanner(ctx context.Context, conn db.ConnOrTx, banner models.SaleBanner) error {
	_, err := conn.Exec(ctx,
		`
		INSERT INTO sale_banners (locale, enabled, text, button_label)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (locale) DO UPDATE SET
			enabled = EXCLUDED.enabled,
			text = EXCLUDED.text,
			button_label = EXCLUDED.button_label
		`,
		banner.Locale, banner.Enabled, banner.Text, banner.ButtonLabel,
	)
	if err != nil {
		return oops.New(err, "failed to save sale banner")
	}
	return nil
}

// Site settings are a single shared row, not per-locale.
func FetchSiteSettings(ctx context.Context, conn db.ConnOrTx) (*models.SiteSettings, error) {
	return db.QueryOne[models.SiteSettings](ctx, conn,
		"SELECT * FROM site_settings WHERE id = 1",
	)
}

func SaveSiteSettings(ctx context.Context, conn db.ConnOrTx, settings models.SiteSettings) error {
	_, err := conn.Exec(ctx,
		`
		INSERT INTO site_settings (id, telegram_url, instagram_url)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET
			telegram_url = EXCLUDED.telegram_url,
			instagram_url = EXCLUDED.instagram_url
		`,
		settings.TelegramUrl, settings.InstagramUrl,
	)
	if err != nil {
		return oops.New(err, "failed to save site settings")
	}
	return nil
}

func FetchSeoPage(ctx context.Context, conn db.ConnOrTx, slug string, locale string) (*models.SeoPage, error) {
	return db.QueryOne[models.SeoPage](ctx, conn,
		"SELECT * FROM seo_pages WHERE slug = $1 AND locale = $2",
		slug, locale,
	)
}

func FetchSeoPages(ctx context.Context, conn db.ConnOrTx, locale string) ([]*models.SeoPage, error) {
	pages, err := db.Query[models.SeoPage](ctx, conn,
		"SELECT * FROM seo_pages WHERE locale = $1 ORDER BY slug",
		locale,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch seo pages")
	}
	return pages, nil
}

func SaveSeoPage(ctx context.Context, conn db.ConnOrTx, page models.SeoPage) error {
	if !IsValidSlug(page.Slug) {
		return ErrInvalidSlug
	}

	_, err := conn.Exec(ctx,
		`
		INSERT INTO seo_pages (slug, locale, meta_title, meta_description, h1, canonical_url, og_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (slug, locale) DO UPDATE SET
			meta_title = EXCLUDED.meta_title,
			meta_description = EXCLUDED.meta_description,
			h1 = EXCLUDED.h1,
			canonical_url = EXCLUDED.canonical_url,
			og_image = EXCLUDED.og_image
		`,
		page.Slug, page.Locale, page.MetaTitle, page.MetaDescription, page.H1, page.CanonicalUrl, page.OgImage,
	)
	if err != nil {
		return oops.New(err, "failed to save seo page")
	}
	return nil
}
