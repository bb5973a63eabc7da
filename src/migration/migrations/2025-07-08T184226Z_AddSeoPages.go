package migrations

import (
	"context"
	"time"

	"git.noga.studio/noga/site/src/migration/types"
	"github.com/jackc/pgx/v5"
)

func init() {
	registerMigration(AddSeoPages{})
}

type AddSeoPages struct{}

func (m AddSeoPages) Version() types.MigrationVersion {
	return types.MigrationVersion(time.Date(2025, 7, 8, 18, 42, 26, 0, time.UTC))
}

func (m AddSeoPages) Name() string {
	return "AddSeoPages"
}

func (m AddSeoPages) Description() string {
	return "Adds per-page SEO metadata"
}

func (m AddSeoPages) Up(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		CREATE TABLE seo_pages (
			id SERIAL PRIMARY KEY,
			slug VARCHAR(255) NOT NULL,
			locale VARCHAR(8) NOT NULL,
			meta_title TEXT NOT NULL DEFAULT '',
			meta_description TEXT NOT NULL DEFAULT '',
			h1 TEXT NOT NULL DEFAULT '',
			canonical_url TEXT NOT NULL DEFAULT '',
			og_image TEXT NOT NULL DEFAULT '',
			UNIQUE (slug, locale)
		);
	`)
	return err
}

func (m AddSeoPages) Down(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		DROP TABLE seo_pages;
	`)
	return err
}
