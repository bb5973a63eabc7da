package migrations

import (
	"context"
	"time"

	"git.noga.studio/noga/site/src/migration/types"
	"github.com/jackc/pgx/v5"
)

func init() {
	registerMigration(SeedSiteSettings{})
}

type SeedSiteSettings struct{}

func (m SeedSiteSettings) Version() types.MigrationVersion {
	return types.MigrationVersion(time.Date(2025, 7, 21, 9, 30, 12, 0, time.UTC))
}

func (m SeedSiteSettings) Name() string {
	return "SeedSiteSettings"
}

func (m SeedSiteSettings) Description() string {
	return "Seeds the singleton site settings row"
}

func (m SeedSiteSettings) Up(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO site_settings (id, telegram_url, instagram_url)
		VALUES (1, '', '')
		ON CONFLICT (id) DO NOTHING;
	`)
	return err
}

func (m SeedSiteSettings) Down(ctx context.Context, tx pgx.Tx) error {
	// Leave the row in place; it is harmless and may hold live data.
	return nil
}
