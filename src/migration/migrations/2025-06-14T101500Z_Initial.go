package migrations

import (
	"context"
	"time"

	"git.noga.studio/noga/site/src/migration/types"
	"github.com/jackc/pgx/v5"
)

func init() {
	registerMigration(Initial{})
}

type Initial struct{}

func (m Initial) Version() types.MigrationVersion {
	return types.MigrationVersion(time.Date(2025, 6, 14, 10, 15, 0, 0, time.UTC))
}

func (m Initial) Name() string {
	return "Initial"
}

func (m Initial) Description() string {
	return "Create the content, blog, auth, and leads tables"
}

func (m Initial) Up(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		CREATE TABLE hero_sections (
			id SERIAL PRIMARY KEY,
			locale VARCHAR(8) NOT NULL UNIQUE,
			status VARCHAR(16) NOT NULL DEFAULT 'published',
			heading_top TEXT NOT NULL DEFAULT '',
			heading_bottom TEXT NOT NULL DEFAULT '',
			subheading_lines JSONB NOT NULL DEFAULT '[]',
			cta_label TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE stats_sections (
			id SERIAL PRIMARY KEY,
			locale VARCHAR(8) NOT NULL UNIQUE,
			status VARCHAR(16) NOT NULL DEFAULT 'published',
			tag TEXT NOT NULL DEFAULT '',
			title_top TEXT NOT NULL DEFAULT '',
			title_bottom TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE stats_items (
			id SERIAL PRIMARY KEY,
			section_id INT NOT NULL REFERENCES stats_sections (id) ON DELETE CASCADE,
			value TEXT NOT NULL DEFAULT '',
			note TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			ordering INT NOT NULL
		);

		CREATE TABLE program_sections (
			id SERIAL PRIMARY KEY,
			locale VARCHAR(8) NOT NULL UNIQUE,
			status VARCHAR(16) NOT NULL DEFAULT 'published',
			title_lines JSONB NOT NULL DEFAULT '[]',
			paragraphs JSONB NOT NULL DEFAULT '[]',
			button_more_label TEXT NOT NULL DEFAULT '',
			button_less_label TEXT NOT NULL DEFAULT '',
			preview_count INT NOT NULL DEFAULT 3
		);
		CREATE TABLE program_modules (
			id SERIAL PRIMARY KEY,
			section_id INT NOT NULL REFERENCES program_sections (id) ON DELETE CASCADE,
			title TEXT NOT NULL DEFAULT '',
			body TEXT NOT NULL DEFAULT '',
			ordering INT NOT NULL
		);

		CREATE TABLE who_is_for_sections (
			id SERIAL PRIMARY KEY,
			locale VARCHAR(8) NOT NULL UNIQUE,
			status VARCHAR(16) NOT NULL DEFAULT 'published',
			tag TEXT NOT NULL DEFAULT '',
			title_prefix TEXT NOT NULL DEFAULT '',
			title_suffix TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE who_is_for_items (
			id SERIAL PRIMARY KEY,
			section_id INT NOT NULL REFERENCES who_is_for_sections (id) ON DELETE CASCADE,
			number_label TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL DEFAULT '',
			bullets JSONB NOT NULL DEFAULT '[]',
			ordering INT NOT NULL
		);

		CREATE TABLE results_sections (
			id SERIAL PRIMARY KEY,
			locale VARCHAR(8) NOT NULL UNIQUE,
			status VARCHAR(16) NOT NULL DEFAULT 'published',
			title_top TEXT NOT NULL DEFAULT '',
			title_highlight TEXT NOT NULL DEFAULT '',
			bullets JSONB NOT NULL DEFAULT '[]',
			cta_label TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE advantages_sections (
			id SERIAL PRIMARY KEY,
			locale VARCHAR(8) NOT NULL UNIQUE,
			status VARCHAR(16) NOT NULL DEFAULT 'published',
			tag TEXT NOT NULL DEFAULT '',
			title_top TEXT NOT NULL DEFAULT '',
			title_bottom TEXT NOT NULL DEFAULT '',
			quote TEXT NOT NULL DEFAULT '',
			lead TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE advantages_cards (
			id SERIAL PRIMARY KEY,
			section_id INT NOT NULL REFERENCES advantages_sections (id) ON DELETE CASCADE,
			value TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			ordering INT NOT NULL
		);

		CREATE TABLE participation_sections (
			id SERIAL PRIMARY KEY,
			locale VARCHAR(8) NOT NULL UNIQUE,
			status VARCHAR(16) NOT NULL DEFAULT 'published',
			tag TEXT NOT NULL DEFAULT '',
			title_top TEXT NOT NULL DEFAULT '',
			title_bottom TEXT NOT NULL DEFAULT '',
			modal_close_label TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE participation_tariffs (
			id SERIAL PRIMARY KEY,
			section_id INT NOT NULL REFERENCES participation_sections (id) ON DELETE CASCADE,
			title TEXT NOT NULL DEFAULT '',
			mode TEXT NOT NULL DEFAULT '',
			bullets JSONB NOT NULL DEFAULT '[]',
			extras JSONB NOT NULL DEFAULT '[]',
			price TEXT NOT NULL DEFAULT '',
			old_price TEXT NOT NULL DEFAULT '',
			cta_label TEXT NOT NULL DEFAULT '',
			ordering INT NOT NULL
		);

		CREATE TABLE faq_sections (
			id SERIAL PRIMARY KEY,
			locale VARCHAR(8) NOT NULL UNIQUE,
			status VARCHAR(16) NOT NULL DEFAULT 'published',
			tag TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE faq_items (
			id SERIAL PRIMARY KEY,
			section_id INT NOT NULL REFERENCES faq_sections (id) ON DELETE CASCADE,
			question TEXT NOT NULL DEFAULT '',
			answer TEXT NOT NULL DEFAULT '',
			ordering INT NOT NULL
		);

		CREATE TABLE page_headers (
			id SERIAL PRIMARY KEY,
			page VARCHAR(32) NOT NULL,
			locale VARCHAR(8) NOT NULL,
			kicker TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL DEFAULT '',
			subtitle TEXT NOT NULL DEFAULT '',
			UNIQUE (page, locale)
		);

		CREATE TABLE sale_banners (
			id SERIAL PRIMARY KEY,
			locale VARCHAR(8) NOT NULL UNIQUE,
			enabled BOOLEAN NOT NULL DEFAULT FALSE,
			text TEXT NOT NULL DEFAULT '',
			button_label TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE site_settings (
			id INT PRIMARY KEY,
			telegram_url TEXT NOT NULL DEFAULT '',
			instagram_url TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE blog_posts (
			id SERIAL PRIMARY KEY,
			slug VARCHAR(255) NOT NULL,
			locale VARCHAR(8) NOT NULL,
			status VARCHAR(16) NOT NULL DEFAULT 'published',
			title TEXT NOT NULL DEFAULT '',
			subtitle TEXT NOT NULL DEFAULT '',
			excerpt TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			read_time VARCHAR(64) NOT NULL DEFAULT '',
			og_image TEXT NOT NULL DEFAULT '',
			meta_title TEXT NOT NULL DEFAULT '',
			meta_description TEXT NOT NULL DEFAULT '',
			published_at TIMESTAMP WITH TIME ZONE NOT NULL,
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL,
			UNIQUE (slug, locale)
		);

		CREATE TABLE admin_user (
			id SERIAL PRIMARY KEY,
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			name VARCHAR(255) NOT NULL DEFAULT '',
			date_joined TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
			last_login TIMESTAMP WITH TIME ZONE
		);

		CREATE TABLE sessions (
			id VARCHAR(40) PRIMARY KEY,
			email VARCHAR(255) NOT NULL,
			csrf_token VARCHAR(30) NOT NULL,
			expires_at TIMESTAMP WITH TIME ZONE NOT NULL
		);

		CREATE TABLE leads (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			contact_method VARCHAR(32) NOT NULL,
			contact_details TEXT NOT NULL,
			consent BOOLEAN NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	return err
}

func (m Initial) Down(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		DROP TABLE leads;
		DROP TABLE sessions;
		DROP TABLE admin_user;
		DROP TABLE blog_posts;
		DROP TABLE site_settings;
		DROP TABLE sale_banners;
		DROP TABLE page_headers;
		DROP TABLE faq_items;
		DROP TABLE faq_sections;
		DROP TABLE participation_tariffs;
		DROP TABLE participation_sections;
		DROP TABLE advantages_cards;
		DROP TABLE advantages_sections;
		DROP TABLE results_sections;
		DROP TABLE who_is_for_items;
		DROP TABLE who_is_for_sections;
		DROP TABLE program_modules;
		DROP TABLE program_sections;
		DROP TABLE stats_items;
		DROP TABLE stats_sections;
		DROP TABLE hero_sections;
	`)
	return err
}
