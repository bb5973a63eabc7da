package content

import (
	"context"
	"errors"

	"git.noga.studio/noga/site/src/db"
	"git.noga.studio/noga/site/src/models"
	"git.noga.studio/noga/site/src/oops"
)

/*
Every landing section follows the same storage pattern: one parent row per
locale (unique on locale), optionally owning ordered child rows. Fetch
helpers come in two flavors: the public one filters to published rows and
returns db.NotFound when there is nothing to show (callers then fall back to
default copy), the ForEdit one loads whatever row exists for the locale.

Saves always write status 'published' and replace children wholesale inside
one transaction, renumbering ordering from the slice position. A failed save
therefore never leaves a section half-written.
*/

// orderedChildren renumbers child rows 1..N in slice order, overwriting
// whatever ordering values came in with the rows.
func orderedChildren[T any](items []T, set func(*T, int)) []T {
	for i := range items {
		set(&items[i], i+1)
	}
	return items
}

func FetchHero(ctx context.Context, conn db.ConnOrTx, locale string) (*models.HeroSection, error) {
	return db.QueryOne[models.HeroSection](ctx, conn,
		`
		SELECT *
		FROM hero_sections
		WHERE locale = $1 AND status = $2
		LIMIT 1
		`,
		locale, models.StatusPublished,
	)
}

func FetchHeroForEdit(ctx context.Context, conn db.ConnOrTx, locale string) (*models.HeroSection, error) {
	return db.QueryOne[models.HeroSection](ctx, conn,
		`
		SELECT *
		FROM hero_sections
		WHERE locale = $1
		LIMIT 1
		`,
		locale,
	)
}

func SaveHero(ctx context.Context, conn db.ConnOrTx, hero models.HeroSection) error {
	_, err := conn.Exec(ctx,
		`
		INSERT INTO hero_sections (locale, status, heading_top, heading_bottom, subheading_lines, cta_label)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (locale) DO UPDATE SET
			status = EXCLUDED.status,
			heading_top = EXCLUDED.heading_top,
			heading_bottom = EXCLUDED.heading_bottom,
			subheading_lines = EXCLUDED.subheading_lines,
			cta_label = EXCLUDED.cta_label
		`,
		hero.Locale, models.StatusPublished, hero.HeadingTop, hero.HeadingBottom, hero.SubheadingLines, hero.CtaLabel,
	)
	if err != nil {
		return oops.New(err, "failed to save hero section")
	}
	return nil
}

type StatsContent struct {
	Section models.StatsSection
	Items   []models.StatsItem
}

func FetchStats(ctx context.Context, conn db.ConnOrTx, locale string) (*StatsContent, error) {
	return fetchStats(ctx, conn, locale, true)
}

func FetchStatsForEdit(ctx context.Context, conn db.ConnOrTx, locale string) (*StatsContent, error) {
	return fetchStats(ctx, conn, locale, false)
}

func fetchStats(ctx context.Context, conn db.ConnOrTx, locale string, publishedOnly bool) (*StatsContent, error) {
	query := "SELECT * FROM stats_sections WHERE locale = $1"
	args := []any{locale}
	if publishedOnly {
		query += " AND status = $2"
		args = append(args, models.StatusPublished)
	}
	section, err := db.QueryOne[models.StatsSection](ctx, conn, query+" LIMIT 1", args...)
	if err != nil {
		return nil, err
	}

	items, err := db.Query[models.StatsItem](ctx, conn,
		`
		SELECT *
		FROM stats_items
		WHERE section_id = $1
		ORDER BY ordering
		`,
		section.ID,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch stats items")
	}

	result := StatsContent{Section: *section}
	for _, item := range items {
		result.Items = append(result.Items, *item)
	}
	return &result, nil
}

func SaveStats(ctx context.Context, conn db.ConnOrTx, section models.StatsSection, items []models.StatsItem) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return oops.New(err, "failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	sectionId, err := db.QueryOneScalar[int](ctx, tx,
		`
		INSERT INTO stats_sections (locale, status, tag, title_top, title_bottom, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (locale) DO UPDATE SET
			status = EXCLUDED.status,
			tag = EXCLUDED.tag,
			title_top = EXCLUDED.title_top,
			title_bottom = EXCLUDED.title_bottom,
			description = EXCLUDED.description
		RETURNING id
		`,
		section.Locale, models.StatusPublished, section.Tag, section.TitleTop, section.TitleBottom, section.Description,
	)
	if err != nil {
		return oops.New(err, "failed to upsert stats section")
	}

	_, err = tx.Exec(ctx, "DELETE FROM stats_items WHERE section_id = $1", sectionId)
	if err != nil {
		return oops.New(err, "failed to clear stats items")
	}
	for _, item := range orderedChildren(items, func(item *models.StatsItem, n int) { item.Ordering = n }) {
		_, err = tx.Exec(ctx,
			`
			INSERT INTO stats_items (section_id, value, note, description, ordering)
			VALUES ($1, $2, $3, $4, $5)
			`,
			sectionId, item.Value, item.Note, item.Description, item.Ordering,
		)
		if err != nil {
			return oops.New(err, "failed to insert stats item")
		}
	}

	return tx.Commit(ctx)
}

type ProgramContent struct {
	Section models.ProgramSection
	Modules []models.ProgramModule
}

func FetchProgram(ctx context.Context, conn db.ConnOrTx, locale string) (*ProgramContent, error) {
	return fetchProgram(ctx, conn, locale, true)
}

func FetchProgramForEdit(ctx context.Context, conn db.ConnOrTx, locale string) (*ProgramContent, error) {
	return fetchProgram(ctx, conn, locale, false)
}

func fetchProgram(ctx context.Context, conn db.ConnOrTx, locale string, publishedOnly bool) (*ProgramContent, error) {
	query := "SELECT * FROM program_sections WHERE locale = $1"
	args := []any{locale}
	if publishedOnly {
		query += " AND status = $2"
		args = append(args, models.StatusPublished)
	}
	section, err := db.QueryOne[models.ProgramSection](ctx, conn, query+" LIMIT 1", args...)
	if err != nil {
		return nil, err
	}

	modules, err := db.Query[models.ProgramModule](ctx, conn,
		`
		SELECT *
		FROM program_modules
		WHERE section_id = $1
		ORDER BY ordering
		`,
		section.ID,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch program modules")
	}

	result := ProgramContent{Section: *section}
	for _, module := range modules {
		result.Modules = append(result.Modules, *module)
	}
	return &result, nil
}

var ErrBadPreviewCount = errors.New("preview count must be at least 1")

func SaveProgram(ctx context.Context, conn db.ConnOrTx, section models.ProgramSection, modules []models.ProgramModule) error {
	if section.PreviewCount < 1 {
		return ErrBadPreviewCount
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		return oops.New(err, "failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	sectionId, err := db.QueryOneScalar[int](ctx, tx,
		`
		INSERT INTO program_sections (locale, status, title_lines, paragraphs, button_more_label, button_less_label, preview_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (locale) DO UPDATE SET
			status = EXCLUDED.status,
			title_lines = EXCLUDED.title_lines,
			paragraphs = EXCLUDED.paragraphs,
			button_more_label = EXCLUDED.button_more_label,
			button_less_label = EXCLUDED.button_less_label,
			preview_count = EXCLUDED.preview_count
		RETURNING id
		`,
		section.Locale, models.StatusPublished, section.TitleLines, section.Paragraphs,
		section.ButtonMoreLabel, section.ButtonLessLabel, section.PreviewCount,
	)
	if err != nil {
		return oops.New(err, "failed to upsert program section")
	}

	_, err = tx.Exec(ctx, "DELETE FROM program_modules WHERE section_id = $1", sectionId)
	if err != nil {
		return oops.New(err, "failed to clear program modules")
	}
	for _, module := range orderedChildren(modules, func(module *models.ProgramModule, n int) { module.Ordering = n }) {
		_, err = tx.Exec(ctx,
			`
			INSERT INTO program_modules (section_id, title, body, ordering)
			VALUES ($1, $2, $3, $4)
			`,
			sectionId, module.Title, module.Body, module.Ordering,
		)
		if err != nil {
			return oops.New(err, "failed to insert program module")
		}
	}

	return tx.Commit(ctx)
}

type WhoIsForContent struct {
	Section models.WhoIsForSection
	Items   []models.WhoIsForItem
}

func FetchWhoIsFor(ctx context.Context, conn db.ConnOrTx, locale string) (*WhoIsForContent, error) {
	return fetchWhoIsFor(ctx, conn, locale, true)
}

func FetchWhoIsForForEdit(ctx context.Context, conn db.ConnOrTx, locale string) (*WhoIsForContent, error) {
	return fetchWhoIsFor(ctx, conn, locale, false)
}

func fetchWhoIsFor(ctx context.Context, conn db.ConnOrTx, locale string, publishedOnly bool) (*WhoIsForContent, error) {
	query := "SELECT * FROM who_is_for_sections WHERE locale = $1"
	args := []any{locale}
	if publishedOnly {
		query += " AND status = $2"
		args = append(args, models.StatusPublished)
	}
	section, err := db.QueryOne[models.WhoIsForSection](ctx, conn, query+" LIMIT 1", args...)
	if err != nil {
		return nil, err
	}

	items, err := db.Query[models.WhoIsForItem](ctx, conn,
		`
		SELECT *
		FROM who_is_for_items
		WHERE section_id = $1
		ORDER BY ordering
		`,
		section.ID,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch who-is-for items")
	}

	result := WhoIsForContent{Section: *section}
	for _, item := range items {
		result.Items = append(result.Items, *item)
	}
	return &result, nil
}

func SaveWhoIsFor(ctx context.Context, conn db.ConnOrTx, section models.WhoIsForSection, items []models.WhoIsForItem) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return oops.New(err, "failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	sectionId, err := db.QueryOneScalar[int](ctx, tx,
		`
		INSERT INTO who_is_for_sections (locale, status, tag, title_prefix, title_suffix)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (locale) DO UPDATE SET
			status = EXCLUDED.status,
			tag = EXCLUDED.tag,
			title_prefix = EXCLUDED.title_prefix,
			title_suffix = EXCLUDED.title_suffix
		RETURNING id
		`,
		section.Locale, models.StatusPublished, section.Tag, section.TitlePrefix, section.TitleSuffix,
	)
	if err != nil {
		return oops.New(err, "failed to upsert who-is-for section")
	}

	_, err = tx.Exec(ctx, "DELETE FROM who_is_for_items WHERE section_id = $1", sectionId)
	if err != nil {
		return oops.New(err, "failed to clear who-is-for items")
	}
	for _, item := range orderedChildren(items, func(item *models.WhoIsForItem, n int) { item.Ordering = n }) {
		_, err = tx.Exec(ctx,
			`
			INSERT INTO who_is_for_items (section_id, number_label, title, bullets, ordering)
			VALUES ($1, $2, $3, $4, $5)
			`,
			sectionId, item.NumberLabel, item.Title, item.Bullets, item.Ordering,
		)
		if err != nil {
			return oops.New(err, "failed to insert who-is-for item")
		}
	}

	return tx.Commit(ctx)
}

func FetchResults(ctx context.Context, conn db.ConnOrTx, locale string) (*models.ResultsSection, error) {
	return db.QueryOne[models.ResultsSection](ctx, conn,
		`
		SELECT *
		FROM results_sections
		WHERE locale = $1 AND status = $2
		LIMIT 1
		`,
		locale, models.StatusPublished,
	)
}

func FetchResultsForEdit(ctx context.Context, conn db.ConnOrTx, locale string) (*models.ResultsSection, error) {
	return db.QueryOne[models.ResultsSection](ctx, conn,
		`
		SELECT *
		FROM results_sections
		WHERE locale = $1
		LIMIT 1
		`,
		locale,
	)
}

func SaveResults(ctx context.Context, conn db.ConnOrTx, results models.ResultsSection) error {
	_, err := conn.Exec(ctx,
		`
		INSERT INTO results_sections (locale, status, title_top, title_highlight, bullets, cta_label)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (locale) DO UPDATE SET
			status = EXCLUDED.status,
			title_top = EXCLUDED.title_top,
			title_highlight = EXCLUDED.title_highlight,
			bullets = EXCLUDED.bullets,
			cta_label = EXCLUDED.cta_label
		`,
		results.Locale, models.StatusPublished, results.TitleTop, results.TitleHighlight, results.Bullets, results.CtaLabel,
	)
	if err != nil {
		return oops.New(err, "failed to save results section")
	}
	return nil
}

type AdvantagesContent struct {
	Section models.AdvantagesSection
	Cards   []models.AdvantagesCard
}

func FetchAdvantages(ctx context.Context, conn db.ConnOrTx, locale string) (*AdvantagesContent, error) {
	return fetchAdvantages(ctx, conn, locale, true)
}

func FetchAdvantagesForEdit(ctx context.Context, conn db.ConnOrTx, locale string) (*AdvantagesContent, error) {
	return fetchAdvantages(ctx, conn, locale, false)
}

func fetchAdvantages(ctx context.Context, conn db.ConnOrTx, locale string, publishedOnly bool) (*AdvantagesContent, error) {
	query := "SELECT * FROM advantages_sections WHERE locale = $1"
	args := []any{locale}
	if publishedOnly {
		query += " AND status = $2"
		args = append(args, models.StatusPublished)
	}
	section, err := db.QueryOne[models.AdvantagesSection](ctx, conn, query+" LIMIT 1", args...)
	if err != nil {
		return nil, err
	}

	cards, err := db.Query[models.AdvantagesCard](ctx, conn,
		`
		SELECT *
		FROM advantages_cards
		WHERE section_id = $1
		ORDER BY ordering
		`,
		section.ID,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch advantages cards")
	}

	result := AdvantagesContent{Section: *section}
	for _, card := range cards {
		result.Cards = append(result.Cards, *card)
	}
	return &result, nil
}

func SaveAdvantages(ctx context.Context, conn db.ConnOrTx, section models.AdvantagesSection, cards []models.AdvantagesCard) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return oops.New(err, "failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	sectionId, err := db.QueryOneScalar[int](ctx, tx,
		`
		INSERT INTO advantages_sections (locale, status, tag, title_top, title_bottom, quote, lead)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (locale) DO UPDATE SET
			status = EXCLUDED.status,
			tag = EXCLUDED.tag,
			title_top = EXCLUDED.title_top,
			title_bottom = EXCLUDED.title_bottom,
			quote = EXCLUDED.quote,
			lead = EXCLUDED.lead
		RETURNING id
		`,
		section.Locale, models.StatusPublished, section.Tag, section.TitleTop, section.TitleBottom, section.Quote, section.Lead,
	)
	if err != nil {
		return oops.New(err, "failed to upsert advantages section")
	}

	_, err = tx.Exec(ctx, "DELETE FROM advantages_cards WHERE section_id = $1", sectionId)
	if err != nil {
		return oops.New(err, "failed to clear advantages cards")
	}
	for _, card := range orderedChildren(cards, func(card *models.AdvantagesCard, n int) { card.Ordering = n }) {
		_, err = tx.Exec(ctx,
			`
			INSERT INTO advantages_cards (section_id, value, description, ordering)
			VALUES ($1, $2, $3, $4)
			`,
			sectionId, card.Value, card.Description, card.Ordering,
		)
		if err != nil {
			return oops.New(err, "failed to insert advantages card")
		}
	}

	return tx.Commit(ctx)
}

type ParticipationContent struct {
	Section models.ParticipationSection
	Tariffs []models.Tariff
}

func FetchParticipation(ctx context.Context, conn db.ConnOrTx, locale string) (*ParticipationContent, error) {
	return fetchParticipation(ctx, conn, locale, true)
}

func FetchParticipationForEdit(ctx context.Context, conn db.ConnOrTx, locale string) (*ParticipationContent, error) {
	return fetchParticipation(ctx, conn, locale, false)
}

func fetchParticipation(ctx context.Context, conn db.ConnOrTx, locale string, publishedOnly bool) (*ParticipationContent, error) {
	query := "SELECT * FROM participation_sections WHERE locale = $1"
	args := []any{locale}
	if publishedOnly {
		query += " AND status = $2"
		args = append(args, models.StatusPublished)
	}
	section, err := db.QueryOne[models.ParticipationSection](ctx, conn, query+" LIMIT 1", args...)
	if err != nil {
		return nil, err
	}

	tariffs, err := db.Query[models.Tariff](ctx, conn,
		`
		SELECT *
		FROM participation_tariffs
		WHERE section_id = $1
		ORDER BY ordering
		`,
		section.ID,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch tariffs")
	}

	result := ParticipationContent{Section: *section}
	for _, tariff := range tariffs {
		result.Tariffs = append(result.Tariffs, *tariff)
	}
	return &result, nil
}

func SaveParticipation(ctx context.Context, conn db.ConnOrTx, section models.ParticipationSection, tariffs []models.Tariff) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return oops.New(err, "failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	sectionId, err := db.QueryOneScalar[int](ctx, tx,
		`
		INSERT INTO participation_sections (locale, status, tag, title_top, title_bottom, modal_close_label)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (locale) DO UPDATE SET
			status = EXCLUDED.status,
			tag = EXCLUDED.tag,
			title_top = EXCLUDED.title_top,
			title_bottom = EXCLUDED.title_bottom,
			modal_close_label = EXCLUDED.modal_close_label
		RETURNING id
		`,
		section.Locale, models.StatusPublished, section.Tag, section.TitleTop, section.TitleBottom, section.ModalCloseLabel,
	)
	if err != nil {
		return oops.New(err, "failed to upsert participation section")
	}

	_, err = tx.Exec(ctx, "DELETE FROM participation_tariffs WHERE section_id = $1", sectionId)
	if err != nil {
		return oops.New(err, "failed to clear tariffs")
	}
	for _, tariff := range orderedChildren(tariffs, func(tariff *models.Tariff, n int) { tariff.Ordering = n }) {
		_, err = tx.Exec(ctx,
			`
			INSERT INTO participation_tariffs (section_id, title, mode, bullets, extras, price, old_price, cta_label, ordering)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			`,
			sectionId, tariff.Title, tariff.Mode, tariff.Bullets, tariff.Extras,
			tariff.Price, tariff.OldPrice, tariff.CtaLabel, tariff.Ordering,
		)
		if err != nil {
			return oops.New(err, "failed to insert tariff")
		}
	}

	return tx.Commit(ctx)
}

type FaqContent struct {
	Section models.FaqSection
	Items   []models.FaqItem
}

func FetchFaq(ctx context.Context, conn db.ConnOrTx, locale string) (*FaqContent, error) {
	return fetchFaq(ctx, conn, locale, true)
}

func FetchFaqForEdit(ctx context.Context, conn db.ConnOrTx, locale string) (*FaqContent, error) {
	return fetchFaq(ctx, conn, locale, false)
}

func fetchFaq(ctx context.Context, conn db.ConnOrTx, locale string, publishedOnly bool) (*FaqContent, error) {
	query := "SELECT * FROM faq_sections WHERE locale = $1"
	args := []any{locale}
	if publishedOnly {
		query += " AND status = $2"
		args = append(args, models.StatusPublished)
	}
	section, err := db.QueryOne[models.FaqSection](ctx, conn, query+" LIMIT 1", args...)
	if err != nil {
		return nil, err
	}

	items, err := db.Query[models.FaqItem](ctx, conn,
		`
		SELECT *
		FROM faq_items
		WHERE section_id = $1
		ORDER BY ordering
		`,
		section.ID,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch faq items")
	}

	result := FaqContent{Section: *section}
	for _, item := range items {
		result.Items = append(result.Items, *item)
	}
	return &result, nil
}

func SaveFaq(ctx context.Context, conn db.ConnOrTx, section models.FaqSection, items []models.FaqItem) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return oops.New(err, "failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	sectionId, err := db.QueryOneScalar[int](ctx, tx,
		`
		INSERT INTO faq_sections (locale, status, tag)
		VALUES ($1, $2, $3)
		ON CONFLICT (locale) DO UPDATE SET
			status = EXCLUDED.status,
			tag = EXCLUDED.tag
		RETURNING id
		`,
		section.Locale, models.StatusPublished, section.Tag,
	)
	if err != nil {
		return oops.New(err, "failed to upsert faq section")
	}

	_, err = tx.Exec(ctx, "DELETE FROM faq_items WHERE section_id = $1", sectionId)
	if err != nil {
		return oops.New(err, "failed to clear faq items")
	}
	for _, item := range orderedChildren(items, func(item *models.FaqItem, n int) { item.Ordering = n }) {
		_, err = tx.Exec(ctx,
			`
			INSERT INTO faq_items (section_id, question, answer, ordering)
			VALUES ($1, $2, $3, $4)
			`,
			sectionId, item.Question, item.Answer, item.Ordering,
		)
		if err != nil {
			return oops.New(err, "failed to insert faq item")
		}
	}

	return tx.Commit(ctx)
}
