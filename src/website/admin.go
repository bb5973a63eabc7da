package website

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"git.noga.studio/noga/site/src/content"
	"git.noga.studio/noga/site/src/db"
	"git.noga.studio/noga/site/src/models"
	"git.noga.studio/noga/site/src/oops"
	"git.noga.studio/noga/site/src/siteurl"
	"git.noga.studio/noga/site/src/templates"
)

/*
The admin console edits one locale at a time. The ?locale= query param picks
which one; it is independent of the public site's language cookie, so an
editor can work on Hebrew content while browsing the console in English.
*/

func adminLocale(c *RequestContext) string {
	locale := c.URL().Query().Get("locale")
	if !isSupportedLocale(locale) {
		locale = "en"
	}
	return locale
}

func adminFormLocale(form url.Values) string {
	locale := form.Get("locale")
	if !isSupportedLocale(locale) {
		locale = "en"
	}
	return locale
}

type AdminBaseData struct {
	templates.BaseData

	AdminLocale string
	Section     string
	SectionUrl  string
	Saved       bool

	NavSections []AdminNavItem
}

type AdminNavItem struct {
	Name  string
	Label string
	Url   string
}

var adminNav = []AdminNavItem{
	{Name: "hero", Label: "Hero"},
	{Name: "stats", Label: "Stats"},
	{Name: "program", Label: "Program"},
	{Name: "whoisfor", Label: "Who is it for"},
	{Name: "results", Label: "Results"},
	{Name: "advantages", Label: "Advantages"},
	{Name: "participation", Label: "Participation"},
	{Name: "faq", Label: "FAQ"},
	{Name: "pages", Label: "Page headers"},
	{Name: "banner", Label: "Sale banner"},
	{Name: "settings", Label: "Site settings"},
	{Name: "seo", Label: "SEO"},
}

func getAdminBaseData(c *RequestContext, section string) AdminBaseData {
	data := AdminBaseData{
		BaseData:    getBaseData(c, "Admin"),
		AdminLocale: adminLocale(c),
		Section:     section,
		Saved:       c.URL().Query().Get("saved") == "1",
	}
	if section != "" {
		data.SectionUrl = adminSectionUrl(section, data.AdminLocale)
	}
	for _, item := range adminNav {
		item.Url = adminSectionUrl(item.Name, data.AdminLocale)
		data.NavSections = append(data.NavSections, item)
	}
	return data
}

func adminSectionUrl(section, locale string) string {
	return siteurl.BuildAdminSection(section) + "?locale=" + locale
}

func AdminDashboard(c *RequestContext) ResponseData {
	data := struct {
		AdminBaseData
		BlogUrl  string
		UsersUrl string
	}{
		AdminBaseData: getAdminBaseData(c, ""),
		BlogUrl:       siteurl.BuildAdminBlog(),
		UsersUrl:      siteurl.BuildAdminUsers(),
	}

	var res ResponseData
	res.MustWriteTemplate("admin_dashboard.html", data)
	return res
}

func AdminSectionPage(c *RequestContext) ResponseData {
	section := c.PathParams["section"]
	locale := adminLocale(c)

	base := getAdminBaseData(c, section)

	var data any
	var err error
	switch section {
	case "hero":
		var hero *models.HeroSection
		hero, err = content.FetchHeroForEdit(c, c.Conn, locale)
		if errors.Is(err, db.NotFound) {
			hero, err = &models.HeroSection{Locale: locale}, nil
		}
		if err == nil {
			data = struct {
				AdminBaseData
				Hero models.HeroSection
			}{base, *hero}
		}
	case "stats":
		var stats *content.StatsContent
		stats, err = content.FetchStatsForEdit(c, c.Conn, locale)
		if errors.Is(err, db.NotFound) {
			stats, err = &content.StatsContent{Section: models.StatsSection{Locale: locale}}, nil
		}
		if err == nil {
			data = struct {
				AdminBaseData
				Stats content.StatsContent
			}{base, *stats}
		}
	case "program":
		var program *content.ProgramContent
		program, err = content.FetchProgramForEdit(c, c.Conn, locale)
		if errors.Is(err, db.NotFound) {
			program, err = &content.ProgramContent{Section: models.ProgramSection{Locale: locale, PreviewCount: 3}}, nil
		}
		if err == nil {
			data = struct {
				AdminBaseData
				Program content.ProgramContent
			}{base, *program}
		}
	case "whoisfor":
		var whoIsFor *content.WhoIsForContent
		whoIsFor, err = content.FetchWhoIsForForEdit(c, c.Conn, locale)
		if errors.Is(err, db.NotFound) {
			whoIsFor, err = &content.WhoIsForContent{Section: models.WhoIsForSection{Locale: locale}}, nil
		}
		if err == nil {
			data = struct {
				AdminBaseData
				WhoIsFor content.WhoIsForContent
			}{base, *whoIsFor}
		}
	case "results":
		var results *models.ResultsSection
		results, err = content.FetchResultsForEdit(c, c.Conn, locale)
		if errors.Is(err, db.NotFound) {
			results, err = &models.ResultsSection{Locale: locale}, nil
		}
		if err == nil {
			data = struct {
				AdminBaseData
				Results models.ResultsSection
			}{base, *results}
		}
	case "advantages":
		var advantages *content.AdvantagesContent
		advantages, err = content.FetchAdvantagesForEdit(c, c.Conn, locale)
		if errors.Is(err, db.NotFound) {
			advantages, err = &content.AdvantagesContent{Section: models.AdvantagesSection{Locale: locale}}, nil
		}
		if err == nil {
			data = struct {
				AdminBaseData
				Advantages content.AdvantagesContent
			}{base, *advantages}
		}
	case "participation":
		var participation *content.ParticipationContent
		participation, err = content.FetchParticipationForEdit(c, c.Conn, locale)
		if errors.Is(err, db.NotFound) {
			participation, err = &content.ParticipationContent{Section: models.ParticipationSection{Locale: locale}}, nil
		}
		if err == nil {
			data = struct {
				AdminBaseData
				Participation content.ParticipationContent
			}{base, *participation}
		}
	case "faq":
		var faq *content.FaqContent
		faq, err = content.FetchFaqForEdit(c, c.Conn, locale)
		if errors.Is(err, db.NotFound) {
			faq, err = &content.FaqContent{Section: models.FaqSection{Locale: locale}}, nil
		}
		if err == nil {
			data = struct {
				AdminBaseData
				Faq content.FaqContent
			}{base, *faq}
		}
	case "pages":
		var aboutHeader, blogHeader *models.PageHeader
		aboutHeader, err = fetchPageHeaderOrBlank(c, content.PageAbout, locale)
		if err == nil {
			blogHeader, err = fetchPageHeaderOrBlank(c, content.PageBlog, locale)
		}
		if err == nil {
			data = struct {
				AdminBaseData
				About models.PageHeader
				Blog  models.PageHeader
			}{base, *aboutHeader, *blogHeader}
		}
	case "banner":
		var banner *models.SaleBanner
		banner, err = content.FetchSaleBanner(c, c.Conn, locale)
		if errors.Is(err, db.NotFound) {
			banner, err = &models.SaleBanner{Locale: locale}, nil
		}
		if err == nil {
			data = struct {
				AdminBaseData
				Banner models.SaleBanner
			}{base, *banner}
		}
	case "settings":
		var settings *models.SiteSettings
		settings, err = content.FetchSiteSettings(c, c.Conn)
		if errors.Is(err, db.NotFound) {
			defaults := content.DefaultSiteSettings()
			settings, err = &defaults, nil
		}
		if err == nil {
			data = struct {
				AdminBaseData
				Settings models.SiteSettings
			}{base, *settings}
		}
	case "seo":
		var pages []*models.SeoPage
		pages, err = content.FetchSeoPages(c, c.Conn, locale)
		if err == nil {
			seoPages := make([]models.SeoPage, 0, len(pages))
			for _, page := range pages {
				seoPages = append(seoPages, *page)
			}
			data = struct {
				AdminBaseData
				Pages []models.SeoPage
			}{base, seoPages}
		}
	default:
		return FourOhFour(c)
	}
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to load %s section for editing", section))
	}

	var res ResponseData
	res.MustWriteTemplate(fmt.Sprintf("admin_%s.html", section), data)
	return res
}

func fetchPageHeaderOrBlank(c *RequestContext, page, locale string) (*models.PageHeader, error) {
	header, err := content.FetchPageHeader(c, c.Conn, page, locale)
	if errors.Is(err, db.NotFound) {
		return &models.PageHeader{Page: page, Locale: locale}, nil
	}
	return header, err
}

func AdminSectionSave(c *RequestContext) ResponseData {
	section := c.PathParams["section"]

	form, err := c.GetFormValues()
	if err != nil {
		return c.ErrorResponse(http.StatusBadRequest, oops.New(err, "failed to parse form"))
	}
	locale := adminFormLocale(form)

	switch section {
	case "hero":
		err = content.SaveHero(c, c.Conn, models.HeroSection{
			Locale:          locale,
			HeadingTop:      form.Get("heading_top"),
			HeadingBottom:   form.Get("heading_bottom"),
			SubheadingLines: splitLines(form.Get("subheading_lines")),
			CtaLabel:        form.Get("cta_label"),
		})
	case "stats":
		var items []models.StatsItem
		for _, fields := range parseIndexedRows(form, "items") {
			items = append(items, models.StatsItem{
				Value:       fields["value"],
				Note:        fields["note"],
				Description: fields["description"],
			})
		}
		err = content.SaveStats(c, c.Conn, models.StatsSection{
			Locale:      locale,
			Tag:         form.Get("tag"),
			TitleTop:    form.Get("title_top"),
			TitleBottom: form.Get("title_bottom"),
			Description: form.Get("description"),
		}, items)
	case "program":
		var modules []models.ProgramModule
		for _, fields := range parseIndexedRows(form, "modules") {
			modules = append(modules, models.ProgramModule{
				Title: fields["title"],
				Body:  fields["body"],
			})
		}
		previewCount, _ := strconv.Atoi(form.Get("preview_count"))
		err = content.SaveProgram(c, c.Conn, models.ProgramSection{
			Locale:          locale,
			TitleLines:      splitLines(form.Get("title_lines")),
			Paragraphs:      splitLines(form.Get("paragraphs")),
			ButtonMoreLabel: form.Get("button_more_label"),
			ButtonLessLabel: form.Get("button_less_label"),
			PreviewCount:    previewCount,
		}, modules)
		if errors.Is(err, content.ErrBadPreviewCount) {
			return c.ErrorResponse(http.StatusBadRequest, err)
		}
	case "whoisfor":
		var items []models.WhoIsForItem
		for _, fields := range parseIndexedRows(form, "items") {
			items = append(items, models.WhoIsForItem{
				NumberLabel: fields["number_label"],
				Title:       fields["title"],
				Bullets:     splitLines(fields["bullets"]),
			})
		}
		err = content.SaveWhoIsFor(c, c.Conn, models.WhoIsForSection{
			Locale:      locale,
			Tag:         form.Get("tag"),
			TitlePrefix: form.Get("title_prefix"),
			TitleSuffix: form.Get("title_suffix"),
		}, items)
	case "results":
		err = content.SaveResults(c, c.Conn, models.ResultsSection{
			Locale:         locale,
			TitleTop:       form.Get("title_top"),
			TitleHighlight: form.Get("title_highlight"),
			Bullets:        splitLines(form.Get("bullets")),
			CtaLabel:       form.Get("cta_label"),
		})
	case "advantages":
		var cards []models.AdvantagesCard
		for _, fields := range parseIndexedRows(form, "cards") {
			cards = append(cards, models.AdvantagesCard{
				Value:       fields["value"],
				Description: fields["description"],
			})
		}
		err = content.SaveAdvantages(c, c.Conn, models.AdvantagesSection{
			Locale:      locale,
			Tag:         form.Get("tag"),
			TitleTop:    form.Get("title_top"),
			TitleBottom: form.Get("title_bottom"),
			Quote:       form.Get("quote"),
			Lead:        form.Get("lead"),
		}, cards)
	case "participation":
		var tariffs []models.Tariff
		for _, fields := range parseIndexedRows(form, "tariffs") {
			tariffs = append(tariffs, models.Tariff{
				Title:    fields["title"],
				Mode:     fields["mode"],
				Bullets:  splitLineItems(fields["bullets"]),
				Extras:   splitLineItems(fields["extras"]),
				Price:    fields["price"],
				OldPrice: fields["old_price"],
				CtaLabel: fields["cta_label"],
			})
		}
		err = content.SaveParticipation(c, c.Conn, models.ParticipationSection{
			Locale:          locale,
			Tag:             form.Get("tag"),
			TitleTop:        form.Get("title_top"),
			TitleBottom:     form.Get("title_bottom"),
			ModalCloseLabel: form.Get("modal_close_label"),
		}, tariffs)
	case "faq":
		var items []models.FaqItem
		for _, fields := range parseIndexedRows(form, "items") {
			items = append(items, models.FaqItem{
				Question: fields["question"],
				Answer:   fields["answer"],
			})
		}
		err = content.SaveFaq(c, c.Conn, models.FaqSection{
			Locale: locale,
			Tag:    form.Get("tag"),
		}, items)
	case "pages":
		for _, page := range []string{content.PageAbout, content.PageBlog} {
			err = content.SavePageHeader(c, c.Conn, models.PageHeader{
				Page:     page,
				Locale:   locale,
				Kicker:   form.Get(page + "_kicker"),
				Title:    form.Get(page + "_title"),
				Subtitle: form.Get(page + "_subtitle"),
			})
			if err != nil {
				break
			}
		}
	case "banner":
		err = content.SaveSaleBanner(c, c.Conn, models.SaleBanner{
			Locale:      locale,
			Enabled:     form.Get("enabled") == "on",
			Text:        form.Get("text"),
			ButtonLabel: form.Get("button_label"),
		})
	case "settings":
		err = content.SaveSiteSettings(c, c.Conn, models.SiteSettings{
			TelegramUrl:  form.Get("telegram_url"),
			InstagramUrl: form.Get("instagram_url"),
		})
	case "seo":
		for _, fields := range parseIndexedRows(form, "pages") {
			slug := content.NormalizeSlug(fields["slug"])
			if slug == "" {
				continue
			}
			err = content.SaveSeoPage(c, c.Conn, models.SeoPage{
				Slug:            slug,
				Locale:          locale,
				MetaTitle:       fields["meta_title"],
				MetaDescription: fields["meta_description"],
				H1:              fields["h1"],
				CanonicalUrl:    fields["canonical_url"],
				OgImage:         fields["og_image"],
			})
			if err != nil {
				break
			}
		}
	default:
		return FourOhFour(c)
	}
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to save %s section", section))
	}

	return c.Redirect(adminSectionUrl(section, locale)+"&saved=1", http.StatusSeeOther)
}

// splitLines turns a textarea into a list, dropping blank lines.
func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// splitLineItems is splitLines for bullet lists that support muted entries. A
// line starting with "~" renders muted.
func splitLineItems(s string) []models.LineItem {
	var items []models.LineItem
	for _, line := range splitLines(s) {
		muted := false
		if strings.HasPrefix(line, "~") {
			muted = true
			line = strings.TrimSpace(strings.TrimPrefix(line, "~"))
		}
		if line != "" {
			items = append(items, models.LineItem{Text: line, Muted: muted})
		}
	}
	return items
}

var reIndexedField = regexp.MustCompile(`^(\w+)\[(\d+)\]\[(\w+)\]$`)

// parseIndexedRows collects form fields named like prefix[0][field] into
// ordered rows. Gaps in the numbering are fine; row order follows the index.
func parseIndexedRows(form url.Values, prefix string) []map[string]string {
	rows := make(map[int]map[string]string)
	for key := range form {
		match := reIndexedField.FindStringSubmatch(key)
		if match == nil || match[1] != prefix {
			continue
		}
		idx, err := strconv.Atoi(match[2])
		if err != nil {
			continue
		}
		if rows[idx] == nil {
			rows[idx] = make(map[string]string)
		}
		rows[idx][match[3]] = form.Get(key)
	}

	indexes := make([]int, 0, len(rows))
	for idx := range rows {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	result := make([]map[string]string, 0, len(rows))
	for _, idx := range indexes {
		result = append(result, rows[idx])
	}
	return result
}
