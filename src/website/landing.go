package website

import (
	"errors"

	"git.noga.studio/noga/site/src/content"
	"git.noga.studio/noga/site/src/db"
	"git.noga.studio/noga/site/src/models"
	"git.noga.studio/noga/site/src/templates"
)

type LandingData struct {
	templates.BaseData

	Hero          models.HeroSection
	Stats         content.StatsContent
	Program       content.ProgramContent
	WhoIsFor      content.WhoIsForContent
	Results       models.ResultsSection
	Advantages    content.AdvantagesContent
	Participation content.ParticipationContent
	Faq           content.FaqContent
}

// contentOrDefault hides content-store failures from visitors. A missing
// published row means the section was never edited; any other error gets
// logged. Either way the page renders the default copy for the locale.
func contentOrDefault[T any](c *RequestContext, what string, val *T, err error, def func(string) T) T {
	if err != nil {
		if !errors.Is(err, db.NotFound) {
			c.Logger.Error().Err(err).Str("section", what).Msg("failed to fetch content, rendering defaults")
		}
		return def(c.Locale)
	}
	return *val
}

func Landing(c *RequestContext) ResponseData {
	data := LandingData{
		BaseData: getBaseData(c, ""),
	}

	hero, err := content.FetchHero(c, c.Conn, c.Locale)
	data.Hero = contentOrDefault(c, "hero", hero, err, content.DefaultHero)

	stats, err := content.FetchStats(c, c.Conn, c.Locale)
	data.Stats = contentOrDefault(c, "stats", stats, err, content.DefaultStats)

	program, err := content.FetchProgram(c, c.Conn, c.Locale)
	data.Program = contentOrDefault(c, "program", program, err, content.DefaultProgram)

	whoIsFor, err := content.FetchWhoIsFor(c, c.Conn, c.Locale)
	data.WhoIsFor = contentOrDefault(c, "who-is-for", whoIsFor, err, content.DefaultWhoIsFor)

	results, err := content.FetchResults(c, c.Conn, c.Locale)
	data.Results = contentOrDefault(c, "results", results, err, content.DefaultResults)

	advantages, err := content.FetchAdvantages(c, c.Conn, c.Locale)
	data.Advantages = contentOrDefault(c, "advantages", advantages, err, content.DefaultAdvantages)

	participation, err := content.FetchParticipation(c, c.Conn, c.Locale)
	data.Participation = contentOrDefault(c, "participation", participation, err, content.DefaultParticipation)

	faq, err := content.FetchFaq(c, c.Conn, c.Locale)
	data.Faq = contentOrDefault(c, "faq", faq, err, content.DefaultFaq)

	applySeo(c, &data.BaseData, "home")

	var res ResponseData
	res.MustWriteTemplate("landing.html", data)
	return res
}

// applySeo overlays stored SEO metadata onto the base data, if any exists for
// the page.
func applySeo(c *RequestContext, baseData *templates.BaseData, slug string) {
	seo, err := content.FetchSeoPage(c, c.Conn, slug, c.Locale)
	if err != nil {
		if !errors.Is(err, db.NotFound) {
			c.Logger.Error().Err(err).Msg("failed to fetch seo page")
		}
		return
	}

	if seo.MetaTitle != "" {
		baseData.Title = seo.MetaTitle
	}
	if seo.MetaDescription != "" {
		baseData.MetaDescription = seo.MetaDescription
	}
	if seo.CanonicalUrl != "" {
		baseData.CanonicalUrl = seo.CanonicalUrl
	}
	if seo.OgImage != "" {
		baseData.OgImage = seo.OgImage
	}
}
