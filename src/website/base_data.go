package website

import (
	"errors"

	"git.noga.studio/noga/site/src/config"
	"git.noga.studio/noga/site/src/content"
	"git.noga.studio/noga/site/src/db"
	"git.noga.studio/noga/site/src/siteurl"
	"git.noga.studio/noga/site/src/templates"
)

func superadminEmail() string {
	return config.Config.Auth.SuperadminEmail
}

func getBaseData(c *RequestContext, title string) templates.BaseData {
	var templateUser *templates.User
	var templateSession *templates.Session
	if c.CurrentUser != nil {
		u := templates.UserToTemplate(c.CurrentUser, superadminEmail())
		s := templates.SessionToTemplate(c.CurrentSession)
		templateUser = &u
		templateSession = &s
	}

	baseData := templates.BaseData{
		Title:  title,
		Locale: c.Locale,

		CurrentUrl: c.FullUrl(),
		LoginUrl:   siteurl.BuildLogin(c.FullUrl()),
		LogoutUrl:  siteurl.BuildLogout(),
		AdminUrl:   siteurl.BuildAdmin(),

		User:    templateUser,
		Session: templateSession,
	}

	if c.Conn != nil {
		settings, err := content.FetchSiteSettings(c, c.Conn)
		if err != nil {
			if !errors.Is(err, db.NotFound) {
				c.Logger.Error().Err(err).Msg("failed to fetch site settings")
			}
			defaults := content.DefaultSiteSettings()
			settings = &defaults
		}
		baseData.Settings = templates.SiteSettings{
			TelegramUrl:  settings.TelegramUrl,
			InstagramUrl: settings.InstagramUrl,
		}

		banner, err := content.FetchSaleBanner(c, c.Conn, c.Locale)
		if err == nil && banner.Enabled {
			baseData.SaleBanner = &templates.SaleBanner{
				Text:        banner.Text,
				ButtonLabel: banner.ButtonLabel,
			}
		} else if err != nil && !errors.Is(err, db.NotFound) {
			c.Logger.Error().Err(err).Msg("failed to fetch sale banner")
		}
	}

	return baseData
}
