package website

import (
	"net/http"
	"time"

	"git.noga.studio/noga/site/src/content"
	"git.noga.studio/noga/site/src/models"
	"git.noga.studio/noga/site/src/oops"
	"git.noga.studio/noga/site/src/templates"
)

type AboutData struct {
	templates.BaseData

	Header models.PageHeader
}

func About(c *RequestContext) ResponseData {
	header, err := content.FetchPageHeader(c, c.Conn, content.PageAbout, c.Locale)
	headerVal := contentOrDefault(c, "about header", header, err, func(locale string) models.PageHeader {
		return content.DefaultPageHeader(content.PageAbout, locale)
	})

	data := AboutData{
		BaseData: getBaseData(c, headerVal.Title),
		Header:   headerVal,
	}
	applySeo(c, &data.BaseData, "about")

	var res ResponseData
	res.MustWriteTemplate("about.html", data)
	return res
}

// SetLanguage stores the visitor's language choice in a cookie and sends them
// back where they came from.
func SetLanguage(c *RequestContext) ResponseData {
	form, err := c.GetFormValues()
	if err != nil {
		return c.ErrorResponse(http.StatusBadRequest, oops.New(err, "failed to parse form"))
	}

	locale := form.Get("locale")
	if !isSupportedLocale(locale) {
		locale = "en"
	}

	redirect := form.Get("redirect")
	if redirect == "" || redirect[0] != '/' {
		redirect = "/"
	}

	res := c.Redirect(redirect, http.StatusSeeOther)
	res.SetCookie(&http.Cookie{
		Name:     LanguageCookieName,
		Value:    locale,
		Path:     "/",
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		SameSite: http.SameSiteLaxMode,
	})
	return res
}

func Robots(c *RequestContext) ResponseData {
	var res ResponseData
	res.Header().Set("Content-Type", "text/plain")
	res.Write([]byte("User-agent: *\nDisallow: /admin\nDisallow: /api\n"))
	return res
}

var publicFiles = http.StripPrefix("/public", http.FileServer(http.Dir("public")))

func PublicFiles(c *RequestContext) ResponseData {
	var res ResponseData
	publicFiles.ServeHTTP(&res, c.Req)
	return res
}
