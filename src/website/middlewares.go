package website

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"git.noga.studio/noga/site/src/auth"
	"git.noga.studio/noga/site/src/oops"
	"git.noga.studio/noga/site/src/siteurl"
)

func panicCatcherMiddleware(h Handler) Handler {
	return func(c *RequestContext) (res ResponseData) {
		defer func() {
			if recovered := recover(); recovered != nil {
				maybeError, ok := recovered.(*error)
				var err error
				if ok {
					err = *maybeError
				} else {
					err = oops.New(nil, fmt.Sprintf("Recovered from panic with value: %v", recovered))
				}
				res = c.ErrorResponse(http.StatusInternalServerError, err)
			}
		}()

		return h(c)
	}
}

func logContextErrorsMiddleware(h Handler) Handler {
	return func(c *RequestContext) ResponseData {
		res := h(c)
		logContextErrors(c, res.Errors...)
		return res
	}
}

func trackRequestTime(h Handler) Handler {
	return func(c *RequestContext) ResponseData {
		start := time.Now()
		res := h(c)
		c.Logger.Info().
			Str("method", c.Req.Method).
			Str("path", c.Req.URL.Path).
			Int("status", res.StatusCode).
			Dur("duration", time.Since(start)).
			Msg("Served request")
		return res
	}
}

const LanguageCookieName = "noga_lang"

func isSupportedLocale(locale string) bool {
	return locale == "en" || locale == "he"
}

// localeMiddleware resolves the visitor's content language: explicit cookie
// first, then Accept-Language, then English.
func localeMiddleware(h Handler) Handler {
	return func(c *RequestContext) ResponseData {
		c.Locale = "en"

		if cookie, err := c.Req.Cookie(LanguageCookieName); err == nil && isSupportedLocale(cookie.Value) {
			c.Locale = cookie.Value
		} else if accept := c.Req.Header.Get("Accept-Language"); strings.Contains(accept, "he") {
			c.Locale = "he"
		}

		return h(c)
	}
}

// authMiddleware loads the current user from the session cookie, if any, and
// silently extends sessions that are about to expire.
func authMiddleware(h Handler) Handler {
	return func(c *RequestContext) ResponseData {
		refreshed := false

		sessionCookie, err := c.Req.Cookie(auth.SessionCookieName)
		if err == nil {
			session, err := auth.GetSession(c, c.Conn, sessionCookie.Value)
			if err == nil {
				user, err := auth.FetchUserByEmail(c, c.Conn, session.Email)
				if err == nil {
					c.CurrentSession = session
					c.CurrentUser = user

					refreshed, err = auth.RefreshSession(c, c.Conn, session)
					if err != nil {
						c.Logger.Error().Err(err).Msg("failed to refresh session")
						refreshed = false
					}
				} else if !errors.Is(err, auth.ErrUserDoesNotExist) {
					return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to load user for session"))
				}
			} else if !errors.Is(err, auth.ErrNoSession) {
				return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to load session"))
			}
		}

		res := h(c)

		// An extended expiry must reach the browser too, or the cookie dies
		// before the session does. Skip it when the handler logged the user
		// out.
		if refreshed && c.CurrentSession != nil {
			res.SetCookie(auth.NewSessionCookie(c.CurrentSession))
		}
		return res
	}
}

func needsAuth(h Handler) Handler {
	return func(c *RequestContext) ResponseData {
		if c.CurrentUser == nil {
			return c.Redirect(siteurl.BuildLogin(c.FullUrl()), http.StatusSeeOther)
		}

		return h(c)
	}
}

func superadminsOnly(h Handler) Handler {
	return func(c *RequestContext) ResponseData {
		if c.CurrentUser == nil || !c.CurrentUser.IsSuperadmin(superadminEmail()) {
			return FourOhFour(c)
		}

		return h(c)
	}
}

func csrfMiddleware(h Handler) Handler {
	// CSRF mitigation actions per the OWASP cheat sheet:
	// https://cheatsheetseries.owasp.org/cheatsheets/Cross-Site_Request_Forgery_Prevention_Cheat_Sheet.html
	return func(c *RequestContext) ResponseData {
		c.Req.ParseMultipartForm(100 * 1024 * 1024)
		csrfToken := c.Req.Form.Get(auth.CSRFFieldName)
		if c.CurrentSession == nil || csrfToken != c.CurrentSession.CSRFToken {
			c.Logger.Warn().Msg("user failed CSRF validation - potential attack?")

			res := c.Redirect("/", http.StatusSeeOther)
			logoutUser(c, &res)

			return res
		}

		return h(c)
	}
}
