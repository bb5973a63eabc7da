package website

import (
	"errors"
	"math/rand"
	"net/http"
	"time"

	"git.noga.studio/noga/site/src/auth"
	"git.noga.studio/noga/site/src/oops"
	"git.noga.studio/noga/site/src/siteurl"
	"git.noga.studio/noga/site/src/templates"
)

type LoginPageData struct {
	templates.BaseData

	RedirectUrl string
	Error       string
}

func LoginPage(c *RequestContext) ResponseData {
	if c.CurrentUser != nil {
		return c.Redirect(siteurl.BuildAdmin(), http.StatusSeeOther)
	}

	var res ResponseData
	res.MustWriteTemplate("login.html", LoginPageData{
		BaseData:    getBaseData(c, "Log in"),
		RedirectUrl: c.URL().Query().Get("redirect"),
	})
	return res
}

func Login(c *RequestContext) ResponseData {
	form, err := c.GetFormValues()
	if err != nil {
		return c.ErrorResponse(http.StatusBadRequest, oops.New(err, "failed to parse login form"))
	}

	email := form.Get("email")
	password := form.Get("password")
	redirect := form.Get("redirect")
	if redirect == "" {
		redirect = siteurl.BuildAdmin()
	}

	showFailure := func() ResponseData {
		var res ResponseData
		res.StatusCode = http.StatusUnauthorized
		res.MustWriteTemplate("login.html", LoginPageData{
			BaseData:    getBaseData(c, "Log in"),
			RedirectUrl: form.Get("redirect"),
			Error:       "Wrong email or password.",
		})
		return res
	}

	// Failed attempts should not finish faster than successful ones.
	start := time.Now()
	padResponse := func() {
		minDuration := 500*time.Millisecond + time.Duration(rand.Int63n(100))*time.Millisecond
		if elapsed := time.Since(start); elapsed < minDuration {
			select {
			case <-c.Done():
			case <-time.After(minDuration - elapsed):
			}
		}
	}

	user, err := auth.FetchUserByEmail(c, c.Conn, email)
	if err != nil {
		if errors.Is(err, auth.ErrUserDoesNotExist) {
			padResponse()
			return showFailure()
		}
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to fetch user"))
	}

	hashed, err := auth.ParsePasswordString(user.Password)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to parse stored password"))
	}

	ok, err := auth.CheckPassword(password, hashed)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to check password"))
	}
	if !ok {
		padResponse()
		return showFailure()
	}

	session, err := auth.CreateSession(c, c.Conn, user.Email)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to create session"))
	}

	_, err = c.Conn.Exec(c, "UPDATE admin_user SET last_login = $1 WHERE id = $2", time.Now(), user.ID)
	if err != nil {
		c.Logger.Error().Err(err).Msg("failed to update last login time")
	}

	res := c.Redirect(redirect, http.StatusSeeOther)
	res.SetCookie(auth.NewSessionCookie(session))
	return res
}

func Logout(c *RequestContext) ResponseData {
	res := c.Redirect(siteurl.BuildHomepage(), http.StatusSeeOther)
	logoutUser(c, &res)
	return res
}

// logoutUser deletes the current session, if any, and clears the cookie.
func logoutUser(c *RequestContext, res *ResponseData) {
	if c.CurrentSession != nil {
		err := auth.DeleteSession(c, c.Conn, c.CurrentSession.ID)
		if err != nil {
			c.Logger.Error().Err(err).Msg("failed to delete session")
		}
		c.CurrentSession = nil
		c.CurrentUser = nil
	}

	res.SetCookie(auth.DeleteSessionCookie)
}
