package website

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"git.noga.studio/noga/site/src/auth"
	"git.noga.studio/noga/site/src/db"
	"git.noga.studio/noga/site/src/leads"
	"git.noga.studio/noga/site/src/logging"
	"git.noga.studio/noga/site/src/models"
	"git.noga.studio/noga/site/src/oops"
)

const maxApiBodySize = 64 * 1024

// APILeadSubmit accepts the public contact form. The lead is stored first and
// forwarded to the webhook afterwards, so a webhook failure never turns into a
// visitor-facing error.
func APILeadSubmit(c *RequestContext) ResponseData {
	var sub leads.Submission
	body, err := io.ReadAll(io.LimitReader(c.Req.Body, maxApiBodySize))
	if err != nil {
		return apiError(http.StatusBadRequest, "could not read request body")
	}
	if err := json.Unmarshal(body, &sub); err != nil {
		return apiError(http.StatusBadRequest, "invalid JSON")
	}

	if err := sub.Validate(); err != nil {
		return apiError(http.StatusBadRequest, err.Error())
	}

	lead, err := leads.Record(c, c.Conn, sub)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to record lead"))
	}

	// Forwarding outlives the request.
	forwardCtx := logging.AttachLoggerToContext(c.Logger, context.Background())
	go leads.Forward(forwardCtx, lead)

	var res ResponseData
	res.StatusCode = http.StatusCreated
	res.WriteJson(map[string]string{"id": lead.ID.String()})
	return res
}

/*
The user management API authenticates with a bearer token: the token is a
session id, so programmatic callers can log in once and reuse it. The admin
console can't read the HttpOnly session cookie from fetch(), so requests
without an Authorization header fall back to the cookie instead.
*/

func apiAdminAuth(c *RequestContext) (*models.User, ResponseData, bool) {
	var token string
	header := c.Req.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		token = strings.TrimPrefix(header, "Bearer ")
	} else if cookie, err := c.Req.Cookie(auth.SessionCookieName); err == nil {
		token = cookie.Value
	}
	if token == "" {
		return nil, apiError(http.StatusForbidden, "missing bearer token"), false
	}

	session, err := auth.GetSession(c, c.Conn, token)
	if err != nil {
		if errors.Is(err, auth.ErrNoSession) {
			return nil, apiError(http.StatusForbidden, "invalid bearer token"), false
		}
		return nil, c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to load session")), false
	}

	user, err := auth.FetchUserByEmail(c, c.Conn, session.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserDoesNotExist) {
			return nil, apiError(http.StatusForbidden, "invalid bearer token"), false
		}
		return nil, c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to load user")), false
	}

	if !user.IsSuperadmin(superadminEmail()) {
		return nil, apiError(http.StatusForbidden, "not allowed"), false
	}

	return user, ResponseData{}, true
}

type apiUser struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func APIAdminUsersList(c *RequestContext) ResponseData {
	_, errRes, ok := apiAdminAuth(c)
	if !ok {
		return errRes
	}

	users, err := db.Query[models.User](c, c.Conn, "SELECT * FROM admin_user ORDER BY email")
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to fetch users"))
	}

	result := make([]apiUser, 0, len(users))
	for _, user := range users {
		result = append(result, apiUser{ID: user.ID, Email: user.Email, Name: user.BestName()})
	}

	var res ResponseData
	res.WriteJson(result)
	return res
}

func APIAdminUsersCreate(c *RequestContext) ResponseData {
	_, errRes, ok := apiAdminAuth(c)
	if !ok {
		return errRes
	}

	var input struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	body, err := io.ReadAll(io.LimitReader(c.Req.Body, maxApiBodySize))
	if err != nil {
		return apiError(http.StatusBadRequest, "could not read request body")
	}
	if err := json.Unmarshal(body, &input); err != nil {
		return apiError(http.StatusBadRequest, "invalid JSON")
	}

	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return apiError(http.StatusBadRequest, "a valid email is required")
	}
	if len(input.Password) < 8 {
		return apiError(http.StatusBadRequest, "password must be at least 8 characters")
	}

	if _, err := auth.FetchUserByEmail(c, c.Conn, input.Email); err == nil {
		return apiError(http.StatusConflict, "a user with that email already exists")
	} else if !errors.Is(err, auth.ErrUserDoesNotExist) {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to check for existing user"))
	}

	user, err := auth.CreateUser(c, c.Conn, input.Email, input.Name, input.Password)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to create user"))
	}

	var res ResponseData
	res.StatusCode = http.StatusCreated
	res.WriteJson(apiUser{ID: user.ID, Email: user.Email, Name: user.BestName()})
	return res
}

func APIAdminUsersDelete(c *RequestContext) ResponseData {
	caller, errRes, ok := apiAdminAuth(c)
	if !ok {
		return errRes
	}

	id, err := strconv.Atoi(c.PathParams["id"])
	if err != nil {
		return apiError(http.StatusBadRequest, "invalid user id")
	}

	if res, rejected := rejectSelfDelete(caller, id); rejected {
		return res
	}

	target, err := db.QueryOne[models.User](c, c.Conn, "SELECT * FROM admin_user WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return apiError(http.StatusNotFound, "user not found")
		}
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to fetch user"))
	}

	err = auth.DeleteSessionsForUser(c, c.Conn, target.Email)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to delete user sessions"))
	}

	err = auth.DeleteUser(c, c.Conn, id)
	if err != nil && !errors.Is(err, auth.ErrUserDoesNotExist) {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to delete user"))
	}

	var res ResponseData
	res.StatusCode = http.StatusNoContent
	return res
}

// rejectSelfDelete keeps the superadmin from locking themselves out.
func rejectSelfDelete(caller *models.User, targetID int) (ResponseData, bool) {
	if targetID == caller.ID {
		return apiError(http.StatusForbidden, "you cannot delete your own account"), true
	}
	return ResponseData{}, false
}

func apiError(status int, message string) ResponseData {
	var res ResponseData
	res.StatusCode = status
	res.WriteJson(map[string]string{"error": message})
	return res
}
