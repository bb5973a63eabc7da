package website

import (
	"net/http"

	"git.noga.studio/noga/site/src/content"
	"git.noga.studio/noga/site/src/db"
	"git.noga.studio/noga/site/src/models"
	"git.noga.studio/noga/site/src/oops"
	"git.noga.studio/noga/site/src/siteurl"
)

type AdminUsersData struct {
	AdminBaseData

	Users  []AdminUserRow
	ApiUrl string
}

type AdminUserRow struct {
	ID           int
	Email        string
	Name         string
	DateJoined   string
	LastLogin    string
	IsSuperadmin bool
	IsSelf       bool
}

// AdminUsersPage renders the user management console. The actual mutations go
// through the JSON API; this page is just the UI for it.
func AdminUsersPage(c *RequestContext) ResponseData {
	users, err := db.Query[models.User](c, c.Conn, "SELECT * FROM admin_user ORDER BY email")
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to fetch users"))
	}

	data := AdminUsersData{
		AdminBaseData: getAdminBaseData(c, ""),
		ApiUrl:        siteurl.BuildAPIAdminUsers(),
	}
	for _, user := range users {
		row := AdminUserRow{
			ID:           user.ID,
			Email:        user.Email,
			Name:         user.BestName(),
			DateJoined:   content.FormatDate(user.DateJoined, "en"),
			IsSuperadmin: user.IsSuperadmin(superadminEmail()),
			IsSelf:       user.ID == c.CurrentUser.ID,
		}
		if user.LastLogin != nil {
			row.LastLogin = content.FormatDate(*user.LastLogin, "en")
		}
		data.Users = append(data.Users, row)
	}

	var res ResponseData
	res.MustWriteTemplate("admin_users.html", data)
	return res
}
