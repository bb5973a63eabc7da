package website

import (
	"net/http"
	"regexp"

	"git.noga.studio/noga/site/src/siteurl"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewWebsiteRoutes(conn *pgxpool.Pool) http.Handler {
	router := &Router{}

	rb := RouteBuilder{
		Router: router,
		Middlewares: []Middleware{
			func(h Handler) Handler {
				return func(c *RequestContext) ResponseData {
					c.Conn = conn
					return h(c)
				}
			},
			trackRequestTime,
			panicCatcherMiddleware,
			logContextErrorsMiddleware,
			localeMiddleware,
			authMiddleware,
		},
	}

	// Public pages
	rb.GET(siteurl.RegexHomepage, Landing)
	rb.GET(siteurl.RegexAbout, About)
	rb.GET(siteurl.RegexBlog, BlogIndex)
	rb.GET(siteurl.RegexBlogPost, BlogPost)
	rb.POST(siteurl.RegexSetLanguage, SetLanguage)

	rb.GET(siteurl.RegexRobots, Robots)
	rb.GET(siteurl.RegexPublic, PublicFiles)

	// Auth
	rb.GET(siteurl.RegexLogin, LoginPage)
	rb.POST(siteurl.RegexLogin, Login)
	rb.AnyMethod(siteurl.RegexLogout, Logout)

	// Public APIs
	rb.POST(siteurl.RegexAPILeads, APILeadSubmit)

	// Admin user management API, gated by bearer token instead of cookies
	rb.GET(siteurl.RegexAPIAdminUsers, APIAdminUsersList)
	rb.POST(siteurl.RegexAPIAdminUsers, APIAdminUsersCreate)
	rb.DELETE(siteurl.RegexAPIAdminUser, APIAdminUsersDelete)

	// Admin console
	adminRb := rb.WithMiddleware(needsAuth)
	adminCsrfRb := adminRb.WithMiddleware(csrfMiddleware)
	adminRb.GET(siteurl.RegexAdmin, AdminDashboard)
	adminRb.GET(siteurl.RegexAdminSection, AdminSectionPage)
	adminCsrfRb.POST(siteurl.RegexAdminSection, AdminSectionSave)

	adminRb.GET(siteurl.RegexAdminBlog, AdminBlogList)
	adminRb.GET(siteurl.RegexAdminBlogNew, AdminBlogNew)
	// Must come after the "new" route: "new" is itself a valid slug.
	adminRb.GET(siteurl.RegexAdminBlogEdit, AdminBlogEdit)
	adminCsrfRb.POST(siteurl.RegexAdminBlogUpload, AdminBlogUpload)
	adminCsrfRb.POST(siteurl.RegexAdminBlogEdit, AdminBlogSave)
	adminCsrfRb.POST(siteurl.RegexAdminBlogDelete, AdminBlogDelete)

	superRb := rb.WithMiddleware(needsAuth, superadminsOnly)
	superRb.GET(siteurl.RegexAdminUsers, AdminUsersPage)

	rb.AnyMethod(regexp.MustCompile("^"), FourOhFour)

	return router
}
