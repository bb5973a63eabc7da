package siteurl

import (
	"fmt"
	"regexp"
)

// Public pages

var RegexHomepage = regexp.MustCompile("^/$")

func BuildHomepage() string {
	return Url("/", nil)
}

var RegexAbout = regexp.MustCompile("^/about$")

func BuildAbout() string {
	return Url("/about", nil)
}

var RegexBlog = regexp.MustCompile("^/blog$")

func BuildBlog() string {
	return Url("/blog", nil)
}

var RegexBlogPost = regexp.MustCompile(`^/blog/(?P<slug>[a-z0-9]+(-[a-z0-9]+)*)$`)

func BuildBlogPost(slug string) string {
	return Url("/blog/"+slug, nil)
}

var RegexSetLanguage = regexp.MustCompile("^/language$")

func BuildSetLanguage() string {
	return Url("/language", nil)
}

// Auth

var RegexLogin = regexp.MustCompile("^/login$")

func BuildLogin(redirectTo string) string {
	if redirectTo != "" {
		return Url("/login", []Q{{Name: "redirect", Value: redirectTo}})
	}
	return Url("/login", nil)
}

var RegexLogout = regexp.MustCompile("^/logout$")

func BuildLogout() string {
	return Url("/logout", nil)
}

// Admin console

var RegexAdmin = regexp.MustCompile("^/admin$")

func BuildAdmin() string {
	return Url("/admin", nil)
}

var RegexAdminSection = regexp.MustCompile(`^/admin/(?P<section>hero|stats|program|whoisfor|results|advantages|participation|faq|pages|banner|settings|seo)$`)

func BuildAdminSection(section string) string {
	return Url("/admin/"+section, nil)
}

var RegexAdminBlog = regexp.MustCompile("^/admin/blog$")

func BuildAdminBlog() string {
	return Url("/admin/blog", nil)
}

var RegexAdminBlogNew = regexp.MustCompile("^/admin/blog/new$")

func BuildAdminBlogNew() string {
	return Url("/admin/blog/new", nil)
}

var RegexAdminBlogEdit = regexp.MustCompile(`^/admin/blog/(?P<slug>[a-z0-9]+(-[a-z0-9]+)*)$`)

func BuildAdminBlogEdit(slug string) string {
	return Url("/admin/blog/"+slug, nil)
}

var RegexAdminBlogDelete = regexp.MustCompile(`^/admin/blog/(?P<slug>[a-z0-9]+(-[a-z0-9]+)*)/delete$`)

func BuildAdminBlogDelete(slug string) string {
	return Url(fmt.Sprintf("/admin/blog/%s/delete", slug), nil)
}

var RegexAdminBlogUpload = regexp.MustCompile("^/admin/blog/upload$")

func BuildAdminBlogUpload() string {
	return Url("/admin/blog/upload", nil)
}

var RegexAdminUsers = regexp.MustCompile("^/admin/users$")

func BuildAdminUsers() string {
	return Url("/admin/users", nil)
}

// APIs

var RegexAPILeads = regexp.MustCompile("^/api/leads$")

func BuildAPILeads() string {
	return Url("/api/leads", nil)
}

var RegexAPIAdminUsers = regexp.MustCompile("^/api/admin/users$")

func BuildAPIAdminUsers() string {
	return Url("/api/admin/users", nil)
}

var RegexAPIAdminUser = regexp.MustCompile(`^/api/admin/users/(?P<id>\d+)$`)

func BuildAPIAdminUser(id int) string {
	return Url(fmt.Sprintf("/api/admin/users/%d", id), nil)
}

// Static files

var RegexRobots = regexp.MustCompile("^/robots\\.txt$")

func BuildRobots() string {
	return Url("/robots.txt", nil)
}

var RegexPublic = regexp.MustCompile("^/public/.+$")

func BuildPublic(filepath string) string {
	return StaticUrl(filepath, nil)
}
