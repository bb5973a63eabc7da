package siteurl

import (
	"net/url"
	"regexp"
	"testing"

	"git.noga.studio/noga/site/src/config"
	"github.com/stretchr/testify/assert"
)

func TestUrl(t *testing.T) {
	defer func() {
		SetGlobalBaseUrl(config.Config.BaseUrl)
	}()
	SetGlobalBaseUrl("http://noga.test")

	t.Run("no query", func(t *testing.T) {
		result := Url("/test/foo", nil)
		assert.Equal(t, "http://noga.test/test/foo", result)
	})
	t.Run("yes query", func(t *testing.T) {
		result := Url("/test/foo", []Q{{"bar", "baz"}, {"zig??", "zig & zag!!"}})
		assert.Equal(t, "http://noga.test/test/foo?bar=baz&zig%3F%3F=zig+%26+zag%21%21", result)
	})
}

func TestPublicPages(t *testing.T) {
	AssertRegexMatch(t, BuildHomepage(), RegexHomepage, nil)
	AssertRegexMatch(t, BuildAbout(), RegexAbout, nil)
	AssertRegexMatch(t, BuildBlog(), RegexBlog, nil)
	AssertRegexMatch(t, BuildSetLanguage(), RegexSetLanguage, nil)
}

func TestBlogPost(t *testing.T) {
	AssertRegexMatch(t, BuildBlogPost("my-first-post"), RegexBlogPost, map[string]string{"slug": "my-first-post"})
	AssertRegexMatch(t, BuildBlogPost("post2"), RegexBlogPost, map[string]string{"slug": "post2"})

	assert.False(t, RegexBlogPost.MatchString("/blog/Invalid-Slug"))
	assert.False(t, RegexBlogPost.MatchString("/blog/double--dash"))
	assert.False(t, RegexBlogPost.MatchString("/blog/"))
}

func TestAuthPages(t *testing.T) {
	AssertRegexMatch(t, BuildLogin(""), RegexLogin, nil)
	AssertRegexMatch(t, BuildLogin("/admin"), RegexLogin, nil)
	AssertRegexMatch(t, BuildLogout(), RegexLogout, nil)
}

func TestAdminPages(t *testing.T) {
	AssertRegexMatch(t, BuildAdmin(), RegexAdmin, nil)
	for _, section := range []string{"hero", "stats", "program", "whoisfor", "results", "advantages", "participation", "faq", "pages", "banner", "settings", "seo"} {
		AssertRegexMatch(t, BuildAdminSection(section), RegexAdminSection, map[string]string{"section": section})
	}
	assert.False(t, RegexAdminSection.MatchString("/admin/bogus"))

	AssertRegexMatch(t, BuildAdminBlog(), RegexAdminBlog, nil)
	AssertRegexMatch(t, BuildAdminBlogNew(), RegexAdminBlogNew, nil)
	AssertRegexMatch(t, BuildAdminBlogEdit("some-post"), RegexAdminBlogEdit, map[string]string{"slug": "some-post"})
	AssertRegexMatch(t, BuildAdminBlogDelete("some-post"), RegexAdminBlogDelete, map[string]string{"slug": "some-post"})
	AssertRegexMatch(t, BuildAdminBlogUpload(), RegexAdminBlogUpload, nil)
	AssertRegexMatch(t, BuildAdminUsers(), RegexAdminUsers, nil)

	// "new" is a valid slug shape, so route order matters: the new-post route
	// must be registered before the edit route.
	assert.True(t, RegexAdminBlogEdit.MatchString("/admin/blog/new"))
}

func TestAPIs(t *testing.T) {
	AssertRegexMatch(t, BuildAPILeads(), RegexAPILeads, nil)
	AssertRegexMatch(t, BuildAPIAdminUsers(), RegexAPIAdminUsers, nil)
	AssertRegexMatch(t, BuildAPIAdminUser(42), RegexAPIAdminUser, map[string]string{"id": "42"})
}

func TestPublic(t *testing.T) {
	AssertRegexMatch(t, BuildPublic("style.css"), RegexPublic, nil)
}

func AssertRegexMatch(t *testing.T, fullUrl string, regex *regexp.Regexp, paramsToVerify map[string]string) {
	parsed, err := url.Parse(fullUrl)
	ok := assert.Nilf(t, err, "Full url could not be parsed: %s", fullUrl)
	if !ok {
		return
	}

	requestPath := parsed.Path
	if len(requestPath) == 0 {
		requestPath = "/"
	}
	match := regex.FindStringSubmatch(requestPath)
	assert.NotNilf(t, match, "Url did not match regex: [%s] vs [%s]", requestPath, regex.String())

	if paramsToVerify != nil {
		subexpNames := regex.SubexpNames()
		for i, matchedValue := range match {
			paramName := subexpNames[i]
			expectedValue, ok := paramsToVerify[paramName]
			if ok {
				assert.Equalf(t, expectedValue, matchedValue, "Param mismatch for [%s]", paramName)
				delete(paramsToVerify, paramName)
			}
		}
		if len(paramsToVerify) > 0 {
			unmatchedParams := make([]string, 0, len(paramsToVerify))
			for paramName := range paramsToVerify {
				unmatchedParams = append(unmatchedParams, paramName)
			}
			assert.Fail(t, "Expected match groups not found", unmatchedParams)
		}
	}
}
