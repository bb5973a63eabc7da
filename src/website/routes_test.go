package website

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteBuilderChaining(t *testing.T) {
	router := &Router{}
	rb := RouteBuilder{Router: router}

	noop := func(h Handler) Handler { return h }
	handler := func(c *RequestContext) ResponseData { return ResponseData{} }

	// Derived builders register on the shared router.
	sub := rb.WithMiddleware(noop)
	sub.GET(regexp.MustCompile("^/a$"), handler)
	sub2 := sub.WithMiddleware(noop)
	sub2.POST(regexp.MustCompile("^/b$"), handler)

	assert.Len(t, router.Routes, 2)
	assert.Equal(t, "GET", router.Routes[0].Method)
	assert.Equal(t, "POST", router.Routes[1].Method)
}

func TestNewWebsiteRoutes(t *testing.T) {
	handler := NewWebsiteRoutes(nil)
	assert.NotNil(t, handler)

	router, ok := handler.(*Router)
	assert.True(t, ok)
	assert.Greater(t, len(router.Routes), 20)
}
