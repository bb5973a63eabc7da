package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSlug(t *testing.T) {
	assert.Equal(t, "hello-world", NormalizeSlug("Hello, World!"))
	assert.Equal(t, "my-first-post", NormalizeSlug("  My first post  "))
	assert.Equal(t, "a-b-c", NormalizeSlug("a___b---c"))
	assert.Equal(t, "post-2024", NormalizeSlug("Post (2024)"))
	assert.Equal(t, "", NormalizeSlug("!!!"))

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{"Hello, World!", "already-a-slug", "  Trim Me  ", "üñïçödé stuff"}
		for _, in := range inputs {
			once := NormalizeSlug(in)
			assert.Equal(t, once, NormalizeSlug(once))
		}
	})

	t.Run("output is always valid or empty", func(t *testing.T) {
		inputs := []string{"Hello, World!", "---", "a", "שלום post", "MIXED case HERE"}
		for _, in := range inputs {
			slug := NormalizeSlug(in)
			if slug != "" {
				assert.True(t, IsValidSlug(slug), "normalized %q to invalid slug %q", in, slug)
			}
		}
	})
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("hello"))
	assert.True(t, IsValidSlug("hello-world-2"))
	assert.True(t, IsValidSlug("123"))

	assert.False(t, IsValidSlug(""))
	assert.False(t, IsValidSlug("-leading"))
	assert.False(t, IsValidSlug("trailing-"))
	assert.False(t, IsValidSlug("double--dash"))
	assert.False(t, IsValidSlug("UPPER"))
	assert.False(t, IsValidSlug("spa ce"))
	assert.False(t, IsValidSlug("under_score"))
}
