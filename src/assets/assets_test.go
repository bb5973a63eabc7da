package assets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	now := time.Unix(1700000000, 0)
	assert.Equal(t, "en/my-post-1700000000.jpg", ObjectKey("en", "my-post", "jpg", now))
	assert.Equal(t, "he/another-1700000000.webp", ObjectKey("he", "another", "webp", now))
}

func TestContentTypeForFilename(t *testing.T) {
	assert.Equal(t, "image/jpeg", ContentTypeForFilename("photo.JPG"))
	assert.Equal(t, "image/jpeg", ContentTypeForFilename("photo.jpeg"))
	assert.Equal(t, "image/png", ContentTypeForFilename("cover.png"))
	assert.Equal(t, "image/webp", ContentTypeForFilename("banner.webp"))
	assert.Equal(t, "", ContentTypeForFilename("notes.txt"))
	assert.Equal(t, "", ContentTypeForFilename("noextension"))
}

func TestExtensionForContentType(t *testing.T) {
	ext, ok := ExtensionForContentType("image/jpeg")
	assert.True(t, ok)
	assert.Equal(t, "jpg", ext)

	_, ok = ExtensionForContentType("application/pdf")
	assert.False(t, ok)
}
