package templates

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every editor with a repeatable row list needs a <template> to stamp new
// rows from, or the add button cannot create the first row on an empty list.
func TestRepeatListsHaveRowTemplates(t *testing.T) {
	entries, err := fs.ReadDir(embeddedTemplateFs, "src")
	require.NoError(t, err)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		contents, err := fs.ReadFile(embeddedTemplateFs, "src/"+entry.Name())
		require.NoError(t, err)

		if strings.Contains(string(contents), `class="repeat"`) {
			assert.Contains(t, string(contents), `class="row-template"`,
				"%s has a repeat list but no row template", entry.Name())
		}
	}
}

func TestBlogEditorHasImageUpload(t *testing.T) {
	contents, err := fs.ReadFile(embeddedTemplateFs, "src/admin_blog_edit.html")
	require.NoError(t, err)

	assert.Contains(t, string(contents), `type="file"`)
	assert.Contains(t, string(contents), "data-upload-url")
}
