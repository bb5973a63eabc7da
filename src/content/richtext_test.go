package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParagraphsToHTML(t *testing.T) {
	assert.Equal(t, "<p>one</p><p>two</p>", ParagraphsToHTML([]string{"one", "two"}))
	assert.Equal(t, "<p>one</p>", ParagraphsToHTML([]string{"one", "", "   "}))
	assert.Equal(t, "", ParagraphsToHTML(nil))
	assert.Equal(t, "<p>a &lt;b&gt; c</p>", ParagraphsToHTML([]string{"a <b> c"}))
}

func TestHTMLToParagraphs(t *testing.T) {
	assert.Equal(t, []string{"one", "two"}, HTMLToParagraphs("<p>one</p><p>two</p>"))
	assert.Equal(t, []string{"styled"}, HTMLToParagraphs(`<p class="lead">styled</p>`))
	assert.Equal(t, []string{"bold text"}, HTMLToParagraphs("<p><strong>bold</strong> text</p>"))
	assert.Equal(t, []string{"plain text"}, HTMLToParagraphs("plain text"))
	assert.Nil(t, HTMLToParagraphs(""))
	assert.Nil(t, HTMLToParagraphs("   "))
}

func TestParagraphRoundTrip(t *testing.T) {
	paragraphs := []string{"first paragraph", "second one", "a <tricky> & \"quoted\" third"}
	assert.Equal(t, paragraphs, HTMLToParagraphs(ParagraphsToHTML(paragraphs)))
}

func TestNormalizeContent(t *testing.T) {
	assert.Equal(t, "<p>one</p><p>two</p>", NormalizeContent(`["one", "two"]`))
	assert.Equal(t, "<p>already html</p>", NormalizeContent("<p>already html</p>"))
	// Malformed JSON passes through untouched.
	assert.Equal(t, `["broken`, NormalizeContent(`["broken`))
	assert.Equal(t, "just text", NormalizeContent("just text"))
}

func TestDateFormats(t *testing.T) {
	date := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-03-07", FormatDate(date, "en"))
	assert.Equal(t, "07.03.2024", FormatDate(date, "he"))

	parsed, err := ParseDate("2024-03-07", "en")
	assert.Nil(t, err)
	assert.True(t, parsed.Equal(date))

	parsed, err = ParseDate("07.03.2024", "he")
	assert.Nil(t, err)
	assert.True(t, parsed.Equal(date))

	_, err = ParseDate("07.03.2024", "en")
	assert.NotNil(t, err)
}
