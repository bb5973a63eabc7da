package website

import (
	"net/url"
	"testing"

	"git.noga.studio/noga/site/src/models"
	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"one", "two"}, splitLines("one\ntwo"))
	assert.Equal(t, []string{"one", "two"}, splitLines("one\r\ntwo\r\n"))
	assert.Equal(t, []string{"one", "two"}, splitLines("  one  \n\n\n  two"))
	assert.Nil(t, splitLines(""))
	assert.Nil(t, splitLines("\n \r\n \n"))
}

func TestSplitLineItems(t *testing.T) {
	items := splitLineItems("first\n~ second\nthird\n~fourth")
	assert.Equal(t, []models.LineItem{
		{Text: "first"},
		{Text: "second", Muted: true},
		{Text: "third"},
		{Text: "fourth", Muted: true},
	}, items)

	// A lone marker is not an item.
	assert.Nil(t, splitLineItems("~\n~  "))
}

func TestParseIndexedRows(t *testing.T) {
	form := url.Values{}
	form.Set("items[1][value]", "second")
	form.Set("items[0][value]", "first")
	form.Set("items[0][note]", "a note")
	form.Set("items[5][value]", "after a gap")
	form.Set("other[0][value]", "different prefix")
	form.Set("items[x][value]", "bad index")
	form.Set("items[2]", "not a field")

	rows := parseIndexedRows(form, "items")
	assert.Equal(t, []map[string]string{
		{"value": "first", "note": "a note"},
		{"value": "second"},
		{"value": "after a gap"},
	}, rows)

	assert.Empty(t, parseIndexedRows(form, "missing"))
}

func TestAdminFormLocale(t *testing.T) {
	form := url.Values{}
	assert.Equal(t, "en", adminFormLocale(form))

	form.Set("locale", "he")
	assert.Equal(t, "he", adminFormLocale(form))

	form.Set("locale", "fr")
	assert.Equal(t, "en", adminFormLocale(form))
}
