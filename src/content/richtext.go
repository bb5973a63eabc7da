package content

import (
	"encoding/json"
	"html"
	"regexp"
	"strings"
	"time"
)

/*
Blog content lives in one column but comes in two historical shapes: an HTML
string written by the rich-text editor, or a legacy JSON array of paragraph
strings. Everything in the app works on the HTML form; these helpers convert
at the data boundary.
*/

var reParagraph = regexp.MustCompile(`(?s)<p[^>]*>(.*?)</p>`)
var reTag = regexp.MustCompile(`<[^>]+>`)

// NormalizeContent converts whatever is stored in the content column into
// HTML. Legacy paragraph arrays are detected by their JSON-array shape.
func NormalizeContent(stored string) string {
	trimmed := strings.TrimSpace(stored)
	if strings.HasPrefix(trimmed, "[") {
		var paragraphs []string
		if err := json.Unmarshal([]byte(trimmed), &paragraphs); err == nil {
			return ParagraphsToHTML(paragraphs)
		}
	}
	return stored
}

// ParagraphsToHTML wraps each non-empty trimmed paragraph in a <p> tag.
func ParagraphsToHTML(paragraphs []string) string {
	var b strings.Builder
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(p))
		b.WriteString("</p>")
	}
	return b.String()
}

// HTMLToParagraphs is the reverse conversion, for editing legacy-format posts
// as plain paragraphs. Strings that don't look like HTML pass through as a
// single paragraph.
func HTMLToParagraphs(content string) []string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil
	}
	if !strings.HasPrefix(trimmed, "<") {
		return []string{trimmed}
	}

	var paragraphs []string
	for _, match := range reParagraph.FindAllStringSubmatch(trimmed, -1) {
		text := reTag.ReplaceAllString(match[1], "")
		text = strings.TrimSpace(html.UnescapeString(text))
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return paragraphs
}

// Publish dates are shown and edited in a locale-specific format: ISO-style
// for English, day-first for Hebrew.

func FormatDate(t time.Time, locale string) string {
	if locale == "en" {
		return t.Format("2006-01-02")
	}
	return t.Format("02.01.2006")
}

func ParseDate(s string, locale string) (time.Time, error) {
	layout := "02.01.2006"
	if locale == "en" {
		layout = "2006-01-02"
	}
	return time.ParseInLocation(layout, strings.TrimSpace(s), time.UTC)
}
