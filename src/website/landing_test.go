package website

import (
	"errors"
	"testing"

	"git.noga.studio/noga/site/src/content"
	"git.noga.studio/noga/site/src/db"
	"git.noga.studio/noga/site/src/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestContentOrDefault(t *testing.T) {
	logger := zerolog.Nop()
	c := &RequestContext{Logger: &logger, Locale: "he"}

	t.Run("stored content wins", func(t *testing.T) {
		stored := models.HeroSection{HeadingTop: "stored heading"}
		got := contentOrDefault(c, "hero", &stored, nil, content.DefaultHero)
		assert.Equal(t, "stored heading", got.HeadingTop)
	})

	t.Run("missing row falls back to defaults", func(t *testing.T) {
		got := contentOrDefault(c, "hero", nil, db.NotFound, content.DefaultHero)
		assert.Equal(t, content.DefaultHero("he"), got)
	})

	t.Run("query failure falls back to defaults", func(t *testing.T) {
		got := contentOrDefault(c, "hero", nil, errors.New("connection refused"), content.DefaultHero)
		assert.Equal(t, content.DefaultHero("he"), got)
	})

	t.Run("defaults follow the request locale", func(t *testing.T) {
		enCtx := &RequestContext{Logger: &logger, Locale: "en"}
		got := contentOrDefault(enCtx, "faq", nil, db.NotFound, content.DefaultFaq)
		assert.Equal(t, content.DefaultFaq("en"), got)
	})
}
