package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineItemUnmarshal(t *testing.T) {
	t.Run("legacy bare strings", func(t *testing.T) {
		var items []LineItem
		err := json.Unmarshal([]byte(`["first", "second"]`), &items)
		assert.Nil(t, err)
		assert.Equal(t, []LineItem{{Text: "first"}, {Text: "second"}}, items)
	})

	t.Run("object form", func(t *testing.T) {
		var items []LineItem
		err := json.Unmarshal([]byte(`[{"text": "a"}, {"text": "b", "muted": true}]`), &items)
		assert.Nil(t, err)
		assert.Equal(t, []LineItem{{Text: "a"}, {Text: "b", Muted: true}}, items)
	})

	t.Run("mixed", func(t *testing.T) {
		var items []LineItem
		err := json.Unmarshal([]byte(`["plain", {"text": "fancy", "muted": true}]`), &items)
		assert.Nil(t, err)
		assert.Equal(t, []LineItem{{Text: "plain"}, {Text: "fancy", Muted: true}}, items)
	})

	t.Run("always writes object form", func(t *testing.T) {
		out, err := json.Marshal([]LineItem{{Text: "x"}})
		assert.Nil(t, err)
		assert.Equal(t, `[{"text":"x","muted":false}]`, string(out))
	})
}
