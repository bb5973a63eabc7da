package content

import (
	"testing"

	"git.noga.studio/noga/site/src/models"
	"github.com/stretchr/testify/assert"
)

func TestOrderedChildren(t *testing.T) {
	setOrdering := func(item *models.FaqItem, n int) { item.Ordering = n }

	// Incoming ordering values are irrelevant: rows get 1..N in slice order.
	items := []models.FaqItem{
		{Question: "first", Ordering: 40},
		{Question: "second", Ordering: 2},
		{Question: "third"},
	}
	ordered := orderedChildren(items, setOrdering)

	assert.Len(t, ordered, 3)
	for i, item := range ordered {
		assert.Equal(t, i+1, item.Ordering)
	}
	assert.Equal(t, "first", ordered[0].Question)
	assert.Equal(t, "second", ordered[1].Question)
	assert.Equal(t, "third", ordered[2].Question)

	assert.Empty(t, orderedChildren(nil, setOrdering))
}
