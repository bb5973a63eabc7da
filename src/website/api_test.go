package website

import (
	"net/http"
	"testing"

	"git.noga.studio/noga/site/src/models"
	"github.com/stretchr/testify/assert"
)

func TestRejectSelfDelete(t *testing.T) {
	caller := &models.User{ID: 7}

	res, rejected := rejectSelfDelete(caller, 7)
	assert.True(t, rejected)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	_, rejected = rejectSelfDelete(caller, 8)
	assert.False(t, rejected)
}
