package leads

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmissionValidate(t *testing.T) {
	good := Submission{
		Name:           "Dana",
		ContactMethod:  "whatsapp",
		ContactDetails: "+972501234567",
		Consent:        true,
	}
	assert.Nil(t, good.Validate())

	t.Run("trims and lowercases", func(t *testing.T) {
		sub := Submission{
			Name:           "  Dana  ",
			ContactMethod:  " WhatsApp ",
			ContactDetails: " +972501234567 ",
			Consent:        true,
		}
		assert.Nil(t, sub.Validate())
		assert.Equal(t, "Dana", sub.Name)
		assert.Equal(t, "whatsapp", sub.ContactMethod)
		assert.Equal(t, "+972501234567", sub.ContactDetails)
	})

	t.Run("missing fields", func(t *testing.T) {
		sub := good
		sub.Name = "   "
		assert.ErrorIs(t, sub.Validate(), ErrInvalidSubmission)

		sub = good
		sub.ContactDetails = ""
		assert.ErrorIs(t, sub.Validate(), ErrInvalidSubmission)

		sub = good
		sub.ContactMethod = "carrier pigeon"
		assert.ErrorIs(t, sub.Validate(), ErrInvalidSubmission)

		sub = good
		sub.Consent = false
		assert.ErrorIs(t, sub.Validate(), ErrInvalidSubmission)
	})
}
