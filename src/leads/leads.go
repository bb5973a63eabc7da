package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"git.noga.studio/noga/site/src/config"
	"git.noga.studio/noga/site/src/db"
	"git.noga.studio/noga/site/src/logging"
	"git.noga.studio/noga/site/src/models"
	"git.noga.studio/noga/site/src/oops"
)

// Submission is what the public contact form posts.
type Submission struct {
	Name           string `json:"name"`
	ContactMethod  string `json:"contact_method"`
	ContactDetails string `json:"contact_details"`
	Consent        bool   `json:"consent"`
}

var validContactMethods = map[string]bool{
	"phone":    true,
	"whatsapp": true,
	"telegram": true,
	"email":    true,
}

var ErrInvalidSubmission = errors.New("invalid lead submission")

func (s *Submission) Validate() error {
	s.Name = strings.TrimSpace(s.Name)
	s.ContactDetails = strings.TrimSpace(s.ContactDetails)
	s.ContactMethod = strings.ToLower(strings.TrimSpace(s.ContactMethod))

	if s.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidSubmission)
	}
	if s.ContactDetails == "" {
		return fmt.Errorf("%w: contact details are required", ErrInvalidSubmission)
	}
	if !validContactMethods[s.ContactMethod] {
		return fmt.Errorf("%w: unknown contact method '%s'", ErrInvalidSubmission, s.ContactMethod)
	}
	if !s.Consent {
		return fmt.Errorf("%w: consent is required", ErrInvalidSubmission)
	}
	return nil
}

// Record stores the lead before any forwarding happens, so a webhook outage
// never loses a lead.
func Record(ctx context.Context, conn db.ConnOrTx, sub Submission) (*models.Lead, error) {
	lead, err := db.QueryOne[models.Lead](ctx, conn,
		`
		INSERT INTO leads (name, contact_method, contact_details, consent, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING *
		`,
		sub.Name, sub.ContactMethod, sub.ContactDetails, sub.Consent, time.Now(),
	)
	if err != nil {
		return nil, oops.New(err, "failed to record lead")
	}
	return lead, nil
}

const forwardTimeout = 10 * time.Second

// Forward sends the lead to the configured webhook as JSON. It is best-effort:
// failures get logged but never surface to the visitor, who has already been
// told their submission went through.
func Forward(ctx context.Context, lead *models.Lead) {
	webhookUrl := config.Config.Leads.WebhookUrl
	if webhookUrl == "" {
		return
	}

	payload, err := json.Marshal(map[string]any{
		"id":              lead.ID.String(),
		"name":            lead.Name,
		"contact_method":  lead.ContactMethod,
		"contact_details": lead.ContactDetails,
		"consent":         lead.Consent,
		"created_at":      lead.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		logging.ExtractLogger(ctx).Error().Err(err).Msg("failed to marshal lead payload")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, forwardTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookUrl, bytes.NewReader(payload))
	if err != nil {
		logging.ExtractLogger(ctx).Error().Err(err).Msg("failed to build lead webhook request")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		logging.ExtractLogger(ctx).Error().Err(err).Msg("failed to forward lead to webhook")
		return
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		logging.ExtractLogger(ctx).Error().
			Int("status", res.StatusCode).
			Msg("lead webhook responded with an error")
	}
}
