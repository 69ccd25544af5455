package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shouniet/medpetrx/internal/model"
)

// CheckInteractions runs a drug-drug interaction check for a pet. With an
// empty drug list the backend pulls the pet's active medications. The check
// itself runs server-side against an external drug database; this is a pure
// pass-through.
func (c *Client) CheckInteractions(ctx context.Context, petID int64, drugs []string) (*model.InteractionReport, error) {
	body := struct {
		DrugNames []string `json:"drug_names,omitempty"`
	}{DrugNames: drugs}

	var report model.InteractionReport
	path := fmt.Sprintf("/pets/%d/medications/check-interactions", petID)
	if err := c.do(ctx, http.MethodPost, path, body, &report); err != nil {
		return nil, fmt.Errorf("interaction check failed: %w", err)
	}
	return &report, nil
}

// CheckInteractionsAllPets checks interactions across the active
// medications of every pet on the account.
func (c *Client) CheckInteractionsAllPets(ctx context.Context) (*model.InteractionReport, error) {
	var report model.InteractionReport
	if err := c.do(ctx, http.MethodPost, "/medications/check-interactions-all-pets", struct{}{}, &report); err != nil {
		return nil, fmt.Errorf("interaction check failed: %w", err)
	}
	return &report, nil
}
