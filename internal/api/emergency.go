package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shouniet/medpetrx/internal/common"
	"github.com/shouniet/medpetrx/internal/model"
)

// CreateEmergencyShare mints a time-boxed public token for a pet's
// emergency summary. accessType is link, qr, or otp; expiresHours must be
// between 1 and 168.
func (c *Client) CreateEmergencyShare(ctx context.Context, petID int64, accessType string, expiresHours int) (*model.EmergencyShare, error) {
	if expiresHours < 1 || expiresHours > 168 {
		return nil, fmt.Errorf("%w: expires_hours must be between 1 and 168", common.ErrBadRequest)
	}

	body := struct {
		AccessType   string `json:"access_type"`
		ExpiresHours int    `json:"expires_hours"`
	}{AccessType: accessType, ExpiresHours: expiresHours}

	var share model.EmergencyShare
	path := fmt.Sprintf("/pets/%d/emergency/share", petID)
	if err := c.do(ctx, http.MethodPost, path, body, &share); err != nil {
		return nil, fmt.Errorf("failed to create emergency share: %w", err)
	}
	return &share, nil
}

// GetEmergencySummary fetches the public emergency snapshot for a share
// token. No auth required; expired or revoked tokens return not found.
func (c *Client) GetEmergencySummary(ctx context.Context, token string) (*model.EmergencySummary, error) {
	var summary model.EmergencySummary
	if err := c.do(ctx, http.MethodGet, "/emergency/"+token, nil, &summary); err != nil {
		return nil, fmt.Errorf("failed to fetch emergency summary: %w", err)
	}
	return &summary, nil
}
