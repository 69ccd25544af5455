package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shouniet/medpetrx/internal/model"
)

// GetDashboard fetches the cross-pet reminder summary.
func (c *Client) GetDashboard(ctx context.Context) (*model.DashboardSummary, error) {
	var summary model.DashboardSummary
	if err := c.do(ctx, http.MethodGet, "/dashboard/summary", nil, &summary); err != nil {
		return nil, fmt.Errorf("failed to fetch dashboard: %w", err)
	}
	return &summary, nil
}

// ListCommonMedications fetches the veterinary medications reference guide.
func (c *Client) ListCommonMedications(ctx context.Context) ([]model.CommonMedication, error) {
	var meds []model.CommonMedication
	if err := c.do(ctx, http.MethodGet, "/common-medications", nil, &meds); err != nil {
		return nil, fmt.Errorf("failed to fetch medications guide: %w", err)
	}
	return meds, nil
}

// ExportSummary downloads the backend-rendered medical record summary for
// one pet as plain text.
func (c *Client) ExportSummary(ctx context.Context, petID int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/pets/%d/export/pdf", c.baseURL, petID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("export failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.errorFromResponse(resp)
	}

	return readAllLimited(resp.Body)
}
