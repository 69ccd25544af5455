package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shouniet/medpetrx/internal/model"
	"github.com/shouniet/medpetrx/internal/review"
)

// ConfirmExtraction submits the decision batch for a reviewed document.
// Every source item appears in the payload exactly once, tagged with its
// decision; the backend skips rejected items and reports per-category save
// counts plus any allergy conflicts among the saved medications.
//
// The call is all-or-nothing: on error nothing was committed and the caller
// may resubmit the same payload. It is never retried automatically.
func (c *Client) ConfirmExtraction(ctx context.Context, petID, docID int64, payload map[model.Category][]review.DecisionItem) (*model.ConfirmResult, error) {
	body := make(map[string][]review.DecisionItem, len(payload))
	for cat, items := range payload {
		body[string(cat)] = items
	}

	var result model.ConfirmResult
	path := fmt.Sprintf("/pets/%d/documents/%d/confirm", petID, docID)
	if err := c.do(ctx, http.MethodPost, path, body, &result); err != nil {
		return nil, fmt.Errorf("failed to confirm extraction: %w", err)
	}
	return &result, nil
}
