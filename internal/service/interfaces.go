// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/shouniet/medpetrx/internal/model"
	"github.com/shouniet/medpetrx/internal/review"
)

// ExtractionSource produces the categorized candidate lists for a document.
type ExtractionSource interface {
	// GetDocument fetches a document including any extracted data.
	GetDocument(ctx context.Context, docID int64) (*model.Document, error)
}

// ReviewCommitter persists the final decision batch for a review session.
type ReviewCommitter interface {
	// ConfirmExtraction submits the four category payloads. On failure the
	// entire batch is uncommitted and the caller may retry with the same
	// review state; implementations must not retry automatically.
	ConfirmExtraction(ctx context.Context, petID, docID int64, payload map[model.Category][]review.DecisionItem) (*model.ConfirmResult, error)
}

// ReviewBackend is the collaborator surface the review session needs.
type ReviewBackend interface {
	ExtractionSource
	ReviewCommitter
}

// ReferenceStore is the local cache for backend reference data and the
// client-side log of past confirmations.
type ReferenceStore interface {
	// Common medications guide cache.
	ReplaceCommonMedications(ctx context.Context, meds []model.CommonMedication) error
	ListCommonMedications(ctx context.Context) ([]model.CommonMedication, error)
	SearchCommonMedications(ctx context.Context, query string) ([]model.CommonMedication, error)

	// Confirmation history.
	RecordConfirmation(ctx context.Context, petID, docID int64, result model.ConfirmResult) error
	RecentConfirmations(ctx context.Context, limit int) ([]ConfirmationRecord, error)

	// Database management.
	Migrate(ctx context.Context) error
	Close() error
}

// ConfirmationRecord is one locally logged batch confirmation.
type ConfirmationRecord struct {
	ConfirmedAt  time.Time
	PetID        int64
	DocumentID   int64
	TotalSaved   int
	WarningCount int
}

// RetryOptions configures retry behavior for idempotent operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
