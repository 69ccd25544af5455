package storage

import (
	"context"
	"fmt"

	"github.com/shouniet/medpetrx/internal/model"
	"github.com/shouniet/medpetrx/internal/service"
)

// RecordConfirmation logs a successful batch confirmation locally. The log
// is informational history for the user; the backend remains the source of
// truth for the saved records.
func (s *SQLiteStore) RecordConfirmation(ctx context.Context, petID, docID int64, result model.ConfirmResult) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO confirmations (pet_id, document_id, total_saved, warning_count)
		VALUES (?, ?, ?, ?)`,
		petID, docID, result.TotalSaved(), len(result.AllergyWarnings))
	if err != nil {
		return fmt.Errorf("failed to record confirmation: %w", err)
	}
	return nil
}

// RecentConfirmations returns the most recent logged confirmations.
func (s *SQLiteStore) RecentConfirmations(ctx context.Context, limit int) ([]service.ConfirmationRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT pet_id, document_id, total_saved, warning_count, confirmed_at
		FROM confirmations ORDER BY confirmed_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query confirmations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []service.ConfirmationRecord
	for rows.Next() {
		var rec service.ConfirmationRecord
		if err := rows.Scan(&rec.PetID, &rec.DocumentID, &rec.TotalSaved, &rec.WarningCount, &rec.ConfirmedAt); err != nil {
			return nil, fmt.Errorf("failed to scan confirmation row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read confirmation rows: %w", err)
	}
	return records, nil
}
