package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shouniet/medpetrx/internal/model"
)

// ReplaceCommonMedications swaps the cached medications guide for a fresh
// copy from the backend. All-or-nothing: on error the previous cache stays.
func (s *SQLiteStore) ReplaceCommonMedications(ctx context.Context, meds []model.CommonMedication) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM common_medications`); err != nil {
		return fmt.Errorf("failed to clear guide cache: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO common_medications
			(id, drug_name, drug_class, species, common_indications, typical_dose, route, common_side_effects, warnings)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, med := range meds {
		_, err := stmt.ExecContext(ctx,
			med.ID,
			med.DrugName,
			med.DrugClass,
			strings.Join(med.Species, ","),
			med.CommonIndications,
			med.TypicalDose,
			med.Route,
			strings.Join(med.CommonSideEffects, "|"),
			med.Warnings,
		)
		if err != nil {
			return fmt.Errorf("failed to cache %s: %w", med.DrugName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit guide cache: %w", err)
	}
	return nil
}

// ListCommonMedications returns the cached guide ordered by drug name.
func (s *SQLiteStore) ListCommonMedications(ctx context.Context) ([]model.CommonMedication, error) {
	return s.queryGuide(ctx, `
		SELECT id, drug_name, drug_class, species, common_indications, typical_dose, route, common_side_effects, warnings
		FROM common_medications ORDER BY drug_name COLLATE NOCASE`)
}

// SearchCommonMedications matches drug name or class, case-insensitive.
func (s *SQLiteStore) SearchCommonMedications(ctx context.Context, query string) ([]model.CommonMedication, error) {
	pattern := "%" + strings.ReplaceAll(query, "%", "") + "%"
	return s.queryGuide(ctx, `
		SELECT id, drug_name, drug_class, species, common_indications, typical_dose, route, common_side_effects, warnings
		FROM common_medications
		WHERE drug_name LIKE ? COLLATE NOCASE OR drug_class LIKE ? COLLATE NOCASE
		ORDER BY drug_name COLLATE NOCASE`, pattern, pattern)
}

func (s *SQLiteStore) queryGuide(ctx context.Context, query string, args ...any) ([]model.CommonMedication, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query guide cache: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var meds []model.CommonMedication
	for rows.Next() {
		var med model.CommonMedication
		var species, sideEffects sql.NullString
		err := rows.Scan(
			&med.ID,
			&med.DrugName,
			&med.DrugClass,
			&species,
			&med.CommonIndications,
			&med.TypicalDose,
			&med.Route,
			&sideEffects,
			&med.Warnings,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guide row: %w", err)
		}
		med.Species = splitList(species.String, ",")
		med.CommonSideEffects = splitList(sideEffects.String, "|")
		meds = append(meds, med)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read guide rows: %w", err)
	}
	return meds, nil
}

func splitList(s, sep string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, sep)
}
