package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouniet/medpetrx/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Migrate(context.Background()))
}

func TestGuideCacheRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	meds := []model.CommonMedication{
		{
			ID:                2,
			DrugName:          "Carprofen",
			DrugClass:         "NSAID",
			Species:           []string{"dog"},
			CommonIndications: "Pain and inflammation from osteoarthritis",
			TypicalDose:       "2.2 mg/kg twice daily",
			Route:             "oral",
			CommonSideEffects: []string{"vomiting", "decreased appetite"},
			Warnings:          "Do not use in cats.",
		},
		{
			ID:        1,
			DrugName:  "Amoxicillin",
			DrugClass: "Antibiotic",
			Species:   []string{"dog", "cat"},
		},
	}
	require.NoError(t, store.ReplaceCommonMedications(ctx, meds))

	got, err := store.ListCommonMedications(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Amoxicillin", got[0].DrugName, "listing is name ordered")
	assert.Equal(t, []string{"dog", "cat"}, got[0].Species)
	assert.Equal(t, []string{"vomiting", "decreased appetite"}, got[1].CommonSideEffects)
}

func TestReplaceCommonMedicationsSwapsWholeCache(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceCommonMedications(ctx, []model.CommonMedication{
		{ID: 1, DrugName: "Amoxicillin", DrugClass: "Antibiotic"},
	}))
	require.NoError(t, store.ReplaceCommonMedications(ctx, []model.CommonMedication{
		{ID: 5, DrugName: "Meloxicam", DrugClass: "NSAID"},
	}))

	got, err := store.ListCommonMedications(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Meloxicam", got[0].DrugName)
}

func TestSearchCommonMedications(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceCommonMedications(ctx, []model.CommonMedication{
		{ID: 1, DrugName: "Amoxicillin", DrugClass: "Antibiotic"},
		{ID: 2, DrugName: "Carprofen", DrugClass: "NSAID"},
		{ID: 3, DrugName: "Meloxicam", DrugClass: "NSAID"},
	}))

	byName, err := store.SearchCommonMedications(ctx, "amox")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Amoxicillin", byName[0].DrugName)

	byClass, err := store.SearchCommonMedications(ctx, "nsaid")
	require.NoError(t, err)
	assert.Len(t, byClass, 2)

	none, err := store.SearchCommonMedications(ctx, "nosuchdrug")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestConfirmationLog(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	result := model.ConfirmResult{
		MedicationsSaved: 2,
		VaccinesSaved:    1,
		AllergyWarnings:  []model.AllergyWarning{{DrugName: "Amoxicillin"}},
	}
	require.NoError(t, store.RecordConfirmation(ctx, 3, 7, result))
	require.NoError(t, store.RecordConfirmation(ctx, 3, 8, model.ConfirmResult{}))

	records, err := store.RecentConfirmations(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(8), records[0].DocumentID, "newest first")
	assert.Equal(t, 3, records[1].TotalSaved)
	assert.Equal(t, 1, records[1].WarningCount)
	assert.False(t, records[0].ConfirmedAt.IsZero())
}
