package tables

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/hog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTempStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := OpenSQLite(filepath.Join(t.TempDir(), "tables.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestOpenSQLite_RequiresPath(t *testing.T) {
	_, err := OpenSQLite("  ")
	assert.Error(t, err)
}

func TestSQLiteStore_Distributions(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDistributions(ctx, &SaveDistributionsInput{
		Tables: []*models.DistributionTable{
			{Rolls: 2, Dice: 4, Probabilities: map[int]float64{1: 7.0 / 16, 8: 1.0 / 16}},
			{Rolls: 1, Dice: 4, Probabilities: map[int]float64{1: 0.5}},
		},
	}))
	// Saving again replaces the earlier rows for the same key
	require.NoError(t, store.SaveDistributions(ctx, &SaveDistributionsInput{
		Tables: []*models.DistributionTable{
			{Rolls: 1, Dice: 4, Probabilities: map[int]float64{1: 0.25, 4: 0.25}},
		},
	}))

	out, err := store.LoadDistributions(ctx, &LoadDistributionsInput{})
	require.NoError(t, err)
	require.Len(t, out.Tables, 2)

	assert.Equal(t, 1, out.Tables[0].Rolls)
	assert.Equal(t, map[int]float64{1: 0.25, 4: 0.25}, out.Tables[0].Probabilities)
	assert.Equal(t, 2, out.Tables[1].Rolls)
	assert.Equal(t, 1.0/16, out.Tables[1].Probabilities[8])
}

func TestSQLiteStore_Values(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveValues(ctx, &SaveValuesInput{
		Entries: []*models.ValueEntry{
			{NumRolls: 3, Dice: 6, Score: 10, OpponentScore: 20, Value: 1.5},
			{NumRolls: 0, Dice: 4, Score: 1, OpponentScore: 2, Value: -2},
		},
	}))
	require.NoError(t, store.SaveValues(ctx, &SaveValuesInput{
		Entries: []*models.ValueEntry{
			{NumRolls: 3, Dice: 6, Score: 10, OpponentScore: 20, Value: 4.25},
		},
	}))

	out, err := store.LoadValues(ctx, &LoadValuesInput{})
	require.NoError(t, err)
	require.Len(t, out.Entries, 2)

	assert.Equal(t, 4, out.Entries[0].Dice)
	assert.Equal(t, -2.0, out.Entries[0].Value)
	assert.Equal(t, 4.25, out.Entries[1].Value)
}

func TestSQLiteStore_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.db")
	ctx := context.Background()

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveValues(ctx, &SaveValuesInput{
		Entries: []*models.ValueEntry{{NumRolls: 1, Dice: 6, Score: 0, OpponentScore: 0, Value: 3}},
	}))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	out, err := reopened.LoadValues(ctx, &LoadValuesInput{})
	require.NoError(t, err)
	require.Len(t, out.Entries, 1)
	assert.Equal(t, 3.0, out.Entries[0].Value)
}

func TestSQLiteStore_CancelledContext(t *testing.T) {
	store := openTempStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.SaveValues(ctx, &SaveValuesInput{})
	assert.ErrorIs(t, err, context.Canceled)
}
