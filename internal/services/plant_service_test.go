package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantstore/internal/apperr"
	"plantstore/internal/db"
	"plantstore/internal/models"
)

func newPlantFixture(t *testing.T) (*PlantService, []models.Plant) {
	t.Helper()
	svc := NewPlantService(db.NewMemoryPlants(), zerolog.Nop())
	ctx := context.Background()

	seed := []models.Plant{
		{PlantName: "Monstera Deliciosa", ScientificName: "Monstera deliciosa", FamilyName: "Araceae", Difficulty: "easy", Featured: true, Indoor: true},
		{PlantName: "Basil", ScientificName: "Ocimum basilicum", FamilyName: "Lamiaceae", Difficulty: "easy", Edible: true},
		{PlantName: "Orchid", ScientificName: "Phalaenopsis amabilis", FamilyName: "Orchidaceae", Difficulty: "hard", Indoor: true},
	}
	created := make([]models.Plant, 0, len(seed))
	for i := range seed {
		p, err := svc.Create(ctx, &seed[i])
		require.NoError(t, err)
		created = append(created, *p)
	}
	return svc, created
}

func TestPlantService_Filters(t *testing.T) {
	svc, _ := newPlantFixture(t)
	ctx := context.Background()

	all, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	featured, err := svc.Featured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Monstera Deliciosa", featured[0].PlantName)

	indoor, err := svc.Indoor(ctx)
	require.NoError(t, err)
	assert.Len(t, indoor, 2)

	edible, err := svc.Edible(ctx)
	require.NoError(t, err)
	require.Len(t, edible, 1)
	assert.Equal(t, "Basil", edible[0].PlantName)

	hard, err := svc.ByDifficulty(ctx, "hard")
	require.NoError(t, err)
	require.Len(t, hard, 1)
	assert.Equal(t, "Orchid", hard[0].PlantName)

	fam, err := svc.ByFamily(ctx, "Lamiaceae")
	require.NoError(t, err)
	assert.Len(t, fam, 1)

	sci, err := svc.ByScientificName(ctx, "Monstera deliciosa")
	require.NoError(t, err)
	assert.Len(t, sci, 1)
}

func TestPlantService_SearchByName(t *testing.T) {
	svc, _ := newPlantFixture(t)

	hits, err := svc.SearchByName(context.Background(), "monstera")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Monstera Deliciosa", hits[0].PlantName)

	none, err := svc.SearchByName(context.Background(), "cactus")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPlantService_GetUpdateDelete(t *testing.T) {
	svc, created := newPlantFixture(t)
	ctx := context.Background()
	id := created[0].ID.Hex()

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Monstera Deliciosa", got.PlantName)

	updated, err := svc.UpdateFields(ctx, id, map[string]interface{}{"difficulty": "medium", "_id": "attacker-controlled"})
	require.NoError(t, err)
	assert.Equal(t, "medium", updated.Difficulty)
	assert.Equal(t, created[0].ID, updated.ID)

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPlantService_InvalidID(t *testing.T) {
	svc, _ := newPlantFixture(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, apperr.ErrInvalidID)
	_, err = svc.UpdateFields(ctx, "nope", map[string]interface{}{})
	assert.ErrorIs(t, err, apperr.ErrInvalidID)
	assert.ErrorIs(t, svc.Delete(ctx, "nope"), apperr.ErrInvalidID)
}
