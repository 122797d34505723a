package sheets_test

import (
	"context"
	"testing"
	"time"

	"github.com/maxmeneghini/D20CharSheet/internal/domain/character"
	apperr "github.com/maxmeneghini/D20CharSheet/internal/errors"
	"github.com/maxmeneghini/D20CharSheet/internal/repositories/sheets"
	"github.com/maxmeneghini/D20CharSheet/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requires a local Redis; skips otherwise.
func TestRedisRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	client := testutils.CreateTestRedisClient(t, nil)
	repo := sheets.NewRedisRepository(&sheets.RedisRepoConfig{
		Client:     client,
		SessionTTL: time.Hour,
	})

	ctx := context.Background()

	sheet := character.NewCharacter()
	sheet.ID = "itest-1"
	sheet.OwnerID = "itest-owner"
	sheet.Name = "Lidda"
	sheet.Abilities.DexBase = 18
	sheet.AddTag(character.TagListFeats, "Weapon Finesse")
	sheet.Skills = []character.Skill{
		{Name: "Hide", Ability: character.AbilityDexterity, Ranks: 4},
	}

	require.NoError(t, repo.Create(ctx, sheet))

	got, err := repo.Get(ctx, "itest-1")
	require.NoError(t, err)
	assert.Equal(t, "Lidda", got.Name)
	assert.Equal(t, 18, got.Abilities.DexBase)
	assert.Equal(t, []string{"Weapon Finesse"}, got.Feats)
	require.Len(t, got.Skills, 1)
	assert.Equal(t, "Hide", got.Skills[0].Name)

	got.Pool = character.HPResource{Current: 3, Max: 6}
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.Get(ctx, "itest-1")
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Pool.Current)

	byOwner, err := repo.GetByOwner(ctx, "itest-owner")
	require.NoError(t, err)
	assert.Len(t, byOwner, 1)

	require.NoError(t, repo.Delete(ctx, "itest-1"))
	_, err = repo.Get(ctx, "itest-1")
	assert.True(t, apperr.IsNotFound(err))
}
