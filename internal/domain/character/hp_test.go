package character_test

import (
	"testing"

	"github.com/maxmeneghini/D20CharSheet/internal/domain/character"
	"github.com/stretchr/testify/assert"
)

func TestHPResource_Heal(t *testing.T) {
	t.Run("heals up to max", func(t *testing.T) {
		hp := &character.HPResource{Current: 18, Max: 20}

		healed := hp.Heal(10)
		assert.Equal(t, 2, healed)
		assert.Equal(t, 20, hp.Current)
	})

	t.Run("heal at full HP is a no-op", func(t *testing.T) {
		hp := &character.HPResource{Current: 20, Max: 20}

		healed := hp.Heal(5)
		assert.Equal(t, 0, healed)
		assert.Equal(t, 20, hp.Current)
	})

	t.Run("negative amount is a no-op", func(t *testing.T) {
		hp := &character.HPResource{Current: 10, Max: 20}

		healed := hp.Heal(-5)
		assert.Equal(t, 0, healed)
		assert.Equal(t, 10, hp.Current)
	})
}

func TestHPResource_Damage(t *testing.T) {
	t.Run("clamps at zero", func(t *testing.T) {
		hp := &character.HPResource{Current: 5, Max: 20}

		hp.Damage(10)
		assert.Equal(t, 0, hp.Current)
	})

	t.Run("damage at zero HP changes nothing", func(t *testing.T) {
		hp := &character.HPResource{Current: 0, Max: 20}

		hp.Damage(7)
		assert.Equal(t, 0, hp.Current)
	})

	t.Run("negative amount is a no-op", func(t *testing.T) {
		hp := &character.HPResource{Current: 10, Max: 20}

		hp.Damage(-3)
		assert.Equal(t, 10, hp.Current)
	})

	t.Run("temporary HP absorbs first", func(t *testing.T) {
		hp := &character.HPResource{Current: 10, Max: 20, Temporary: 5}

		hp.Damage(8)
		assert.Equal(t, 0, hp.Temporary)
		assert.Equal(t, 7, hp.Current)
	})

	t.Run("temporary HP fully absorbs small hits", func(t *testing.T) {
		hp := &character.HPResource{Current: 10, Max: 20, Temporary: 5}

		hp.Damage(3)
		assert.Equal(t, 2, hp.Temporary)
		assert.Equal(t, 10, hp.Current)
	})
}

func TestHPResource_AddTemporaryHP(t *testing.T) {
	hp := &character.HPResource{Current: 10, Max: 20}

	hp.AddTemporaryHP(5)
	assert.Equal(t, 5, hp.Temporary)

	// Smaller grant doesn't stack or replace
	hp.AddTemporaryHP(3)
	assert.Equal(t, 5, hp.Temporary)

	// Larger grant replaces
	hp.AddTemporaryHP(8)
	assert.Equal(t, 8, hp.Temporary)
}
