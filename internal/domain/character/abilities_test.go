package character_test

import (
	"testing"

	"github.com/maxmeneghini/D20CharSheet/internal/domain/character"
	"github.com/stretchr/testify/assert"
)

func TestModifier(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		expected int
	}{
		{name: "average score", total: 10, expected: 0},
		{name: "odd score rounds down", total: 11, expected: 0},
		{name: "below average", total: 9, expected: -1},
		{name: "heroic score", total: 20, expected: 5},
		{name: "minimum score", total: 1, expected: -5},
		{name: "seven floors toward negative infinity", total: 7, expected: -2},
		{name: "three", total: 3, expected: -4},
		{name: "eighteen", total: 18, expected: 4},
		{name: "negative total", total: -9, expected: -10},
		{name: "zero", total: 0, expected: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, character.Modifier(tt.total))
		})
	}
}

func TestModifierFromString(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
	}{
		{name: "valid score", raw: "14", expected: 2},
		{name: "whitespace tolerated", raw: " 18 ", expected: 4},
		{name: "negative score", raw: "-4", expected: -7},
		{name: "empty field degrades to zero", raw: "", expected: 0},
		{name: "garbage degrades to zero", raw: "abc", expected: 0},
		{name: "partial number degrades to zero", raw: "12x", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, character.ModifierFromString(tt.raw))
		})
	}
}

func TestAbilityScores_Total(t *testing.T) {
	scores := character.AbilityScores{
		StrBase: 16, StrRacial: 2,
		DexBase: 14,
		ConBase: 1, ConRacial: -10,
		IntBase: 12, IntRacial: -2,
		WisBase: 10,
		ChaBase: 8, ChaRacial: 1,
	}

	tests := []struct {
		ability       character.Ability
		expectedTotal int
		expectedMod   int
	}{
		{character.AbilityStrength, 18, 4},
		{character.AbilityDexterity, 14, 2},
		{character.AbilityConstitution, -9, -10},
		{character.AbilityIntelligence, 10, 0},
		{character.AbilityWisdom, 10, 0},
		{character.AbilityCharisma, 9, -1},
	}

	for _, tt := range tests {
		t.Run(string(tt.ability), func(t *testing.T) {
			assert.Equal(t, tt.expectedTotal, scores.Total(tt.ability))
			assert.Equal(t, tt.expectedMod, scores.Modifier(tt.ability))
		})
	}
}

func TestParseAbility(t *testing.T) {
	ability, err := character.ParseAbility("dex")
	assert.NoError(t, err)
	assert.Equal(t, character.AbilityDexterity, ability)

	ability, err = character.ParseAbility(" WIS ")
	assert.NoError(t, err)
	assert.Equal(t, character.AbilityWisdom, ability)

	_, err = character.ParseAbility("LCK")
	assert.Error(t, err)
}

func TestFormatModifier(t *testing.T) {
	assert.Equal(t, "+2", character.FormatModifier(2))
	assert.Equal(t, "+0", character.FormatModifier(0))
	assert.Equal(t, "-3", character.FormatModifier(-3))
}

func TestDefaultAbilityScores(t *testing.T) {
	scores := character.DefaultAbilityScores()

	for _, ability := range character.Abilities {
		assert.Equal(t, 10, scores.Total(ability))
		assert.Equal(t, 0, scores.Modifier(ability))
	}
}
