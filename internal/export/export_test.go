package export_test

import (
	"encoding/json"
	"testing"

	"github.com/maxmeneghini/D20CharSheet/internal/domain/character"
	"github.com/maxmeneghini/D20CharSheet/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCharacter(t *testing.T) {
	c := character.NewCharacter()
	c.Name = "Mialee"
	c.Class = "Wizard"
	c.Abilities.IntBase = 17
	c.Abilities.DexRacial = 2
	c.Pool = character.HPResource{Current: 4, Max: 6, Temporary: 2}
	c.AddTag(character.TagListFeats, "Scribe Scroll")
	c.AddTag(character.TagListLanguages, "Common")
	c.AddTag(character.TagListLanguages, "Elven")
	c.Skills = []character.Skill{
		{Name: "Spellcraft", Ability: character.AbilityIntelligence, Ranks: 4},
	}
	c.Gear.WealthGP = 75
	c.Notes.Background = "Apprenticed in the grey tower."

	doc := export.FromCharacter(c)

	assert.Equal(t, "Mialee", doc.Name)
	assert.Equal(t, "Wizard", doc.Class)
	assert.Equal(t, 17, doc.IntBase)
	assert.Equal(t, 2, doc.DexRacial)
	assert.Equal(t, 4, doc.HPCurrent)
	assert.Equal(t, 6, doc.HPMax)
	assert.Equal(t, 2, doc.HPTemp)
	assert.Equal(t, []string{"Scribe Scroll"}, doc.Feats)
	assert.Equal(t, []string{"Common", "Elven"}, doc.Languages)
	assert.Equal(t, 75, doc.Gear.WealthGP)
	assert.Equal(t, "Apprenticed in the grey tower.", doc.Notes.Background)

	require.Len(t, doc.SkillsTable, 1)
	assert.Equal(t, export.SkillRow{
		Skill:   "Spellcraft",
		Ability: "INT",
		Ranks:   4,
	}, doc.SkillsTable[0])
}

func TestDocument_FieldSpelling(t *testing.T) {
	c := character.NewCharacter()
	c.Name = "Tordek"

	data, err := export.FromCharacter(c).Marshal()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	// The wire contract: flat scalar spelling and the nested sections
	for _, key := range []string{
		"name", "player", "alignment", "deity", "size", "race", "class",
		"level", "xp", "age", "gender", "height", "weight", "eyes", "hair", "skin",
		"str_base", "dex_base", "con_base", "int_base", "wis_base", "cha_base",
		"str_racial", "dex_racial", "con_racial", "int_racial", "wis_racial", "cha_racial",
		"hp", "hp_current", "hp_max", "hp_temp", "hit_die", "bab", "speed",
		"ac_armor", "ac_shield", "ac_natural", "ac_deflection", "ac_misc",
		"fort_base", "ref_base", "will_base", "save_misc", "initiative_misc",
		"feats", "class_features", "skills_table", "spells_known",
		"spellbook_notes", "languages", "gear", "notes",
	} {
		assert.Contains(t, decoded, key)
	}

	gear, ok := decoded["gear"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, gear, "weapons")
	assert.Contains(t, gear, "tools")
	assert.Contains(t, gear, "wealth_gp")

	notes, ok := decoded["notes"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, notes, "background")
	assert.Contains(t, notes, "allies")
	assert.Contains(t, notes, "other")
}

func TestDocument_EmptyListsExportAsArrays(t *testing.T) {
	data, err := export.FromCharacter(character.NewCharacter()).Marshal()
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{"feats", "class_features", "languages", "spells_known", "skills_table"} {
		assert.JSONEq(t, "[]", string(decoded[key]), "field %s", key)
	}
}

func TestSkillRow_ColumnHeaders(t *testing.T) {
	row := export.SkillRow{Skill: "Hide", Ability: "DEX", Ranks: 2, Misc: 1, Class: false}

	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Skill":"Hide","Ability":"DEX","Ranks":2,"Misc":1,"Class":false}`, string(data))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Tordek.json", export.Filename("Tordek"))
	assert.Equal(t, "character.json", export.Filename(""))
}
