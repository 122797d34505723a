// Package rulebook holds the static d20 3.5 reference tables the sheet
// offers in its select widgets. Everything here is fixed data; rules
// validation (prerequisites, encumbrance, multiclass math) is deliberately
// absent.
package rulebook

import (
	"github.com/maxmeneghini/D20CharSheet/internal/domain/character"
)

// Alignments are the nine alignment codes in grid order.
var Alignments = []string{
	"LG", "NG", "CG",
	"LN", "N", "CN",
	"LE", "NE", "CE",
}

// Races are the playable races offered by the sheet.
var Races = []string{
	"Human", "Elf", "Dwarf", "Gnome", "Halfling", "Half-Orc", "Half-Elf",
}

// Classes are the base classes offered by the sheet.
var Classes = []string{
	"Barbarian", "Bard", "Cleric", "Druid", "Fighter", "Monk",
	"Paladin", "Ranger", "Rogue", "Sorcerer", "Wizard",
}

// Sizes are the size categories a character can have.
var Sizes = []string{
	"Fine", "Diminutive", "Tiny", "Small", "Medium", "Large", "Huge", "Gargantuan", "Colossal",
}

// HitDice maps each base class to its hit die.
var HitDice = map[string]string{
	"Barbarian": "d12",
	"Bard":      "d6",
	"Cleric":    "d8",
	"Druid":     "d8",
	"Fighter":   "d10",
	"Monk":      "d8",
	"Paladin":   "d10",
	"Ranger":    "d8",
	"Rogue":     "d6",
	"Sorcerer":  "d4",
	"Wizard":    "d4",
}

// MaxLevel bounds the level field on the sheet.
const MaxLevel = 20

// MaxSpellLevel is the highest spell list level offered on the spells tab.
const MaxSpellLevel = 9

// IsAlignment reports whether code is one of the nine alignment codes.
func IsAlignment(code string) bool {
	return contains(Alignments, code)
}

// IsRace reports whether name is a playable race.
func IsRace(name string) bool {
	return contains(Races, name)
}

// IsClass reports whether name is a base class.
func IsClass(name string) bool {
	return contains(Classes, name)
}

// IsSize reports whether name is a size category.
func IsSize(name string) bool {
	return contains(Sizes, name)
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

// StarterSkills returns the skill rows a fresh sheet starts with. Callers
// get a new slice each time, so edits never leak back into the table.
func StarterSkills() []character.Skill {
	return []character.Skill{
		{Name: "Balance", Ability: character.AbilityDexterity, IsClassSkill: true},
		{Name: "Climb", Ability: character.AbilityStrength, IsClassSkill: true},
		{Name: "Concentration", Ability: character.AbilityConstitution, IsClassSkill: true},
		{Name: "Hide", Ability: character.AbilityDexterity},
		{Name: "Move Silently", Ability: character.AbilityDexterity},
		{Name: "Spellcraft", Ability: character.AbilityIntelligence},
	}
}
