package sheet

import (
	"github.com/maxmeneghini/D20CharSheet/internal/domain/character"
	"github.com/maxmeneghini/D20CharSheet/internal/domain/rulebook"
	apperr "github.com/maxmeneghini/D20CharSheet/internal/errors"
)

// validateSheet rejects edits that fall outside what the sheet can
// represent. It deliberately does not touch the HP pool; clamping only
// happens through heal and damage events.
func validateSheet(c *character.Character) error {
	if c.Level < 1 || c.Level > rulebook.MaxLevel {
		return apperr.Validationf("level must be between 1 and %d, got %d", rulebook.MaxLevel, c.Level).
			WithMeta("level", c.Level)
	}
	if c.Age < 1 {
		return apperr.Validationf("age must be at least 1, got %d", c.Age).
			WithMeta("age", c.Age)
	}
	if !rulebook.IsAlignment(c.Alignment) {
		return apperr.Validationf("unknown alignment '%s'", c.Alignment).
			WithMeta("alignment", c.Alignment)
	}
	if !rulebook.IsRace(c.Race) {
		return apperr.Validationf("unknown race '%s'", c.Race).
			WithMeta("race", c.Race)
	}
	if !rulebook.IsClass(c.Class) {
		return apperr.Validationf("unknown class '%s'", c.Class).
			WithMeta("class", c.Class)
	}
	if !rulebook.IsSize(c.Size) {
		return apperr.Validationf("unknown size '%s'", c.Size).
			WithMeta("size", c.Size)
	}

	return validateSkills(c.Skills)
}

// validateSkills checks every row of the skill table.
func validateSkills(skills []character.Skill) error {
	for i, s := range skills {
		if s.Name == "" {
			return apperr.Validationf("skill %d has no name", i).
				WithMeta("index", i)
		}
		if _, err := character.ParseAbility(string(s.Ability)); err != nil {
			return apperr.Validationf("skill '%s' has unknown ability '%s'", s.Name, s.Ability).
				WithMeta("skill", s.Name)
		}
		if s.Ranks < 0 {
			return apperr.Validationf("skill '%s' has negative ranks", s.Name).
				WithMeta("skill", s.Name)
		}
	}
	return nil
}
