package character

import (
	"fmt"
	"strconv"
	"strings"
)

// Ability identifies one of the six core ability scores.
type Ability string

const (
	AbilityNone         Ability = ""
	AbilityStrength     Ability = "STR"
	AbilityDexterity    Ability = "DEX"
	AbilityConstitution Ability = "CON"
	AbilityIntelligence Ability = "INT"
	AbilityWisdom       Ability = "WIS"
	AbilityCharisma     Ability = "CHA"
)

// Abilities lists the six abilities in sheet order.
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// Short returns the three-letter tag used on the sheet.
func (a Ability) Short() string {
	return string(a)
}

// ParseAbility resolves a sheet tag to an Ability, case-insensitively.
func ParseAbility(tag string) (Ability, error) {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case "STR":
		return AbilityStrength, nil
	case "DEX":
		return AbilityDexterity, nil
	case "CON":
		return AbilityConstitution, nil
	case "INT":
		return AbilityIntelligence, nil
	case "WIS":
		return AbilityWisdom, nil
	case "CHA":
		return AbilityCharisma, nil
	default:
		return AbilityNone, fmt.Errorf("unknown ability tag '%s'", tag)
	}
}

// AbilityScores holds the base score and racial adjustment for each ability.
// Every ability gets its own field so lookups resolve at compile time; there
// is no assembling of field names at runtime.
type AbilityScores struct {
	StrBase   int `json:"str_base"`
	DexBase   int `json:"dex_base"`
	ConBase   int `json:"con_base"`
	IntBase   int `json:"int_base"`
	WisBase   int `json:"wis_base"`
	ChaBase   int `json:"cha_base"`
	StrRacial int `json:"str_racial"`
	DexRacial int `json:"dex_racial"`
	ConRacial int `json:"con_racial"`
	IntRacial int `json:"int_racial"`
	WisRacial int `json:"wis_racial"`
	ChaRacial int `json:"cha_racial"`
}

// DefaultAbilityScores returns the scores a fresh sheet starts with:
// all bases 10, all racial adjustments 0.
func DefaultAbilityScores() AbilityScores {
	return AbilityScores{
		StrBase: 10,
		DexBase: 10,
		ConBase: 10,
		IntBase: 10,
		WisBase: 10,
		ChaBase: 10,
	}
}

// Base returns the base score for the given ability.
func (s AbilityScores) Base(a Ability) int {
	switch a {
	case AbilityStrength:
		return s.StrBase
	case AbilityDexterity:
		return s.DexBase
	case AbilityConstitution:
		return s.ConBase
	case AbilityIntelligence:
		return s.IntBase
	case AbilityWisdom:
		return s.WisBase
	case AbilityCharisma:
		return s.ChaBase
	default:
		return 0
	}
}

// Racial returns the racial adjustment for the given ability.
func (s AbilityScores) Racial(a Ability) int {
	switch a {
	case AbilityStrength:
		return s.StrRacial
	case AbilityDexterity:
		return s.DexRacial
	case AbilityConstitution:
		return s.ConRacial
	case AbilityIntelligence:
		return s.IntRacial
	case AbilityWisdom:
		return s.WisRacial
	case AbilityCharisma:
		return s.ChaRacial
	default:
		return 0
	}
}

// Total returns base + racial adjustment for the given ability. Totals are
// never stored on the sheet; they are recomputed on every read. No clamping
// is applied, so a negative total is possible and flows into Modifier.
func (s AbilityScores) Total(a Ability) int {
	return s.Base(a) + s.Racial(a)
}

// Modifier returns the modifier for the given ability total.
func (s AbilityScores) Modifier(a Ability) int {
	return Modifier(s.Total(a))
}

// Modifier converts an ability total to its modifier: floor((total-10)/2).
// The division rounds toward negative infinity, so a total of 7 gives -2,
// not the -1 that truncation would produce. That rounding is part of the
// ruleset and must not change.
func Modifier(total int) int {
	d := total - 10
	m := d / 2
	if d < 0 && d%2 != 0 {
		m--
	}
	return m
}

// ModifierFromString parses a raw form value and returns its modifier.
// Anything that does not read as an integer yields 0 so a half-typed or
// empty field never breaks the displayed sheet.
func ModifierFromString(raw string) int {
	total, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return Modifier(total)
}

// FormatModifier renders a modifier the way the sheet shows it: +2, -1, +0.
func FormatModifier(mod int) string {
	return fmt.Sprintf("%+d", mod)
}
