// Package export assembles the downloadable JSON document for a sheet.
// Field names and nesting are a compatibility contract with existing
// exports; do not rename them.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/maxmeneghini/D20CharSheet/internal/domain/character"
)

// SkillRow is one row of the exported skill table. The capitalized keys
// match the sheet's original column headers.
type SkillRow struct {
	Skill   string `json:"Skill"`
	Ability string `json:"Ability"`
	Ranks   int    `json:"Ranks"`
	Misc    int    `json:"Misc"`
	Class   bool   `json:"Class"`
}

// GearSection is the nested gear object.
type GearSection struct {
	Weapons  string `json:"weapons"`
	Tools    string `json:"tools"`
	WealthGP int    `json:"wealth_gp"`
}

// NotesSection is the nested notes object.
type NotesSection struct {
	Background string `json:"background"`
	Allies     string `json:"allies"`
	Other      string `json:"other"`
}

// Document is the full export payload: every scalar record field flattened
// at the top level, plus the collection sections.
type Document struct {
	Name      string `json:"name"`
	Player    string `json:"player"`
	Alignment string `json:"alignment"`
	Deity     string `json:"deity"`
	Size      string `json:"size"`
	Race      string `json:"race"`
	Class     string `json:"class"`
	Level     int    `json:"level"`
	XP        int    `json:"xp"`

	Age    int    `json:"age"`
	Gender string `json:"gender"`
	Height string `json:"height"`
	Weight string `json:"weight"`
	Eyes   string `json:"eyes"`
	Hair   string `json:"hair"`
	Skin   string `json:"skin"`

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

	HP        int    `json:"hp"`
	HPCurrent int    `json:"hp_current"`
	HPMax     int    `json:"hp_max"`
	HPTemp    int    `json:"hp_temp"`
	HitDie    string `json:"hit_die"`
	BAB       int    `json:"bab"`
	Speed     int    `json:"speed"`

	ACArmor      int `json:"ac_armor"`
	ACShield     int `json:"ac_shield"`
	ACNatural    int `json:"ac_natural"`
	ACDeflection int `json:"ac_deflection"`
	ACMisc       int `json:"ac_misc"`

	FortBase int `json:"fort_base"`
	RefBase  int `json:"ref_base"`
	WillBase int `json:"will_base"`
	SaveMisc int `json:"save_misc"`

	InitiativeMisc int `json:"initiative_misc"`

	Feats          []string     `json:"feats"`
	ClassFeatures  []string     `json:"class_features"`
	SkillsTable    []SkillRow   `json:"skills_table"`
	SpellsKnown    []string     `json:"spells_known"`
	SpellbookNotes string       `json:"spellbook_notes"`
	Languages      []string     `json:"languages"`
	Gear           GearSection  `json:"gear"`
	Notes          NotesSection `json:"notes"`
}

// FromCharacter builds the export document from a record. Empty collections
// export as [] rather than null.
func FromCharacter(c *character.Character) *Document {
	skills := make([]SkillRow, 0, len(c.Skills))
	for _, s := range c.Skills {
		skills = append(skills, SkillRow{
			Skill:   s.Name,
			Ability: s.Ability.Short(),
			Ranks:   s.Ranks,
			Misc:    s.Misc,
			Class:   s.IsClassSkill,
		})
	}

	return &Document{
		Name:      c.Name,
		Player:    c.Player,
		Alignment: c.Alignment,
		Deity:     c.Deity,
		Size:      c.Size,
		Race:      c.Race,
		Class:     c.Class,
		Level:     c.Level,
		XP:        c.XP,

		Age:    c.Age,
		Gender: c.Gender,
		Height: c.Height,
		Weight: c.Weight,
		Eyes:   c.Eyes,
		Hair:   c.Hair,
		Skin:   c.Skin,

		StrBase:   c.Abilities.StrBase,
		DexBase:   c.Abilities.DexBase,
		ConBase:   c.Abilities.ConBase,
		IntBase:   c.Abilities.IntBase,
		WisBase:   c.Abilities.WisBase,
		ChaBase:   c.Abilities.ChaBase,
		StrRacial: c.Abilities.StrRacial,
		DexRacial: c.Abilities.DexRacial,
		ConRacial: c.Abilities.ConRacial,
		IntRacial: c.Abilities.IntRacial,
		WisRacial: c.Abilities.WisRacial,
		ChaRacial: c.Abilities.ChaRacial,

		HP:        c.HP,
		HPCurrent: c.Pool.Current,
		HPMax:     c.Pool.Max,
		HPTemp:    c.Pool.Temporary,
		HitDie:    c.HitDie,
		BAB:       c.BAB,
		Speed:     c.Speed,

		ACArmor:      c.ACArmor,
		ACShield:     c.ACShield,
		ACNatural:    c.ACNatural,
		ACDeflection: c.ACDeflection,
		ACMisc:       c.ACMisc,

		FortBase: c.FortBase,
		RefBase:  c.RefBase,
		WillBase: c.WillBase,
		SaveMisc: c.SaveMisc,

		InitiativeMisc: c.InitiativeMisc,

		Feats:          emptyIfNil(c.Feats),
		ClassFeatures:  emptyIfNil(c.ClassFeatures),
		SkillsTable:    skills,
		SpellsKnown:    emptyIfNil(c.SpellsKnown),
		SpellbookNotes: c.SpellbookNotes,
		Languages:      emptyIfNil(c.Languages),
		Gear: GearSection{
			Weapons:  c.Gear.Weapons,
			Tools:    c.Gear.Tools,
			WealthGP: c.Gear.WealthGP,
		},
		Notes: NotesSection{
			Background: c.Notes.Background,
			Allies:     c.Notes.Allies,
			Other:      c.Notes.Other,
		},
	}
}

// Marshal renders the document as indented JSON, the format the download
// button produces.
func (d *Document) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export document: %w", err)
	}
	return data, nil
}

// Filename returns the download file name for a character name, falling
// back to the literal "character" when the name is empty.
func Filename(name string) string {
	if name == "" {
		name = "character"
	}
	return name + ".json"
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
