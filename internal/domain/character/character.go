package character

// Skill is one row of the sheet's skill table.
type Skill struct {
	Name         string  `json:"name"`
	Ability      Ability `json:"ability"`
	Ranks        int     `json:"ranks"`
	Misc         int     `json:"misc"`
	IsClassSkill bool    `json:"is_class_skill"`
}

// Gear holds the Gear & Wealth tab fields.
type Gear struct {
	Weapons  string `json:"weapons"`
	Tools    string `json:"tools"`
	WealthGP int    `json:"wealth_gp"`
}

// Notes holds the free-text notes sections.
type Notes struct {
	Background string `json:"background"`
	Allies     string `json:"allies"`
	Other      string `json:"other"`
}

// Character is the mutable record behind the sheet. The presentation layer
// edits it field by field; every combat statistic is derived from it on
// read (see Derive) and never written back, so nothing here can go stale.
type Character struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`

	// Identity
	Name      string `json:"name"`
	Player    string `json:"player"`
	Alignment string `json:"alignment"`
	Deity     string `json:"deity"`
	Size      string `json:"size"`
	Race      string `json:"race"`
	Class     string `json:"class"`
	Level     int    `json:"level"`
	XP        int    `json:"xp"`

	// Physical
	Age    int    `json:"age"`
	Gender string `json:"gender"`
	Height string `json:"height"`
	Weight string `json:"weight"`
	Eyes   string `json:"eyes"`
	Hair   string `json:"hair"`
	Skin   string `json:"skin"`

	Abilities AbilityScores `json:"abilities"`

	// Combat basics
	HP     int        `json:"hp"` // rolled HP as entered on the sheet
	Pool   HPResource `json:"hp_pool"`
	HitDie string     `json:"hit_die"`
	BAB    int        `json:"bab"`
	Speed  int        `json:"speed"`

	// AC components
	ACArmor      int `json:"ac_armor"`
	ACShield     int `json:"ac_shield"`
	ACNatural    int `json:"ac_natural"`
	ACDeflection int `json:"ac_deflection"`
	ACMisc       int `json:"ac_misc"`

	// Save bases; SaveMisc applies to all three saves
	FortBase int `json:"fort_base"`
	RefBase  int `json:"ref_base"`
	WillBase int `json:"will_base"`
	SaveMisc int `json:"save_misc"`

	InitiativeMisc int `json:"initiative_misc"`

	// Tag lists, ordered and unique by exact value
	Feats         []string `json:"feats"`
	ClassFeatures []string `json:"class_features"`
	Languages     []string `json:"languages"`
	SpellsKnown   []string `json:"spells_known"`

	Skills         []Skill `json:"skills"`
	SpellbookNotes string  `json:"spellbook_notes"`
	Gear           Gear    `json:"gear"`
	Notes          Notes   `json:"notes"`
}

// NewCharacter creates a record with the defaults a fresh sheet shows:
// level 1 Human Fighter, all ability bases 10, speed 30, Medium size.
func NewCharacter() *Character {
	return &Character{
		Alignment: "N",
		Size:      "Medium",
		Race:      "Human",
		Class:     "Fighter",
		Level:     1,
		Age:       18,
		Abilities: DefaultAbilityScores(),
		HitDie:    "d10",
		Speed:     30,
	}
}

// TagList names one of the unique string collections on the sheet.
type TagList string

const (
	TagListFeats         TagList = "feats"
	TagListClassFeatures TagList = "class_features"
	TagListLanguages     TagList = "languages"
	TagListSpellsKnown   TagList = "spells_known"
)

// TagLists enumerates the valid tag list names.
var TagLists = []TagList{TagListFeats, TagListClassFeatures, TagListLanguages, TagListSpellsKnown}

// tags returns a pointer to the backing slice for the named list.
func (c *Character) tags(list TagList) *[]string {
	switch list {
	case TagListFeats:
		return &c.Feats
	case TagListClassFeatures:
		return &c.ClassFeatures
	case TagListLanguages:
		return &c.Languages
	case TagListSpellsKnown:
		return &c.SpellsKnown
	default:
		return nil
	}
}

// AddTag appends value to the named list. Duplicate values (exact,
// case-sensitive match) are silently ignored. Returns false for an
// unknown list name.
func (c *Character) AddTag(list TagList, value string) bool {
	tags := c.tags(list)
	if tags == nil {
		return false
	}

	for _, existing := range *tags {
		if existing == value {
			return true // already present, no-op
		}
	}

	*tags = append(*tags, value)
	return true
}

// RemoveTag removes value from the named list if present. Removing an
// absent value is a no-op.
func (c *Character) RemoveTag(list TagList, value string) bool {
	tags := c.tags(list)
	if tags == nil {
		return false
	}

	for i, existing := range *tags {
		if existing == value {
			*tags = append((*tags)[:i], (*tags)[i+1:]...)
			break
		}
	}
	return true
}

// Clone creates a deep copy of the character so repository callers cannot
// mutate stored state through shared slices.
func (c *Character) Clone() *Character {
	clone := *c

	clone.Feats = append([]string(nil), c.Feats...)
	clone.ClassFeatures = append([]string(nil), c.ClassFeatures...)
	clone.Languages = append([]string(nil), c.Languages...)
	clone.SpellsKnown = append([]string(nil), c.SpellsKnown...)
	clone.Skills = append([]Skill(nil), c.Skills...)

	return &clone
}
