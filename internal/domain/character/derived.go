package character

// SaveBlock is one saving throw broken into the parts the sheet displays.
// Magic and Temp are reserved columns that always contribute 0 here.
type SaveBlock struct {
	Base    int `json:"base"`
	Ability int `json:"ability"`
	Magic   int `json:"magic"`
	Misc    int `json:"misc"`
	Temp    int `json:"temp"`
	Total   int `json:"total"`
}

// DerivedStats are the combat statistics computed from a record. They are
// recomputed on every read and never stored, so an edit to any input field
// is reflected immediately.
type DerivedStats struct {
	StrMod int `json:"str_mod"`
	DexMod int `json:"dex_mod"`
	ConMod int `json:"con_mod"`
	IntMod int `json:"int_mod"`
	WisMod int `json:"wis_mod"`
	ChaMod int `json:"cha_mod"`

	Fortitude SaveBlock `json:"fortitude"`
	Reflex    SaveBlock `json:"reflex"`
	Will      SaveBlock `json:"will"`

	ACNormal     int `json:"ac_normal"`
	ACTouch      int `json:"ac_touch"`
	ACFlatFooted int `json:"ac_flat_footed"`

	MeleeAttack   int `json:"melee_attack"`
	RangedAttack  int `json:"ranged_attack"`
	GrappleAttack int `json:"grapple_attack"`

	Initiative int `json:"initiative"`
}

// save builds one saving throw block from its base and governing modifier.
func save(base, abilityMod, misc int) SaveBlock {
	return SaveBlock{
		Base:    base,
		Ability: abilityMod,
		Misc:    misc,
		Total:   base + abilityMod + misc,
	}
}

// Derive computes all displayed combat statistics from the record. It is a
// pure read: the character is never mutated and calling it twice without an
// edit in between yields identical results.
//
// Fortitude is governed by CON, Reflex by DEX, Will by WIS. The three AC
// variants are each built independently from the component fields: touch AC
// drops armor, shield, and natural bonuses (a touch attack bypasses them),
// flat-footed AC drops the DEX bonus. Grapple uses the melee formula; size
// modifiers are outside this sheet's scope.
func Derive(c *Character) DerivedStats {
	strMod := c.Abilities.Modifier(AbilityStrength)
	dexMod := c.Abilities.Modifier(AbilityDexterity)
	conMod := c.Abilities.Modifier(AbilityConstitution)
	intMod := c.Abilities.Modifier(AbilityIntelligence)
	wisMod := c.Abilities.Modifier(AbilityWisdom)
	chaMod := c.Abilities.Modifier(AbilityCharisma)

	return DerivedStats{
		StrMod: strMod,
		DexMod: dexMod,
		ConMod: conMod,
		IntMod: intMod,
		WisMod: wisMod,
		ChaMod: chaMod,

		Fortitude: save(c.FortBase, conMod, c.SaveMisc),
		Reflex:    save(c.RefBase, dexMod, c.SaveMisc),
		Will:      save(c.WillBase, wisMod, c.SaveMisc),

		ACNormal:     10 + c.ACArmor + c.ACShield + dexMod + c.ACNatural + c.ACDeflection + c.ACMisc,
		ACTouch:      10 + dexMod + c.ACDeflection + c.ACMisc,
		ACFlatFooted: 10 + c.ACArmor + c.ACShield + c.ACNatural + c.ACDeflection + c.ACMisc,

		MeleeAttack:   c.BAB + strMod,
		RangedAttack:  c.BAB + dexMod,
		GrappleAttack: c.BAB + strMod,

		Initiative: dexMod + c.InitiativeMisc,
	}
}
