package character

// Event is a hit point adjustment carried as a plain value from the
// presentation layer to the record. Button handlers build one of these
// instead of mutating the sheet from inside a callback.
type Event interface {
	isEvent()
}

// HealEvent restores hit points, clamped at the sheet's maximum.
type HealEvent struct {
	Amount int `json:"amount"`
}

// DamageEvent removes hit points, clamped at zero.
type DamageEvent struct {
	Amount int `json:"amount"`
}

func (HealEvent) isEvent()   {}
func (DamageEvent) isEvent() {}

// Apply processes an event against the record's hit point pool. Both event
// kinds saturate at their boundary and never fail; applying nil or an
// unknown event is a no-op.
func (c *Character) Apply(ev Event) {
	switch e := ev.(type) {
	case HealEvent:
		c.Pool.Heal(e.Amount)
	case DamageEvent:
		c.Pool.Damage(e.Amount)
	}
}
