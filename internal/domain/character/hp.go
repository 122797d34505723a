package character

// HPResource tracks current, maximum, and temporary hit points.
type HPResource struct {
	Current   int `json:"current"`
	Max       int `json:"max"`
	Temporary int `json:"temporary"`
}

// Damage applies damage, using temporary HP first. Current never drops
// below zero; a non-positive amount is a no-op. Returns the damage dealt.
func (hp *HPResource) Damage(amount int) int {
	if amount <= 0 {
		return 0
	}

	originalAmount := amount

	if hp.Temporary > 0 {
		if hp.Temporary >= amount {
			hp.Temporary -= amount
			return originalAmount
		}
		amount -= hp.Temporary
		hp.Temporary = 0
	}

	hp.Current -= amount
	if hp.Current < 0 {
		hp.Current = 0
	}

	return originalAmount
}

// Heal restores hit points up to Max. Healing at full HP or with a
// non-positive amount is a no-op. Returns the points actually restored.
func (hp *HPResource) Heal(amount int) int {
	if amount <= 0 || hp.Current >= hp.Max {
		return 0
	}

	oldHP := hp.Current
	hp.Current += amount
	if hp.Current > hp.Max {
		hp.Current = hp.Max
	}

	return hp.Current - oldHP
}

// AddTemporaryHP grants temporary hit points (doesn't stack, keeps the
// larger pool).
func (hp *HPResource) AddTemporaryHP(amount int) {
	if amount > hp.Temporary {
		hp.Temporary = amount
	}
}
