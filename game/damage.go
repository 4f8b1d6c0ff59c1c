package game

import "github.com/memmaker/blastward/engine/util"

// MaxProtection is the cap on summed protection, every point removes 4% damage.
const MaxProtection = 20.0

type DamageSource struct {
	Kind          string
	Attacker      string
	Explosion     bool
	Absolute      bool // ignores armor and protection
	HarmsCreative bool // hurts players in creative mode, e.g. the void
}

func ExplosionDamage(exploder string) DamageSource {
	return DamageSource{Kind: "explosion", Attacker: exploder, Explosion: true}
}

func GenericDamage() DamageSource {
	return DamageSource{Kind: "generic"}
}

func MagicDamage() DamageSource {
	return DamageSource{Kind: "magic", Absolute: true}
}

func OutOfWorldDamage() DamageSource {
	return DamageSource{Kind: "outOfWorld", Absolute: true, HarmsCreative: true}
}

// CanBeProtected reports whether modifiers may reduce damage from this source.
func (d DamageSource) CanBeProtected() bool {
	return !d.Absolute
}

// DamageAfterProtection scales damage by the capped protection value.
func DamageAfterProtection(damage, protection float64) float64 {
	protection = util.Clamp(protection, 0, MaxProtection)
	return damage * (1 - protection/25)
}
