package game

import "github.com/go-gl/mathgl/mgl64"

type Explosion struct {
	Position mgl64.Vec3
	Size     float64 // radius of the blast
	Exploder string
}

func (x *Explosion) Diameter() float64 {
	return x.Size * 2
}

func (x *Explosion) DamageSource() DamageSource {
	return ExplosionDamage(x.Exploder)
}

// DetonateEvent is posted after an explosion collected its victims and before it hurts them.
// Listeners may remove entities from AffectedEntities.
type DetonateEvent struct {
	Explosion        *Explosion
	AffectedEntities []*LivingEntity
}

func (d *DetonateEvent) RemoveAffected(entity *LivingEntity) {
	for i, affected := range d.AffectedEntities {
		if affected == entity {
			d.AffectedEntities = append(d.AffectedEntities[:i], d.AffectedEntities[i+1:]...)
			return
		}
	}
}

// LivingTickEvent is posted once per simulation step for every living entity.
type LivingTickEvent struct {
	Entity *LivingEntity
}

// EquipmentChangeEvent is posted whenever a slot of a living entity gets a different item.
type EquipmentChangeEvent struct {
	Context EquipmentChangeContext
}
