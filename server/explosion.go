package server

import (
	"fmt"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/blastward/engine/event"
	"github.com/memmaker/blastward/engine/util"
	"github.com/memmaker/blastward/game"
	"math"
)

// Explode detonates an explosion of the given size (radius) at center.
// Entities are collected, the DetonateEvent is posted, then every remaining
// affected entity is hurt and pushed away from the centre. Replicas only post the event.
func (w *World) Explode(center mgl64.Vec3, size float64, exploder string) *game.DetonateEvent {
	stop := w.timer.Start("explosion")
	defer stop()

	explosion := &game.Explosion{Position: center, Size: size, Exploder: exploder}
	ev := &game.DetonateEvent{
		Explosion:        explosion,
		AffectedEntities: w.entitiesInBlast(explosion),
	}
	util.LogExplosionInfo(fmt.Sprintf("[World] '%s' explosion of size %0.1f at %s catches %d entities", w.name, size, util.VecToString(center), len(ev.AffectedEntities)))
	event.Post(w.bus, ev)
	if w.remote {
		return ev
	}

	diameter := explosion.Diameter()
	for _, entity := range ev.AffectedEntities {
		if entity.IsImmuneToExplosions() {
			continue
		}
		distance := util.EucledianDistance3D(entity.Position(), center) / diameter
		if distance > 1 {
			continue
		}
		direction := entity.EyePosition().Sub(center)
		if util.IsZeroVec(direction) {
			continue
		}
		direction = util.NormalizeOrZero(direction)
		// no block occlusion in this world, the full blast reaches every entity
		exposure := 1.0
		impact := (1 - distance) * exposure
		damage := math.Floor((impact*impact+impact)/2*7*diameter + 1)
		w.Hurt(entity, damage, explosion.DamageSource())
		entity.AddMotion(direction.Mul(impact))
		entity.MarkVelocityChanged()
	}
	return ev
}

func (w *World) entitiesInBlast(explosion *game.Explosion) []*game.LivingEntity {
	diameter := explosion.Diameter()
	area := util.NewAABB(explosion.Position, mgl64.Vec3{}).Grow(diameter)
	var affected []*game.LivingEntity
	for _, entity := range w.Entities() {
		if entity.IsDead() || !entity.BoundingBox().Intersects(area) {
			continue
		}
		if util.EucledianDistance3D(entity.Position(), explosion.Position)/diameter > 1 {
			continue
		}
		affected = append(affected, entity)
	}
	return affected
}
