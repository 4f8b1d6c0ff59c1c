package server

import (
	"fmt"
	"github.com/memmaker/blastward/engine/event"
	"github.com/memmaker/blastward/engine/util"
	"github.com/memmaker/blastward/game"
)

// Tick advances the world one step: every entity gets its LivingTickEvent, then motion is integrated.
// The authoritative world returns the entities whose velocity changed so replicas can follow;
// dead entities are removed afterwards.
func (w *World) Tick() []MotionUpdate {
	stop := w.timer.Start("tick")
	defer stop()

	entities := w.Entities()
	for _, entity := range entities {
		event.Post(w.bus, &game.LivingTickEvent{Entity: entity})
	}

	var updates []MotionUpdate
	for _, entity := range entities {
		entity.SetPosition(entity.Position().Add(entity.Motion()))
		entity.SetMotion(entity.Motion().Mul(w.config.World.Drag))
		if !entity.VelocityChanged() {
			continue
		}
		entity.ClearVelocityChanged()
		if w.remote {
			continue
		}
		updates = append(updates, MotionUpdate{
			EntityID: entity.ID(),
			Position: entity.Position(),
			Motion:   entity.Motion(),
		})
		util.LogPhysicsDebug(fmt.Sprintf("[World] %s velocity synced: %s", entity, util.VecToString(entity.Motion())))
	}

	if !w.remote {
		for _, entity := range entities {
			if entity.IsDead() {
				util.LogSystemInfo(fmt.Sprintf("[World] '%s' %s died", w.name, entity))
				w.Despawn(entity.ID())
			}
		}
	}
	w.tickCount++
	return updates
}
