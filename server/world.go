package server

import (
	"fmt"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/blastward/engine/capability"
	"github.com/memmaker/blastward/engine/event"
	"github.com/memmaker/blastward/engine/util"
	"github.com/memmaker/blastward/game"
	"github.com/memmaker/blastward/game/modifier"
	"github.com/pkg/errors"
)

// MotionUpdate is what a replica needs to follow an entity whose velocity was changed.
type MotionUpdate struct {
	EntityID uint64
	Position mgl64.Vec3
	Motion   mgl64.Vec3
}

// World is one simulation instance. The authoritative world owns game state;
// a replica (remote) world only mirrors it for presentation.
type World struct {
	name   string
	remote bool
	config game.Config

	bus      *event.Bus
	store    *capability.Store
	registry *modifier.Registry
	blast    *modifier.BlastProtection

	entities  map[uint64]*game.LivingEntity
	order     []uint64
	nextID    uint64
	tickCount uint64
	timer     *util.Timer
}

func NewWorld(name string, config game.Config) (*World, error) {
	return newWorld(name, config, false)
}

// NewReplica creates a presentation-only world.
func NewReplica(name string, config game.Config) (*World, error) {
	return newWorld(name, config, true)
}

func newWorld(name string, config game.Config, remote bool) (*World, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "world %s", name)
	}
	w := &World{
		name:     name,
		remote:   remote,
		config:   config,
		bus:      event.NewBus(),
		store:    capability.NewStore(),
		registry: modifier.NewRegistry(),
		entities: make(map[uint64]*game.LivingEntity),
		nextID:   1,
		timer:    util.NewTimer(),
	}
	w.blast = modifier.NewBlastProtection(config.BlastProtection, w.bus, w.store)
	if err := w.registry.Register(w.blast); err != nil {
		return nil, errors.Wrapf(err, "world %s", name)
	}
	w.registry.Listen(w.bus)
	util.LogSystemInfo(fmt.Sprintf("[World] '%s' created (remote: %v)", name, remote))
	return w, nil
}

func (w *World) Name() string {
	return w.name
}

func (w *World) IsRemote() bool {
	return w.remote
}

func (w *World) Bus() *event.Bus {
	return w.bus
}

func (w *World) Store() *capability.Store {
	return w.store
}

func (w *World) Registry() *modifier.Registry {
	return w.registry
}

func (w *World) BlastProtection() *modifier.BlastProtection {
	return w.blast
}

func (w *World) Timer() *util.Timer {
	return w.timer
}

func (w *World) TickCount() uint64 {
	return w.tickCount
}

func (w *World) Entity(id uint64) (*game.LivingEntity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// Entities returns the living entities in spawn order.
func (w *World) Entities() []*game.LivingEntity {
	result := make([]*game.LivingEntity, 0, len(w.order))
	for _, id := range w.order {
		result = append(result, w.entities[id])
	}
	return result
}

func (w *World) Spawn(definition game.LivingDefinition, position mgl64.Vec3) *game.LivingEntity {
	for {
		if _, taken := w.entities[w.nextID]; !taken {
			break
		}
		w.nextID++
	}
	entity, _ := w.SpawnWithID(w.nextID, definition, position)
	return entity
}

// SpawnWithID adds an entity under a fixed id, replicas use it to mirror the authoritative world.
func (w *World) SpawnWithID(id uint64, definition game.LivingDefinition, position mgl64.Vec3) (*game.LivingEntity, error) {
	if _, taken := w.entities[id]; taken {
		return nil, errors.Errorf("entity id %d already in use in world %s", id, w.name)
	}
	entity := game.NewLivingEntity(id, definition, position, w.store.Attach(), w.remote)
	w.entities[id] = entity
	w.order = append(w.order, id)
	if id >= w.nextID {
		w.nextID = id + 1
	}
	util.LogSystemInfo(fmt.Sprintf("[World] '%s' spawned %s at %s", w.name, entity, util.VecToString(position)))
	return entity, nil
}

// Despawn removes the entity together with all of its capability data.
func (w *World) Despawn(id uint64) {
	entity, ok := w.entities[id]
	if !ok {
		return
	}
	w.store.Detach(entity.CapabilityHandle())
	delete(w.entities, id)
	for i, orderedID := range w.order {
		if orderedID == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Equip puts tool into slot and lets every modifier react to the change. A nil tool empties the slot.
func (w *World) Equip(entity *game.LivingEntity, slot game.EquipmentSlot, tool *game.ToolStack) {
	previous := entity.SetEquipment(slot, tool)
	if previous == tool {
		return
	}
	event.Post(w.bus, &game.EquipmentChangeEvent{Context: game.EquipmentChangeContext{
		EquipmentContext: game.NewEquipmentContext(entity),
		ChangedSlot:      slot,
		Original:         previous,
		Replacement:      tool,
	}})
}

// Hurt runs damage through the protection of the entity's armor and returns the health taken.
func (w *World) Hurt(entity *game.LivingEntity, amount float64, source game.DamageSource) float64 {
	if w.remote {
		return 0
	}
	if source.CanBeProtected() {
		protection := w.registry.Protection(game.NewEquipmentContext(entity), source)
		amount = game.DamageAfterProtection(amount, protection)
	}
	taken := entity.Hurt(amount)
	util.LogExplosionDebug(fmt.Sprintf("[World] %s took %0.2f %s damage", entity, taken, source.Kind))
	return taken
}

// ApplySync copies authoritative motion updates onto the replica's entities.
func (w *World) ApplySync(updates []MotionUpdate) {
	for _, update := range updates {
		entity, ok := w.entities[update.EntityID]
		if !ok {
			continue
		}
		entity.SetPosition(update.Position)
		entity.SetMotion(update.Motion)
	}
}
