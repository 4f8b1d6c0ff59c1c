package game

import (
	"fmt"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/blastward/engine/capability"
	"github.com/memmaker/blastward/engine/util"
)

// LivingDefinition is the static part of a living entity type.
type LivingDefinition struct {
	Name               string
	MaxHealth          float64
	Width              float64
	Height             float64
	EyeHeight          float64
	ImmuneToExplosions bool
}

func DefaultLivingDefinition(name string) LivingDefinition {
	return LivingDefinition{
		Name:      name,
		MaxHealth: 20,
		Width:     0.6,
		Height:    1.8,
		EyeHeight: 1.62,
	}
}

// LivingEntity is an entity in the world that can wear equipment and be hurt.
type LivingEntity struct {
	id         uint64
	Definition LivingDefinition

	position        mgl64.Vec3
	motion          mgl64.Vec3
	velocityChanged bool
	health          float64
	equipment       map[EquipmentSlot]*ToolStack

	// remote entities live on a presentation-only replica
	remote bool
	handle capability.Handle
}

func NewLivingEntity(id uint64, definition LivingDefinition, position mgl64.Vec3, handle capability.Handle, remote bool) *LivingEntity {
	return &LivingEntity{
		id:         id,
		Definition: definition,
		position:   position,
		health:     definition.MaxHealth,
		equipment:  make(map[EquipmentSlot]*ToolStack),
		remote:     remote,
		handle:     handle,
	}
}

func (e *LivingEntity) ID() uint64 {
	return e.id
}

func (e *LivingEntity) Name() string {
	return e.Definition.Name
}

func (e *LivingEntity) CapabilityHandle() capability.Handle {
	return e.handle
}

// IsRemote is true on the presentation-only replica, where no game state may change.
func (e *LivingEntity) IsRemote() bool {
	return e.remote
}

func (e *LivingEntity) Position() mgl64.Vec3 {
	return e.position
}

func (e *LivingEntity) SetPosition(position mgl64.Vec3) {
	e.position = position
}

func (e *LivingEntity) EyeY() float64 {
	return e.position.Y() + e.Definition.EyeHeight
}

func (e *LivingEntity) EyePosition() mgl64.Vec3 {
	return mgl64.Vec3{e.position.X(), e.EyeY(), e.position.Z()}
}

func (e *LivingEntity) BoundingBox() util.AABB {
	return util.NewAABBFromFeet(e.position, e.Definition.Width, e.Definition.Height)
}

func (e *LivingEntity) Motion() mgl64.Vec3 {
	return e.motion
}

func (e *LivingEntity) SetMotion(motion mgl64.Vec3) {
	e.motion = motion
}

func (e *LivingEntity) AddMotion(delta mgl64.Vec3) {
	e.motion = e.motion.Add(delta)
}

// VelocityChanged is set when motion was changed outside of normal movement and has to be synced.
func (e *LivingEntity) VelocityChanged() bool {
	return e.velocityChanged
}

func (e *LivingEntity) MarkVelocityChanged() {
	e.velocityChanged = true
}

func (e *LivingEntity) ClearVelocityChanged() {
	e.velocityChanged = false
}

func (e *LivingEntity) IsImmuneToExplosions() bool {
	return e.Definition.ImmuneToExplosions
}

func (e *LivingEntity) Health() float64 {
	return e.health
}

func (e *LivingEntity) IsDead() bool {
	return e.health <= 0
}

// Hurt removes amount health and returns what was actually taken.
func (e *LivingEntity) Hurt(amount float64) float64 {
	if amount <= 0 || e.IsDead() {
		return 0
	}
	if amount > e.health {
		amount = e.health
	}
	e.health -= amount
	return amount
}

func (e *LivingEntity) Equipment(slot EquipmentSlot) *ToolStack {
	return e.equipment[slot]
}

// SetEquipment puts tool into slot and returns the previous item. A nil tool empties the slot.
func (e *LivingEntity) SetEquipment(slot EquipmentSlot, tool *ToolStack) *ToolStack {
	previous := e.equipment[slot]
	if tool == nil {
		delete(e.equipment, slot)
	} else {
		e.equipment[slot] = tool
	}
	return previous
}

func (e *LivingEntity) String() string {
	return fmt.Sprintf("%s(%d)", e.Definition.Name, e.id)
}

func (e *LivingEntity) GetFriendlyDescription() string {
	desc := fmt.Sprintf("x> %s HP: %0.1f/%0.1f Pos: %s Motion: %s\n", e, e.health, e.Definition.MaxHealth, util.VecToString(e.position), util.VecToString(e.motion))
	for _, slot := range AllSlots() {
		if tool, ok := e.equipment[slot]; ok {
			desc += fmt.Sprintf("x> %s: %s\n", slot, tool)
		}
	}
	return desc
}
