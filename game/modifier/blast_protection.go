package modifier

import (
	"fmt"
	"github.com/memmaker/blastward/engine/capability"
	"github.com/memmaker/blastward/engine/event"
	"github.com/memmaker/blastward/engine/util"
	"github.com/memmaker/blastward/game"
	"math"
)

// BlastDataKey is the entity data key for the data associated with blast protection.
var BlastDataKey = capability.NewKey[BlastData]("blastward:blast_protection")

// BlastData is the per entity record of blast protection.
type BlastData struct {
	// protection contributed by each armor slot
	Level MaxLevel
	// set by an explosion, consumed by the next tick of the entity
	WasKnockback bool
}

// BlastProtection reduces explosion damage and the knockback of explosions.
type BlastProtection struct {
	IncrementalModifier
	config game.BlastProtectionConfig
	store  *capability.Store
}

func NewBlastProtection(config game.BlastProtectionConfig, bus *event.Bus, store *capability.Store) *BlastProtection {
	m := &BlastProtection{
		IncrementalModifier: NewIncrementalModifier(config.ID, config.Color, config.IncrementalAmountPerLevel),
		config:              config,
		store:               store,
	}
	event.Subscribe(bus, event.PriorityNormal, m.onExplosionDetonate)
	event.Subscribe(bus, event.PriorityNormal, m.onLivingTick)
	return m
}

// Data returns the blast protection record of entity, if it has one.
func (m *BlastProtection) Data(entity *game.LivingEntity) (*BlastData, bool) {
	return capability.Get(m.store, entity.CapabilityHandle(), BlastDataKey)
}

func (m *BlastProtection) ProtectionModifier(tool *game.ToolStack, level int, ctx game.EquipmentContext, slot game.EquipmentSlot, source game.DamageSource, modifierValue float64) float64 {
	if !source.Absolute && !source.HarmsCreative && source.Explosion {
		modifierValue += m.ScaledLevel(tool, level) * m.config.ProtectionPerLevel
	}
	return modifierValue
}

func (m *BlastProtection) OnUnequip(tool *game.ToolStack, level int, ctx game.EquipmentChangeContext) {
	entity := ctx.Entity
	if !ctx.ChangedSlot.IsArmor() || entity.IsRemote() {
		return
	}
	data, ok := m.Data(entity)
	if !ok {
		return
	}
	data.Level.Set(ctx.ChangedSlot, 0)
	data.WasKnockback = false
}

func (m *BlastProtection) OnEquip(tool *game.ToolStack, level int, ctx game.EquipmentChangeContext) {
	entity := ctx.Entity
	if entity.IsRemote() || !ctx.ChangedSlot.IsArmor() || tool.IsBroken() {
		return
	}
	scaledLevel := m.ScaledLevel(tool, level)
	data := capability.GetOrCreate(m.store, entity.CapabilityHandle(), BlastDataKey, func() *BlastData {
		return &BlastData{}
	})
	if data == nil {
		return
	}
	data.Level.Set(ctx.ChangedSlot, scaledLevel)
	util.LogModifierDebug(fmt.Sprintf("[BlastProtection] %s %s -> %0.2f (max %0.2f)", entity, ctx.ChangedSlot, scaledLevel, data.Level.Max()))
}

// onExplosionDetonate marks every protected entity caught in the blast for a knockback update next tick.
func (m *BlastProtection) onExplosionDetonate(ev *game.DetonateEvent) {
	center := ev.Explosion.Position
	diameter := ev.Explosion.Diameter()
	for _, entity := range ev.AffectedEntities {
		if entity.IsImmuneToExplosions() {
			continue
		}
		data, ok := m.Data(entity)
		if !ok || data.Level.Max() <= 0 {
			continue
		}
		pos := entity.Position()
		x := pos.X() - center.X()
		z := pos.Z() - center.Z()
		// an eye sitting exactly on the explosion gets no direction, so no knockback to reduce
		if x == 0 && z == 0 && entity.EyeY()-center.Y() == 0 {
			continue
		}
		y := pos.Y() - center.Y()
		distance := math.Sqrt(x*x+y*y+z*z) / diameter
		if distance <= 1 {
			data.WasKnockback = true
			util.LogExplosionDebug(fmt.Sprintf("[BlastProtection] %s marked at distance %0.3f", entity, distance))
		}
	}
}

// onLivingTick scales down the velocity of an entity marked by an explosion.
func (m *BlastProtection) onLivingTick(ev *game.LivingTickEvent) {
	living := ev.Entity
	if living.IsRemote() {
		return
	}
	data, ok := m.Data(living)
	if !ok || !data.WasKnockback {
		return
	}
	data.WasKnockback = false
	max := data.Level.Max()
	if max <= 0 {
		return
	}
	// the built-in blast protection only reduces knockback past obtainable levels, so only our own level counts
	scale := 1 - max*m.config.KnockbackReductionPerLevel
	living.SetMotion(util.ScaleVec(living.Motion(), scale))
	living.MarkVelocityChanged()
	util.LogModifierDebug(fmt.Sprintf("[BlastProtection] %s knockback scaled by %0.2f", living, math.Max(scale, 0)))
}
