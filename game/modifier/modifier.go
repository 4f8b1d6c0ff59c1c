// Package modifier holds the tool modifiers that react to equipment changes, damage and world events.
package modifier

import "github.com/memmaker/blastward/game"

// Modifier is a trait applied to a tool at some level.
type Modifier interface {
	ID() string
	Color() int
	// OnEquip is called when a tool carrying this modifier enters a slot.
	OnEquip(tool *game.ToolStack, level int, ctx game.EquipmentChangeContext)
	// OnUnequip is called when a tool carrying this modifier leaves a slot.
	OnUnequip(tool *game.ToolStack, level int, ctx game.EquipmentChangeContext)
	// ProtectionModifier adds this modifier's protection against source to modifierValue.
	ProtectionModifier(tool *game.ToolStack, level int, ctx game.EquipmentContext, slot game.EquipmentSlot, source game.DamageSource, modifierValue float64) float64
}

// BaseModifier implements Modifier with no behaviour.
type BaseModifier struct {
	id    string
	color int
}

var _ Modifier = BaseModifier{}

func NewBaseModifier(id string, color int) BaseModifier {
	return BaseModifier{id: id, color: color}
}

func (m BaseModifier) ID() string {
	return m.id
}

func (m BaseModifier) Color() int {
	return m.color
}

func (BaseModifier) OnEquip(*game.ToolStack, int, game.EquipmentChangeContext) {}

func (BaseModifier) OnUnequip(*game.ToolStack, int, game.EquipmentChangeContext) {}

func (BaseModifier) ProtectionModifier(_ *game.ToolStack, _ int, _ game.EquipmentContext, _ game.EquipmentSlot, _ game.DamageSource, modifierValue float64) float64 {
	return modifierValue
}
