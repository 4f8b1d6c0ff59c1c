package game

// EquipmentContext gives modifiers a view of everything an entity wears.
type EquipmentContext struct {
	Entity *LivingEntity
}

func NewEquipmentContext(entity *LivingEntity) EquipmentContext {
	return EquipmentContext{Entity: entity}
}

// ToolInSlot returns the tool in slot, or nil if the slot is empty or the tool is broken.
func (c EquipmentContext) ToolInSlot(slot EquipmentSlot) *ToolStack {
	tool := c.Entity.Equipment(slot)
	if tool == nil || tool.IsBroken() {
		return nil
	}
	return tool
}

// EquipmentChangeContext describes one slot changing from Original to Replacement.
type EquipmentChangeContext struct {
	EquipmentContext
	ChangedSlot EquipmentSlot
	Original    *ToolStack
	Replacement *ToolStack
}
