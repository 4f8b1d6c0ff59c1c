package game

import "fmt"

type SlotGroup int

const (
	SlotGroupHand SlotGroup = iota
	SlotGroupArmor
)

type EquipmentSlot int

const (
	SlotMainHand EquipmentSlot = iota
	SlotOffHand
	SlotFeet
	SlotLegs
	SlotChest
	SlotHead
)

var slotNames = map[EquipmentSlot]string{
	SlotMainHand: "mainhand",
	SlotOffHand:  "offhand",
	SlotFeet:     "feet",
	SlotLegs:     "legs",
	SlotChest:    "chest",
	SlotHead:     "head",
}

func (s EquipmentSlot) String() string {
	if name, ok := slotNames[s]; ok {
		return name
	}
	return fmt.Sprintf("slot(%d)", int(s))
}

func (s EquipmentSlot) Group() SlotGroup {
	if s >= SlotFeet && s <= SlotHead {
		return SlotGroupArmor
	}
	return SlotGroupHand
}

func (s EquipmentSlot) IsArmor() bool {
	return s.Group() == SlotGroupArmor
}

// Index is the position of the slot inside its group, feet is armor index 0.
func (s EquipmentSlot) Index() int {
	if s.IsArmor() {
		return int(s - SlotFeet)
	}
	return int(s - SlotMainHand)
}

func ArmorSlots() []EquipmentSlot {
	return []EquipmentSlot{SlotFeet, SlotLegs, SlotChest, SlotHead}
}

func AllSlots() []EquipmentSlot {
	return []EquipmentSlot{SlotMainHand, SlotOffHand, SlotFeet, SlotLegs, SlotChest, SlotHead}
}
