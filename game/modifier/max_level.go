package modifier

import "github.com/memmaker/blastward/game"

// MaxLevel tracks one level per armor slot. Max is derived on every call.
type MaxLevel struct {
	levels [4]float64
}

// Set stores level for an armor slot; hand slots are ignored and negative levels count as 0.
func (m *MaxLevel) Set(slot game.EquipmentSlot, level float64) {
	if !slot.IsArmor() {
		return
	}
	if level < 0 {
		level = 0
	}
	m.levels[slot.Index()] = level
}

func (m *MaxLevel) Max() float64 {
	max := 0.0
	for _, level := range m.levels {
		if level > max {
			max = level
		}
	}
	return max
}
