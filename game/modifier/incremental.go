package modifier

import "github.com/memmaker/blastward/game"

// IncrementalModifier is a modifier whose top level can be partially applied.
// Progress towards the top level is stored in the tool's persistent data under the modifier id.
type IncrementalModifier struct {
	BaseModifier
	amountPerLevel int
}

func NewIncrementalModifier(id string, color int, amountPerLevel int) IncrementalModifier {
	return IncrementalModifier{
		BaseModifier:   NewBaseModifier(id, color),
		amountPerLevel: amountPerLevel,
	}
}

func (m IncrementalModifier) AmountPerLevel() int {
	return m.amountPerLevel
}

// ScaledLevel is level with the last level weighted by its applied fraction.
func (m IncrementalModifier) ScaledLevel(tool *game.ToolStack, level int) float64 {
	if level <= 0 {
		return 0
	}
	if m.amountPerLevel <= 0 {
		return float64(level)
	}
	amount := tool.Persistent(m.ID())
	if amount <= 0 || amount >= m.amountPerLevel {
		return float64(level)
	}
	return float64(level-1) + float64(amount)/float64(m.amountPerLevel)
}
