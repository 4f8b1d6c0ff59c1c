package game

import (
	"bytes"
	"fmt"
	"github.com/Tnze/go-mc/nbt"
	"github.com/pkg/errors"
	"io"
	"math"
)

const toolStackTagName = "tool"

/*
	TAG_Compound("tool", {
	    "id": TAG_String(),
	    "tic_modifiers": TAG_List([
	        TAG_Compound({
	            "name": TAG_String(),
	            "level": TAG_Short()
	        })
	        ...
	    ]),
	    "tic_damage": TAG_Int(),
	    "tic_durability": TAG_Int(),
	    "tic_persistent": TAG_Compound({
	        <modifier id>: TAG_Int()
	    })
	})
*/
type toolStackNBT struct {
	ID         string           `nbt:"id"`
	Modifiers  []ModifierEntry  `nbt:"tic_modifiers"`
	Damage     int32            `nbt:"tic_damage"`
	Durability int32            `nbt:"tic_durability"`
	Persistent map[string]int32 `nbt:"tic_persistent"`
}

type ModifierEntry struct {
	ID    string `nbt:"name"`
	Level int16  `nbt:"level"`
}

// ToolStack is one equippable item together with the modifiers applied to it.
type ToolStack struct {
	ItemID        string
	Modifiers     []ModifierEntry
	Damage        int
	MaxDurability int
	// incremental progress towards the next level, keyed by modifier id
	persistent map[string]int
}

func NewToolStack(itemID string, maxDurability int) *ToolStack {
	return &ToolStack{
		ItemID:        itemID,
		MaxDurability: maxDurability,
		persistent:    make(map[string]int),
	}
}

// MaxModifierLevel is the highest level the NBT short can hold.
const MaxModifierLevel = math.MaxInt16

// AddModifier raises the level of id by levels, adding the modifier if needed.
// The resulting level is capped at MaxModifierLevel.
func (t *ToolStack) AddModifier(id string, levels int) *ToolStack {
	for i, entry := range t.Modifiers {
		if entry.ID == id {
			t.Modifiers[i].Level = clampLevel(int(entry.Level) + levels)
			return t
		}
	}
	t.Modifiers = append(t.Modifiers, ModifierEntry{ID: id, Level: clampLevel(levels)})
	return t
}

func clampLevel(level int) int16 {
	if level > MaxModifierLevel {
		return MaxModifierLevel
	}
	if level < math.MinInt16 {
		return math.MinInt16
	}
	return int16(level)
}

func (t *ToolStack) ModifierLevel(id string) int {
	for _, entry := range t.Modifiers {
		if entry.ID == id {
			return int(entry.Level)
		}
	}
	return 0
}

func (t *ToolStack) IsBroken() bool {
	return t.MaxDurability > 0 && t.Damage >= t.MaxDurability
}

// ApplyDamage wears the tool down, it never goes past its durability.
func (t *ToolStack) ApplyDamage(amount int) {
	if amount <= 0 || t.MaxDurability <= 0 {
		return
	}
	t.Damage += amount
	if t.Damage > t.MaxDurability {
		t.Damage = t.MaxDurability
	}
}

func (t *ToolStack) Repair(amount int) {
	t.Damage -= amount
	if t.Damage < 0 {
		t.Damage = 0
	}
}

func (t *ToolStack) Persistent(id string) int {
	return t.persistent[id]
}

func (t *ToolStack) SetPersistent(id string, amount int) *ToolStack {
	if t.persistent == nil {
		t.persistent = make(map[string]int)
	}
	t.persistent[id] = amount
	return t
}

func (t *ToolStack) String() string {
	return fmt.Sprintf("%s%v (%d/%d)", t.ItemID, t.Modifiers, t.MaxDurability-t.Damage, t.MaxDurability)
}

func (t *ToolStack) toNBT() toolStackNBT {
	persistent := make(map[string]int32, len(t.persistent))
	for id, amount := range t.persistent {
		persistent[id] = int32(amount)
	}
	modifiers := make([]ModifierEntry, len(t.Modifiers))
	copy(modifiers, t.Modifiers)
	return toolStackNBT{
		ID:         t.ItemID,
		Modifiers:  modifiers,
		Damage:     int32(t.Damage),
		Durability: int32(t.MaxDurability),
		Persistent: persistent,
	}
}

func (t *ToolStack) Encode(w io.Writer) error {
	err := nbt.NewEncoder(w).Encode(t.toNBT(), toolStackTagName)
	if err != nil {
		return errors.Wrapf(err, "encoding tool %s", t.ItemID)
	}
	return nil
}

func (t *ToolStack) MarshalNBT() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DecodeToolStack(r io.Reader) (*ToolStack, error) {
	var value toolStackNBT
	_, err := nbt.NewDecoder(r).Decode(&value)
	if err != nil {
		return nil, errors.Wrap(err, "decoding tool stack")
	}
	if value.ID == "" {
		return nil, errors.New("decoding tool stack: missing item id")
	}
	tool := NewToolStack(value.ID, int(value.Durability))
	tool.Damage = int(value.Damage)
	for _, entry := range value.Modifiers {
		if entry.Level <= 0 {
			continue
		}
		tool.Modifiers = append(tool.Modifiers, entry)
	}
	for id, amount := range value.Persistent {
		tool.persistent[id] = int(amount)
	}
	return tool, nil
}

func UnmarshalToolStack(data []byte) (*ToolStack, error) {
	return DecodeToolStack(bytes.NewReader(data))
}
