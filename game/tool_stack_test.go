package game

import (
	"bytes"
	"github.com/Tnze/go-mc/nbt"
	"strings"
	"testing"
)

func TestToolStackNBTRoundTrip(t *testing.T) {
	tool := NewToolStack("tconstruct:plate_chestplate", 250).
		AddModifier("blast_protection", 2).
		AddModifier("reinforced", 1).
		SetPersistent("blast_protection", 3)
	tool.ApplyDamage(40)

	data, err := tool.MarshalNBT()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	decoded, err := UnmarshalToolStack(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded.ItemID != tool.ItemID {
		t.Errorf("item id = %q", decoded.ItemID)
	}
	if decoded.ModifierLevel("blast_protection") != 2 || decoded.ModifierLevel("reinforced") != 1 {
		t.Errorf("modifiers = %v", decoded.Modifiers)
	}
	if decoded.Damage != 40 || decoded.MaxDurability != 250 {
		t.Errorf("durability = %d/%d", decoded.Damage, decoded.MaxDurability)
	}
	if decoded.Persistent("blast_protection") != 3 {
		t.Errorf("persistent = %d", decoded.Persistent("blast_protection"))
	}
}

func TestDecodeToolStackDropsEmptyModifiers(t *testing.T) {
	var buf bytes.Buffer
	raw := toolStackNBT{
		ID: "tconstruct:plate_boots",
		Modifiers: []ModifierEntry{
			{ID: "blast_protection", Level: 1},
			{ID: "removed", Level: 0},
		},
		Durability: 100,
		Persistent: map[string]int32{},
	}
	if err := nbt.NewEncoder(&buf).Encode(raw, toolStackTagName); err != nil {
		t.Fatalf("encode: %v", err)
	}
	tool, err := DecodeToolStack(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(tool.Modifiers) != 1 || tool.ModifierLevel("removed") != 0 {
		t.Errorf("modifiers = %v", tool.Modifiers)
	}
}

func TestDecodeToolStackErrors(t *testing.T) {
	if _, err := UnmarshalToolStack([]byte{0xFF, 0x00}); err == nil || !strings.Contains(err.Error(), "decoding tool stack") {
		t.Errorf("garbage input: %v", err)
	}

	var buf bytes.Buffer
	if err := nbt.NewEncoder(&buf).Encode(toolStackNBT{Persistent: map[string]int32{}}, toolStackTagName); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeToolStack(&buf); err == nil || !strings.Contains(err.Error(), "missing item id") {
		t.Errorf("missing id: %v", err)
	}
}

func TestToolStackBroken(t *testing.T) {
	tool := NewToolStack("tconstruct:plate_helmet", 10)
	if tool.IsBroken() {
		t.Fatalf("new tool is broken")
	}
	tool.ApplyDamage(25)
	if !tool.IsBroken() || tool.Damage != 10 {
		t.Errorf("expected broken at 10 damage, got %d", tool.Damage)
	}
	tool.Repair(1)
	if tool.IsBroken() {
		t.Errorf("repaired tool still broken")
	}
	unbreakable := NewToolStack("creative", 0)
	unbreakable.ApplyDamage(100)
	if unbreakable.IsBroken() {
		t.Errorf("tool without durability broke")
	}
}

func TestAddModifierCapsLevel(t *testing.T) {
	tool := NewToolStack("tconstruct:plate_helmet", 100).
		AddModifier("blast_protection", 40000).
		AddModifier("reinforced", 32000).
		AddModifier("reinforced", 1000)
	if got := tool.ModifierLevel("blast_protection"); got != MaxModifierLevel {
		t.Errorf("blast_protection level = %d, want %d", got, MaxModifierLevel)
	}
	if got := tool.ModifierLevel("reinforced"); got != MaxModifierLevel {
		t.Errorf("reinforced level = %d, want %d", got, MaxModifierLevel)
	}

	data, err := tool.MarshalNBT()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	decoded, err := UnmarshalToolStack(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.Modifiers) != 2 || decoded.ModifierLevel("blast_protection") != MaxModifierLevel {
		t.Errorf("capped modifiers lost on decode: %v", decoded.Modifiers)
	}
}
