package modifier

import (
	"fmt"
	"github.com/memmaker/blastward/engine/event"
	"github.com/memmaker/blastward/engine/util"
	"github.com/memmaker/blastward/game"
	"github.com/pkg/errors"
)

// Registry resolves modifier ids found on tools and fans equipment and damage queries out to them.
type Registry struct {
	modifiers map[string]Modifier
}

func NewRegistry() *Registry {
	return &Registry{
		modifiers: make(map[string]Modifier),
	}
}

func (r *Registry) Register(m Modifier) error {
	if m.ID() == "" {
		return errors.New("modifier id cannot be empty")
	}
	if _, exists := r.modifiers[m.ID()]; exists {
		return errors.Errorf("modifier %q already registered", m.ID())
	}
	r.modifiers[m.ID()] = m
	util.LogModifierInfo(fmt.Sprintf("[Registry] registered modifier %s", m.ID()))
	return nil
}

func (r *Registry) Get(id string) (Modifier, bool) {
	m, ok := r.modifiers[id]
	return m, ok
}

// Listen routes equipment change events of bus into HandleEquipmentChange.
func (r *Registry) Listen(bus *event.Bus) {
	event.Subscribe(bus, event.PriorityNormal, func(ev *game.EquipmentChangeEvent) {
		r.HandleEquipmentChange(ev.Context)
	})
}

func (r *Registry) each(tool *game.ToolStack, visit func(m Modifier, level int)) {
	for _, entry := range tool.Modifiers {
		m, ok := r.modifiers[entry.ID]
		if !ok {
			util.LogEquipmentWarning(fmt.Sprintf("[Registry] unknown modifier %s on %s", entry.ID, tool.ItemID))
			continue
		}
		visit(m, int(entry.Level))
	}
}

// HandleEquipmentChange unequips every modifier of the old tool, then equips every modifier of the new one.
func (r *Registry) HandleEquipmentChange(ctx game.EquipmentChangeContext) {
	util.LogEquipmentDebug(fmt.Sprintf("[Registry] %s %s: %v -> %v", ctx.Entity, ctx.ChangedSlot, ctx.Original, ctx.Replacement))
	if ctx.Original != nil {
		r.each(ctx.Original, func(m Modifier, level int) {
			m.OnUnequip(ctx.Original, level, ctx)
		})
	}
	if ctx.Replacement != nil {
		r.each(ctx.Replacement, func(m Modifier, level int) {
			m.OnEquip(ctx.Replacement, level, ctx)
		})
	}
}

// Protection sums the protection value all worn armor grants against source.
func (r *Registry) Protection(ctx game.EquipmentContext, source game.DamageSource) float64 {
	protection := 0.0
	if !source.CanBeProtected() {
		return protection
	}
	for _, slot := range game.ArmorSlots() {
		tool := ctx.ToolInSlot(slot)
		if tool == nil {
			continue
		}
		r.each(tool, func(m Modifier, level int) {
			protection = m.ProtectionModifier(tool, level, ctx, slot, source, protection)
		})
	}
	return protection
}
