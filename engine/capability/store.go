// Package capability attaches keyed auxiliary data to simulation entities.
// Each Key owns one donburi component type, so a value stored under a key lives
// on the holder's donburi entry and disappears with it.
package capability

import (
	"fmt"
	"github.com/memmaker/blastward/engine/util"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Key identifies one kind of auxiliary data.
type Key[T any] struct {
	name      string
	component *donburi.ComponentType[T]
}

func NewKey[T any](name string) Key[T] {
	return Key[T]{
		name:      name,
		component: donburi.NewComponentType[T](),
	}
}

func (k Key[T]) Name() string {
	return k.name
}

// Handle refers to an entity that can hold capability data.
type Handle = donburi.Entity

// holderTag marks every attached handle, donburi entries need at least one component.
var holderTag = donburi.NewTag()

type Store struct {
	world donburi.World
}

func NewStore() *Store {
	return &Store{world: donburi.NewWorld()}
}

// Attach creates a fresh handle without any data.
func (s *Store) Attach() Handle {
	return s.world.Create(holderTag)
}

// Detach drops the handle together with everything stored on it.
func (s *Store) Detach(h Handle) {
	if !s.world.Valid(h) {
		return
	}
	s.world.Remove(h)
}

func (s *Store) Valid(h Handle) bool {
	return s.world.Valid(h)
}

func (s *Store) entry(h Handle) *donburi.Entry {
	if !s.world.Valid(h) {
		return nil
	}
	return s.world.Entry(h)
}

// Get returns the value stored under key, or false when the holder has none.
func Get[T any](s *Store, h Handle, key Key[T]) (*T, bool) {
	entry := s.entry(h)
	if entry == nil || !entry.HasComponent(key.component) {
		return nil, false
	}
	return key.component.Get(entry), true
}

// Put stores value under key, replacing whatever was there.
func Put[T any](s *Store, h Handle, key Key[T], value *T) bool {
	entry := s.entry(h)
	if entry == nil {
		return false
	}
	if entry.HasComponent(key.component) {
		key.component.Set(entry, value)
	} else {
		donburi.Add(entry, key.component, value)
	}
	util.LogStoreDebug(fmt.Sprintf("[Store] put %s on %v", key.name, h))
	return true
}

// GetOrCreate returns the stored value, creating it with create on first use.
// It returns nil only for handles the store does not know.
func GetOrCreate[T any](s *Store, h Handle, key Key[T], create func() *T) *T {
	if value, ok := Get(s, h, key); ok {
		return value
	}
	if !Put(s, h, key, create()) {
		return nil
	}
	value, _ := Get(s, h, key)
	return value
}

func Remove[T any](s *Store, h Handle, key Key[T]) {
	entry := s.entry(h)
	if entry == nil || !entry.HasComponent(key.component) {
		return
	}
	entry.RemoveComponent(key.component)
}

// Each visits every holder that has data stored under key.
func Each[T any](s *Store, key Key[T], visit func(h Handle, value *T)) {
	donburi.NewQuery(filter.Contains(key.component)).Each(s.world, func(entry *donburi.Entry) {
		visit(entry.Entity(), key.component.Get(entry))
	})
}
