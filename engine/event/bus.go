package event

import (
	"fmt"
	"github.com/memmaker/blastward/engine/util"
	"reflect"
	"sort"
)

type Priority int

const (
	PriorityLowest Priority = iota
	PriorityLow
	PriorityNormal
	PriorityHigh
	PriorityHighest
)

func (p Priority) String() string {
	switch p {
	case PriorityLowest:
		return "lowest"
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	case PriorityHighest:
		return "highest"
	}
	return fmt.Sprintf("priority(%d)", int(p))
}

type listener struct {
	priority Priority
	order    int
	call     func(any)
}

// Bus dispatches events synchronously on the posting goroutine.
// Listeners for one event type run highest priority first, ties in registration order.
// A Bus is not safe for concurrent use; the simulation owns it on its main loop.
type Bus struct {
	listeners map[reflect.Type][]listener
	nextOrder int
}

func NewBus() *Bus {
	return &Bus{
		listeners: make(map[reflect.Type][]listener),
	}
}

func typeOf[E any]() reflect.Type {
	return reflect.TypeOf((*E)(nil)).Elem()
}

// Subscribe registers handler for events of type E.
func Subscribe[E any](b *Bus, priority Priority, handler func(*E)) {
	eventType := typeOf[E]()
	l := listener{
		priority: priority,
		order:    b.nextOrder,
		call: func(ev any) {
			handler(ev.(*E))
		},
	}
	b.nextOrder++
	list := append(b.listeners[eventType], l)
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].priority != list[j].priority {
			return list[i].priority > list[j].priority
		}
		return list[i].order < list[j].order
	})
	b.listeners[eventType] = list
	util.LogSystemInfo(fmt.Sprintf("[Bus] %s listener added (%s)", eventType.Name(), priority))
}

// Post hands ev to every listener of its type and returns how many ran.
func Post[E any](b *Bus, ev *E) int {
	list := b.listeners[typeOf[E]()]
	if len(list) == 0 {
		return 0
	}
	// listeners may subscribe while we dispatch, only the current set sees this event
	snapshot := make([]listener, len(list))
	copy(snapshot, list)
	for _, l := range snapshot {
		l.call(ev)
	}
	return len(snapshot)
}
