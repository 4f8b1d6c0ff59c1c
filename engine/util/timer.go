package util

import (
	"fmt"
	"strings"
	"time"
)

// TimerState accumulates the measurements taken under one name.
type TimerState struct {
	name    string
	last    time.Duration
	total   time.Duration
	samples int
}

func (s *TimerState) Samples() int {
	return s.samples
}

func (s *TimerState) String() string {
	average := time.Duration(0)
	if s.samples > 0 {
		average = s.total / time.Duration(s.samples)
	}
	return fmt.Sprintf("%s: last %s, avg %s over %d runs", s.name, s.last, average, s.samples)
}

// Timer profiles the world's ticks and explosions by name.
type Timer struct {
	states map[string]*TimerState
	names  []string
	now    func() time.Time
}

func NewTimer() *Timer {
	return &Timer{
		states: make(map[string]*TimerState),
		now:    time.Now,
	}
}

func (t *Timer) GetState(name string) *TimerState {
	return t.states[name]
}

func (t *Timer) String() string {
	var report strings.Builder
	for _, name := range t.names {
		report.WriteString(t.states[name].String())
		report.WriteByte('\n')
	}
	return report.String()
}

// Start begins a measurement, the returned func ends it.
func (t *Timer) Start(name string) func() time.Duration {
	state, ok := t.states[name]
	if !ok {
		state = &TimerState{name: name}
		t.states[name] = state
		t.names = append(t.names, name)
	}
	started := t.now()
	return func() time.Duration {
		elapsed := t.now().Sub(started)
		state.last = elapsed
		state.total += elapsed
		state.samples++
		return elapsed
	}
}
