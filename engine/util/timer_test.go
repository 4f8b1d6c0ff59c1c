package util

import (
	"strings"
	"testing"
	"time"
)

func TestTimerRecordsDurations(t *testing.T) {
	timer := NewTimer()
	clock := time.Unix(0, 0)
	timer.now = func() time.Time { return clock }

	stop := timer.Start("tick")
	clock = clock.Add(2 * time.Millisecond)
	if got := stop(); got != 2*time.Millisecond {
		t.Fatalf("first measurement = %v, want 2ms", got)
	}
	stop = timer.Start("tick")
	clock = clock.Add(4 * time.Millisecond)
	stop()
	timer.Start("explosion")()

	if samples := timer.GetState("tick").Samples(); samples != 2 {
		t.Errorf("samples = %d, want 2", samples)
	}
	report := timer.String()
	if !strings.Contains(report, "tick: last 4ms, avg 3ms over 2 runs") {
		t.Errorf("unexpected report: %s", report)
	}
	if strings.Index(report, "tick") > strings.Index(report, "explosion") {
		t.Errorf("report not in first-use order: %s", report)
	}
	if timer.GetState("missing") != nil {
		t.Errorf("unknown timer should have no state")
	}
}
