package profiler

import (
	"testing"
	"time"
)

// fakeClock returns a clock function advanced manually by the test.
func fakeClock(start time.Time) (func() time.Time, func(time.Duration)) {
	current := start
	return func() time.Time { return current }, func(d time.Duration) { current = current.Add(d) }
}

func TestTick_LogsOncePerInterval(t *testing.T) {
	now, advance := fakeClock(time.Unix(0, 0))
	calls := 0
	p := NewProfiler(WithInterval(time.Second), WithStats(func() string {
		calls++
		return "zoom 1.00"
	}))
	p.now = now
	p.lastTime = now()

	for i := 0; i < 9; i++ {
		advance(100 * time.Millisecond)
		if p.Tick() {
			t.Fatalf("tick %d logged before the interval elapsed", i)
		}
	}
	advance(100 * time.Millisecond)
	if !p.Tick() {
		t.Fatal("expected the tenth tick to log")
	}
	if calls != 1 {
		t.Errorf("stats called %d times, want 1", calls)
	}
	if got := p.FPS(); got < 9.99 || got > 10.01 {
		t.Errorf("FPS = %v, want 10", got)
	}
}

func TestWithInterval_IgnoresNonPositive(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		want     time.Duration
	}{
		{"zero", 0, time.Second},
		{"negative", -time.Second, time.Second},
		{"custom", 250 * time.Millisecond, 250 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProfiler(WithInterval(tt.interval))
			if p.updateInterval != tt.want {
				t.Errorf("interval = %v, want %v", p.updateInterval, tt.want)
			}
		})
	}
}

func TestFPS_ZeroBeforeFirstInterval(t *testing.T) {
	p := NewProfiler()
	if p.FPS() != 0 {
		t.Errorf("FPS = %v, want 0", p.FPS())
	}
}
