// internal/block/countdown_test.go
//
// Unit-tests for countdown math, target parsing, and the cooperative
// tick loop’s cancellation guarantees.

package block

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestRemainingUntil(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	// 90061000 ms = 1d 1h 1m 1s.
	rem := RemainingUntil(now.Add(90061000*time.Millisecond), now)
	if rem.Ended {
		t.Fatal("countdown ended early")
	}
	got := []string{Pad2(rem.Days), Pad2(rem.Hours), Pad2(rem.Minutes), Pad2(rem.Seconds)}
	for i, want := range []string{"01", "01", "01", "01"} {
		if got[i] != want {
			t.Fatalf("unit %d = %s, want %s (full: %v)", i, got[i], want, got)
		}
	}

	// A target one second in the past is ended.
	if rem := RemainingUntil(now.Add(-time.Second), now); !rem.Ended {
		t.Fatal("past target not marked ended")
	}
	if rem := RemainingUntil(now, now); !rem.Ended {
		t.Fatal("target == now must be ended")
	}
}

func TestParseTarget(t *testing.T) {
	for _, ok := range []string{"2026-12-24T18:00:00Z", "2026-12-24 18:00:00", "2026-12-24"} {
		if parseTarget(ok).IsZero() {
			t.Errorf("parseTarget(%q) failed", ok)
		}
	}
	for _, bad := range []string{"", "soon", "24/12/2026", "1718000000"} {
		if !parseTarget(bad).IsZero() {
			t.Errorf("parseTarget(%q) should fail", bad)
		}
	}
}

func TestRenderCountdown(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	r := &Renderer{now: func() time.Time { return now }}

	html, err := r.renderCountdown(Config{
		"target": now.Add(90061 * time.Second).Format(time.RFC3339),
		"title":  "Flash sale",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"<b>01</b>", "Flash sale", "countdown-units"} {
		if !strings.Contains(string(html), want) {
			t.Errorf("output missing %q:\n%s", want, html)
		}
	}

	// Past target shows the ended state, not units.
	html, err = r.renderCountdown(Config{"target": now.Add(-time.Second).Format(time.RFC3339)})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(html), "This offer has ended") {
		t.Fatalf("ended state missing:\n%s", html)
	}
	if strings.Contains(string(html), "countdown-units") {
		t.Fatalf("units rendered after the target passed:\n%s", html)
	}

	// Malformed target suppresses the whole block.
	html, err = r.renderCountdown(Config{"target": "sometime"})
	if err != nil || html != "" {
		t.Fatalf("malformed target: html=%q err=%v, want empty and nil", html, err)
	}
}

func TestTickerStopsWhenEnded(t *testing.T) {
	base := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	var snaps []Remaining

	// Clock jumps one second per emit, so the third snapshot is ended.
	elapsed := 0
	now := func() time.Time {
		defer func() { elapsed++ }()
		return base.Add(time.Duration(elapsed) * time.Second)
	}

	done := make(chan struct{})
	tk := newTickerAt(base.Add(2*time.Second), time.Millisecond, now, func(rem Remaining) {
		mu.Lock()
		snaps = append(snaps, rem)
		mu.Unlock()
		if rem.Ended {
			close(done)
		}
	})
	tk.Start()
	defer tk.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ticker never reached the ended state")
	}

	// Give a stray tick a chance to fire, then confirm none did.
	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if len(snaps) == 0 || !snaps[len(snaps)-1].Ended {
		t.Fatalf("unexpected snapshots: %v", snaps)
	}
	for _, s := range snaps[:len(snaps)-1] {
		if s.Ended {
			t.Fatalf("ended snapshot emitted more than once: %v", snaps)
		}
	}
}

func TestTickerStopIsFinal(t *testing.T) {
	var mu sync.Mutex
	count := 0

	tk := newTickerAt(time.Now().Add(time.Hour), time.Millisecond, time.Now, func(Remaining) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	tk.Start()
	time.Sleep(10 * time.Millisecond)
	tk.Stop()

	mu.Lock()
	after := count
	mu.Unlock()

	time.Sleep(20 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if count != after {
		t.Fatalf("onTick fired after Stop: %d → %d", after, count)
	}
	tk.Stop() // idempotent
}
