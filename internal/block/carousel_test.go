// internal/block/carousel_test.go
//
// Unit-tests for carousel paging math and the auto-advance loop’s
// pause/resume/stop semantics.

package block

import (
	"sync"
	"testing"
	"time"
)

func TestPageCount(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 4: 1, 5: 2, 8: 2, 10: 3, 12: 3, 13: 4}
	for items, want := range cases {
		if got := PageCount(items); got != want {
			t.Errorf("PageCount(%d) = %d, want %d", items, got, want)
		}
	}
}

func TestPagerClamping(t *testing.T) {
	p := NewPager(10) // 3 pages

	if p.Pages() != 3 || p.Page() != 0 {
		t.Fatalf("fresh pager: pages=%d page=%d", p.Pages(), p.Page())
	}

	p.Next()
	p.Next()
	p.Next()
	if p.Page() != 2 {
		t.Fatalf("after 3×Next page = %d, want 2 (last page)", p.Page())
	}
	p.Next() // must not exceed pages−1
	if p.Page() != 2 {
		t.Fatalf("Next past the end moved to %d", p.Page())
	}

	p.Prev()
	p.Prev()
	p.Prev() // back at 0, further Prev is a no-op
	p.Prev()
	if p.Page() != 0 {
		t.Fatalf("Prev past the start moved to %d", p.Page())
	}
}

func TestActiveDot(t *testing.T) {
	// 3 pages, viewport 400 wide.
	cases := []struct {
		offset float64
		want   int
	}{
		{0, 0}, {180, 0}, {210, 1}, {400, 1}, {790, 2}, {1200, 2}, {5000, 2},
	}
	for _, tc := range cases {
		if got := ActiveDot(tc.offset, 400, 3); got != tc.want {
			t.Errorf("ActiveDot(%v) = %d, want %d", tc.offset, got, tc.want)
		}
	}

	if got := ActiveDot(100, 0, 3); got != 0 {
		t.Errorf("zero viewport must pin to 0, got %d", got)
	}
}

func TestAutoAdvancerPauseResume(t *testing.T) {
	var mu sync.Mutex
	count := 0

	a := NewAutoAdvancer(2*time.Millisecond, func() {
		mu.Lock()
		count++
		mu.Unlock()
	})
	a.Start()
	defer a.Stop()

	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	running := count
	mu.Unlock()
	if running == 0 {
		t.Fatal("auto-advance never fired")
	}

	// Hover pauses the loop entirely.
	a.HoverEnter()
	time.Sleep(5 * time.Millisecond) // drain any in-flight tick
	mu.Lock()
	paused := count
	mu.Unlock()
	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	stillPaused := count
	mu.Unlock()
	if stillPaused != paused {
		t.Fatalf("advance fired while hovered: %d → %d", paused, stillPaused)
	}

	// Leaving resumes it.
	a.HoverLeave()
	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	resumed := count
	mu.Unlock()
	if resumed == stillPaused {
		t.Fatal("auto-advance did not resume after hover-leave")
	}
}

func TestAutoAdvancerStopIsFinal(t *testing.T) {
	var mu sync.Mutex
	count := 0

	a := NewAutoAdvancer(2*time.Millisecond, func() {
		mu.Lock()
		count++
		mu.Unlock()
	})
	a.Start()
	time.Sleep(10 * time.Millisecond)
	a.Stop()

	mu.Lock()
	after := count
	mu.Unlock()

	time.Sleep(20 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if count != after {
		t.Fatalf("advance fired after Stop: %d → %d", after, count)
	}
	a.Stop() // idempotent
}
