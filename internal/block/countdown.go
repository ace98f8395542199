// internal/block/countdown.go
//
// Countdown timer.
//
// Context
// -------
// The block renders the time remaining until a target timestamp as
// zero-padded days/hours/minutes/seconds, or an “ended” message once the
// target is in the past.  A malformed or absent target suppresses the
// whole block.
//
// The server render embeds one snapshot; Ticker is the cooperative
// 1-second recompute loop behind live displays (server-sent refresh,
// admin live preview).  It is scoped to one mounted block instance:
// Stop() cancels it, and no tick callback fires after Stop returns.
package block

import (
	"fmt"
	"html/template"
	"sync"
	"time"
)

//
// Pure countdown math
//

// Remaining is one computed countdown snapshot.
type Remaining struct {
	Days, Hours, Minutes, Seconds int
	Ended                         bool
}

// RemainingUntil splits target − now into calendar-free units.  A target
// at or before now is Ended with all units zero.
func RemainingUntil(target, now time.Time) Remaining {
	d := target.Sub(now)
	if d <= 0 {
		return Remaining{Ended: true}
	}
	total := int(d / time.Second)
	return Remaining{
		Days:    total / 86400,
		Hours:   total % 86400 / 3600,
		Minutes: total % 3600 / 60,
		Seconds: total % 60,
	}
}

// Pad2 zero-pads a unit to two digits, the display contract for every
// countdown cell.
func Pad2(n int) string {
	if n < 0 {
		n = 0
	}
	return fmt.Sprintf("%02d", n)
}

// targetLayouts are the accepted timestamp shapes, tried in order.
var targetLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// parseTarget returns the zero time when no layout matches.
func parseTarget(raw string) time.Time {
	for _, layout := range targetLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

//
// Cooperative tick loop
//

// Ticker recomputes a countdown on a fixed interval and hands each
// snapshot to onTick.  Once the countdown ends it emits the final Ended
// snapshot and stops producing values on its own.
type Ticker struct {
	target   time.Time
	interval time.Duration
	now      func() time.Time
	onTick   func(Remaining)

	mu      sync.Mutex
	stopped bool
	done    chan struct{}
	once    sync.Once
}

// NewTicker builds a 1-second countdown loop.  The interval and clock
// are fixed here; tests construct the struct through newTickerAt.
func NewTicker(target time.Time, onTick func(Remaining)) *Ticker {
	return newTickerAt(target, time.Second, time.Now, onTick)
}

func newTickerAt(target time.Time, interval time.Duration, now func() time.Time, onTick func(Remaining)) *Ticker {
	return &Ticker{
		target:   target,
		interval: interval,
		now:      now,
		onTick:   onTick,
		done:     make(chan struct{}),
	}
}

// Start launches the tick loop.  The first snapshot is emitted
// immediately, then every interval until the countdown ends or Stop is
// called.
func (t *Ticker) Start() {
	go func() {
		if t.emit() {
			return
		}
		tick := time.NewTicker(t.interval)
		defer tick.Stop()
		for {
			select {
			case <-t.done:
				return
			case <-tick.C:
				if t.emit() {
					return
				}
			}
		}
	}()
}

// emit delivers one snapshot under the stop lock; it reports whether the
// loop should end.  Holding the lock for the callback is what guarantees
// “no effect after Stop returns”.
func (t *Ticker) emit() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return true
	}
	rem := RemainingUntil(t.target, t.now())
	t.onTick(rem)
	return rem.Ended
}

// Stop cancels the loop.  Safe to call more than once; after it returns
// no further onTick fires.
func (t *Ticker) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
	t.once.Do(func() { close(t.done) })
}

//
// Renderer
//

var countdownTmpl = template.Must(template.New("countdown_timer").Parse(`<section class="block countdown" data-target="{{.TargetAttr}}">
{{if .Title}}<h2 class="block-title">{{.Title}}</h2>{{end}}
{{if .Ended}}<p class="countdown-ended">{{.EndedText}}</p>{{else}}<div class="countdown-units">
<span class="countdown-unit"><b>{{.Days}}</b><small>days</small></span>
<span class="countdown-unit"><b>{{.Hours}}</b><small>hours</small></span>
<span class="countdown-unit"><b>{{.Minutes}}</b><small>minutes</small></span>
<span class="countdown-unit"><b>{{.Seconds}}</b><small>seconds</small></span>
</div>{{end}}
</section>
`))

type countdownData struct {
	Title      string
	TargetAttr string
	Ended      bool
	EndedText  string
	Days       string
	Hours      string
	Minutes    string
	Seconds    string
}

func (r *Renderer) renderCountdown(cfg Config) (template.HTML, error) {
	raw := cfg.Str("target", "")
	target := parseTarget(raw)
	if target.IsZero() {
		// Unparsable or absent target suppresses the whole block.
		return "", nil
	}

	rem := RemainingUntil(target, r.now())
	return exec(countdownTmpl, countdownData{
		Title:      cfg.Str("title", ""),
		TargetAttr: target.UTC().Format(time.RFC3339),
		Ended:      rem.Ended,
		EndedText:  cfg.Str("expired_text", "This offer has ended"),
		Days:       Pad2(rem.Days),
		Hours:      Pad2(rem.Hours),
		Minutes:    Pad2(rem.Minutes),
		Seconds:    Pad2(rem.Seconds),
	})
}
