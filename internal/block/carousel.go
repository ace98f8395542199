// internal/block/carousel.go
//
// Product carousel.
//
// Context
// -------
// A horizontally-scrollable, snap-aligned strip of product cards with
// forward/back navigation that moves one viewport at a time.  Page dots
// group cards four to a page.  Paging lives in a small state machine so
// the clamping rules are testable without markup; AutoAdvancer is the
// optional interval loop that pages forward on its own, pausing while
// the pointer hovers the carousel.
package block

import (
	"context"
	"html/template"
	"math"
	"sync"
	"time"

	"github.com/dropforge/storefront/internal/metrics"
	"github.com/dropforge/storefront/internal/tenant"
)

const (
	carouselDefaultLimit    = 12
	carouselItemsPerPage    = 4
	carouselDefaultInterval = 5000 // ms
	carouselMinInterval     = 1000 // ms
)

//
// Paging state machine
//

// PageCount groups items four to a page: ceil(n/4).
func PageCount(itemCount int) int {
	if itemCount <= 0 {
		return 0
	}
	return (itemCount + carouselItemsPerPage - 1) / carouselItemsPerPage
}

// Pager tracks the active page of one carousel instance.
type Pager struct {
	pages int
	page  int
}

// NewPager starts at page 0 with ceil(itemCount/4) pages.
func NewPager(itemCount int) *Pager {
	return &Pager{pages: PageCount(itemCount)}
}

// Page returns the active page index.
func (p *Pager) Page() int { return p.page }

// Pages returns the page-dot count.
func (p *Pager) Pages() int { return p.pages }

// Next advances one page, clamped to the last page.
func (p *Pager) Next() {
	if p.page < p.pages-1 {
		p.page++
	}
}

// Prev goes back one page, clamped to the first.
func (p *Pager) Prev() {
	if p.page > 0 {
		p.page--
	}
}

// ActiveDot derives the highlighted dot from a scroll offset: offset
// over viewport width, rounded, clamped to [0, pages−1].
func ActiveDot(offset, viewport float64, pages int) int {
	if viewport <= 0 || pages <= 0 {
		return 0
	}
	dot := int(math.Round(offset / viewport))
	return clampInt(dot, 0, pages-1)
}

//
// Auto-advance loop
//

// AutoAdvancer pages a carousel forward on a fixed interval.  Hovering
// pauses it, leaving resumes it, Stop cancels it for good; none of the
// three may have any effect after Stop returns.
type AutoAdvancer struct {
	interval time.Duration
	advance  func()

	mu      sync.Mutex
	paused  bool
	stopped bool
	done    chan struct{}
	once    sync.Once
}

// NewAutoAdvancer builds the loop; Start arms it.
func NewAutoAdvancer(interval time.Duration, advance func()) *AutoAdvancer {
	return &AutoAdvancer{
		interval: interval,
		advance:  advance,
		done:     make(chan struct{}),
	}
}

// Start launches the interval loop.
func (a *AutoAdvancer) Start() {
	go func() {
		tick := time.NewTicker(a.interval)
		defer tick.Stop()
		for {
			select {
			case <-a.done:
				return
			case <-tick.C:
				a.mu.Lock()
				if !a.paused && !a.stopped {
					a.advance()
				}
				a.mu.Unlock()
			}
		}
	}()
}

// HoverEnter suspends auto-advance while the pointer is over the strip.
func (a *AutoAdvancer) HoverEnter() {
	a.mu.Lock()
	a.paused = true
	a.mu.Unlock()
}

// HoverLeave resumes auto-advance.
func (a *AutoAdvancer) HoverLeave() {
	a.mu.Lock()
	a.paused = false
	a.mu.Unlock()
}

// Stop cancels the loop permanently.  Safe to call more than once.
func (a *AutoAdvancer) Stop() {
	a.mu.Lock()
	a.stopped = true
	a.mu.Unlock()
	a.once.Do(func() { close(a.done) })
}

//
// Renderer
//

var carouselTmpl = template.Must(template.New("product_carousel").Parse(`<section class="block carousel" data-autoplay="{{.Autoplay}}" data-interval="{{.IntervalMS}}" data-pages="{{.Pages}}">
{{if .Title}}<h2 class="block-title">{{.Title}}</h2>{{end}}
<button class="carousel-nav carousel-nav--prev" aria-label="Previous">&larr;</button>
<ul class="carousel-track">
{{range .Products}}<li class="carousel-card">
<a href="/{{$.StoreSlug}}/products/{{.Slug}}">
{{if .Image}}<img class="carousel-card-image" src="{{.Image}}" alt="{{.Title}}" loading="lazy">{{end}}
<h3 class="carousel-card-title">{{.Title}}</h3>
<p class="carousel-card-price">{{.Price}}{{if .Discount}} <s>{{.CompareAt}}</s>{{end}}</p>
</a>
</li>{{end}}
</ul>
<button class="carousel-nav carousel-nav--next" aria-label="Next">&rarr;</button>
<div class="carousel-dots">{{range .Dots}}<span class="carousel-dot"></span>{{end}}</div>
</section>
`))

type carouselData struct {
	Title      string
	StoreSlug  string
	Autoplay   bool
	IntervalMS int
	Pages      int
	Dots       []struct{}
	Products   []productCard
}

func (r *Renderer) renderCarousel(ctx context.Context, ten *tenant.Tenant, cfg Config) (template.HTML, error) {
	limit := clampInt(cfg.Int("limit", carouselDefaultLimit), 1, 24)

	products, err := r.api.Products(ctx, ten.Slug, limit)
	if err != nil {
		metrics.BlockFetchErrorsTotal.WithLabelValues(string(KindProductCarousel)).Inc()
		return "", nil
	}
	if len(products) == 0 {
		return "", nil
	}

	interval := cfg.Int("interval_ms", carouselDefaultInterval)
	if interval < carouselMinInterval {
		interval = carouselMinInterval
	}
	pages := PageCount(len(products))

	return exec(carouselTmpl, carouselData{
		Title:      cfg.Str("title", ""),
		StoreSlug:  ten.Slug,
		Autoplay:   cfg.Bool("autoplay", false),
		IntervalMS: interval,
		Pages:      pages,
		Dots:       make([]struct{}, pages),
		Products:   toCards(products, r.now()),
	})
}
