package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	cases := []struct {
		name    string
		price   string
		compare string
		want    int
	}{
		{"quarter off", "80.00", "100.00", 25},
		{"compare below price", "100", "90", 0},
		{"compare equals price", "49.99", "49.99", 0},
		{"no compare price", "19.90", "", 0},
		{"malformed price", "free", "100.00", 0},
		{"malformed compare", "80.00", "n/a", 0},
		{"fractional discount", "66.67", "100", 50},
		{"rounds half away", "40.00", "50.20", 26},
		{"zero compare", "0.00", "0.00", 0},
		{"zero price", "0.00", "10.00", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Product{Price: tc.price, CompareAtPrice: tc.compare}
			assert.Equal(t, tc.want, p.DiscountPercent())
		})
	}
}

func TestIsNew(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	fresh := Product{CreatedAt: now.Add(-6 * 24 * time.Hour)}
	assert.True(t, fresh.IsNew(now))

	edge := Product{CreatedAt: now.Add(-7 * 24 * time.Hour)}
	assert.True(t, edge.IsNew(now))

	stale := Product{CreatedAt: now.Add(-8 * 24 * time.Hour)}
	assert.False(t, stale.IsNew(now))

	unset := Product{}
	assert.False(t, unset.IsNew(now))
}

func TestFirstImage(t *testing.T) {
	assert.Equal(t, "", Product{}.FirstImage())
	p := Product{Images: []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}}
	assert.Equal(t, "https://cdn.example.com/a.jpg", p.FirstImage())
}
