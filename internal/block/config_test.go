// internal/block/config_test.go
//
// Unit-tests for the tolerant config accessors: missing and malformed
// keys must always fall back to the caller’s default.

package block

import "testing"

func TestConfigStr(t *testing.T) {
	cfg := Config{"title": "Summer sale", "limit": 8.0}

	if got := cfg.Str("title", "x"); got != "Summer sale" {
		t.Fatalf("Str = %q", got)
	}
	if got := cfg.Str("missing", "fallback"); got != "fallback" {
		t.Fatalf("missing key: %q", got)
	}
	if got := cfg.Str("limit", "fallback"); got != "fallback" {
		t.Fatalf("non-string value must fall back, got %q", got)
	}
}

func TestConfigInt(t *testing.T) {
	cfg := Config{
		"float":  6.0, // JSON numbers decode as float64
		"int":    3,
		"string": " 12 ",
		"junk":   "a dozen",
		"list":   []any{1, 2},
	}

	cases := []struct {
		key  string
		want int
	}{
		{"float", 6}, {"int", 3}, {"string", 12}, {"junk", 99}, {"list", 99}, {"missing", 99},
	}
	for _, tc := range cases {
		if got := cfg.Int(tc.key, 99); got != tc.want {
			t.Errorf("Int(%q) = %d, want %d", tc.key, got, tc.want)
		}
	}
}

func TestConfigBool(t *testing.T) {
	cfg := Config{"on": true, "str": "TRUE", "junk": "yep", "num": 1.0}

	if !cfg.Bool("on", false) || !cfg.Bool("str", false) {
		t.Fatal("true values not recognised")
	}
	if cfg.Bool("junk", false) || cfg.Bool("num", false) {
		t.Fatal("uncoercible values must fall back")
	}
	if !cfg.Bool("missing", true) {
		t.Fatal("missing key must fall back to default")
	}
}

func TestClampInt(t *testing.T) {
	if clampInt(1, 2, 6) != 2 || clampInt(9, 2, 6) != 6 || clampInt(4, 2, 6) != 4 {
		t.Fatal("clampInt broken")
	}
}

func TestBlockKind(t *testing.T) {
	known := map[string]Kind{
		"hero":             KindHero,
		"product_grid":     KindProductGrid,
		"categories_grid":  KindCategoriesGrid,
		"countdown_timer":  KindCountdownTimer,
		"product_carousel": KindProductCarousel,
		"video_banner":     KindVideoBanner,
		"custom_text":      KindCustomText,
	}
	for tag, want := range known {
		if got := (Block{Type: tag}).Kind(); got != want {
			t.Errorf("Kind(%q) = %q", tag, got)
		}
	}
	for _, tag := range []string{"", "mega_menu", "HERO", "hero "} {
		if got := (Block{Type: tag}).Kind(); got != KindUnknown {
			t.Errorf("Kind(%q) = %q, want unknown", tag, got)
		}
	}
}
