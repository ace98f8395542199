// internal/theme/compile_test.go
//
// Unit-tests for the style compiler.
//
// Context
// -------
// The compiler must be referentially deterministic (snapshot tooling
// diffs its output), custom CSS must land verbatim and last, and every
// missing slot must fall back to a documented default.

package theme

import (
	"strings"
	"testing"
)

func sampleTheme() *Theme {
	return &Theme{
		CustomCSS: ".hero { border-radius: 12px }",
		Colors: Colors{
			Primary:    "#ff0066",
			Background: "#fafafa",
		},
		Typography: Typography{
			HeadingFont: "Playfair Display",
			BodyFont:    "Inter",
		},
	}
}

func TestCompileDeterministic(t *testing.T) {
	th := sampleTheme()
	a := Compile(th)
	b := Compile(th)

	if a.CSSText != b.CSSText {
		t.Fatalf("CSSText differs between compiles")
	}
	if a.FontsURL != b.FontsURL {
		t.Fatalf("FontsURL differs between compiles")
	}
}

func TestCompileVariablesAndDefaults(t *testing.T) {
	out := Compile(sampleTheme())

	for _, want := range []string{
		"--color-primary:#ff0066;",
		"--color-background:#fafafa;",
		"--color-secondary:" + defaultSecondary + ";", // unset slot → default
		"--color-text:" + defaultText + ";",
		`--font-heading:"Playfair Display", `,
	} {
		if !strings.Contains(out.CSSText, want) {
			t.Errorf("CSSText missing %q", want)
		}
	}
}

func TestCompileCustomCSSLandsLast(t *testing.T) {
	out := Compile(sampleTheme())

	custom := ".hero { border-radius: 12px }"
	idx := strings.Index(out.CSSText, custom)
	if idx == -1 {
		t.Fatalf("custom CSS not present verbatim")
	}
	if strings.Contains(out.CSSText[idx+len(custom):], "--color-") {
		t.Fatalf("generated variables appear after custom CSS; tenant overrides must win")
	}
}

func TestCompileFontsURL(t *testing.T) {
	out := Compile(sampleTheme())

	if !strings.HasPrefix(out.FontsURL, "https://fonts.googleapis.com/css2?family=Playfair+Display") {
		t.Fatalf("unexpected fonts URL: %s", out.FontsURL)
	}
	if !strings.Contains(out.FontsURL, "family=Inter") {
		t.Fatalf("body family missing from fonts URL: %s", out.FontsURL)
	}
	if !strings.HasSuffix(out.FontsURL, "&display=swap") {
		t.Fatalf("fonts URL missing display=swap: %s", out.FontsURL)
	}
}

func TestCompileNoFontsConfigured(t *testing.T) {
	out := Compile(&Theme{})

	if out.FontsURL != "" {
		t.Fatalf("expected empty FontsURL, got %s", out.FontsURL)
	}
	if !strings.Contains(out.CSSText, "--font-body:"+systemFontStack) {
		t.Fatalf("system font stack missing for unset typography")
	}
}

func TestCompileSharedFamilyListedOnce(t *testing.T) {
	out := Compile(&Theme{Typography: Typography{HeadingFont: "Inter", BodyFont: "Inter"}})

	if got := strings.Count(out.FontsURL, "family=Inter"); got != 1 {
		t.Fatalf("shared family listed %d times, want 1 (%s)", got, out.FontsURL)
	}
}
