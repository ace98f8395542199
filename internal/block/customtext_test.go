// internal/block/customtext_test.go

package block

import (
	"strings"
	"testing"
	"time"
)

func TestSplitParagraphs(t *testing.T) {
	got := splitParagraphs("First paragraph.\n\nSecond one\nstill second.\r\n\r\nThird.")
	want := []string{"First paragraph.", "Second one\nstill second.", "Third."}
	if len(got) != len(want) {
		t.Fatalf("got %d paragraphs: %q", len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("paragraph %d = %q, want %q", i, got[i], want[i])
		}
	}

	if got := splitParagraphs("   \n\n\t\n"); got != nil {
		t.Fatalf("whitespace-only input produced %q", got)
	}
}

func TestRenderCustomText(t *testing.T) {
	r := &Renderer{now: time.Now}

	html, err := r.renderCustomText(Config{
		"title":   "About us",
		"content": "We ship fast.\n\nWe ship everywhere.",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := string(html)
	if !strings.Contains(out, "<p>We ship fast.</p>") || !strings.Contains(out, "<p>We ship everywhere.</p>") {
		t.Fatalf("paragraphs missing:\n%s", out)
	}
	if !strings.Contains(out, "custom-text--left") {
		t.Fatalf("default alignment should be left:\n%s", out)
	}

	// Whitespace-only content renders nothing, title or not.
	if html, _ := r.renderCustomText(Config{"title": "Empty", "content": "  \n  "}); html != "" {
		t.Fatalf("whitespace-only content rendered:\n%s", html)
	}

	// Markup in tenant text is escaped, not executed.
	html, _ = r.renderCustomText(Config{"content": "<script>alert(1)</script>"})
	if strings.Contains(string(html), "<script>") {
		t.Fatalf("unescaped markup in output:\n%s", html)
	}
}
