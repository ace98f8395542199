// internal/theme/compile.go
//
// Style compiler: Theme → stylesheet text + web-font URL.
//
// Context
// -------
// Compile is a pure function with no I/O.  Identical Theme input must
// yield byte-identical output (the snapshot tests depend on that), so
// variables are emitted in one fixed order and map iteration never
// touches the output.  Tenant custom CSS is concatenated verbatim after
// the generated rules: last write wins, so tenant overrides always beat
// the generated variables, including variables added in future versions.
// Sanitization of custom CSS is an upstream concern; this component
// renders what it is given.
package theme

import (
	"net/url"
	"strings"
)

// Default palette and font stacks, used field-by-field when the tenant
// leaves a slot empty.
const (
	defaultPrimary    = "#4f46e5"
	defaultSecondary  = "#0ea5e9"
	defaultBackground = "#ffffff"
	defaultText       = "#111827"
	defaultAccent     = "#f59e0b"

	systemFontStack = `-apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif`
)

// Stylesheet is the compiled render-time styling for one theme.
type Stylesheet struct {
	CSSText  string // custom-property declarations + base rules + custom CSS
	FontsURL string // Google Fonts href, or "" when no web font is configured
}

// Compile turns a Theme into its render-time stylesheet.  Deterministic:
// same Theme in, same Stylesheet out.
func Compile(t *Theme) Stylesheet {
	var sb strings.Builder

	sb.WriteString(":root{\n")
	writeVar(&sb, "--color-primary", pick(t.Colors.Primary, defaultPrimary))
	writeVar(&sb, "--color-secondary", pick(t.Colors.Secondary, defaultSecondary))
	writeVar(&sb, "--color-background", pick(t.Colors.Background, defaultBackground))
	writeVar(&sb, "--color-text", pick(t.Colors.Text, defaultText))
	writeVar(&sb, "--color-accent", pick(t.Colors.Accent, defaultAccent))
	writeVar(&sb, "--font-heading", fontStack(t.Typography.HeadingFont))
	writeVar(&sb, "--font-body", fontStack(t.Typography.BodyFont))
	sb.WriteString("}\n")

	sb.WriteString("body{margin:0;background:var(--color-background);" +
		"color:var(--color-text);font-family:var(--font-body);}\n")
	sb.WriteString("h1,h2,h3,h4,h5,h6{font-family:var(--font-heading);}\n")
	sb.WriteString("a{color:var(--color-primary);}\n")

	if css := strings.TrimSpace(t.CustomCSS); css != "" {
		// Verbatim, last, so the tenant always wins the cascade.
		sb.WriteString(css)
		sb.WriteString("\n")
	}

	return Stylesheet{
		CSSText:  sb.String(),
		FontsURL: fontsURL(t.Typography),
	}
}

func writeVar(sb *strings.Builder, name, value string) {
	sb.WriteString(name)
	sb.WriteString(":")
	sb.WriteString(value)
	sb.WriteString(";\n")
}

func pick(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}

// fontStack quotes a configured family in front of the system stack.
func fontStack(family string) string {
	family = strings.TrimSpace(family)
	if family == "" {
		return systemFontStack
	}
	return `"` + family + `", ` + systemFontStack
}

// fontsURL builds one css2 href covering both configured families.
// Heading comes first, the body family is skipped when identical.  No
// configured family means no URL.
func fontsURL(ty Typography) string {
	var families []string
	heading := strings.TrimSpace(ty.HeadingFont)
	body := strings.TrimSpace(ty.BodyFont)

	if heading != "" {
		families = append(families, heading)
	}
	if body != "" && body != heading {
		families = append(families, body)
	}
	if len(families) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("https://fonts.googleapis.com/css2")
	for i, f := range families {
		if i == 0 {
			sb.WriteString("?")
		} else {
			sb.WriteString("&")
		}
		sb.WriteString("family=")
		sb.WriteString(url.QueryEscape(f)) // spaces become '+'
		sb.WriteString(":wght@400;500;600;700")
	}
	sb.WriteString("&display=swap")
	return sb.String()
}
