// internal/block/customtext.go
//
// Custom text.  No fetch.  Free text splits on blank-line boundaries
// into independent paragraphs; whitespace-only content renders nothing.
package block

import (
	"html/template"
	"regexp"
	"strings"
)

var blankLines = regexp.MustCompile(`\r?\n[ \t]*\r?\n+`)

var customTextTmpl = template.Must(template.New("custom_text").Parse(`<section class="block custom-text custom-text--{{.Align}}">
{{if .Title}}<h2 class="block-title">{{.Title}}</h2>{{end}}
{{range .Paragraphs}}<p>{{.}}</p>
{{end}}</section>
`))

type customTextData struct {
	Title      string
	Align      string
	Paragraphs []string
}

func (r *Renderer) renderCustomText(cfg Config) (template.HTML, error) {
	paragraphs := splitParagraphs(cfg.Str("content", ""))
	if len(paragraphs) == 0 {
		return "", nil
	}
	return exec(customTextTmpl, customTextData{
		Title:      cfg.Str("title", ""),
		Align:      alignment(cfg.Str("align", ""), "left"),
		Paragraphs: paragraphs,
	})
}

// splitParagraphs breaks text on blank lines, dropping empty pieces.
func splitParagraphs(text string) []string {
	var out []string
	for _, part := range blankLines.Split(text, -1) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
