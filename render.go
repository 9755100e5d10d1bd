package mdtype

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"pkt.systems/mdtype/internal/palette"
)

// RenderRequest configures Render.
type RenderRequest struct {
	Writer  io.Writer
	Text    RichText
	Width   int
	Theme   Theme
	Status  string
	Options []RenderOption
}

// Render writes a rich-text document as ANSI. Width > 0 word-wraps the
// output. A non-empty Status is written on its own line after the document.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	cfg := renderConfig{}
	for _, opt := range req.Options {
		if opt != nil {
			opt(&cfg)
		}
	}
	th := req.Theme
	if th == nil {
		th = DefaultTheme()
	}
	styles := th.Styles()
	out := wrapText(styledText(req.Text, styles), req.Width, cfg.softWrap)
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if req.Status != "" {
		out += styled(truncateWithEllipsis(req.Status, req.Width), styles.Status.Prefix) + "\n"
	}
	if _, err := io.WriteString(req.Writer, out); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	return nil
}

func styledText(text RichText, styles Styles) string {
	var b strings.Builder
	b.Grow(len(text) * 2)
	for _, run := range text.Runs() {
		b.WriteString(styled(run.Text, styles.Prefix(run.Attrs)))
	}
	return b.String()
}

func styled(text, prefix string) string {
	if prefix == "" || text == "" {
		return text
	}
	return prefix + text + palette.Reset
}

func wrapText(s string, width int, softWrap bool) string {
	if width <= 0 || s == "" {
		return s
	}
	s = wordwrap.String(s, width)
	if softWrap {
		s = wrap.String(s, width)
	}
	return s
}

func truncateWithEllipsis(text string, limit int) string {
	if limit <= 0 || ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit == 1 {
		return "…"
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}
