package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"pkt.systems/mdtype"
)

func newTestHost(t *testing.T, text string) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(20, 6)
	return New(screen, mdtype.NewSession(text)), screen
}

func typeKeys(t *testing.T, h *Host, text string) {
	t.Helper()
	for _, r := range text {
		quit, err := h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
		if err != nil {
			t.Fatalf("key %q: %v", r, err)
		}
		if quit {
			t.Fatalf("key %q quit the host", r)
		}
	}
	h.Draw()
}

func rowText(screen tcell.SimulationScreen, y, width int) string {
	var out []rune
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		out = append(out, r)
	}
	return string(out)
}

func TestHostDrawsRestyledSpan(t *testing.T) {
	h, screen := newTestHost(t, "")
	typeKeys(t, h, "a *bc*")
	if got := rowText(screen, textOffset, 4); got != "a bc" {
		t.Fatalf("unexpected text row %q", got)
	}
	for x, wantBold := range []bool{false, false, true, true} {
		_, _, style, _ := screen.GetContent(x, textOffset)
		_, _, attrs := style.Decompose()
		if (attrs&tcell.AttrBold != 0) != wantBold {
			t.Fatalf("column %d: bold=%v want %v", x, attrs&tcell.AttrBold != 0, wantBold)
		}
	}
	if got := rowText(screen, 0, 1); got != " " {
		t.Fatalf("expected empty status row, got %q", got)
	}
	x, y, visible := screen.GetCursor()
	if !visible || x != 4 || y != textOffset {
		t.Fatalf("unexpected cursor %d,%d visible=%v", x, y, visible)
	}
}

func TestHostShowsPendingStatus(t *testing.T) {
	h, screen := newTestHost(t, "")
	typeKeys(t, h, "_x")
	if got := rowText(screen, 0, 17); got != "Italics starting " {
		t.Fatalf("unexpected status row %q", got)
	}
	quit, err := h.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if err != nil || quit {
		t.Fatalf("left: %v %v", quit, err)
	}
	if _, err := h.HandleEvent(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone)); err != nil {
		t.Fatalf("backspace: %v", err)
	}
	h.Draw()
	if got := rowText(screen, 0, 1); got != " " {
		t.Fatalf("deleting the delimiter must clear the status, got %q", got)
	}
	if got := rowText(screen, textOffset, 1); got != "x" {
		t.Fatalf("unexpected text row %q", got)
	}
}

func TestHostStyleAttributes(t *testing.T) {
	h, screen := newTestHost(t, "")
	typeKeys(t, h, "_i_ ~s~")
	checks := map[int]tcell.AttrMask{0: tcell.AttrItalic, 2: tcell.AttrStrikeThrough}
	for x, want := range checks {
		_, _, style, _ := screen.GetContent(x, textOffset)
		_, _, attrs := style.Decompose()
		if attrs&want == 0 {
			t.Fatalf("column %d: missing attribute %v", x, want)
		}
	}
}

func TestHostWrapsAndBreaksLines(t *testing.T) {
	h, screen := newTestHost(t, "")
	if _, err := h.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, '\r', tcell.ModNone)); err != nil {
		t.Fatalf("enter: %v", err)
	}
	typeKeys(t, h, "abcdefghijklmnopqrstuv")
	if got := rowText(screen, textOffset+1, 20); got != "abcdefghijklmnopqrst" {
		t.Fatalf("unexpected first row %q", got)
	}
	if got := rowText(screen, textOffset+2, 2); got != "uv" {
		t.Fatalf("unexpected wrapped row %q", got)
	}
}

func TestHostQuitKeys(t *testing.T) {
	h, _ := newTestHost(t, "")
	for _, key := range []tcell.Key{tcell.KeyEscape, tcell.KeyCtrlC} {
		quit, err := h.HandleEvent(tcell.NewEventKey(key, 0, tcell.ModNone))
		if err != nil || !quit {
			t.Fatalf("key %v: quit=%v err=%v", key, quit, err)
		}
	}
}
