package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"pkt.systems/mdtype"
)

const (
	tabWidth   = 4
	textOffset = 2
)

// Host forwards screen events to a session and draws its document.
type Host struct {
	screen  tcell.Screen
	session *mdtype.Session
}

// New returns a Host drawing session on screen. The screen must be
// initialized by the caller.
func New(screen tcell.Screen, session *mdtype.Session) *Host {
	return &Host{screen: screen, session: session}
}

// Open creates and initializes the terminal screen.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal: init: %w", err)
	}
	screen.EnablePaste()
	return screen, nil
}

// Run draws the session and handles events until the user quits.
func (h *Host) Run() error {
	h.Draw()
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return nil
		}
		quit, err := h.HandleEvent(ev)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		h.Draw()
	}
}

// HandleEvent applies one screen event and reports whether the user asked
// to quit.
func (h *Host) HandleEvent(ev tcell.Event) (bool, error) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
	case *tcell.EventKey:
		return h.handleKey(e)
	}
	return false, nil
}

func (h *Host) handleKey(ev *tcell.EventKey) (bool, error) {
	s := h.session
	var err error
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return true, nil
	case tcell.KeyRune:
		err = s.Type(string(ev.Rune()))
	case tcell.KeyEnter:
		err = s.Type("\n")
	case tcell.KeyTab:
		err = s.Type("\t")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		err = s.Backspace()
	case tcell.KeyDelete:
		err = s.Delete()
	case tcell.KeyLeft:
		s.MoveTo(s.Cursor() - 1)
	case tcell.KeyRight:
		s.MoveTo(s.Cursor() + 1)
	case tcell.KeyHome, tcell.KeyCtrlA:
		s.MoveTo(0)
	case tcell.KeyEnd, tcell.KeyCtrlE:
		s.MoveTo(s.Len())
	}
	if err != nil {
		return false, fmt.Errorf("terminal: key %s: %w", ev.Name(), err)
	}
	return false, nil
}

// Draw renders the status row and the document.
func (h *Host) Draw() {
	h.screen.Clear()
	width, height := h.screen.Size()
	h.drawStatus(width)

	cursor := h.session.Cursor()
	x, y := 0, textOffset
	cx, cy := x, y
	for i, c := range h.session.Text() {
		if i == cursor {
			cx, cy = x, y
		}
		switch c.Rune {
		case '\n':
			x, y = 0, y+1
			continue
		case '\t':
			x += tabWidth - x%tabWidth
			continue
		}
		w := uniseg.StringWidth(string(c.Rune))
		if w <= 0 {
			continue
		}
		if x+w > width {
			x, y = 0, y+1
			if i == cursor {
				cx, cy = x, y
			}
		}
		if y < height {
			h.screen.SetContent(x, y, c.Rune, nil, cellStyle(c.Attrs))
		}
		x += w
	}
	if cursor >= h.session.Len() {
		cx, cy = x, y
	}
	h.screen.ShowCursor(cx, cy)
	h.screen.Show()
}

func (h *Host) drawStatus(width int) {
	status := h.session.Status()
	style := tcell.StyleDefault.Dim(true)
	x := 0
	for _, r := range status {
		w := uniseg.StringWidth(string(r))
		if x+w > width {
			break
		}
		h.screen.SetContent(x, 0, r, nil, style)
		x += w
	}
}

func cellStyle(attrs mdtype.Attributes) tcell.Style {
	style := tcell.StyleDefault
	if attrs.Weight == mdtype.WeightBold {
		style = style.Bold(true)
	}
	if attrs.Slant == mdtype.SlantItalic {
		style = style.Italic(true)
	}
	if attrs.Strikethrough {
		style = style.StrikeThrough(true)
	}
	return style
}
