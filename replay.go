package mdtype

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ReplayFormat names a keystroke script format.
type ReplayFormat string

const (
	// FormatText types every character of the input at the cursor. Backspace
	// (0x08) and DEL (0x7F) delete the character before the cursor.
	FormatText ReplayFormat = "text"
	// FormatJSONL reads one edit event per line.
	FormatJSONL ReplayFormat = "jsonl"
)

// ParseReplayFormat parses a format name.
func ParseReplayFormat(name string) (ReplayFormat, error) {
	switch ReplayFormat(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSONL:
		return FormatJSONL, nil
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}

// ReplayRequest configures Replay.
type ReplayRequest struct {
	Reader  io.Reader
	Format  ReplayFormat
	Session *Session
	// Delay is slept between events.
	Delay time.Duration
	// Trace receives one JSON object per handled edit when non-nil.
	Trace io.Writer
}

// Replay drives Session with the keystroke script read from Reader.
func Replay(ctx context.Context, req ReplayRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("replay: Reader is nil")
	}
	if req.Session == nil {
		return fmt.Errorf("replay: Session is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	var traceErr error
	if req.Trace != nil {
		cfg := &req.Session.editor.cfg
		prev := cfg.observer
		cfg.observer = func(ev EditEvent) {
			if prev != nil {
				prev(ev)
			}
			if traceErr != nil {
				return
			}
			if err := writeTrace(req.Trace, ev); err != nil {
				traceErr = fmt.Errorf("replay: trace: %w", err)
			}
		}
		defer func() { cfg.observer = prev }()
	}
	var err error
	switch req.Format {
	case "", FormatText:
		err = replayText(ctx, req)
	case FormatJSONL:
		err = replayJSONL(ctx, req)
	default:
		err = fmt.Errorf("replay: %q: %w", req.Format, ErrUnknownFormat)
	}
	if err != nil {
		return err
	}
	return traceErr
}

func replayText(ctx context.Context, req ReplayRequest) error {
	reader := bufio.NewReader(req.Reader)
	s := req.Session
	for {
		r, size, err := reader.ReadRune()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("replay: read: %w", err)
		}
		if r == utf8.RuneError && size == 1 {
			continue
		}
		if err := wait(ctx, req.Delay); err != nil {
			return err
		}
		switch {
		case r == '\b' || r == 0x7F:
			err = s.Backspace()
		case isControlRune(r):
			continue
		default:
			err = s.Type(string(r))
		}
		if err != nil {
			return fmt.Errorf("replay: offset %d: %w", s.Cursor(), err)
		}
	}
}

func replayJSONL(ctx context.Context, req ReplayRequest) error {
	scanner := bufio.NewScanner(req.Reader)
	s := req.Session
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		if !gjson.Valid(raw) {
			return fmt.Errorf("replay: line %d: invalid json", line)
		}
		if err := wait(ctx, req.Delay); err != nil {
			return err
		}
		if err := replayEvent(s, gjson.Parse(raw)); err != nil {
			return fmt.Errorf("replay: line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("replay: read: %w", err)
	}
	return nil
}

func replayEvent(s *Session, ev gjson.Result) error {
	switch op := ev.Get("op").String(); op {
	case "type":
		return s.Type(ev.Get("text").String())
	case "backspace":
		return s.Backspace()
	case "delete":
		return s.Delete()
	case "move":
		to := ev.Get("to")
		if !to.Exists() {
			return fmt.Errorf("move: missing \"to\"")
		}
		s.MoveTo(int(to.Int()))
		return nil
	case "edit":
		r := Range{Location: int(ev.Get("loc").Int()), Length: int(ev.Get("len").Int())}
		_, err := s.Edit(r, ev.Get("text").String())
		return err
	default:
		return fmt.Errorf("unknown op %q", op)
	}
}

func wait(ctx context.Context, delay time.Duration) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("replay: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

func writeTrace(w io.Writer, ev EditEvent) error {
	line := []byte(`{}`)
	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		line, err = sjson.SetBytes(line, path, value)
	}
	set("loc", ev.Range.Location)
	set("len", ev.Range.Length)
	set("text", ev.Text)
	set("allowed", ev.Allowed)
	set("state", ev.State.String())
	if ev.Applied != nil {
		set("apply.kind", ev.Applied.Kind.String())
		set("apply.start", ev.Applied.Start)
		set("apply.end", ev.Applied.End)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(append(line, '\n'))
	return err
}
