package mdtype

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tidwall/gjson"
)

func TestReplayTextTypesAndBackspaces(t *testing.T) {
	s := NewSession("")
	err := Replay(context.Background(), ReplayRequest{
		Reader:  strings.NewReader("go ~no\b\bstop~\r\n"),
		Session: s,
	})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if got := attributedString(t, s.Text()); got != "go [S:stop]\n" {
		t.Fatalf("got %q", got)
	}
}

func TestReplayJSONLEvents(t *testing.T) {
	script := strings.Join([]string{
		`{"op":"type","text":"keep _thiss"}`,
		``,
		`# comment`,
		`{"op":"move","to":10}`,
		`{"op":"delete"}`,
		`{"op":"edit","loc":10,"len":0,"text":"_"}`,
	}, "\n")
	s := NewSession("")
	if err := Replay(context.Background(), ReplayRequest{
		Reader:  strings.NewReader(script),
		Format:  FormatJSONL,
		Session: s,
	}); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if got := attributedString(t, s.Text()); got != "keep [I:this]" {
		t.Fatalf("got %q", got)
	}
}

func TestReplayTraceRecordsEdits(t *testing.T) {
	var trace bytes.Buffer
	var seen int
	s := NewSession("", WithEditObserver(func(EditEvent) { seen++ }))
	err := Replay(context.Background(), ReplayRequest{
		Reader:  strings.NewReader("*ab*"),
		Session: s,
		Trace:   &trace,
	})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(trace.String()), "\n")
	if len(lines) != 4 || seen != 4 {
		t.Fatalf("expected 4 trace lines and observer calls, got %d and %d", len(lines), seen)
	}
	first := gjson.Parse(lines[0])
	if first.Get("state").String() != "Bold starting 0" || !first.Get("allowed").Bool() {
		t.Fatalf("unexpected first event %s", lines[0])
	}
	last := gjson.Parse(lines[3])
	if last.Get("allowed").Bool() {
		t.Fatalf("closing event must be suppressed: %s", lines[3])
	}
	if last.Get("apply.kind").String() != "Bold" || last.Get("apply.start").Int() != 0 || last.Get("apply.end").Int() != 3 {
		t.Fatalf("unexpected apply in %s", lines[3])
	}
	if last.Get("text").String() != "*" || last.Get("loc").Int() != 3 {
		t.Fatalf("unexpected edit in %s", lines[3])
	}

	if err := s.Type("x"); err != nil {
		t.Fatalf("type: %v", err)
	}
	if seen != 5 || len(strings.Split(strings.TrimSpace(trace.String()), "\n")) != 4 {
		t.Fatalf("trace observer must be removed after replay")
	}
}

func TestReplayJSONLErrorsNameLine(t *testing.T) {
	cases := []struct {
		script string
		want   string
	}{
		{script: "{\"op\":\"type\",\"text\":\"a\"}\n{\"op\":\"jump\"}", want: "line 2: unknown op"},
		{script: "not json", want: "line 1: invalid json"},
		{script: `{"op":"move"}`, want: `line 1: move: missing "to"`},
		{script: `{"op":"edit","loc":4,"text":"x"}`, want: "line 1: edit 4+0"},
		{script: `{"op":"type","text":"\u001b"}`, want: "control character"},
	}
	for _, tc := range cases {
		err := Replay(context.Background(), ReplayRequest{
			Reader:  strings.NewReader(tc.script),
			Format:  FormatJSONL,
			Session: NewSession(""),
		})
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%q: expected error containing %q, got %v", tc.script, tc.want, err)
		}
	}
}

func TestReplayHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Replay(ctx, ReplayRequest{
		Reader:  strings.NewReader("abc"),
		Session: NewSession(""),
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err = Replay(ctx, ReplayRequest{
		Reader:  strings.NewReader("abc"),
		Session: NewSession(""),
		Delay:   time.Second,
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
}

func TestReplayRequestValidation(t *testing.T) {
	if err := Replay(context.Background(), ReplayRequest{Session: NewSession("")}); err == nil {
		t.Fatalf("expected error for nil reader")
	}
	if err := Replay(context.Background(), ReplayRequest{Reader: strings.NewReader("")}); err == nil {
		t.Fatalf("expected error for nil session")
	}
	err := Replay(context.Background(), ReplayRequest{
		Reader:  strings.NewReader(""),
		Session: NewSession(""),
		Format:  "yaml",
	})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestParseReplayFormat(t *testing.T) {
	for input, want := range map[string]ReplayFormat{"": FormatText, "TEXT": FormatText, " jsonl ": FormatJSONL} {
		got, err := ParseReplayFormat(input)
		if err != nil || got != want {
			t.Fatalf("ParseReplayFormat(%q) = %q, %v", input, got, err)
		}
	}
	if _, err := ParseReplayFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}
