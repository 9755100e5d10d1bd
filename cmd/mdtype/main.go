package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/mdtype"
	"pkt.systems/mdtype/internal/terminal"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
)

func init() {
	version.SetDefaultModule("pkt.systems/mdtype")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	themeName  string
	widthFlag  int
	format     string
	trailing   string
	tracePath  string
	outPath    string
	boring     bool
	delay      time.Duration
	listThemes bool
	version    bool
}

func run(ctx context.Context, args []string, stdin *os.File, stdout, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet("mdtype", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.IntVarP(&opts.widthFlag, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&opts.format, "format", "f", string(mdtype.FormatText), "Keystroke script format: text|jsonl")
	flags.StringVar(&opts.trailing, "trailing", mdtype.TrailingPreserve.String(), "Text after a closing delimiter: preserve|drop")
	flags.StringVar(&opts.tracePath, "trace", "", "Write one JSON object per edit to this file")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&opts.boring, "boring", "b", false, "Generate non-ANSI output")
	flags.DurationVar(&opts.delay, "simulate-delay", 0, "Delay per replayed keystroke")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.BoolVar(&opts.version, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: mdtype [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nWith no inputs and a terminal on stdin, mdtype opens an interactive editor.")
		fmt.Fprintln(stderr, "Otherwise the inputs (or stdin) are replayed as keystrokes and the result is rendered.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	if opts.version {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if opts.listThemes {
		printThemes(stdout)
		return 0
	}

	policy, ok := mdtype.ParseTrailingPolicy(strings.ToLower(strings.TrimSpace(opts.trailing)))
	if !ok {
		fmt.Fprintf(stderr, "invalid --trailing %q: expected preserve|drop\n", opts.trailing)
		return 2
	}
	format, err := mdtype.ParseReplayFormat(opts.format)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --format: %v\n", err)
		return 2
	}
	theme, ok := mdtype.ThemeByName(opts.themeName)
	if !ok {
		fmt.Fprintf(stderr, "unknown theme %q\n\n", opts.themeName)
		printThemes(stderr)
		return 2
	}
	if opts.boring {
		theme = boringTheme()
	}

	session := mdtype.NewSession("", mdtype.WithTrailingPolicy(policy))

	inputs := flags.Args()
	if len(inputs) == 0 && isTerminal(stdin) {
		if err := runInteractive(session); err != nil {
			fmt.Fprintf(stderr, "interactive: %v\n", err)
			return 1
		}
	} else {
		if err := replayInputs(ctx, inputs, stdin, format, opts, session); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return 1
		}
	}

	writer, closeOut, err := resolveOutput(opts.outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "open output: %v\n", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}
	if err := mdtype.Render(mdtype.RenderRequest{
		Writer: writer,
		Text:   session.Text(),
		Width:  resolveWidth(opts.widthFlag),
		Theme:  theme,
		Status: session.Status(),
	}); err != nil {
		fmt.Fprintf(stderr, "render: %v\n", err)
		return 1
	}
	return 0
}

func replayInputs(ctx context.Context, inputs []string, stdin *os.File, format mdtype.ReplayFormat, opts options, session *mdtype.Session) error {
	var in io.Reader = strings.NewReader("")
	if stdin != nil {
		in = stdin
	}
	reader, closer, err := openInputs(inputs, in)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	var trace io.Writer
	if opts.tracePath != "" {
		w, c, err := resolveOutput(opts.tracePath, nil)
		if err != nil {
			return fmt.Errorf("open trace: %w", err)
		}
		defer func() { _ = c.Close() }()
		trace = w
	}
	return mdtype.Replay(ctx, mdtype.ReplayRequest{
		Reader:  reader,
		Format:  format,
		Session: session,
		Delay:   opts.delay,
		Trace:   trace,
	})
}

func runInteractive(session *mdtype.Session) error {
	screen, err := terminal.Open()
	if err != nil {
		return err
	}
	defer screen.Fini()
	return terminal.New(screen, session).Run()
}

func printThemes(w io.Writer) {
	names := mdtype.AvailableThemes()
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func boringTheme() mdtype.Theme {
	return mdtype.NewTheme("boring", mdtype.Styles{})
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string, stdin io.Reader) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	m := &multiInputReader{sources: sources}
	return m, m, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	clean := normalizePath(path)
	f, err := os.Open(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string, fallback io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return fallback, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
