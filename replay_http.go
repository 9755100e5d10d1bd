package mdtype

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPReplayRequest configures HTTPReplay.
type HTTPReplayRequest struct {
	URL     string
	Client  *http.Client
	Format  ReplayFormat
	Session *Session
	Delay   time.Duration
	Trace   io.Writer
}

// HTTPReplay fetches a keystroke script over HTTP(S) and replays it.
func HTTPReplay(ctx context.Context, req HTTPReplayRequest) error {
	if req.URL == "" {
		return fmt.Errorf("replay http: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return fmt.Errorf("replay http: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return fmt.Errorf("replay http: unsupported scheme %q", httpReq.URL.Scheme)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("replay http: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("replay http: status %s", resp.Status)
	}
	return Replay(ctx, ReplayRequest{
		Reader:  resp.Body,
		Format:  req.Format,
		Session: req.Session,
		Delay:   req.Delay,
		Trace:   req.Trace,
	})
}
