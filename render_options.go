package mdtype

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	softWrap bool
}

// WithSoftWrap enables hard breaking of words longer than the width.
func WithSoftWrap(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.softWrap = enabled
	}
}
