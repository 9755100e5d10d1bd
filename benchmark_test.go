package mdtype

import (
	"bytes"
	"strings"
	"testing"
)

func BenchmarkSessionTypeStyled(b *testing.B) {
	line := strings.Repeat("plain *bold* _it_ ~gone~ ", 8)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := NewSession("")
		if err := s.Type(line); err != nil {
			b.Fatalf("type: %v", err)
		}
	}
}

func BenchmarkRenderStyled(b *testing.B) {
	s := NewSession("")
	if err := s.Type(strings.Repeat("plain *bold* _it_ ~gone~ ", 32)); err != nil {
		b.Fatalf("type: %v", err)
	}
	text := s.Text()
	var out bytes.Buffer
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		out.Reset()
		_ = Render(RenderRequest{Writer: &out, Text: text, Width: 80, Theme: DefaultTheme()})
	}
}
