package mdtype

import (
	"strings"
	"testing"
)

func TestThemeByNameBuiltins(t *testing.T) {
	expected := []string{"default", "gruvbox", "dracula", "nord", "tokyo-night", "solarized-light"}
	for _, name := range expected {
		if _, ok := ThemeByName(name); !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
	}
	if th, ok := ThemeByName("  Nord "); !ok || th.Name() != "nord" {
		t.Fatalf("expected normalized lookup, got %v %v", th, ok)
	}
	if th, ok := ThemeByName(""); !ok || th.Name() != "default" {
		t.Fatalf("empty name must resolve to default")
	}
	if _, ok := ThemeByName("nope"); ok {
		t.Fatalf("unexpected theme")
	}

	available := AvailableThemes()
	present := make(map[string]struct{}, len(available))
	for _, name := range available {
		present[name] = struct{}{}
	}
	for _, name := range expected {
		if _, ok := present[name]; !ok {
			t.Fatalf("expected theme %q in available list", name)
		}
	}
}

func TestStylesPrefixCombinesAttributes(t *testing.T) {
	styles := DefaultTheme().Styles()
	if styles.Prefix(Plain()) != styles.Text.Prefix {
		t.Fatalf("plain attributes must use the text style")
	}
	all := Attributes{Weight: WeightBold, Slant: SlantItalic, Strikethrough: true}
	got := styles.Prefix(all)
	for _, want := range []string{styles.Bold.Prefix, styles.Italic.Prefix, styles.Strikethrough.Prefix} {
		if !strings.Contains(got, want) {
			t.Fatalf("prefix %q missing %q", got, want)
		}
	}
}
