package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/mdtype"
)

func main() {
	root := "testdata"
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := scriptFormat(path); ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no keystroke scripts found under %s", root)
	}
	for _, path := range paths {
		format, _ := scriptFormat(path)
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		session := mdtype.NewSession("")
		if err := mdtype.Replay(context.Background(), mdtype.ReplayRequest{
			Reader:  bytes.NewReader(src),
			Format:  format,
			Session: session,
		}); err != nil {
			fatalf("replay %s: %v", path, err)
		}
		var out bytes.Buffer
		if err := mdtype.Render(mdtype.RenderRequest{
			Writer: &out,
			Text:   session.Text(),
			Theme:  mdtype.DefaultTheme(),
			Status: session.Status(),
		}); err != nil {
			fatalf("render %s: %v", path, err)
		}
		goldenPath := goldenPath(path)
		if err := os.WriteFile(goldenPath, out.Bytes(), 0o644); err != nil {
			fatalf("write %s: %v", goldenPath, err)
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", goldenPath)
	}
}

func scriptFormat(path string) (mdtype.ReplayFormat, bool) {
	switch filepath.Ext(path) {
	case ".keys":
		return mdtype.FormatText, true
	case ".jsonl":
		return mdtype.FormatJSONL, true
	}
	return "", false
}

func goldenPath(scriptPath string) string {
	return strings.TrimSuffix(scriptPath, filepath.Ext(scriptPath)) + ".golden"
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
