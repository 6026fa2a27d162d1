package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// buildSite writes one HTML file per theme variant plus the embedded
// static assets into outDir. The toggle on each page links to the other
// file, so the output works from any static host.
func buildSite(outDir string, content *Content, renderer *Renderer, log *Logger) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", outDir, err)
	}

	for _, theme := range []Theme{Dark, Light} {
		var buf bytes.Buffer
		if err := renderer.Page(&buf, Compose(content, theme, staticLinks{})); err != nil {
			return fmt.Errorf("render %s page: %w", theme, err)
		}
		path := filepath.Join(outDir, pageFile(theme))
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		log.With(map[string]any{"file": path, "theme": theme.String()}).Info("page written")
	}

	if err := copyAssets(staticFS, "static", filepath.Join(outDir, "static")); err != nil {
		return fmt.Errorf("copy static assets: %w", err)
	}
	return nil
}

func copyAssets(src fs.FS, root, dest string) error {
	return fs.WalkDir(src, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}
