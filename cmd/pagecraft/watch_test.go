package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func waitForPage(t *testing.T, path, want string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if page, err := os.ReadFile(path); err == nil && strings.Contains(string(page), want) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("%s never contained %q", path, want)
}

func TestWatchRebuildsOnChange(t *testing.T) {
	src := writeSite(t)
	opts := &exportOptions{outDir: t.TempDir()}
	page := filepath.Join(opts.outDir, "acme-bakery", "index.html")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watchFile(ctx, src, opts, 20*time.Millisecond) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	waitForPage(t, page, "Acme Loaves")

	// Give the watcher time to register before editing.
	time.Sleep(100 * time.Millisecond)
	updated := strings.Replace(siteYAML, "Acme Loaves", "Fresh Crumbs", 1)
	if err := os.WriteFile(src, []byte(updated), 0o644); err != nil {
		t.Fatalf("rewrite project file: %v", err)
	}
	waitForPage(t, page, "Fresh Crumbs")
}

func TestWatchInitialExportError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	err := watchFile(context.Background(), missing, &exportOptions{outDir: t.TempDir()}, time.Millisecond)
	if err == nil {
		t.Fatalf("expected initial export error")
	}
}
