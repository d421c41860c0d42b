package export

import (
	"fmt"
	"os"
	"path/filepath"
)

const IndexFile = "index.html"

// WriteSite writes html as dir/index.html. The file is replaced atomically, so a reader
// never sees a half-written page.
func WriteSite(dir, html string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".index-*.html")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(html); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write page: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close page: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return "", fmt.Errorf("chmod page: %w", err)
	}
	target := filepath.Join(dir, IndexFile)
	if err := os.Rename(tmpName, target); err != nil {
		return "", fmt.Errorf("replace %s: %w", target, err)
	}
	return target, nil
}
