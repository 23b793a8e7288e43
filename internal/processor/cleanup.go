package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// moveToArchived moves a processed input out of the watched folder
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}
	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))

	p.logger.Debug(ctx, "Archiving: %s -> %s", path, destPath)

	if err := os.Rename(path, destPath); err != nil {
		// cross-device rename; fall back to copy + remove
		if err := copyFile(path, destPath); err != nil {
			return fmt.Errorf("move to archived: %w", err)
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove original: %w", err)
		}
	}
	return nil
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}
