package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ProcessAll processes every supported file in dir, at most
// performance.max_concurrent at a time. A failing file is logged and counted;
// it does not stop the batch.
func (p *implProcessor) ProcessAll(ctx context.Context, dir string) (BatchResult, error) {
	files, err := discoverInputs(dir)
	if err != nil {
		return BatchResult{}, fmt.Errorf("discover inputs: %w", err)
	}
	if len(files) == 0 {
		p.logger.Info(ctx, "No input files found in %s", dir)
		return BatchResult{}, nil
	}

	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return BatchResult{}, fmt.Errorf("create output dir: %w", err)
	}

	p.logger.Info(ctx, "Found %d files to process", len(files))

	var succeeded, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Performance.MaxConcurrent)

	for i, path := range files {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			p.logger.Info(gctx, "[%d/%d] %s", i+1, len(files), filepath.Base(path))
			if err := p.Process(gctx, path); err != nil {
				p.logger.Error(gctx, "Failed to process %s: %v", path, err)
				failed.Add(1)
				return nil
			}
			succeeded.Add(1)
			return nil
		})
	}

	err = g.Wait()
	res := BatchResult{Succeeded: int(succeeded.Load()), Failed: int(failed.Load())}
	p.logger.Info(ctx, "Batch complete: %d success, %d failed", res.Succeeded, res.Failed)
	return res, err
}

func discoverInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if IsSupported(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
