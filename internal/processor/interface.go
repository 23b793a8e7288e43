package processor

import (
	"context"
	"errors"
)

// ErrUnsupported is returned for files whose extension the pipeline does not handle.
var ErrUnsupported = errors.New("unsupported input file")

// Processor defines the interface for document processing operations
type Processor interface {
	// Process runs one text or audio file through the pipeline.
	Process(ctx context.Context, path string) error
	// ProcessAll processes every supported file in dir.
	ProcessAll(ctx context.Context, dir string) (BatchResult, error)
}

// BatchResult counts the outcomes of ProcessAll.
type BatchResult struct {
	Succeeded int
	Failed    int
}
