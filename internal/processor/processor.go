package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/speech-digest/internal/analysis"
	"github.com/nguyentantai21042004/speech-digest/internal/logger"
	"github.com/nguyentantai21042004/speech-digest/internal/metrics"
	"github.com/nguyentantai21042004/speech-digest/internal/report"
)

// Process orchestrates the pipeline for one file: read or recognize, translate,
// summarize, count words, write reports, archive the input.
func (p *implProcessor) Process(ctx context.Context, path string) error {
	ctx = logger.WithJobID(ctx, uuid.NewString())
	startTime := time.Now()

	kind := sourceKind(path)
	if kind == "" {
		p.metrics.RecordDocument("unknown", metrics.OutcomeSkipped)
		return fmt.Errorf("%w: %s", ErrUnsupported, path)
	}

	p.logger.Info(ctx, "Starting %s processing: %s", kind, path)

	original, err := p.readInput(ctx, path, kind)
	if err != nil {
		p.metrics.RecordDocument(kind, metrics.OutcomeFailed)
		return err
	}

	text := p.translate(ctx, original)

	sumStart := time.Now()
	selected := p.summarizer.Select(text, p.cfg.Summarizer.Sentences)
	p.metrics.RecordSummarize(time.Since(sumStart), len(selected))

	counts := analysis.WordCounts(p.tokenizer, text)

	var posCounts []analysis.WordCount
	if p.tagger != nil {
		posCounts = analysis.Top(analysis.POSCounts(p.tagger, text), 1)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	digest := report.Digest{
		Title:      name,
		CreatedAt:  time.Now(),
		Source:     kind,
		Original:   original,
		Translated: text,
		Summary:    strings.Join(selected, " "),
		Sentences:  len(selected),
		WordCounts: analysis.Top(counts, p.cfg.Summarizer.MinWordCount),
		POSCounts:  posCounts,
	}

	mdPath, err := p.writeReports(ctx, name, digest)
	if err != nil {
		p.metrics.RecordDocument(kind, metrics.OutcomeFailed)
		return fmt.Errorf("write reports: %w", err)
	}

	if err := p.moveToArchived(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to move input to archived folder: %v", err)
	}

	p.metrics.RecordDocument(kind, metrics.OutcomeSuccess)
	p.logger.Info(ctx, "Done in %s: %d sentence(s) -> %s", time.Since(startTime), len(selected), mdPath)
	return nil
}

// writeReports writes the markdown digest and, best effort, its docx twin.
func (p *implProcessor) writeReports(ctx context.Context, name string, d report.Digest) (string, error) {
	mdPath := filepath.Join(p.cfg.Paths.Output, name+".md")
	if err := report.WriteMarkdown(d, mdPath); err != nil {
		return "", err
	}

	docxPath := filepath.Join(p.cfg.Paths.Output, name+".docx")
	if err := report.WriteDocx(d, docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to write %s: %v", docxPath, err)
	}
	return mdPath, nil
}
