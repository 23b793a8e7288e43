package processor

import (
	"github.com/nguyentantai21042004/speech-digest/internal/config"
	"github.com/nguyentantai21042004/speech-digest/internal/logger"
	"github.com/nguyentantai21042004/speech-digest/internal/metrics"
	"github.com/nguyentantai21042004/speech-digest/internal/recognizer"
	"github.com/nguyentantai21042004/speech-digest/internal/summarizer"
	"github.com/nguyentantai21042004/speech-digest/internal/tokenizer"
	"github.com/nguyentantai21042004/speech-digest/internal/translator"
)

// Dependencies are the collaborators a Processor drives.
type Dependencies struct {
	Summarizer summarizer.Summarizer
	Tokenizer  tokenizer.Tokenizer
	Tagger     tokenizer.Tagger
	Recognizer recognizer.Recognizer
	Translator translator.Translator
	Metrics    metrics.Recorder
	Logger     logger.Logger
}

type implProcessor struct {
	cfg        *config.Config
	summarizer summarizer.Summarizer
	tokenizer  tokenizer.Tokenizer
	tagger     tokenizer.Tagger
	recognizer recognizer.Recognizer
	translator translator.Translator
	metrics    metrics.Recorder
	logger     logger.Logger
}

// New creates a new Processor instance. Nil Translator and Metrics fall back
// to no-op implementations; without a Tagger reports carry no part-of-speech
// counts.
func New(cfg *config.Config, deps Dependencies) Processor {
	p := &implProcessor{
		cfg:        cfg,
		summarizer: deps.Summarizer,
		tokenizer:  deps.Tokenizer,
		tagger:     deps.Tagger,
		recognizer: deps.Recognizer,
		translator: deps.Translator,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
	}
	if p.translator == nil {
		p.translator = translator.Noop()
	}
	if p.metrics == nil {
		p.metrics = metrics.Noop()
	}
	if p.logger == nil {
		p.logger = logger.Nop()
	}
	return p
}
