package summarizer

// Summarizer produces extractive summaries by word-frequency sentence scoring.
type Summarizer interface {
	// Summarize returns the sentenceCount best-scoring sentences joined by a
	// single space. It never fails: empty input or a non-positive count yields "".
	Summarize(text string, sentenceCount int) string

	// Select returns the sentences Summarize would join, in output order.
	Select(text string, sentenceCount int) []string

	// Analyze exposes the intermediate tables for reporting.
	Analyze(text string) Result
}
