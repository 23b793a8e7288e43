package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nguyentantai21042004/speech-digest/internal/analysis"
)

// Digest is everything produced for one input document.
type Digest struct {
	Title      string
	CreatedAt  time.Time
	Source     string
	Original   string
	Translated string
	Summary    string
	Sentences  int
	WordCounts []analysis.WordCount
	POSCounts  []analysis.WordCount
}

// Markdown renders d as a markdown document.
func Markdown(d Digest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", d.Title)
	fmt.Fprintf(&b, "_%s, %s input_\n\n", d.CreatedAt.Format("2006-01-02 15:04"), d.Source)

	b.WriteString("## Summary\n\n")
	if d.Summary == "" {
		b.WriteString("_No summary could be produced._\n\n")
	} else {
		fmt.Fprintf(&b, "%s\n\n", d.Summary)
	}

	b.WriteString("## Text\n\n")
	fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(d.Translated))

	if strings.TrimSpace(d.Original) != strings.TrimSpace(d.Translated) {
		b.WriteString("## Before translation\n\n")
		fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(d.Original))
	}

	if len(d.WordCounts) > 0 {
		b.WriteString("## Word frequency\n\n")
		for _, wc := range d.WordCounts {
			fmt.Fprintf(&b, "- **%s**: %d\n", wc.Word, wc.Count)
		}
		b.WriteString("\n")
	}

	if len(d.POSCounts) > 0 {
		b.WriteString("## Parts of speech\n\n")
		for _, pc := range d.POSCounts {
			fmt.Fprintf(&b, "- **%s**: %d\n", pc.Word, pc.Count)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// WriteMarkdown writes Markdown(d) to path.
func WriteMarkdown(d Digest, path string) error {
	if err := os.WriteFile(path, []byte(Markdown(d)), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// WriteDocx writes d as a styled Word document.
func WriteDocx(d Digest, path string) error {
	if err := markdownToDocx(Markdown(d), path); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}
