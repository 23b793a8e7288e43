package cli

import (
	"fmt"

	"github.com/nguyentantai21042004/speech-digest/internal/app"
	"github.com/spf13/cobra"
)

type summarizeOptions struct {
	sentences int
	order     string
	language  string
	stopwords string
	scores    bool
}

func newSummarizeCmd() *cobra.Command {
	opts := &summarizeOptions{}

	cmd := &cobra.Command{
		Use:   "summarize [file]",
		Short: "Print the highest scoring sentences of a document",
		Long: `Score every sentence by the frequency of its non-stopword words and print
the top ones joined by a space. Reads stdin when no file is given.

Examples:
  digest summarize article.txt
  digest summarize -n 3 --order position article.txt
  cat article.txt | digest summarize --scores`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummarize(cmd, args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.sentences, "sentences", "n", 1, "Number of sentences in the summary")
	cmd.Flags().StringVar(&opts.order, "order", "score", "Output order: score or position")
	cmd.Flags().StringVar(&opts.language, "language", "english", "Stopword language")
	cmd.Flags().StringVar(&opts.stopwords, "stopwords", "", "File with extra stopwords, one per line")
	cmd.Flags().BoolVar(&opts.scores, "scores", false, "Print every sentence with its score instead")

	return cmd
}

func runSummarize(cmd *cobra.Command, args []string, opts *summarizeOptions) error {
	text, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	_, _, sum, err := app.NewSummarizer(opts.language, opts.order, opts.stopwords)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.scores {
		for _, s := range sum.Analyze(text).Sentences {
			fmt.Fprintf(out, "%d\t%d\t%s\n", s.Index, s.Score, s.Sentence)
		}
		return nil
	}

	summary := sum.Summarize(text, opts.sentences)
	if summary == "" {
		return nil
	}
	fmt.Fprintln(out, summary)
	return nil
}
