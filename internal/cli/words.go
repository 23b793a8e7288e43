package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/nguyentantai21042004/speech-digest/internal/analysis"
	"github.com/nguyentantai21042004/speech-digest/internal/tokenizer"
	"github.com/spf13/cobra"
)

func newWordsCmd() *cobra.Command {
	var minCount int

	cmd := &cobra.Command{
		Use:   "words [file]",
		Short: "List word frequencies of a document",
		Long: `Count every word of a document, case-folded, and list those occurring at
least --min times, most frequent first.

Examples:
  digest words article.txt
  digest words --min 3 article.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			tok, err := tokenizer.NewEnglish()
			if err != nil {
				return err
			}

			counts := analysis.Top(analysis.WordCounts(tok, text), minCount)
			if len(counts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No words found")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "WORD\tCOUNT")
			for _, wc := range counts {
				fmt.Fprintf(tw, "%s\t%d\n", wc.Word, wc.Count)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&minCount, "min", 1, "Only list words occurring at least this many times")

	return cmd
}
