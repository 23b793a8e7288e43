package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/nguyentantai21042004/speech-digest/internal/analysis"
	"github.com/nguyentantai21042004/speech-digest/internal/tokenizer"
	"github.com/spf13/cobra"
)

func newPOSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pos [file]",
		Short: "Count the parts of speech of a document",
		Long: `Tag every word of a document and count the tags by their full name,
most frequent first. Punctuation is not counted.

Examples:
  digest pos article.txt
  cat article.txt | digest pos`,
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

			counts := analysis.Top(analysis.POSCounts(tok, text), 1)
			if len(counts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No words found")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "PART OF SPEECH\tCOUNT")
			for _, pc := range counts {
				fmt.Fprintf(tw, "%s\t%d\n", pc.Word, pc.Count)
			}
			return tw.Flush()
		},
	}

	return cmd
}
