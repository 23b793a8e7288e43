// Package cli implements the digest command line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var Version = "dev"

// NewRootCmd builds the digest command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "digest",
		Short: "Summarize and analyze text from the command line",
		Long: `digest runs the speech-digest analysis stages without the watcher daemon.

Summarize a document, list its word frequencies or parts of speech, or
process a whole folder of text and audio files into reports.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSummarizeCmd())
	root.AddCommand(newWordsCmd())
	root.AddCommand(newPOSCmd())
	root.AddCommand(newProcessCmd())
	return root
}

// Execute runs the root command and reports the error on stderr.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// readSource returns the content of args[0], or stdin when no file is given.
func readSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}
