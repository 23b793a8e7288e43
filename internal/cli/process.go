package cli

import (
	"fmt"

	"github.com/nguyentantai21042004/speech-digest/internal/app"
	"github.com/nguyentantai21042004/speech-digest/internal/config"
	"github.com/nguyentantai21042004/speech-digest/internal/logger"
	"github.com/spf13/cobra"
)

func newProcessCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "process <dir>",
		Short: "Process every supported file in a folder",
		Long: `Run the full pipeline once over a folder: recognize audio, translate,
summarize, count words and write the reports configured in the config file.

Examples:
  digest process ./inbox
  digest process --config pipeline.yaml ./inbox`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			log := logger.New(cfg.Logging.Level)
			if err := app.EnsureDirectories(cfg); err != nil {
				return err
			}

			components, err := app.Build(cfg, log)
			if err != nil {
				return err
			}

			res, err := components.Processor.ProcessAll(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Processed %d file(s), %d failed\n", res.Succeeded+res.Failed, res.Failed)
			if res.Failed > 0 {
				return fmt.Errorf("%d file(s) failed", res.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the YAML config file")

	return cmd
}
