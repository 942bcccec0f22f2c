package command

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/flashlearn/internal/adapters/cli"
	"github.com/3-lines-studio/flashlearn/internal/adapters/fs"
	"github.com/3-lines-studio/flashlearn/internal/usecase"
)

func exportCmd(opts *options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a static copy of every page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("out") {
				cfg.ExportDir = out
			}

			log, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			app, err := newApp(cfg, log)
			if err != nil {
				return err
			}

			output := opts.output(cmd)
			output.PrintHeader("FlashLearn Export")

			start := time.Now()
			svc := usecase.NewExportService(app, fs.NewOSFileSystem(), output)
			result := svc.ExportStatic(cmd.Context(), usecase.ExportInput{OutDir: cfg.ExportDir})
			if result.Error != nil {
				output.PrintError("%v", result.Error)
				return result.Error
			}

			output.PrintSuccess("Exported %d pages (%d files) to %s in %s",
				len(result.Manifest.Entries), len(result.Files), cfg.ExportDir, cli.FormatDuration(time.Since(start)))
			output.PrintStep("%d pages changed since the last export", len(result.Changed))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (default from config)")
	return cmd
}
