// Package command wires the flashlearn subcommands onto a cobra root.
package command

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/flashlearn"
	"github.com/3-lines-studio/flashlearn/internal/adapters/cli"
	"github.com/3-lines-studio/flashlearn/internal/assets"
	"github.com/3-lines-studio/flashlearn/internal/config"
	"github.com/3-lines-studio/flashlearn/internal/logger"
)

func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// options holds flags shared by every subcommand.
type options struct {
	configPath string
	noColor    bool
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "flashlearn",
		Short:        "Serve or export the FlashLearn landing site",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		serveCmd(opts),
		exportCmd(opts),
		routesCmd(opts),
		doctorCmd(opts),
	)
	return cmd
}

func (o *options) load() (config.Config, error) {
	return config.Load(o.configPath)
}

func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	return logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Writer: w,
	})
}

func newApp(cfg config.Config, log *slog.Logger) (*flashlearn.App, error) {
	doc := flashlearn.DefaultDocument()
	doc.SiteTitle = cfg.SiteTitle
	doc.Description = cfg.Description

	return flashlearn.New(
		flashlearn.WithDev(cfg.Dev),
		flashlearn.WithLogger(log),
		flashlearn.WithDocument(doc),
		flashlearn.WithAssets(assets.DirFS(cfg.AssetsDir)),
	)
}

func (o *options) output(cmd *cobra.Command) *cli.Output {
	if cmd.OutOrStdout() != os.Stdout {
		return cli.NewWriterOutput(cmd.OutOrStdout())
	}

	out := cli.NewOutput()
	if o.noColor || os.Getenv("NO_COLOR") != "" {
		out.DisableColors()
	}
	return out
}
