package command

import (
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/flashlearn/internal/adapters/cli"
	"github.com/3-lines-studio/flashlearn/internal/logger"
)

func routesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			app, err := newApp(cfg, logger.Discard())
			if err != nil {
				return err
			}

			rows := make([]cli.RouteRow, 0, len(app.Routes()))
			for _, r := range app.Routes() {
				rows = append(rows, cli.RouteRow{Path: r.Path, Name: r.Name, Title: r.Title})
			}
			opts.output(cmd).PrintRoutes(rows)
			return nil
		},
	}
}
