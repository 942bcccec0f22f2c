package command

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/flashlearn/internal/adapters/cli"
	"github.com/3-lines-studio/flashlearn/internal/assets"
	"github.com/3-lines-studio/flashlearn/internal/core"
	"github.com/3-lines-studio/flashlearn/internal/icons"
	"github.com/3-lines-studio/flashlearn/internal/logger"
)

var errDoctor = errors.New("doctor found problems")

// doctorCmd checks that the configuration loads, the stylesheet resolves and
// every route renders. A missing favicon, an unknown glyph or a page without
// a heading are reported as warnings.
func doctorCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration, assets and routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output := opts.output(cmd)
			output.PrintHeader("FlashLearn Doctor")

			cfg, err := opts.load()
			if err != nil {
				output.PrintError("config: %v", err)
				return errDoctor
			}
			output.PrintSuccess("config loaded (mode %s, addr %s)", cfg.Mode(), cfg.Addr)

			app, err := newApp(cfg, logger.Discard())
			if err != nil {
				output.PrintError("routes: %v", err)
				return errDoctor
			}

			failed := false
			if _, err := fs.Stat(app.Assets(), assets.StylesheetFile); err != nil {
				output.PrintError("asset %s: %v", assets.StylesheetFile, err)
				failed = true
			} else {
				output.PrintSuccess("asset %s", assets.StylesheetFile)
			}
			if _, err := fs.Stat(app.Assets(), assets.FaviconFile); err != nil {
				output.PrintWarning("asset %s: %v", assets.FaviconFile, err)
			} else {
				output.PrintSuccess("asset %s", assets.FaviconFile)
			}

			for _, route := range app.Routes() {
				body, status, err := app.Render(route.Path)
				switch {
				case err != nil:
					output.PrintError("route %s: %v", route.Path, err)
					failed = true
					continue
				case status != http.StatusOK:
					output.PrintError("route %s: status %d", route.Path, status)
					failed = true
					continue
				}

				tree := route.Component()
				controls := tree.Controls()
				inert := 0
				for _, c := range controls {
					if c.Inert() {
						inert++
					}
				}
				output.PrintSuccess("route %s (%d bytes, %d controls, %d inert)", route.Path, len(body), len(controls), inert)
				checkTree(output, route.Path, tree)
			}

			if failed {
				return errDoctor
			}
			output.PrintDone(fmt.Sprintf("%d routes ok", len(app.Routes())))
			return nil
		},
	}
}

func checkTree(output *cli.Output, path string, tree core.Node) {
	for _, n := range tree.FindAll(core.KindIcon) {
		if _, ok := icons.Lookup(n.Glyph); !ok {
			output.PrintWarning("route %s: unknown glyph %q (known: %s)", path, n.Glyph, strings.Join(icons.Names(), ", "))
		}
	}
	if len(tree.FindRole(core.RoleTitle))+len(tree.FindRole(core.RoleHeading)) == 0 {
		output.PrintWarning("route %s: page has no title or heading", path)
	}
}
