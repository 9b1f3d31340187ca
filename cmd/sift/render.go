// cmd/sift/render.go
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/waozixyz/sift/config"
	"github.com/waozixyz/sift/internal/app"
)

// newRenderCmd draws a single frame without opening a window. Useful for
// previewing a theme.
func newRenderCmd(cfgPath *string) *cobra.Command {
	var output, query string
	var selection int

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWidget(cmd, *cfgPath, func(cfg *config.Config, w *app.Widget) error {
				w.Session.SetQuery(query)

				// Lay out once so paging knows the page size.
				if err := app.RenderPNG(w, io.Discard); err != nil {
					return err
				}
				for i := 0; i < selection; i++ {
					w.Session.Next()
				}

				if output == "-" {
					return app.RenderPNG(w, cmd.OutOrStdout())
				}
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				err = app.RenderPNG(w, f)
				if cerr := f.Close(); err == nil {
					err = cerr
				}
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "sift.png", `PNG file to write, "-" for stdout`)
	cmd.Flags().StringVarP(&query, "query", "q", "", "text to type into the input")
	cmd.Flags().IntVarP(&selection, "select", "s", 0, "number of times to move the selection down")
	return cmd
}
