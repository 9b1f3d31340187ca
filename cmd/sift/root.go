// cmd/sift/root.go
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/waozixyz/sift/config"
	"github.com/waozixyz/sift/internal/app"
	"github.com/waozixyz/sift/render/raylib"
)

func newRootCmd() *cobra.Command {
	var cfgPath string
	var watch bool

	cmd := &cobra.Command{
		Use:   "sift",
		Short: "Pick one line from stdin in a search-as-you-type window",
		Long: "sift reads newline separated candidates from stdin, filters them as you\n" +
			"type and prints the selected line to stdout. Escape exits with status 1.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWidget(cmd, cfgPath, func(cfg *config.Config, w *app.Widget) error {
				var updates <-chan *config.Config
				if watch && cfgPath != "" {
					ch, err := config.Watch(cmd.Context(), cfgPath)
					if err != nil {
						log.Printf("WARN: Not watching %s: %v", cfgPath, err)
					} else {
						updates = ch
					}
				}

				renderer := raylib.NewRaylibRenderer(w.Typeface(), w.Runes())
				sel, err := app.Run(renderer, w, updates)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), sel)
				return nil
			})
		},
	}

	cmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default "+displayPath(config.DefaultPath())+")")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the config file when it changes")

	cmd.AddCommand(newRenderCmd(&cfgPath))
	return cmd
}

// withConfig loads the config named on the command line, or the default file
// if it exists.
func withConfig(path string) (*config.Config, error) {
	if path != "" {
		log.Printf("Loading config file: %s", path)
		return config.Load(path)
	}
	return config.LoadOptional(config.DefaultPath())
}

// withWidget reads candidates from stdin and builds the widget for fn.
func withWidget(cmd *cobra.Command, cfgPath string, fn func(*config.Config, *app.Widget) error) error {
	cfg, err := withConfig(cfgPath)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	candidates := app.ReadCandidates(string(data))
	log.Printf("INFO: Read %d candidates", len(candidates))

	w, err := app.NewWidget(cfg, candidates)
	if err != nil {
		return err
	}
	defer w.Close()
	return fn(cfg, w)
}

func displayPath(p string) string {
	if p == "" {
		return "none"
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		if rest, ok := strings.CutPrefix(p, home); ok {
			return "~" + rest
		}
	}
	return p
}
