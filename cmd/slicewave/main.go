// SPDX-License-Identifier: EPL-2.0

// Command slicewave renders audio slices as waveforms and simulates
// drag-to-reorder on a timeline.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Southclaws/fault/fmsg"
	"github.com/spf13/cobra"

	"github.com/ik5/slicewave/audio"
	"github.com/ik5/slicewave/formats"
	"github.com/ik5/slicewave/internal/config"
)

var version = "dev"

// app is the state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool

	cfg config.Config
	log *slog.Logger
	reg *audio.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{reg: formats.NewRegistry()}

	root := &cobra.Command{
		Use:   "slicewave",
		Short: "Waveform rendering and slice reordering",
		Long: `slicewave draws audio slices laid end to end on a timeline.

The waveform switches between per-sample, min/max polyline and per-bin
tick drawing as the zoom changes. Slices can be reordered by simulating a
pointer drag, and the new order exported as WAV.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "",
		"YAML config file (SLICEWAVE_* variables override it)")
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false,
		"Log debug output to stderr")

	root.AddCommand(a.infoCmd(), a.renderCmd(), a.dragCmd())

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log.Debug("config loaded", "path", a.configPath, "zoom", cfg.Zoom,
		"max_cutoff", cfg.Cutoffs.Max, "very_high_cutoff", cfg.Cutoffs.VeryHigh, "high_cutoff", cfg.Cutoffs.High)

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		msg := fmsg.GetIssue(err)
		if msg == "" {
			msg = err.Error()
		}
		fmt.Fprintln(os.Stderr, "slicewave:", msg)
		os.Exit(1)
	}
}
