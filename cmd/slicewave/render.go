// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) renderCmd() *cobra.Command {
	var (
		out      string
		slices   int
		zoom     float64
		selected []int
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw a file, cut into equal slices, as a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("zoom") {
				zoom = a.cfg.Zoom
			}

			buf, err := a.loadFile(args[0], true)
			if err != nil {
				return err
			}

			p, err := a.newProject(buf, slices)
			if err != nil {
				return err
			}
			defer p.Close()

			for _, pos := range selected {
				if s := p.seq.At(pos); s != nil {
					s.SetSelected(true)
				}
			}

			if err := p.renderPNG(out, zoom, a.cfg.SceneHeight, a.cfg.RulerHeight); err != nil {
				return err
			}

			el := p.elements[0]
			a.log.Info("rendered", "out", out, "slices", slices, "zoom", zoom,
				"level", el.Level(), "bin_size", el.BinSize())
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "waveform.png", "Output PNG path")
	cmd.Flags().IntVarP(&slices, "slices", "n", 1, "Number of equal slices")
	cmd.Flags().Float64Var(&zoom, "zoom", 1, "Horizontal zoom (default from config)")
	cmd.Flags().IntSliceVar(&selected, "select", nil, "Order positions to draw as selected")

	return cmd
}
