// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/ik5/slicewave/timeline"
)

// dragOptions describe one simulated pointer drag.
type dragOptions struct {
	from    int
	through int
	to      float64
	step    float64
}

func (a *app) dragCmd() *cobra.Command {
	var (
		opts     dragOptions
		slices   int
		export   string
		png      string
		bitDepth int
	)

	cmd := &cobra.Command{
		Use:   "drag FILE",
		Short: "Cut a file into slices and drag one to a new place",
		Long: `drag cuts FILE into equal slices, presses on slice --from (extending
the selection to --through when given), drags it until its left edge is
at scene x --to in steps of --step, and releases. The resulting order is
printed as original slice numbers and can be exported as WAV.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := a.loadFile(args[0], true)
			if err != nil {
				return err
			}

			p, err := a.newProject(buf, slices)
			if err != nil {
				return err
			}
			defer p.Close()

			p.seq.Observer = timeline.Hooks{
				OrderPosIsChanging: func(pos []int, n int) {
					a.log.Debug("order changing", "positions", pos, "places_moved", n)
				},
				FinishedMoving: func(pos int) {
					a.log.Debug("finished moving", "order_pos", pos)
				},
			}

			if err := drag(p.seq, opts); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "order:", p.order())

			if export != "" {
				if err := p.exportWAV(export, bitDepth); err != nil {
					return err
				}
				a.log.Info("exported", "out", export, "bit_depth", bitDepth)
			}

			if png != "" {
				if err := p.renderPNG(png, a.cfg.Zoom, a.cfg.SceneHeight, a.cfg.RulerHeight); err != nil {
					return err
				}
				a.log.Info("rendered", "out", png)
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&slices, "slices", "n", 4, "Number of equal slices")
	f.IntVar(&opts.from, "from", 0, "Order position of the slice to press on")
	f.IntVar(&opts.through, "through", -1, "Shift-select up to this order position before dragging")
	f.Float64Var(&opts.to, "to", 0, "Scene x to move the pressed slice's left edge to")
	f.Float64Var(&opts.step, "step", 4, "Pointer movement per event, in scene units")
	f.StringVar(&export, "export", "", "Write the reordered audio to this WAV file")
	f.StringVar(&png, "png", "", "Render the result to this PNG file")
	f.IntVar(&bitDepth, "bits", 16, "Bit depth of the exported WAV")

	return cmd
}

// drag feeds a press, a series of moves and a release to seq.
func drag(seq *timeline.Sequence, opts dragOptions) error {
	item := seq.At(opts.from)
	if item == nil {
		return fmt.Errorf("%w: no slice at position %d", errBadDrag, opts.from)
	}
	if opts.step <= 0 {
		return fmt.Errorf("%w: step %g", errBadDrag, opts.step)
	}

	seq.Select(item, 0)
	if opts.through >= 0 {
		end := seq.At(opts.through)
		if end == nil {
			return fmt.Errorf("%w: no slice at position %d", errBadDrag, opts.through)
		}
		seq.Select(end, timeline.ModShift)
	}

	x, y := item.Pos()
	start := timeline.Point{X: x + item.Width()/2, Y: y + item.Height()/2}
	if !seq.Press(item, timeline.PointerEvent{ScenePos: start, ScreenPos: start, LastScreenPos: start}) {
		return fmt.Errorf("%w: slice %d cannot be dragged", errBadDrag, opts.from)
	}

	target := start.X + opts.to - x
	cur := start.X
	for cur != target {
		next := target
		if math.Abs(target-cur) > opts.step {
			next = cur + math.Copysign(opts.step, target-cur)
		}
		seq.Move(timeline.PointerEvent{
			ScenePos:      timeline.Point{X: next, Y: start.Y},
			ScreenPos:     timeline.Point{X: next, Y: start.Y},
			LastScreenPos: timeline.Point{X: cur, Y: start.Y},
		})
		cur = next
	}

	seq.Release(timeline.PointerEvent{Button: timeline.ButtonPrimary, ScenePos: timeline.Point{X: cur, Y: start.Y}})

	return nil
}
