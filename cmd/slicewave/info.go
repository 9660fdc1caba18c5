// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE...",
		Short: "Print format, length and peak level of audio files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			for _, path := range args {
				buf, err := a.loadFile(path, false)
				if err != nil {
					return err
				}

				var peak float32
				for ch := range buf.NumChannels() {
					lo, hi := buf.FindMinMax(ch, 0, buf.NumFrames())
					peak = max(peak, hi, -lo)
				}

				fmt.Fprintf(out, "%s: %d Hz, %d ch, %d frames, %s, peak %.3f\n",
					path, buf.SampleRate(), buf.NumChannels(), buf.NumFrames(), buf.Duration(), peak)
			}

			return nil
		},
	}
}
