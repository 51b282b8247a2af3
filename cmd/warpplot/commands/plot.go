// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/warp/frame"
	"github.com/katalvlaran/warp/internal/logging"
	"github.com/katalvlaran/warp/link"
	"github.com/katalvlaran/warp/render"
)

// NewPlotCommand aligns a and b and saves the link figure.
func NewPlotCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "plot",
		Short: "Align sequences a and b and save the link plot",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := setup(cmd, "plot")
			if err != nil {
				return err
			}
			logger := logging.FromContext(cmd.Context())
			a, b, err := c.sequences()
			if err != nil {
				return err
			}
			set, err := runLink(cmd.Context(), c, a, b)
			if err != nil {
				return err
			}
			if err = save(c, a, b, set); err != nil {
				return err
			}
			logger.Infow("plot saved", "out", c.Out, "cost", set.Alignment.Cost, "links", set.Len())
			fmt.Fprintln(cmd.OutOrStdout(), c.Out)

			return nil
		},
	}
	addSeriesFlags(command)
	addOutputFlags(command, "links.png")

	return command
}

func addOutputFlags(command *cobra.Command, out string) {
	command.Flags().StringP("out", "o", out, "Output file; the extension selects the format (png, svg, pdf).")
	command.Flags().Float64("width", 10, "Figure width in inches.")
	command.Flags().Float64("height", 4, "Figure height in inches.")
}

func save(c *Config, a, b *frame.Sequence, set *link.Set) error {
	return render.Links(a, b, set, c.Out,
		render.WithSamplingRate(c.SamplingRate),
		render.WithSize(vg.Length(c.Width)*vg.Inch, vg.Length(c.Height)*vg.Inch),
	)
}
