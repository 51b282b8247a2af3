// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/warp/frame"
	"github.com/katalvlaran/warp/internal/logging"
	"github.com/katalvlaran/warp/link"
)

// NewAlignCommand prints the alignment cost, path and sampled links.
func NewAlignCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "align",
		Short: "Align sequences a and b and print the warping path",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := setup(cmd, "align")
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
			logger.Infow("aligned", "lenA", a.Len(), "lenB", b.Len(),
				"cost", set.Alignment.Cost, "pathLength", set.Alignment.Path.Len(), "links", set.Len())

			return printSet(cmd, set)
		},
	}
	addSeriesFlags(command)

	return command
}

func addSeriesFlags(command *cobra.Command) {
	command.Flags().String("a", "", "Sequence a: \"1,2,3\" or \"0,0;1,1\" for vector frames.")
	command.Flags().String("b", "", "Sequence b, same format as --a.")
}

func runLink(ctx context.Context, c *Config, a, b *frame.Sequence) (*link.Set, error) {
	opts, err := c.linkOptions()
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debugw("linking", "lenA", a.Len(), "lenB", b.Len(), "distance", c.Distance)

	return link.Link(a, b, opts...)
}

// printSet writes cost, path and links as plain text.
func printSet(cmd *cobra.Command, set *link.Set) error {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "cost: %g\n", set.Alignment.Cost)
	fmt.Fprintf(w, "path: %v\n", set.Alignment.Pairs())
	for l := 0; l < set.Len(); l++ {
		x, y, err := set.Segment(l, 0)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "link %d: (%g, %g) -> (%g, %g)\n", l, x[0], y[0], x[1], y[1])
	}

	return nil
}
