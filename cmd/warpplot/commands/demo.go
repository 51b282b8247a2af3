// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/warp/frame"
	"github.com/katalvlaran/warp/internal/logging"
	"github.com/katalvlaran/warp/signal"
)

// NewDemoCommand aligns a generated chirp with a time-stretched copy.
func NewDemoCommand() *cobra.Command {
	var (
		n      int
		factor float64
		seed   int64
		noise  float64
	)

	command := &cobra.Command{
		Use:   "demo",
		Short: "Align a chirp with a stretched copy of itself",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := setup(cmd, "demo")
			if err != nil {
				return err
			}
			logger := logging.FromContext(cmd.Context())
			if n < 2 || factor <= 0 {
				return fmt.Errorf("%w: need --length >= 2 and --factor > 0", ErrBadSeries)
			}
			x := signal.Chirp(n, seed)
			var opts []signal.Option
			if noise > 0 {
				opts = append(opts, signal.WithNoise(noise))
			}
			y := signal.Stretch(signal.Chirp(n, seed+1, opts...), factor)

			a, err := frame.FromScalars(x)
			if err != nil {
				return err
			}
			b, err := frame.FromScalars(y)
			if err != nil {
				return err
			}
			set, err := runLink(cmd.Context(), c, a, b)
			if err != nil {
				return err
			}
			logger.Infow("demo aligned", "lenA", a.Len(), "lenB", b.Len(),
				"cost", set.Alignment.Cost, "pathLength", set.Alignment.Path.Len())

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "lengths: %d x %d\n", a.Len(), b.Len())
			fmt.Fprintf(w, "cost: %g\n", set.Alignment.Cost)
			fmt.Fprintf(w, "path length: %d\n", set.Alignment.Path.Len())
			if c.Out == "" {
				return nil
			}
			if err = save(c, a, b, set); err != nil {
				return err
			}
			fmt.Fprintln(w, c.Out)

			return nil
		},
	}
	command.Flags().IntVarP(&n, "length", "n", 120, "Length of the reference chirp.")
	command.Flags().Float64Var(&factor, "factor", 1.5, "Time-stretch factor applied to the copy.")
	command.Flags().Int64Var(&seed, "seed", 1, "Noise seed.")
	command.Flags().Float64Var(&noise, "noise", 0, "Gaussian noise sigma added to the copy.")
	addOutputFlags(command, "")

	return command
}
