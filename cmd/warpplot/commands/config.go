// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/warp/dtw"
	"github.com/katalvlaran/warp/frame"
	"github.com/katalvlaran/warp/internal/logging"
	"github.com/katalvlaran/warp/link"
)

// EnvPrefix prefixes every environment override, e.g. WARP_SAMPLING_RATE.
const EnvPrefix = "WARP"

var (
	// ErrMissingSeries is returned when a or b is not configured.
	ErrMissingSeries = errors.New("warpplot: missing sequence")

	// ErrBadSeries is returned when a sequence value cannot be parsed.
	ErrBadSeries = errors.New("warpplot: malformed sequence")
)

// Config is the resolved warpplot configuration.
type Config struct {
	A            any     `mapstructure:"a"`
	B            any     `mapstructure:"b"`
	SamplingRate float64 `mapstructure:"sampling_rate"`
	Links        int     `mapstructure:"links"`
	Distance     string  `mapstructure:"distance"`
	Out          string  `mapstructure:"out"`
	Width        float64 `mapstructure:"width"`  // inches
	Height       float64 `mapstructure:"height"` // inches
	Debug        bool    `mapstructure:"debug"`
}

// loadConfig merges, lowest first: flag defaults, config file, WARP_*
// environment, flags set on the command line.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var bindErr error
	bind := func(f *pflag.Flag) {
		if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil && bindErr == nil {
			bindErr = err
		}
	}
	cmd.Flags().VisitAll(bind)
	cmd.InheritedFlags().VisitAll(bind)
	if bindErr != nil {
		return nil, bindErr
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to load configuration file. %w", err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("failed unmarshal configuration. %w", err)
	}

	return c, nil
}

// setup loads the config and stores a named logger in the command context;
// RunE bodies read it back with logging.FromContext.
func setup(cmd *cobra.Command, name string) (*Config, error) {
	c, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.NewLogger(c.Debug).Named(name)
	cmd.SetContext(logging.WithLogger(ctx, logger))
	logger.Debugw("config loaded",
		"samplingRate", c.SamplingRate, "links", c.Links, "distance", c.Distance, "out", c.Out)

	return c, nil
}

// linkOptions maps the config onto link and dtw options.
func (c *Config) linkOptions() ([]link.Option, error) {
	dist, err := dtw.DistanceByName(c.Distance)
	if err != nil {
		return nil, err
	}

	return []link.Option{
		link.WithSamplingRate(c.SamplingRate),
		link.WithLinkCount(c.Links),
		link.WithAlignOptions(dtw.WithDistance(dist)),
	}, nil
}

// sequences parses the configured a and b.
func (c *Config) sequences() (*frame.Sequence, *frame.Sequence, error) {
	a, err := parseSeries(c.A)
	if err != nil {
		return nil, nil, fmt.Errorf("a: %w", err)
	}
	b, err := parseSeries(c.B)
	if err != nil {
		return nil, nil, fmt.Errorf("b: %w", err)
	}

	return a, b, nil
}

// parseSeries accepts a list of numbers (scalar frames), a list of number
// lists (vector frames), or a string "1,2,3" / "0,0;1,1" with ';' between
// vector frames.
func parseSeries(raw any) (*frame.Sequence, error) {
	switch v := raw.(type) {
	case nil:
		return nil, ErrMissingSeries
	case string:
		return parseSeriesString(v)
	case []float64:
		return frame.FromScalars(v)
	}

	items, err := cast.ToSliceE(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSeries, err)
	}
	if len(items) == 0 {
		return nil, frame.ErrEmptySequence
	}
	if !isList(items[0]) {
		values, err := toFloats(items)
		if err != nil {
			return nil, err
		}

		return frame.FromScalars(values)
	}

	rows := make([][]float64, len(items))
	for t, item := range items {
		if rows[t], err = listFloats(item); err != nil {
			return nil, fmt.Errorf("frame %d: %w", t, err)
		}
	}

	return frame.FromVectors(rows)
}

// listFloats converts one vector frame.
func listFloats(v any) ([]float64, error) {
	switch row := v.(type) {
	case []float64:
		return row, nil
	case []int:
		out := make([]float64, len(row))
		for k, x := range row {
			out[k] = float64(x)
		}

		return out, nil
	case []any:
		return toFloats(row)
	}

	return nil, fmt.Errorf("%w: %T is not a list", ErrBadSeries, v)
}

func parseSeriesString(s string) (*frame.Sequence, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrMissingSeries
	}
	if !strings.Contains(s, ";") {
		values, err := splitFloats(s)
		if err != nil {
			return nil, err
		}

		return frame.FromScalars(values)
	}

	parts := strings.Split(s, ";")
	rows := make([][]float64, len(parts))
	for t, part := range parts {
		var err error
		if rows[t], err = splitFloats(part); err != nil {
			return nil, err
		}
	}

	return frame.FromVectors(rows)
}

func splitFloats(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for k, f := range fields {
		v, err := cast.ToFloat64E(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadSeries, f)
		}
		out[k] = v
	}

	return out, nil
}

func toFloats(items []any) ([]float64, error) {
	out := make([]float64, len(items))
	for k, item := range items {
		v, err := cast.ToFloat64E(item)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadSeries, err)
		}
		out[k] = v
	}

	return out, nil
}

func isList(v any) bool {
	switch v.(type) {
	case []any, []float64, []int:
		return true
	}

	return false
}
