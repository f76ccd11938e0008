package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
	"go.verdant.dev/verdant/internal/engine/recommend"
)

func (c *CLI) newRecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Guideline lookups and reading evaluation",
	}
	cmd.PersistentFlags().String("stage", "", "Growth stage (falls back to the plant default)")

	cmd.AddCommand(c.newRecommendRangeCmd("ec", "EC guideline range and adjustment for a reading",
		func(e *recommend.Engine, plant, stage string) (any, bool, error) {
			rng, ok, err := e.ConductivityRange(plant, stage)
			return rng, ok, err
		},
		func(e *recommend.Engine, reading float64, plant, stage string) (recommend.Level, recommend.Adjustment, error) {
			level, err := e.ClassifyConductivity(reading, plant, stage)
			if err != nil {
				return level, recommend.AdjustNone, err
			}
			adj, err := e.ConductivityAdjustment(reading, plant, stage)
			return level, adj, err
		}))
	cmd.AddCommand(c.newRecommendRangeCmd("ph", "pH guideline range and adjustment for a reading",
		func(e *recommend.Engine, plant, stage string) (any, bool, error) {
			rng, ok, err := e.AcidityRange(plant, stage)
			return rng, ok, err
		},
		func(e *recommend.Engine, reading float64, plant, stage string) (recommend.Level, recommend.Adjustment, error) {
			level, err := e.ClassifyAcidity(reading, plant, stage)
			if err != nil {
				return level, recommend.AdjustNone, err
			}
			adj, err := e.AcidityAdjustment(reading, plant, stage)
			return level, adj, err
		}))
	cmd.AddCommand(c.newRecommendIrrigationCmd())
	cmd.AddCommand(c.newRecommendNutrientsCmd())
	cmd.AddCommand(c.newRecommendEvaluateCmd())
	return cmd
}

func (c *CLI) newRecommendRangeCmd(
	metric, short string,
	rangeFn func(*recommend.Engine, string, string) (any, bool, error),
	classifyFn func(*recommend.Engine, float64, string, string) (recommend.Level, recommend.Adjustment, error),
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   metric + " <plant-type>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stage, _ := cmd.Flags().GetString("stage")
			reading, _ := cmd.Flags().GetFloat64("reading")

			rng, ok, err := rangeFn(c.components.Engine, args[0], stage)
			if err != nil {
				return err
			}
			if !ok {
				cmd.Printf("no %s guideline for %q\n", metric, args[0])
				return nil
			}

			out := map[string]any{"range": rng}
			if cmd.Flags().Changed("reading") {
				level, adjustment, err := classifyFn(c.components.Engine, reading, args[0], stage)
				if err != nil {
					return err
				}
				out["level"] = level
				out["adjustment"] = adjustment
			}
			return printJSON(cmd, out)
		},
	}
	cmd.Flags().Float64("reading", 0, "Current sensor reading to classify")
	return cmd
}

func (c *CLI) newRecommendIrrigationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "irrigation <plant-type>",
		Short: "Irrigation volume, interval and crop water demand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stage, _ := cmd.Flags().GetString("stage")
			engine := c.components.Engine

			out := map[string]any{}
			if volume, ok, err := engine.DailyIrrigationTarget(args[0], stage); err != nil {
				return err
			} else if ok {
				out["daily_ml"] = volume
			}
			if interval, ok, err := engine.IrrigationInterval(args[0], stage); err != nil {
				return err
			} else if ok {
				out["interval_days"] = interval
			}
			if adjusted, ok, err := engine.AdjustedIrrigationTarget(args[0], stage); err != nil {
				return err
			} else if ok {
				out["adjusted_ml"] = adjusted
			}
			if cmd.Flags().Changed("et0") {
				et0, _ := cmd.Flags().GetFloat64("et0")
				if demand, ok, err := engine.IrrigationDemand(args[0], stage, et0); err != nil {
					return err
				} else if ok {
					out["demand_mm"] = demand
				}
			}
			if len(out) == 0 {
				cmd.Printf("no irrigation guidelines for %q\n", args[0])
				return nil
			}
			return printJSON(cmd, out)
		},
	}
	cmd.Flags().Float64("et0", 0, "Reference evapotranspiration in mm/day")
	return cmd
}

func (c *CLI) newRecommendNutrientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nutrients <plant-type>",
		Short: "Nutrient targets, optionally with deficits against current levels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stage, _ := cmd.Flags().GetString("stage")
			current, _ := cmd.Flags().GetStringSlice("current")

			engine := c.components.Engine
			if len(current) == 0 {
				targets, err := engine.NutrientTargets(args[0], stage)
				if err != nil {
					return err
				}
				return printJSON(cmd, targets)
			}

			levels, err := parseFloatPairs(current)
			if err != nil {
				return err
			}
			deficit, err := engine.NutrientDeficit(levels, args[0], stage)
			if err != nil {
				return err
			}
			return printJSON(cmd, deficit)
		},
	}
	cmd.Flags().StringSlice("current", nil, "Current solution levels as nutrient=ppm pairs")
	return cmd
}

func (c *CLI) newRecommendEvaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate <plant-id>",
		Short: "Evaluate sensor readings against a stored plant profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, _ := cmd.Flags().GetStringSlice("reading")
			readings, err := parseFloatPairs(pairs)
			if err != nil {
				return err
			}
			advice, err := c.components.App.Evaluate(cmd.Context(), args[0], readings)
			if err != nil {
				return err
			}
			return printJSON(cmd, advice)
		},
	}
	cmd.Flags().StringSlice("reading", nil, "Sensor readings as metric=value pairs")
	_ = cmd.MarkFlagRequired("reading")
	return cmd
}

// parseFloatPairs parses key=value flags into a float map.
func parseFloatPairs(pairs []string) (map[string]float64, error) {
	values := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, zerr.With(zerr.New("expected key=value"), "pair", pair)
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid numeric value"), "pair", pair)
		}
		values[key] = value
	}
	return values, nil
}
