package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newPendingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pending",
		Short: "Review queued threshold changes",
	}
	cmd.AddCommand(c.newPendingListCmd())
	cmd.AddCommand(c.newPendingShowCmd())
	cmd.AddCommand(c.newPendingSuggestCmd())
	cmd.AddCommand(c.newPendingResolveCmd())
	return cmd
}

func (c *CLI) newPendingListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List queued threshold records, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := c.components.Pending.List()
			if err != nil {
				return err
			}
			return printJSON(cmd, records)
		},
	}
}

func (c *CLI) newPendingShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <record-id>",
		Short: "Print one queued threshold record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := c.components.Pending.Get(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, record)
		},
	}
}

func (c *CLI) newPendingSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <plant-id>",
		Short: "Ask the suggester for revised thresholds and queue the changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, _ := cmd.Flags().GetStringArray("readings")
			readings, err := parseFloatSeries(pairs)
			if err != nil {
				return err
			}

			record, err := c.components.App.SuggestThresholds(cmd.Context(), args[0], readings)
			if err != nil {
				return err
			}
			if record == nil {
				cmd.Println("no threshold changes suggested")
				return nil
			}
			return printJSON(cmd, record)
		},
	}
	cmd.Flags().StringArray("readings", nil, "Recent readings as metric=v1,v2,... (repeatable)")
	return cmd
}

func (c *CLI) newPendingResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <record-id>",
		Short: "Approve or reject queued changes and apply the approved ones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			approve, _ := cmd.Flags().GetStringSlice("approve")
			reject, _ := cmd.Flags().GetStringSlice("reject")
			if len(approve) == 0 && len(reject) == 0 {
				return zerr.New("nothing to resolve, pass --approve or --reject")
			}

			decisions := make(map[string]bool, len(approve)+len(reject))
			for _, key := range approve {
				decisions[key] = true
			}
			for _, key := range reject {
				decisions[key] = false
			}

			record, err := c.components.App.ResolvePending(args[0], decisions)
			if err != nil {
				return err
			}
			return printJSON(cmd, record)
		},
	}
	cmd.Flags().StringSlice("approve", nil, "Threshold keys to approve")
	cmd.Flags().StringSlice("reject", nil, "Threshold keys to reject")
	return cmd
}

// parseFloatSeries parses metric=v1,v2 flags into per-metric samples.
// Repeated metrics append to the series.
func parseFloatSeries(pairs []string) (map[string][]float64, error) {
	series := make(map[string][]float64, len(pairs))
	for _, pair := range pairs {
		metric, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, zerr.With(zerr.New("expected metric=values"), "pair", pair)
		}
		for _, field := range strings.Split(raw, ",") {
			value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "invalid numeric value"), "pair", pair)
			}
			series[metric] = append(series[metric], value)
		}
	}
	return series, nil
}
