package commands

import (
	"github.com/spf13/cobra"
	"go.verdant.dev/verdant/internal/core/domain"
)

func (c *CLI) newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage per-plant profiles",
	}
	cmd.AddCommand(c.newProfileListCmd())
	cmd.AddCommand(c.newProfileShowCmd())
	cmd.AddCommand(c.newProfileSetCmd())
	return cmd
}

func (c *CLI) newProfileListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored plant IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids, err := c.components.Profiles.List()
			if err != nil {
				return err
			}
			for _, id := range ids {
				cmd.Println(id)
			}
			return nil
		},
	}
}

func (c *CLI) newProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <plant-id>",
		Short: "Print a stored plant profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := c.components.Profiles.Get(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, profile)
		},
	}
}

func (c *CLI) newProfileSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <plant-id>",
		Short: "Create or replace a plant profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plantType, _ := cmd.Flags().GetString("type")
			stage, _ := cmd.Flags().GetString("stage")
			pairs, _ := cmd.Flags().GetStringSlice("threshold")

			thresholds, err := parseFloatPairs(pairs)
			if err != nil {
				return err
			}
			if len(thresholds) == 0 {
				thresholds = nil
			}

			profile := domain.Profile{
				PlantID:    args[0],
				PlantType:  plantType,
				Stage:      stage,
				Thresholds: thresholds,
			}
			if err := c.components.Profiles.Put(profile); err != nil {
				return err
			}
			cmd.Printf("profile %s saved\n", args[0])
			return nil
		},
	}
	cmd.Flags().String("type", "", "Plant type, e.g. tomato")
	cmd.Flags().String("stage", "", "Growth stage")
	cmd.Flags().StringSlice("threshold", nil, "Thresholds as name=value pairs")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}
