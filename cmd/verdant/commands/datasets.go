package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newDatasetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "Inspect the merged dataset catalog",
	}
	cmd.AddCommand(c.newDatasetsListCmd())
	cmd.AddCommand(c.newDatasetsInfoCmd())
	cmd.AddCommand(c.newDatasetsSearchCmd())
	cmd.AddCommand(c.newDatasetsShowCmd())
	return cmd
}

func (c *CLI) newDatasetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every dataset visible in the search directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := c.components.Catalog.List()
			if err != nil {
				return err
			}
			for _, name := range names {
				cmd.Println(name)
			}
			return nil
		},
	}
}

func (c *CLI) newDatasetsInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "List datasets with their catalog descriptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := c.components.Catalog.Info()
			if err != nil {
				return err
			}
			return printJSON(cmd, info)
		},
	}
}

func (c *CLI) newDatasetsSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search dataset names and descriptions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := c.components.Catalog.Search(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, matches)
		},
	}
}

func (c *CLI) newDatasetsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print the merged contents of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := c.components.App.ShowDataset(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, value)
		},
	}
}

func printJSON(cmd *cobra.Command, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to render output")
	}
	cmd.Println(string(data))
	return nil
}
