package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/konkred/valuation-cli/internal/badge"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List the achievement badge catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, _ := cmd.Flags().GetString("format")
		catalog := badge.Catalog()

		if format == "json" {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return eris.Wrap(enc.Encode(catalog), "badges: encode catalog")
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TIER\tID\tNAME\tDESCRIPTION")
		for _, b := range catalog {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.Tier, b.ID, b.Name, b.Description)
		}
		return eris.Wrap(tw.Flush(), "badges: flush table")
	},
}

func init() {
	badgesCmd.Flags().String("format", "table", "output format: table or json")
	rootCmd.AddCommand(badgesCmd)
}
