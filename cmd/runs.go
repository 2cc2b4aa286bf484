package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect archived valuation reports",
	Long:  "Commands for listing and viewing reports archived with appraise --save.",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived reports",
	RunE: func(cmd *cobra.Command, _ []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := st.ListReports(cmd.Context(), limit)
		if err != nil {
			return eris.Wrap(err, "runs list")
		}

		if len(entries) == 0 {
			fmt.Fprintln(os.Stderr, "No archived reports.")
			return nil
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "WATERMARK\tMETHOD\tTITLE\tCREATED")
		for _, e := range entries {
			title := e.PromptTitle
			if title == "" {
				title = "-"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				e.Watermark, e.Method, title, e.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return eris.Wrap(tw.Flush(), "runs list: flush table")
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <watermark>",
	Short: "Show one archived report as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		rep, err := st.GetReport(cmd.Context(), args[0])
		if err != nil {
			return eris.Wrap(err, "runs show")
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(rep), "runs show: encode report")
	},
}

func init() {
	runsListCmd.Flags().Int("limit", 20, "maximum number of reports to list (0=all)")
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	rootCmd.AddCommand(runsCmd)
}
