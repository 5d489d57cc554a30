package cli

import (
	"fmt"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/tripdeck/tripdeck/internal/core/summary"
)

var summaryCopy bool

var summaryCmd = &cobra.Command{
	Use:   "summary <trip-id>",
	Short: "Show the budget summary for a trip",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tripID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid trip id %q", args[0])
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, _, err := newClient(cfg)
		if err != nil {
			return err
		}

		s, err := client.TripSummary(cmd.Context(), tripID)
		if err != nil {
			return fmt.Errorf("fetching summary: %w", err)
		}

		out, err := summary.RenderTemplate(cfg.SummaryTemplate, s, cfg.Currency)
		if err != nil {
			return fmt.Errorf("rendering summary: %w", err)
		}

		fmt.Println(out)

		if summaryCopy {
			if err := clipboard.WriteAll(out); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not copy to clipboard: %v\n", err)
			} else {
				fmt.Println("\nCopied to clipboard.")
			}
		}
		return nil
	},
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryCopy, "copy", false, "Also copy the summary to the clipboard")
	rootCmd.AddCommand(summaryCmd)
}
