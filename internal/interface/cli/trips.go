package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var tripsCmd = &cobra.Command{
	Use:   "trips",
	Short: "List trips",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, _, err := newClient(cfg)
		if err != nil {
			return err
		}

		trips, err := client.Trips(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetching trips: %w", err)
		}

		if len(trips) == 0 {
			fmt.Println("No trips found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tDESTINATION\tSTATUS\tDATES\tCREATED")
		for _, t := range trips {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s -> %s\t%s\n",
				t.ID, t.Title, t.DestinationName, t.Status,
				t.StartDate, t.EndDate, relativeTime(t.CreatedAt))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(tripsCmd)
}

// relativeTime humanizes backend timestamps, passing through anything it
// cannot parse.
func relativeTime(ts string) string {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, ts); err == nil {
			return humanize.Time(parsed)
		}
	}
	return ts
}
