package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"object-gateway/core/journal"

	"github.com/spf13/cobra"
)

var journalLimit int

// journalCmd prints the most recent journal entries
var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show recent bucket and object operations",
	Long:  `Prints the newest entries of the operation journal. Requires database.enabled.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		if _, ok := rt.journal.(journal.Nop); ok {
			return fmt.Errorf("journal is not available: enable and configure the database section")
		}

		entries, err := rt.journal.Recent(cmd.Context(), journalLimit)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "TIME\tOPERATION\tBUCKET\tKEY")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.CreatedAt.Format(time.RFC3339), e.Operation, e.Bucket, e.Key)
		}
		return tw.Flush()
	},
}

func init() {
	journalCmd.Flags().IntVar(&journalLimit, "limit", 20, "Number of entries to show")
	RootCmd.AddCommand(journalCmd)
}
