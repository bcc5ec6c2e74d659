package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// bucketCmd groups the bucket lifecycle commands
var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Create or delete buckets",
}

var bucketCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a bucket and wait until it exists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		if err := rt.repo.CreateBucket(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Bucket %s created\n", args[0])
		return nil
	},
}

var bucketDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a bucket and wait until it is gone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		if err := rt.repo.DeleteBucket(cmd.Context(), args[0]); err != nil {
			return err
		}
		rt.logger.Debug("Bucket delete confirmed", zap.String("bucket", args[0]))
		fmt.Fprintf(cmd.OutOrStdout(), "Bucket %s deleted\n", args[0])
		return nil
	},
}

func init() {
	bucketCmd.AddCommand(bucketCreateCmd)
	bucketCmd.AddCommand(bucketDeleteCmd)
	RootCmd.AddCommand(bucketCmd)
}
