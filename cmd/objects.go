package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"object-gateway/feature/objects/models"

	"github.com/spf13/cobra"
)

var (
	uploadName string
	jsonOutput bool
)

// objectsCmd lists the objects of a bucket
var objectsCmd = &cobra.Command{
	Use:   "objects",
	Short: "Inspect bucket contents",
}

var objectsListCmd = &cobra.Command{
	Use:   "list <bucket>",
	Short: "List every object with its URL and visibility",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		list, err := rt.repo.ListObjects(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printObjects(cmd.OutOrStdout(), list, jsonOutput)
	},
}

// objectCmd groups single object commands
var objectCmd = &cobra.Command{
	Use:   "object",
	Short: "Upload objects and change their visibility",
}

var objectUploadCmd = &cobra.Command{
	Use:   "upload <bucket> <file>",
	Short: "Upload a local file",
	Long:  `Uploads a local file. The key and display name default to the file's base name; override with --name.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, path := args[0], args[1]

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}

		key := uploadName
		if key == "" {
			key = filepath.Base(path)
		}

		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		obj, err := rt.repo.Store(cmd.Context(), bucket, key, key, f, info.Size())
		if err != nil {
			return err
		}
		return printObjects(cmd.OutOrStdout(), []models.Object{*obj}, jsonOutput)
	},
}

var objectPublicCmd = &cobra.Command{
	Use:   "public <bucket> <key>",
	Short: "Make an object publicly readable",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		if err := rt.repo.MakePublic(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s/%s is public\n", args[0], args[1])
		return nil
	},
}

var objectPrivateCmd = &cobra.Command{
	Use:   "private <bucket> <key>",
	Short: "Restrict an object to the bucket owner",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		if err := rt.repo.MakePrivate(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s/%s is private\n", args[0], args[1])
		return nil
	},
}

func printObjects(w io.Writer, list []models.Object, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKEY\tPUBLIC\tURL")
	for _, o := range list {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", o.Name, o.Key, o.IsPublic, o.URL)
	}
	return tw.Flush()
}

func init() {
	objectsListCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON instead of a table")
	objectsCmd.AddCommand(objectsListCmd)
	RootCmd.AddCommand(objectsCmd)

	objectUploadCmd.Flags().StringVar(&uploadName, "name", "", "Key and display name (defaults to the file name)")
	objectUploadCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON instead of a table")
	objectCmd.AddCommand(objectUploadCmd)
	objectCmd.AddCommand(objectPublicCmd)
	objectCmd.AddCommand(objectPrivateCmd)
	RootCmd.AddCommand(objectCmd)
}
