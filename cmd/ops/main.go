package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tempo/internal/ops"
	"tempo/internal/snapshot"
)

func main() {
	var dataDir string

	root := &cobra.Command{
		Use:   "tempo-ops",
		Short: "Operator tooling for the tempo snapshot",
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "tempo data directory")

	backup := &cobra.Command{
		Use:   "backup <out-file>",
		Short: "Copy the verified snapshot document to a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ops.Backup(dataDir, args[0]); err != nil {
				return err
			}
			color.Green("backed up %s to %s", filepath.Join(dataDir, ops.SnapshotFile), args[0])
			return nil
		},
	}

	restore := &cobra.Command{
		Use:   "restore <backup-file>",
		Short: "Validate a backup and install it as the snapshot document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ops.Restore(args[0], dataDir); err != nil {
				return err
			}
			color.Green("restored %s into %s", args[0], dataDir)
			return nil
		},
		Args: cobra.ExactArgs(1),
	}

	sample := &cobra.Command{
		Use:   "sample",
		Short: "Print the built-in sample dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := json.MarshalIndent(snapshot.Sample(), "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(b))
			return nil
		},
	}

	root.AddCommand(backup, restore, sample)

	if err := root.Execute(); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}
