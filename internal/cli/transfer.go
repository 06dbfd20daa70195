package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/config"
	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/files"
	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/schedule"
)

func newImportCommand(ctx context.Context, manager *files.Manager, cfg *config.Config) *cobra.Command {
	var mergeFlag bool

	cmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Load activities from a CSV file, replacing the current schedule.",
		Long: "import reads Date,Start,End,Activity rows from the given file. Rows that " +
			"fail to parse or violate start < end are skipped and reported; the rest " +
			"replace the schedule (or extend it with --merge).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := schedule.NewReader(manager, cfg.Location)
			imported, rejected, err := reader.LoadFile(ctx, args[0])
			if err != nil {
				return err
			}

			printRejected(cmd, rejected)

			activities := imported
			if mergeFlag {
				current, _, err := reader.Load(ctx)
				if err != nil {
					return err
				}
				activities = append(current, imported...)
			}

			writer := schedule.NewWriter(manager, cfg.Location)
			if err := writer.Replace(ctx, activities); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d activit%s from %s\n",
				len(imported), pluralY(len(imported)), args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&mergeFlag, "merge", false, "Keep existing activities instead of replacing them")

	return cmd
}

func newExportCommand(ctx context.Context, manager *files.Manager, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Write the current schedule to a CSV file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := schedule.NewReader(manager, cfg.Location)
			activities, _, err := reader.Load(ctx)
			if err != nil {
				return err
			}

			if err := schedule.WriteFile(args[0], activities); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d activit%s to %s\n",
				len(activities), pluralY(len(activities)), args[0])
			return nil
		},
	}

	return cmd
}

func pluralY(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}
