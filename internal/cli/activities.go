package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/config"
	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/files"
	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/schedule"
)

func newAddCommand(ctx context.Context, manager *files.Manager, cfg *config.Config) *cobra.Command {
	var (
		dateFlag  string
		startFlag string
		endFlag   string
	)

	cmd := &cobra.Command{
		Use:   "add <description...>",
		Short: "Add an activity to the schedule.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.TrimSpace(strings.Join(args, " "))
			if description == "" {
				return fmt.Errorf("description is required")
			}

			date, err := resolveDate(dateFlag, cfg.Location)
			if err != nil {
				return err
			}
			start, err := schedule.ParseClock(startFlag)
			if err != nil {
				return fmt.Errorf("start: %w", err)
			}
			end, err := schedule.ParseClock(endFlag)
			if err != nil {
				return fmt.Errorf("end: %w", err)
			}

			activity, err := schedule.NewActivity(
				schedule.CombineClock(date, start),
				schedule.CombineClock(date, end),
				description,
			)
			if err != nil {
				return err
			}

			writer := schedule.NewWriter(manager, cfg.Location)
			if err := writer.Append(ctx, activity); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", formatActivity(activity))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Activity date in YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&startFlag, "start", "", "Start time in HH:MM:SS")
	cmd.Flags().StringVar(&endFlag, "end", "", "End time in HH:MM:SS")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}

func newEditCommand(ctx context.Context, manager *files.Manager, cfg *config.Config) *cobra.Command {
	var (
		dateFlag  string
		startFlag string
		endFlag   string
	)

	cmd := &cobra.Command{
		Use:   "edit <index> [description...]",
		Short: "Modify an activity by index.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil || index <= 0 {
				return fmt.Errorf("index must be a positive integer")
			}

			reader := schedule.NewReader(manager, cfg.Location)
			activities, _, err := reader.Load(ctx)
			if err != nil {
				return err
			}
			if index > len(activities) {
				return schedule.ErrInvalidIndex
			}

			current := activities[index-1]
			date := current.Date()
			starts := current.Starts
			ends := current.Ends
			description := current.Description

			if dateFlag != "" {
				date, err = resolveDate(dateFlag, cfg.Location)
				if err != nil {
					return err
				}
			}
			if startFlag != "" {
				clock, err := schedule.ParseClock(startFlag)
				if err != nil {
					return fmt.Errorf("start: %w", err)
				}
				starts = clock
			}
			if endFlag != "" {
				clock, err := schedule.ParseClock(endFlag)
				if err != nil {
					return fmt.Errorf("end: %w", err)
				}
				ends = clock
			}
			if len(args) > 1 {
				description = strings.TrimSpace(strings.Join(args[1:], " "))
			}

			updated, err := schedule.NewActivity(
				schedule.CombineClock(date, starts),
				schedule.CombineClock(date, ends),
				description,
			)
			if err != nil {
				return err
			}

			writer := schedule.NewWriter(manager, cfg.Location)
			if err := writer.Edit(ctx, index, updated); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated activity %d: %s\n", index, formatActivity(updated))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Activity date in YYYY-MM-DD (default: unchanged)")
	cmd.Flags().StringVar(&startFlag, "start", "", "Start time in HH:MM:SS (default: unchanged)")
	cmd.Flags().StringVar(&endFlag, "end", "", "End time in HH:MM:SS (default: unchanged)")

	return cmd
}

func newDeleteCommand(ctx context.Context, manager *files.Manager, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <index>",
		Short: "Remove an activity by index.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil || index <= 0 {
				return fmt.Errorf("index must be a positive integer")
			}

			writer := schedule.NewWriter(manager, cfg.Location)
			removed, err := writer.Delete(ctx, index)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted activity %d: %s\n", index, formatActivity(removed))
			return nil
		},
	}

	return cmd
}
