package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/config"
	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/files"
	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/schedule"
)

func newBoardCommand(ctx context.Context, manager *files.Manager, cfg *config.Config) *cobra.Command {
	var (
		atFlag   string
		dateFlag string
	)

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the classified schedule with countdowns.",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := resolveNow(atFlag, cfg.Location)
			if err != nil {
				return err
			}

			reader := schedule.NewReader(manager, cfg.Location)
			activities, rejected, err := reader.Load(ctx)
			if err != nil {
				return err
			}

			if dateFlag != "" {
				day, err := resolveDate(dateFlag, cfg.Location)
				if err != nil {
					return err
				}
				activities = filterByDate(activities, day)
			}

			printRejected(cmd, rejected)
			printBoard(cmd, schedule.Classify(activities, now))
			return nil
		},
	}

	cmd.Flags().StringVar(&atFlag, "at", "", "Reference time, HH:MM:SS or \"YYYY-MM-DD HH:MM:SS\" (default: now)")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Only show activities on this date, YYYY-MM-DD")

	return cmd
}

func newNextCommand(ctx context.Context, manager *files.Manager, cfg *config.Config) *cobra.Command {
	var atFlag string

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the next activity and how long until it starts.",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := resolveNow(atFlag, cfg.Location)
			if err != nil {
				return err
			}

			reader := schedule.NewReader(manager, cfg.Location)
			activities, _, err := reader.Load(ctx)
			if err != nil {
				return err
			}

			board := schedule.Classify(activities, now)
			next, ok := board.Next()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No upcoming activities.")
				return nil
			}

			until, _ := board.TimeUntilNext()
			fmt.Fprintf(cmd.OutOrStdout(), "Next: %s in %s\n",
				formatActivity(next.Activity), schedule.FormatCountdown(until))
			return nil
		},
	}

	cmd.Flags().StringVar(&atFlag, "at", "", "Reference time, HH:MM:SS or \"YYYY-MM-DD HH:MM:SS\" (default: now)")

	return cmd
}

func newListCommand(ctx context.Context, manager *files.Manager, cfg *config.Config) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List activities with the indices used by edit and delete.",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := schedule.NewReader(manager, cfg.Location)
			activities, rejected, err := reader.Load(ctx)
			if err != nil {
				return err
			}

			printRejected(cmd, rejected)

			if dateFlag == "" {
				printActivities(cmd, activities)
				return nil
			}

			// Indices stay aligned with the unfiltered listing so they can
			// be passed straight to edit and delete.
			day, err := resolveDate(dateFlag, cfg.Location)
			if err != nil {
				return err
			}
			printed := 0
			for i, a := range activities {
				if !a.Date().Equal(day) {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s\n", i+1, formatActivity(a))
				printed++
			}
			if printed == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No activities on %s\n", day.Format(schedule.DateLayout))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Only show activities on this date, YYYY-MM-DD")

	return cmd
}

func filterByDate(activities []schedule.Activity, day time.Time) []schedule.Activity {
	var filtered []schedule.Activity
	for _, a := range activities {
		if a.Date().Equal(day) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
