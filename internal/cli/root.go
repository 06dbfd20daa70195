package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/config"
	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/files"
	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/ui"
	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/version"
)

// NewRootCommand creates the top-level Cobra command to host subcommands and
// launch the live dashboard.
func NewRootCommand(ctx context.Context, manager *files.Manager, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "btz",
		Short:   "Track-day schedule dashboard with live status and countdowns.",
		Version: version.Info(),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := ui.NewModel(ctx, manager, cfg)
			if _, err := tea.NewProgram(m).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newBoardCommand(ctx, manager, cfg),
		newNextCommand(ctx, manager, cfg),
		newListCommand(ctx, manager, cfg),
		newAddCommand(ctx, manager, cfg),
		newEditCommand(ctx, manager, cfg),
		newDeleteCommand(ctx, manager, cfg),
		newImportCommand(ctx, manager, cfg),
		newExportCommand(ctx, manager, cfg),
	)

	return cmd
}

// ExecuteCommand wires the data directory, config, and file manager, then
// executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	basePath, err := files.ResolveBasePath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(basePath)
	if err != nil {
		return err
	}
	manager, err := files.NewManager(basePath, cfg.ScheduleFile)
	if err != nil {
		return err
	}
	cmd := NewRootCommand(ctx, manager, cfg)
	return cmd.Execute()
}

// Main is a helper used by cmd/btz/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
