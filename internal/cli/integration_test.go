package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/config"
	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/files"
	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/schedule"
)

func TestCLIWorkflowEndToEnd(t *testing.T) {
	ctx := context.Background()
	mgr, cfg := newTempEnv(t)

	// 1. Add two activities out of order.
	addOut := executeCommand(t, newAddCommand(ctx, mgr, cfg),
		"--date", "2024-01-01",
		"--start", "10:00:00",
		"--end", "11:00:00",
		"Qualifying",
	)
	assertContains(t, addOut, "Added 2024-01-01 10:00:00-11:00:00 Qualifying (01:00:00)")

	addOut = executeCommand(t, newAddCommand(ctx, mgr, cfg),
		"--date", "2024-01-01",
		"--start", "08:00",
		"--end", "09:00",
		"Morning", "briefing",
	)
	assertContains(t, addOut, "Added 2024-01-01 08:00:00-09:00:00 Morning briefing (01:00:00)")

	// 2. List shows them sorted by start.
	listOut := executeCommand(t, newListCommand(ctx, mgr, cfg))
	assertContains(t, listOut, " 1. 2024-01-01 08:00:00-09:00:00 Morning briefing (01:00:00)")
	assertContains(t, listOut, " 2. 2024-01-01 10:00:00-11:00:00 Qualifying (01:00:00)")

	// 3. Edit the first activity's end time and description.
	editOut := executeCommand(t, newEditCommand(ctx, mgr, cfg),
		"--end", "09:30:00",
		"1",
		"Extended", "briefing",
	)
	assertContains(t, editOut, "Updated activity 1: 2024-01-01 08:00:00-09:30:00 Extended briefing (01:30:00)")

	// 4. The board reflects the edit.
	boardOut := executeCommand(t, newBoardCommand(ctx, mgr, cfg),
		"--at", "2024-01-01 08:30:00",
	)
	assertContains(t, boardOut, "[in progress] 2024-01-01 08:00:00-09:30:00 Extended briefing (01:30:00)")
	assertContains(t, boardOut, "[next       ] 2024-01-01 10:00:00-11:00:00 Qualifying (01:00:00)")
	assertContains(t, boardOut, "Time remaining: 01:00:00")
	assertContains(t, boardOut, "Time until next: 01:30:00")

	// 5. Delete the first activity.
	deleteOut := executeCommand(t, newDeleteCommand(ctx, mgr, cfg), "1")
	assertContains(t, deleteOut, "Deleted activity 1: 2024-01-01 08:00:00-09:30:00 Extended briefing (01:30:00)")

	// 6. Confirm only the qualifying session remains.
	reader := schedule.NewReader(mgr, cfg.Location)
	activities, rejected, err := reader.Load(ctx)
	if err != nil {
		t.Fatalf("reader.Load: %v", err)
	}
	if len(rejected) != 0 {
		t.Fatalf("unexpected rejected rows: %v", rejected)
	}
	if len(activities) != 1 || activities[0].Description != "Qualifying" {
		t.Fatalf("unexpected remaining activities: %#v", activities)
	}
}

func TestEditRejectsInvertedRange(t *testing.T) {
	ctx := context.Background()
	mgr, cfg := newTempEnv(t)

	executeCommand(t, newAddCommand(ctx, mgr, cfg),
		"--date", "2024-01-01",
		"--start", "08:00",
		"--end", "09:00",
		"Briefing",
	)

	cmd := newEditCommand(ctx, mgr, cfg)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--end", "07:00:00", "1"})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got output %q", buf.String())
	}
	if !strings.Contains(err.Error(), "end must be after start") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteOutOfRange(t *testing.T) {
	ctx := context.Background()
	mgr, cfg := newTempEnv(t)

	cmd := newDeleteCommand(ctx, mgr, cfg)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"3"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for out-of-range index")
	}
}

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute(%q): %v\n%s", args, err, buf.String())
	}
	return buf.String()
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q missing substring %q", output, want)
	}
}

func newTempEnv(t *testing.T) (*files.Manager, *config.Config) {
	t.Helper()
	mgr, err := files.NewManager(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	cfg := &config.Config{
		Location:        time.UTC,
		RefreshInterval: time.Second,
		ScheduleFile:    files.DefaultFileName,
	}
	return mgr, cfg
}
