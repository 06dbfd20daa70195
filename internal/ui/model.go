package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/config"
	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/files"
	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/schedule"
)

// Model owns Bubble Tea state for the live dashboard. The loaded activity
// slice is the snapshot each refresh cycle classifies; ticks only move the
// clock, never touch the disk.
type Model struct {
	ctx    context.Context
	reader *schedule.Reader
	writer *schedule.Writer

	loc      *time.Location
	interval time.Duration

	activities []schedule.Activity
	rejected   []schedule.RowError
	board      schedule.Board
	now        time.Time

	selected int
	paused   bool

	mode         mode
	inputBuffer  string
	inputLabel   string
	editingIndex int

	loading    bool
	statusLine string
	errorLine  string

	bar progress.Model
}

type mode uint8

const (
	modeNormal mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
)

type tickMsg time.Time

type scheduleLoadedMsg struct {
	activities []schedule.Activity
	rejected   []schedule.RowError
	err        error
}

type mutationResultMsg struct {
	verb  string
	index int
	err   error
}

// NewModel seeds a Bubble Tea model with required collaborators.
func NewModel(ctx context.Context, manager *files.Manager, cfg *config.Config) Model {
	return Model{
		ctx:          ctx,
		reader:       schedule.NewReader(manager, cfg.Location),
		writer:       schedule.NewWriter(manager, cfg.Location),
		loc:          cfg.Location,
		interval:     cfg.RefreshInterval,
		now:          time.Now().In(cfg.Location),
		mode:         modeNormal,
		editingIndex: -1,
		loading:      true,
		statusLine:   "Loading schedule...",
		bar:          progress.New(progress.WithSolidFill("#58d68d")),
	}
}

// Init loads the schedule and starts the refresh ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadScheduleCmd(), m.tickCmd())
}

// Update wires state transitions from user input, ticks, and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		return m.handleTick(msg)
	case scheduleLoadedMsg:
		return m.handleScheduleLoaded(msg)
	case mutationResultMsg:
		return m.handleMutationResult(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeNormal {
		return m.handleInputKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "down", "j":
		if len(m.board.Items) == 0 {
			return m, nil
		}
		if m.selected < len(m.board.Items)-1 {
			m.selected++
			m.errorLine = ""
		}
	case "up", "k":
		if len(m.board.Items) == 0 {
			return m, nil
		}
		if m.selected > 0 {
			m.selected--
			m.errorLine = ""
		}
	case "r":
		m.loading = true
		m.statusLine = "Reloading schedule..."
		m.errorLine = ""
		return m, m.loadScheduleCmd()
	case "p":
		m.paused = !m.paused
		if m.paused {
			m.statusLine = "Auto-refresh paused."
		} else {
			m.statusLine = "Auto-refresh resumed."
		}
	case "a":
		return m.beginAdd()
	case "e":
		return m.beginEdit()
	case "d":
		return m.beginDelete()
	}

	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeAdd, modeEdit:
		switch msg.Type {
		case tea.KeyEnter:
			return m.submitInput()
		case tea.KeyEsc:
			return m.cancelInput("Cancelled.")
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyBackspace, tea.KeyCtrlH:
			if len(m.inputBuffer) > 0 {
				m.inputBuffer = trimLastRune(m.inputBuffer)
			}
		case tea.KeyCtrlU:
			m.inputBuffer = ""
		case tea.KeySpace:
			m.inputBuffer += " "
		case tea.KeyRunes:
			m.inputBuffer += string(msg.Runes)
		}
		return m, nil
	case modeConfirmDelete:
		switch msg.String() {
		case "y", "Y":
			return m.confirmDelete()
		case "n", "N", "esc":
			return m.cancelInput("Delete cancelled.")
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) beginAdd() (tea.Model, tea.Cmd) {
	m.mode = modeAdd
	m.inputBuffer = ""
	m.inputLabel = "New activity ([YYYY-MM-DD] HH:MM:SS HH:MM:SS description; Enter to save, Esc to cancel):"
	m.statusLine = ""
	m.errorLine = ""
	m.editingIndex = -1
	return m, nil
}

func (m Model) beginEdit() (tea.Model, tea.Cmd) {
	if len(m.board.Items) == 0 {
		return m, nil
	}

	index := m.selected
	activity := m.board.Items[index].Activity

	m.mode = modeEdit
	m.editingIndex = index
	m.inputBuffer = activityToInput(activity)
	m.inputLabel = fmt.Sprintf("Edit activity %d (YYYY-MM-DD HH:MM:SS HH:MM:SS description; Enter to save, Esc to cancel):", index+1)
	m.statusLine = ""
	m.errorLine = ""
	return m, nil
}

func (m Model) beginDelete() (tea.Model, tea.Cmd) {
	if len(m.board.Items) == 0 {
		return m, nil
	}

	m.mode = modeConfirmDelete
	m.editingIndex = m.selected
	m.statusLine = ""
	m.errorLine = ""
	return m, nil
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.inputBuffer)
	if input == "" {
		m.errorLine = "Activity cannot be empty."
		return m, nil
	}

	defaultDate := today(m.loc)
	if m.mode == modeEdit && m.editingIndex >= 0 && m.editingIndex < len(m.board.Items) {
		defaultDate = m.board.Items[m.editingIndex].Activity.Date()
	}

	activity, err := parseActivityInput(input, defaultDate)
	if err != nil {
		m.errorLine = err.Error()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.mode {
	case modeAdd:
		cmd = m.appendActivityCmd(activity)
		m.statusLine = "Saving activity..."
	case modeEdit:
		if m.editingIndex < 0 || m.editingIndex >= len(m.board.Items) {
			return m.cancelInput("No activity selected.")
		}
		cmd = m.editActivityCmd(m.editingIndex, activity)
		m.statusLine = "Updating activity..."
	default:
		return m, nil
	}

	m.mode = modeNormal
	m.inputBuffer = ""
	m.inputLabel = ""
	m.errorLine = ""
	m.editingIndex = -1
	return m, cmd
}

func (m Model) cancelInput(message string) (tea.Model, tea.Cmd) {
	m.mode = modeNormal
	m.inputBuffer = ""
	m.inputLabel = ""
	m.editingIndex = -1
	if message != "" {
		m.statusLine = message
	}
	m.errorLine = ""
	return m, nil
}

func (m Model) confirmDelete() (tea.Model, tea.Cmd) {
	if m.editingIndex < 0 || m.editingIndex >= len(m.board.Items) {
		return m.cancelInput("No activity selected.")
	}
	index := m.editingIndex
	m.mode = modeNormal
	m.statusLine = "Deleting activity..."
	m.errorLine = ""
	m.editingIndex = -1
	return m, m.deleteActivityCmd(index)
}

func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if !m.paused {
		m.now = time.Time(msg).In(m.loc)
		m.board = schedule.Classify(m.activities, m.now)
		m.clampSelection()
	}
	return m, m.tickCmd()
}

func (m Model) handleScheduleLoaded(msg scheduleLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Failed to load schedule: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}

	m.errorLine = ""
	m.activities = msg.activities
	m.rejected = msg.rejected
	m.now = time.Now().In(m.loc)
	m.board = schedule.Classify(m.activities, m.now)
	m.clampSelection()

	m.statusLine = fmt.Sprintf("Loaded %d activit%s.", len(m.activities), pluralY(len(m.activities)))
	if len(m.rejected) > 0 {
		m.statusLine = fmt.Sprintf("Loaded %d activit%s, skipped %d bad row%s.",
			len(m.activities), pluralY(len(m.activities)),
			len(m.rejected), pluralS(len(m.rejected)))
	}
	return m, nil
}

func (m Model) handleMutationResult(msg mutationResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("%s failed: %v", msg.verb, msg.err)
		m.statusLine = ""
		return m, nil
	}

	m.errorLine = ""
	m.statusLine = fmt.Sprintf("%s done.", msg.verb)
	m.loading = true
	return m, m.loadScheduleCmd()
}

func (m *Model) clampSelection() {
	if len(m.board.Items) == 0 {
		m.selected = 0
		return
	}
	if m.selected >= len(m.board.Items) {
		m.selected = len(m.board.Items) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) loadScheduleCmd() tea.Cmd {
	reader := m.reader
	ctx := m.ctx
	return func() tea.Msg {
		activities, rejected, err := reader.Load(ctx)
		return scheduleLoadedMsg{activities: activities, rejected: rejected, err: err}
	}
}

func (m Model) appendActivityCmd(activity schedule.Activity) tea.Cmd {
	writer := m.writer
	ctx := m.ctx
	return func() tea.Msg {
		if err := writer.Append(ctx, activity); err != nil {
			return mutationResultMsg{verb: "Add", err: err}
		}
		return mutationResultMsg{verb: "Add"}
	}
}

func (m Model) editActivityCmd(index int, activity schedule.Activity) tea.Cmd {
	writer := m.writer
	ctx := m.ctx
	return func() tea.Msg {
		if err := writer.Edit(ctx, index+1, activity); err != nil {
			return mutationResultMsg{verb: "Edit", index: index, err: err}
		}
		return mutationResultMsg{verb: "Edit", index: index}
	}
}

func (m Model) deleteActivityCmd(index int) tea.Cmd {
	writer := m.writer
	ctx := m.ctx
	return func() tea.Msg {
		if _, err := writer.Delete(ctx, index+1); err != nil {
			return mutationResultMsg{verb: "Delete", index: index, err: err}
		}
		return mutationResultMsg{verb: "Delete", index: index}
	}
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("BTZ Track Schedule"))
	b.WriteByte('\n')

	clockLine := fmt.Sprintf("Now: %s %s", m.now.Format("02/01"), m.now.Format(schedule.ClockLayout))
	if m.paused {
		clockLine += "  (paused)"
	}
	b.WriteString(clockLine)
	b.WriteByte('\n')

	b.WriteString(m.countdownLine())
	b.WriteString("\n\n")

	if current, ok := m.board.Current(); ok {
		pct, _ := m.board.Progress()
		b.WriteString(fmt.Sprintf("Running: %s (%d%%)\n", current.Activity.Description, int(pct*100)))
		b.WriteString(m.bar.ViewAs(pct))
		b.WriteString("\n\n")
	}

	if m.loading {
		b.WriteString("Loading...\n")
	} else if len(m.board.Items) == 0 {
		b.WriteString("(no activities)\n")
	} else {
		b.WriteString(headerRowStyle.Render(fmt.Sprintf("  %-10s %-8s %-8s %-9s %-30s %s",
			"Date", "Start", "End", "Duration", "Activity", "Status")))
		b.WriteByte('\n')
		for i, item := range m.board.Items {
			cursor := " "
			if i == m.selected {
				cursor = ">"
			}
			row := fmt.Sprintf("%-10s %-8s %-8s %-9s %-30s %s",
				item.Activity.Starts.Format(schedule.DateLayout),
				item.Activity.Starts.Format(schedule.ClockLayout),
				item.Activity.Ends.Format(schedule.ClockLayout),
				schedule.FormatCountdown(item.Activity.Duration()),
				item.Activity.Description,
				item.Status,
			)
			b.WriteString(cursor)
			b.WriteByte(' ')
			b.WriteString(styleFor(item.Status).Render(row))
			b.WriteByte('\n')
		}
	}

	if len(m.rejected) > 0 {
		b.WriteString(errorLineStyle.Render(fmt.Sprintf("\n%d row%s skipped at load:", len(m.rejected), pluralS(len(m.rejected)))))
		b.WriteByte('\n')
		for _, r := range m.rejected {
			b.WriteString(errorLineStyle.Render("  " + r.Error()))
			b.WriteByte('\n')
		}
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(errorLineStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(statusLineStyle.Render(m.statusLine))
		b.WriteByte('\n')
	}

	switch m.mode {
	case modeAdd, modeEdit:
		b.WriteString("\n")
		b.WriteString(m.inputLabel)
		b.WriteByte('\n')
		b.WriteString("> ")
		b.WriteString(m.inputBuffer)
		b.WriteByte('\n')
	case modeConfirmDelete:
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Delete activity %d? (y/n, Esc to cancel)", m.editingIndex+1))
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(statusLineStyle.Render("Keys: j/k select  a add  e edit  d delete  r reload  p pause  q quit"))
	b.WriteByte('\n')

	return b.String()
}

func (m Model) countdownLine() string {
	parts := make([]string, 0, 3)
	if remaining, ok := m.board.TimeRemaining(); ok {
		parts = append(parts, fmt.Sprintf("Ends in %s", schedule.FormatCountdown(remaining)))
	}
	if until, ok := m.board.TimeUntilNext(); ok {
		parts = append(parts, fmt.Sprintf("Next in %s", schedule.FormatCountdown(until)))
	}
	parts = append(parts, fmt.Sprintf("Completed %d/%d", m.board.CompletedCount(), len(m.board.Items)))
	return strings.Join(parts, "  |  ")
}

func today(loc *time.Location) time.Time {
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
}

func trimLastRune(input string) string {
	if input == "" {
		return input
	}
	runes := []rune(input)
	return string(runes[:len(runes)-1])
}

func pluralY(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}

func pluralS(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

func activityToInput(a schedule.Activity) string {
	return strings.Join([]string{
		a.Starts.Format(schedule.DateLayout),
		a.Starts.Format(schedule.ClockLayout),
		a.Ends.Format(schedule.ClockLayout),
		a.Description,
	}, " ")
}

// parseActivityInput reads "[YYYY-MM-DD] HH:MM[:SS] HH:MM[:SS] description".
// Without an explicit date the activity lands on defaultDate.
func parseActivityInput(input string, defaultDate time.Time) (schedule.Activity, error) {
	fields := strings.Fields(input)

	date := defaultDate
	if len(fields) > 0 {
		if parsed, err := time.ParseInLocation(schedule.DateLayout, fields[0], defaultDate.Location()); err == nil {
			date = parsed
			fields = fields[1:]
		}
	}

	if len(fields) < 3 {
		return schedule.Activity{}, fmt.Errorf("expected [YYYY-MM-DD] HH:MM:SS HH:MM:SS description")
	}

	start, err := schedule.ParseClock(fields[0])
	if err != nil {
		return schedule.Activity{}, fmt.Errorf("start: %w", err)
	}
	end, err := schedule.ParseClock(fields[1])
	if err != nil {
		return schedule.Activity{}, fmt.Errorf("end: %w", err)
	}
	description := strings.TrimSpace(strings.Join(fields[2:], " "))
	if description == "" {
		return schedule.Activity{}, fmt.Errorf("description is required")
	}

	return schedule.NewActivity(
		schedule.CombineClock(date, start),
		schedule.CombineClock(date, end),
		description,
	)
}
