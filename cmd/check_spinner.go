package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bnema/studio-autostop/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type checkFunc func(context.Context) (application.Report, error)

type checkResultMsg struct {
	report application.Report
	err    error
}

// checkProgress shows a spinner with the elapsed time while the Jupyter
// server and the filesystem are inspected.
type checkProgress struct {
	spinner spinner.Model
	started time.Time
	run     tea.Cmd
	result  checkResultMsg
	done    bool
}

func newCheckProgress(ctx context.Context, check checkFunc) checkProgress {
	return checkProgress{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		started: time.Now(),
		run: func() tea.Msg {
			report, err := check(ctx)
			return checkResultMsg{report: report, err: err}
		},
	}
}

func (m checkProgress) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m checkProgress) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case checkResultMsg:
		m.result = msg
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m checkProgress) View() string {
	if m.done {
		return ""
	}

	elapsed := time.Since(m.started).Truncate(time.Second)
	return fmt.Sprintf("%s Checking space activity (%s)", m.spinner.View(), elapsed)
}

func checkWithProgress(ctx context.Context, output io.Writer, check checkFunc) (application.Report, error) {
	final, err := tea.NewProgram(
		newCheckProgress(ctx, check),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	).Run()
	if err != nil {
		return application.Report{}, err
	}

	progress, ok := final.(checkProgress)
	if !ok {
		return application.Report{}, fmt.Errorf("unexpected final spinner model type %T", final)
	}

	return progress.result.report, progress.result.err
}
