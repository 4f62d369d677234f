package cli

import (
	"context"
	"errors"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type workDoneMsg struct{ err error }

// spinnerModel shows a spinner until the work it watches reports back.
type spinnerModel struct {
	spinner  spinner.Model
	message  string
	done     bool
	canceled bool
}

func newSpinnerModel(message string) spinnerModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
	return spinnerModel{spinner: sp, message: message}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workDoneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			m.canceled = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done || m.canceled {
		return ""
	}
	return m.spinner.View() + " " + formatter.Dim(m.message)
}

// spin runs work while a spinner animates on stderr. Without a terminal
// it just runs work. Ctrl+C cancels the work's context.
func (a *App) spin(cmd *cobra.Command, message string, work func(ctx context.Context) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if !a.interactive() {
		return work(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newSpinnerModel(message), tea.WithOutput(cmd.ErrOrStderr()), tea.WithContext(ctx))
	errCh := make(chan error, 1)
	go func() {
		err := work(ctx)
		errCh <- err
		p.Send(workDoneMsg{err: err})
	}()

	final, runErr := p.Run()
	if m, ok := final.(spinnerModel); ok && m.canceled {
		cancel()
	}
	err := <-errCh
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) && err == nil {
		return runErr
	}
	return err
}
