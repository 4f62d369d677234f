package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestSpinnerModel_QuitsWhenWorkIsDone(t *testing.T) {
	d := teatest.New(t, newSpinnerModel("Naming…"))
	d.Init()
	assert.Contains(t, d.View(), "Naming…")

	d.Send(workDoneMsg{})
	assert.True(t, d.Quitting)
	assert.True(t, d.Model.(spinnerModel).done)
	assert.Empty(t, d.View())
}

func TestSpinnerModel_CtrlCCancels(t *testing.T) {
	d := teatest.New(t, newSpinnerModel("Naming…"))
	d.Init()
	d.Type("x")
	assert.False(t, d.Quitting)

	d.Press(tea.KeyCtrlC)
	assert.True(t, d.Quitting)
	assert.True(t, d.Model.(spinnerModel).canceled)
}

func TestSpin_NotInteractiveRunsInline(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	boom := errors.New("boom")

	ran := false
	err := (&App{}).spin(cmd, "working", func(ctx context.Context) error {
		ran = true
		return boom
	})
	assert.True(t, ran)
	assert.ErrorIs(t, err, boom)
}
