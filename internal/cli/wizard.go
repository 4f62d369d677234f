package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/cli/formatter"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/leancanvas"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/storybrand"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var errNotInteractive = errors.New("the wizard needs an interactive terminal")

// startupsHuhTheme returns a huh theme using the Gruvbox palette.
func startupsHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// answers holds wizard input by field key.
type answers map[string]*string

func (a answers) bind(key string) *string {
	if v, ok := a[key]; ok {
		return v
	}
	v := new(string)
	a[key] = v
	return v
}

func (a answers) get(key string) string {
	if v, ok := a[key]; ok && v != nil {
		return *v
	}
	return ""
}

// brandScriptForm asks every wizard field, one page per SB7 element.
func brandScriptForm(ans answers) *huh.Form {
	var (
		groups  []*huh.Group
		current []huh.Field
		element storybrand.ElementKey
	)
	flush := func() {
		if len(current) == 0 {
			return
		}
		title := string(element)
		if e, ok := storybrand.ElementByKey(string(element)); ok {
			title = fmt.Sprintf("%d. %s", e.Number, e.Name)
		}
		groups = append(groups, huh.NewGroup(current...).Title(title))
		current = nil
	}

	for _, f := range storybrand.WizardFields() {
		if f.Element != element {
			flush()
			element = f.Element
		}
		if f.List {
			current = append(current, huh.NewText().
				Title(f.Title).
				Placeholder(f.Placeholder).
				Lines(4).
				Value(ans.bind(f.Key)))
			continue
		}
		current = append(current, huh.NewInput().
			Title(f.Title).
			Placeholder(f.Placeholder).
			Value(ans.bind(f.Key)))
	}
	flush()

	return huh.NewForm(groups...).WithTheme(startupsHuhTheme()).WithShowHelp(true)
}

// brandScriptFromAnswers fills a BrandScript from wizard answers.
func brandScriptFromAnswers(ans answers) (storybrand.BrandScript, error) {
	var script storybrand.BrandScript
	for _, f := range storybrand.WizardFields() {
		if err := script.Set(f.Key, ans.get(f.Key)); err != nil {
			return storybrand.BrandScript{}, err
		}
	}
	return script, nil
}

// canvasForm asks for every block in fill order, one entry per line.
func canvasForm(ans answers) *huh.Form {
	blocks := leancanvas.Blocks()
	groups := make([]*huh.Group, 0, len(blocks))
	for _, b := range blocks {
		desc := b.Prompt
		if len(b.Questions) > 0 {
			desc += "\n" + strings.Join(b.Questions, "\n")
		}
		groups = append(groups, huh.NewGroup(
			huh.NewText().
				Title(fmt.Sprintf("%d. %s", b.Order, b.Name)).
				Description(desc).
				Lines(4).
				Value(ans.bind(string(b.Key))),
		))
	}
	return huh.NewForm(groups...).WithTheme(startupsHuhTheme()).WithShowHelp(true)
}

// canvasFromAnswers fills a Canvas from wizard answers.
func canvasFromAnswers(ans answers) leancanvas.Canvas {
	var c leancanvas.Canvas
	for _, b := range leancanvas.Blocks() {
		c.Set(b.Key, strings.Split(ans.get(string(b.Key)), "\n"))
	}
	return c
}
