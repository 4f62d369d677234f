package cli

import (
	"github.com/charmbracelet/glamour"
)

const markdownWidth = 80

// markdown renders md for the terminal. Output that is not a terminal gets
// the markdown source unchanged.
func (a *App) markdown(md string) string {
	if !a.interactive() {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(markdownWidth),
	)
	if err != nil {
		a.logger().Debug("markdown renderer unavailable")
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
