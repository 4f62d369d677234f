package formatter

import (
	"strings"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/launchkit"
)

// FormatKit renders every part of a launch kit that was generated.
func FormatKit(k *launchkit.Kit) string {
	var b strings.Builder
	b.WriteString(Bold(k.Idea.Name) + " " + Dim(k.Idea.Description) + "\n\n")
	if k.Names != nil {
		b.WriteString(Header("Names"))
		b.WriteString("\n")
		b.WriteString(FormatNameSet(k.Names))
		b.WriteString("\n")
	}
	if k.Headlines != nil {
		b.WriteString(Header("Headlines"))
		b.WriteString("\n")
		b.WriteString(FormatHeadlineSet(k.Headlines))
		b.WriteString("\n")
	}
	if k.Canvas != nil {
		b.WriteString(Header("Lean Canvas"))
		b.WriteString("\n")
		b.WriteString(FormatCanvas(*k.Canvas))
		b.WriteString("\n")
	}
	if k.BrandScript != nil {
		b.WriteString(Header("BrandScript"))
		b.WriteString("\n")
		b.WriteString(FormatScriptStatus(*k.BrandScript))
	}
	return b.String()
}
