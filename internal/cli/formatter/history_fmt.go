package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/domain"
)

// FormatArtifacts renders stored generations, newest first.
func FormatArtifacts(artifacts []*domain.Artifact, now time.Time) string {
	if len(artifacts) == 0 {
		return Dim("Nothing generated yet.") + "\n"
	}
	rows := make([][]string, len(artifacts))
	for i, a := range artifacts {
		kit := ""
		if a.KitID != "" {
			kit = Dim(shortID(a.KitID))
		}
		rows[i] = []string{shortID(a.ID), string(a.Framework), a.Kind, RelativeDateFrom(a.CreatedAt, now), kit}
	}
	return RenderTable([]string{"ID", "FRAMEWORK", "KIND", "CREATED", "KIT"}, rows)
}

// FormatArtifact renders one artifact with its payloads pretty-printed.
func FormatArtifact(a *domain.Artifact) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s %s", a.Framework, a.Kind)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("id:     "), a.ID))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("created:"), a.CreatedAt.Local().Format("2006-01-02 15:04")))
	if a.Model != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("model:  "), a.Model))
	}
	if a.KitID != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("kit:    "), a.KitID))
	}
	b.WriteString("\n" + Bold("Input") + "\n")
	b.WriteString(indentJSON(a.Input) + "\n")
	b.WriteString("\n" + Bold("Output") + "\n")
	b.WriteString(indentJSON(a.Output) + "\n")
	return b.String()
}

func indentJSON(raw json.RawMessage) string {
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "  ", "  "); err != nil {
		return "  " + string(raw)
	}
	return "  " + out.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
