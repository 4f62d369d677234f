package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/leancanvas"
)

// FormatBlocks renders canvas blocks in fill order.
func FormatBlocks(blocks []leancanvas.Block) string {
	if len(blocks) == 0 {
		return Dim("No blocks match.") + "\n"
	}
	rows := make([][]string, len(blocks))
	for i, bl := range blocks {
		rows[i] = []string{strconv.Itoa(bl.Order), string(bl.Key), bl.Name, string(bl.Side), string(bl.Risk)}
	}
	return RenderTable([]string{"#", "KEY", "BLOCK", "SIDE", "RISK"}, rows)
}

// FormatPivots renders pivot types with the blocks each rewrites.
func FormatPivots(pivots []leancanvas.PivotType) string {
	if len(pivots) == 0 {
		return Dim("No pivots match.") + "\n"
	}
	var b strings.Builder
	for _, p := range pivots {
		keys := make([]string, len(p.Blocks))
		for i, k := range p.Blocks {
			keys[i] = string(k)
		}
		b.WriteString(fmt.Sprintf("%s %s\n", StyleHeader.Render(p.Name), Dim("("+p.Slug+")")))
		b.WriteString(fmt.Sprintf("  %s\n", p.Description))
		b.WriteString(fmt.Sprintf("  %s\n", Dim("e.g. "+p.Example)))
		b.WriteString(fmt.Sprintf("  %s %s\n\n", Dim("rewrites:"), strings.Join(keys, ", ")))
	}
	return b.String()
}

// FormatStages renders the AARRR funnel.
func FormatStages(stages []leancanvas.Stage) string {
	var b strings.Builder
	for _, s := range stages {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleHeader.Render(fmt.Sprintf("%d. %s", s.Order, s.Name)), Dim(s.Question)))
		b.WriteString(fmt.Sprintf("  %s\n", s.Description))
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("metrics:"), strings.Join(s.Metrics, ", ")))
	}
	return b.String()
}

// FormatFunnel renders step counts with the conversion into each step.
func FormatFunnel(stages []leancanvas.Stage, counts []int, rates []float64) string {
	rows := make([][]string, len(counts))
	for i, c := range counts {
		name := fmt.Sprintf("step %d", i+1)
		if i < len(stages) {
			name = stages[i].Name
		}
		conv := "-"
		if i > 0 && i-1 < len(rates) {
			conv = Percent(rates[i-1])
		}
		rows[i] = []string{name, strconv.Itoa(c), conv}
	}
	return RenderTable([]string{"STAGE", "COUNT", "CONVERSION"}, rows)
}

// FormatCanvas renders every block of a canvas with its entries.
func FormatCanvas(c leancanvas.Canvas) string {
	var b strings.Builder
	for _, bl := range leancanvas.Blocks() {
		entries := c.Get(bl.Key)
		b.WriteString(StyleHeader.Render(bl.Name) + "\n")
		if len(entries) == 0 {
			b.WriteString("  " + Dim("(empty)") + "\n")
			continue
		}
		b.WriteString(Bullets(entries))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Complete:"), RenderProgress(c.Completeness(), 14)))
	return b.String()
}

// FormatAssumptions renders the riskiest assumptions, riskiest first.
func FormatAssumptions(a *leancanvas.Assumptions) string {
	var b strings.Builder
	for i, as := range a.Assumptions {
		style := StyleYellow
		if strings.EqualFold(as.Risk, "high") {
			style = StyleRed
		}
		b.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, as.Assumption, style.Render("["+as.Risk+"]")))
		b.WriteString(fmt.Sprintf("   %s %s\n", Dim("block:"), as.Block))
		b.WriteString(fmt.Sprintf("   %s %s\n", Dim("test: "), as.Test))
	}
	return b.String()
}

// FormatPivotOptions renders generated pivot suggestions.
func FormatPivotOptions(p *leancanvas.PivotOptions) string {
	var b strings.Builder
	for _, o := range p.Options {
		b.WriteString(StyleHeader.Render(o.Type) + "\n")
		b.WriteString(fmt.Sprintf("  %s\n", o.Rationale))
		b.WriteString(fmt.Sprintf("  %s %s\n\n", Dim("experiment:"), o.Experiment))
	}
	return b.String()
}
