package landingpage

import (
	"fmt"
	"math"
	"strings"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/scoring"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/textmetrics"
)

// Finding is the result of applying one heuristic to a page.
type Finding struct {
	Heuristic string   `json:"heuristic"`
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	Passed    bool     `json:"passed"`
	Detail    string   `json:"detail"`
	Fix       string   `json:"fix,omitempty"`
}

// GruntResult answers one grunt-test question for a page.
type GruntResult struct {
	Key      string `json:"key"`
	Question string `json:"question"`
	Passed   bool   `json:"passed"`
	Detail   string `json:"detail"`
}

// AuditReport is the full audit of a page.
type AuditReport struct {
	URL          string           `json:"url,omitempty"`
	Headline     HeadlineAnalysis `json:"headline"`
	ReadingLevel int              `json:"reading_level"`
	Grunt        []GruntResult    `json:"grunt_test"`
	Findings     []Finding        `json:"findings"`
	// Score is the percentage of heuristics passed, 0 to 100.
	Score int `json:"score"`
}

// Failed returns the findings that did not pass.
func (r AuditReport) Failed() []Finding {
	out := []Finding{}
	for _, f := range r.Findings {
		if !f.Passed {
			out = append(out, f)
		}
	}
	return out
}

// PassesGruntTest reports whether all three grunt questions pass.
func (r AuditReport) PassesGruntTest() bool {
	for _, g := range r.Grunt {
		if !g.Passed {
			return false
		}
	}
	return len(r.Grunt) > 0
}

// Audit applies every heuristic and the grunt test to p.
func Audit(p Page) AuditReport {
	headlineText := p.Title
	if len(p.H1) > 0 {
		headlineText = p.H1[0]
	}
	headline := AnalyzeHeadline(headlineText)
	reading := textmetrics.EstimateReadingLevel(p.BodyText)
	words := PowerWordsIn(p.BodyText)
	distinct := distinctCTAs(p.CTAs)

	results := map[string]struct {
		passed bool
		detail string
	}{
		heuristicClearHeadline: {headline.Score >= 60 && len(p.H1) > 0,
			fmt.Sprintf("headline %q scores %d/100", headline.Text, headline.Score)},
		heuristicSubheadline: {len(p.H2) > 0 || p.MetaDescription != "",
			fmt.Sprintf("%d subheadings", len(p.H2))},
		heuristicMetaDesc: {len(p.MetaDescription) >= 50 && len(p.MetaDescription) <= 160,
			fmt.Sprintf("meta description is %d characters", len(p.MetaDescription))},
		heuristicSingleH1: {len(p.H1) == 1,
			fmt.Sprintf("%d H1 headings", len(p.H1))},
		heuristicReadableCopy: {reading > 0 && reading <= 9,
			fmt.Sprintf("body copy reads at grade %d", reading)},
		heuristicImageAlt: {p.ImagesMissingAlt == 0,
			fmt.Sprintf("%d of %d images lack alt text", p.ImagesMissingAlt, p.Images)},
		heuristicVisibleCTA: {len(p.CTAs) > 0,
			fmt.Sprintf("%d calls to action", len(p.CTAs))},
		heuristicTrustSignals: {hasCategory(words, PowerTrust) || mentionsProof(p.BodyText),
			"looked for guarantees, testimonials and security cues"},
		heuristicShortForms: {p.FormFields <= 5,
			fmt.Sprintf("%d form fields", p.FormFields)},
		heuristicFocusedCTA: {len(distinct) > 0 && len(distinct) <= 3,
			fmt.Sprintf("%d distinct actions: %s", len(distinct), strings.Join(distinct, ", "))},
		heuristicUrgencyCue: {hasCategory(words, PowerUrgency),
			"looked for deadlines, limits and 'today' language"},
	}

	report := AuditReport{
		URL:          p.URL,
		Headline:     headline,
		ReadingLevel: reading,
		Findings:     make([]Finding, 0, len(heuristics)),
	}
	passed := 0
	for _, h := range heuristics {
		r := results[h.Slug]
		f := Finding{Heuristic: h.Slug, Name: h.Name, Category: h.Category, Passed: r.passed, Detail: r.detail}
		if r.passed {
			passed++
		} else {
			f.Fix = h.Fix
		}
		report.Findings = append(report.Findings, f)
	}
	report.Score = int(math.Round(100 * float64(passed) / float64(len(heuristics))))

	report.Grunt = []GruntResult{
		gruntResult(gruntOffer, len(p.H1) > 0 && headline.Words > 0, "main headline: "+orNone(headline.Text)),
		gruntResult(gruntBetter, len(p.H2) > 0 || p.MetaDescription != "", "subheadline: "+orNone(first(p.H2))),
		gruntResult(gruntBuy, len(p.CTAs) > 0, "first call to action: "+orNone(first(p.CTAs))),
	}
	return report
}

func gruntResult(key string, passed bool, detail string) GruntResult {
	q := GruntQuestion{Key: key}
	for _, g := range gruntTest {
		if g.Key == key {
			q = g
		}
	}
	return GruntResult{Key: key, Question: q.Question, Passed: passed, Detail: detail}
}

func distinctCTAs(ctas []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, c := range ctas {
		k := strings.ToLower(strings.TrimSpace(c))
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c)
	}
	return out
}

func mentionsProof(text string) bool {
	t := strings.ToLower(text)
	for _, cue := range []string{"testimonial", "customers", "reviews", "rated", "trusted by", "refund", "ssl"} {
		if strings.Contains(t, cue) {
			return true
		}
	}
	return false
}

func first(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

// Prioritize ranks candidate page experiments by method.
func Prioritize(ideas []scoring.Idea, method scoring.Method) []scoring.Ranked {
	return scoring.Rank(ideas, method)
}
