package formatter

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/domain"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/landingpage"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/naming"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/scoring"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/startupschool"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/stats"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/textmetrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatScore_Infinite(t *testing.T) {
	out := stripANSI(FormatScore(scoring.MethodRICE, math.Inf(1)))
	assert.Equal(t, "RICE score: ∞\n", out)
}

func TestFormatRanked(t *testing.T) {
	ranked := []scoring.Ranked{
		{Idea: scoring.Idea{Name: "Referral program"}, Score: 336, Rank: 1},
		{Idea: scoring.Idea{Name: "Dark mode"}, Score: 48, Rank: 2},
	}
	out := stripANSI(FormatRanked(scoring.MethodICE, ranked))
	assert.Contains(t, out, "ICE")
	assert.Contains(t, out, "Referral program")
	assert.Contains(t, out, "336")

	assert.Contains(t, stripANSI(FormatRanked(scoring.MethodICE, nil)), "No ideas")
}

func TestFormatSampleSize(t *testing.T) {
	out := stripANSI(FormatSampleSize(3841, 3))
	assert.Contains(t, out, "Per variant: 3841")
	assert.Contains(t, out, "11523")

	two := stripANSI(FormatSampleSize(3841, 2))
	assert.Contains(t, two, "Total:")
	assert.Contains(t, two, "7682")
	assert.NotContains(t, stripANSI(FormatSampleSize(3841, 1)), "Total")
	assert.Contains(t, stripANSI(FormatSampleSize(0, 2)), "No finite sample size")
}

func TestFormatSignificance(t *testing.T) {
	out := stripANSI(FormatSignificance(stats.Result{ZScore: 2.5, PValue: 0.0124, IsSignificant: true}, 20))
	assert.Contains(t, out, "significant")
	assert.NotContains(t, out, "not significant")
	assert.Contains(t, out, "20%")
	assert.Contains(t, out, "2.500")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "Duration: 3 days\n", stripANSI(FormatDuration(3)))
	assert.Contains(t, stripANSI(FormatDuration(14)), "about 2.0 weeks")
	assert.Contains(t, stripANSI(FormatDuration(0)), "Cannot estimate")
}

func TestFormatContrast(t *testing.T) {
	out := stripANSI(FormatContrast(landingpage.ContrastCheck{
		Foreground: "#000000",
		Background: "#ffffff",
		Ratio:      21,
		Normal:     textmetrics.LevelAAA,
		Large:      textmetrics.LevelAAA,
		PassesAA:   true,
	}))
	assert.Contains(t, out, "21.00:1")
	assert.Contains(t, out, string(textmetrics.LevelAAA))
}

func TestFormatNameScores(t *testing.T) {
	out := stripANSI(FormatNameScores(naming.RankNames([]string{"Stripe", "Xkcdqzt"})))
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Stripe")
	assert.Contains(t, stripANSI(FormatNameScores(nil)), "No names")
}

func TestRunwayReport_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(RunwayReport{Months: math.Inf(1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"runway_months":null,"infinite":true}`, string(data))

	p := startupschool.Projection{Alive: true, MonthsToProfit: 4, MonthsOfCash: -1}
	data, err = json.Marshal(RunwayReport{Months: 12.5, Projection: &p})
	require.NoError(t, err)
	assert.JSONEq(t, `{"runway_months":12.5,"projection":{"alive":true,"months_to_profit":4,"months_of_cash":-1}}`, string(data))
}

func TestFormatRunway(t *testing.T) {
	out := stripANSI(FormatRunway(RunwayReport{Months: 3, Projection: &startupschool.Projection{MonthsToProfit: -1, MonthsOfCash: 3}}))
	assert.Contains(t, out, "3 months")
	assert.Contains(t, out, "Default dead")
	assert.Contains(t, out, "month 3")

	assert.Contains(t, stripANSI(FormatRunway(RunwayReport{Months: math.Inf(1)})), "∞ months")
}

func TestFormatArtifacts(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	artifacts := []*domain.Artifact{{
		ID:        "0b8f3c2e-1111-2222-3333-444455556666",
		Framework: domain.FrameworkNaming,
		Kind:      "names",
		KitID:     "9a9a9a9a-0000-0000-0000-000000000000",
		CreatedAt: now.Add(-2 * time.Hour),
	}}
	out := stripANSI(FormatArtifacts(artifacts, now))
	assert.Contains(t, out, "0b8f3c2e")
	assert.NotContains(t, out, "0b8f3c2e-1111")
	assert.Contains(t, out, "naming")
	assert.Contains(t, out, "2h ago")
	assert.Contains(t, out, "9a9a9a9a")

	assert.Contains(t, stripANSI(FormatArtifacts(nil, now)), "Nothing generated yet")
}

func TestFormatArtifact_IndentsPayloads(t *testing.T) {
	out := stripANSI(FormatArtifact(&domain.Artifact{
		ID:        "abc",
		Framework: domain.FrameworkStoryBrand,
		Kind:      "one_liner",
		Input:     json.RawMessage(`{"name":"PayNudge"}`),
		Output:    json.RawMessage(`{"problem":"late invoices"}`),
		CreatedAt: time.Now(),
	}))
	assert.Contains(t, out, "STORYBRAND ONE_LINER")
	assert.Contains(t, out, `"name": "PayNudge"`)
	assert.Contains(t, out, `"problem": "late invoices"`)
}
