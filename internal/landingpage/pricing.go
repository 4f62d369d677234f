package landingpage

import (
	"slices"
	"strings"
)

// PricingHeuristic is a pricing-page tactic backed by buyer psychology.
type PricingHeuristic struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

var pricingHeuristics = []PricingHeuristic{
	{Slug: "anchoring", Name: "Price anchoring",
		Description: "Show a high-priced option first so the others feel reasonable.",
		Example:     "List the $499 enterprise plan to the left of the $49 team plan."},
	{Slug: "decoy", Name: "Decoy pricing",
		Description: "Add an option that exists to make the target plan look like the obvious deal.",
		Example:     "A $39 plan with fewer features next to a $49 plan with everything."},
	{Slug: "three-tiers", Name: "Three tiers",
		Description: "Offer three plans; most buyers pick the middle one.",
		Example:     "Starter, Pro and Business, with Pro highlighted."},
	{Slug: "charm-pricing", Name: "Charm pricing",
		Description: "Prices ending in 9 read as cheaper than round numbers.",
		Example:     "$29 instead of $30."},
	{Slug: "annual-discount", Name: "Annual discount",
		Description: "Discount yearly billing to improve cash flow and retention.",
		Example:     "Two months free when paying yearly."},
	{Slug: "highlight-recommended", Name: "Recommended plan",
		Description: "Visually mark the plan you want most buyers to choose.",
		Example:     "A 'Most popular' ribbon on the middle tier."},
	{Slug: "free-trial", Name: "Free trial",
		Description: "Remove risk by letting buyers try before paying.",
		Example:     "14 days free, no credit card required."},
	{Slug: "money-back", Name: "Money-back guarantee",
		Description: "Reverse the risk so the seller carries it, not the buyer.",
		Example:     "30-day no-questions-asked refund."},
	{Slug: "per-unit-framing", Name: "Per-unit framing",
		Description: "Express price in small units that feel trivial.",
		Example:     "Less than $1 a day."},
}

// PricingHeuristics returns every pricing heuristic.
func PricingHeuristics() []PricingHeuristic {
	return slices.Clone(pricingHeuristics)
}

// PricingHeuristicBySlug looks up a pricing heuristic, ignoring case.
func PricingHeuristicBySlug(slug string) (PricingHeuristic, bool) {
	for _, h := range pricingHeuristics {
		if strings.EqualFold(h.Slug, strings.TrimSpace(slug)) {
			return h, true
		}
	}
	return PricingHeuristic{}, false
}
