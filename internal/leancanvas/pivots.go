package leancanvas

import "strings"

// PivotType is a structured course correction from Eric Ries' catalog.
type PivotType struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Example     string `json:"example"`
	// Blocks are the canvas blocks the pivot rewrites.
	Blocks []BlockKey `json:"blocks"`
}

func (p PivotType) clone() PivotType {
	p.Blocks = append([]BlockKey(nil), p.Blocks...)
	return p
}

var pivots = []PivotType{
	{Slug: "zoom-in", Name: "Zoom-in pivot",
		Description: "A single feature becomes the whole product.",
		Example:     "Flickr began as a photo-sharing feature inside an online game.",
		Blocks:      []BlockKey{BlockSolution, BlockUVP}},
	{Slug: "zoom-out", Name: "Zoom-out pivot",
		Description: "The whole product becomes one feature of a larger product.",
		Example:     "A standalone scheduling tool becomes part of a practice-management suite.",
		Blocks:      []BlockKey{BlockSolution, BlockUVP}},
	{Slug: "customer-segment", Name: "Customer segment pivot",
		Description: "The product solves a real problem, but for a different customer than planned.",
		Example:     "A consumer app finds its buyers are small businesses.",
		Blocks:      []BlockKey{BlockCustomerSegments, BlockChannels}},
	{Slug: "customer-need", Name: "Customer need pivot",
		Description: "The customer is right but the problem is not; solve a more important one.",
		Example:     "Potbelly Sandwich Shop started as an antique store that sold sandwiches.",
		Blocks:      []BlockKey{BlockProblem, BlockSolution}},
	{Slug: "platform", Name: "Platform pivot",
		Description: "Switch from an application to a platform, or the other way around.",
		Example:     "A single app opens an API for third-party developers.",
		Blocks:      []BlockKey{BlockSolution, BlockRevenueStreams}},
	{Slug: "business-architecture", Name: "Business architecture pivot",
		Description: "Move between high-margin low-volume and low-margin high-volume models.",
		Example:     "Enterprise software moves to self-serve subscriptions.",
		Blocks:      []BlockKey{BlockRevenueStreams, BlockCostStructure, BlockChannels}},
	{Slug: "value-capture", Name: "Value capture pivot",
		Description: "Change how the company makes money.",
		Example:     "A paid app switches to freemium with a premium tier.",
		Blocks:      []BlockKey{BlockRevenueStreams}},
	{Slug: "engine-of-growth", Name: "Engine of growth pivot",
		Description: "Switch between viral, sticky and paid growth.",
		Example:     "A product relying on ads adds referral incentives.",
		Blocks:      []BlockKey{BlockChannels, BlockKeyMetrics}},
	{Slug: "channel", Name: "Channel pivot",
		Description: "Deliver the same solution through a different channel.",
		Example:     "Selling directly online instead of through retail stores.",
		Blocks:      []BlockKey{BlockChannels}},
	{Slug: "technology", Name: "Technology pivot",
		Description: "Solve the same problem with a cheaper or better technology.",
		Example:     "Replacing a hardware device with a smartphone app.",
		Blocks:      []BlockKey{BlockSolution, BlockCostStructure}},
}

// Pivots returns the ten pivot types.
func Pivots() []PivotType {
	out := make([]PivotType, len(pivots))
	for i, p := range pivots {
		out[i] = p.clone()
	}
	return out
}

// PivotBySlug looks up a pivot type, ignoring case.
func PivotBySlug(slug string) (PivotType, bool) {
	for _, p := range pivots {
		if strings.EqualFold(p.Slug, strings.TrimSpace(slug)) {
			return p.clone(), true
		}
	}
	return PivotType{}, false
}

// PivotsForBlock lists the pivot types that rewrite block.
func PivotsForBlock(block BlockKey) []PivotType {
	out := []PivotType{}
	for _, p := range pivots {
		for _, b := range p.Blocks {
			if b == block {
				out = append(out, p.clone())
				break
			}
		}
	}
	return out
}
