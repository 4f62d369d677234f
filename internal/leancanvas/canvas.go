// Package leancanvas encodes Ash Maurya's Lean Canvas, the catalog of
// pivot types and the AARRR growth funnel.
package leancanvas

import (
	"slices"
	"strings"
)

// BlockKey identifies a canvas block.
type BlockKey string

const (
	BlockProblem          BlockKey = "problem"
	BlockCustomerSegments BlockKey = "customer-segments"
	BlockUVP              BlockKey = "unique-value-proposition"
	BlockSolution         BlockKey = "solution"
	BlockChannels         BlockKey = "channels"
	BlockRevenueStreams   BlockKey = "revenue-streams"
	BlockCostStructure    BlockKey = "cost-structure"
	BlockKeyMetrics       BlockKey = "key-metrics"
	BlockUnfairAdvantage  BlockKey = "unfair-advantage"
)

// Side is the half of the canvas a block sits on.
type Side string

const (
	SideProduct Side = "product"
	SideMarket  Side = "market"
	SideBoth    Side = "both"
)

// Risk is the kind of risk a block addresses.
type Risk string

const (
	RiskCustomer Risk = "customer"
	RiskProduct  Risk = "product"
	RiskMarket   Risk = "market"
)

// Block describes one box of the canvas. Order is the recommended fill order.
type Block struct {
	Order     int      `json:"order"`
	Key       BlockKey `json:"key"`
	Name      string   `json:"name"`
	Side      Side     `json:"side"`
	Risk      Risk     `json:"risk"`
	Prompt    string   `json:"prompt"`
	Questions []string `json:"questions"`
}

func (b Block) clone() Block {
	b.Questions = slices.Clone(b.Questions)
	return b
}

var blocks = []Block{
	{Order: 1, Key: BlockProblem, Name: "Problem", Side: SideProduct, Risk: RiskProduct,
		Prompt:    "List your customers' top one to three problems and their existing alternatives.",
		Questions: []string{"What are the top three problems?", "How are these problems solved today?"}},
	{Order: 2, Key: BlockCustomerSegments, Name: "Customer Segments", Side: SideMarket, Risk: RiskCustomer,
		Prompt:    "List target customers and users, then name the early adopters.",
		Questions: []string{"Who has these problems?", "Who are your early adopters?"}},
	{Order: 3, Key: BlockUVP, Name: "Unique Value Proposition", Side: SideBoth, Risk: RiskProduct,
		Prompt:    "A single, clear, compelling message that states why you are different and worth buying.",
		Questions: []string{"Why are you different?", "What is your high-level concept (X for Y)?"}},
	{Order: 4, Key: BlockSolution, Name: "Solution", Side: SideProduct, Risk: RiskProduct,
		Prompt:    "Outline a possible solution for each problem.",
		Questions: []string{"What is the simplest thing that solves each problem?"}},
	{Order: 5, Key: BlockChannels, Name: "Channels", Side: SideMarket, Risk: RiskCustomer,
		Prompt:    "List your paths to customers, both free and paid.",
		Questions: []string{"How will you reach early adopters?", "Which channels scale?"}},
	{Order: 6, Key: BlockRevenueStreams, Name: "Revenue Streams", Side: SideMarket, Risk: RiskMarket,
		Prompt:    "List your sources of revenue, pricing and lifetime value.",
		Questions: []string{"How will you make money?", "What will you charge?"}},
	{Order: 7, Key: BlockCostStructure, Name: "Cost Structure", Side: SideProduct, Risk: RiskMarket,
		Prompt:    "List your fixed and variable costs, including customer acquisition.",
		Questions: []string{"What does it cost to build and run?", "What is your break-even point?"}},
	{Order: 8, Key: BlockKeyMetrics, Name: "Key Metrics", Side: SideProduct, Risk: RiskProduct,
		Prompt:    "List the key numbers that tell you how your business is doing.",
		Questions: []string{"Which activity best shows customers getting value?"}},
	{Order: 9, Key: BlockUnfairAdvantage, Name: "Unfair Advantage", Side: SideMarket, Risk: RiskMarket,
		Prompt:    "Something that cannot easily be copied or bought.",
		Questions: []string{"What do you have that competitors cannot copy or buy?"}},
}

// Blocks returns the nine blocks in fill order.
func Blocks() []Block {
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		out[i] = b.clone()
	}
	return out
}

// BlockByKey looks up a block by key, ignoring case.
func BlockByKey(key string) (Block, bool) {
	for _, b := range blocks {
		if strings.EqualFold(string(b.Key), strings.TrimSpace(key)) {
			return b.clone(), true
		}
	}
	return Block{}, false
}

// BlocksBySide filters blocks by canvas side. SideBoth only matches blocks
// on both sides.
func BlocksBySide(side Side) []Block {
	out := []Block{}
	for _, b := range blocks {
		if b.Side == side {
			out = append(out, b.clone())
		}
	}
	return out
}

// BlocksByRisk filters blocks by the risk they address.
func BlocksByRisk(risk Risk) []Block {
	out := []Block{}
	for _, b := range blocks {
		if b.Risk == risk {
			out = append(out, b.clone())
		}
	}
	return out
}

// Canvas is a filled-in Lean Canvas. Each block holds a list of entries.
type Canvas struct {
	Problem                []string `json:"problem"`
	ExistingAlternatives   []string `json:"existing_alternatives,omitempty"`
	CustomerSegments       []string `json:"customer_segments"`
	EarlyAdopters          []string `json:"early_adopters,omitempty"`
	UniqueValueProposition string   `json:"unique_value_proposition"`
	HighLevelConcept       string   `json:"high_level_concept,omitempty"`
	Solution               []string `json:"solution"`
	Channels               []string `json:"channels"`
	RevenueStreams         []string `json:"revenue_streams"`
	CostStructure          []string `json:"cost_structure"`
	KeyMetrics             []string `json:"key_metrics"`
	UnfairAdvantage        string   `json:"unfair_advantage"`
}

// Get returns the entries of one block. The UVP and unfair advantage come
// back as a single-entry list when set.
func (c Canvas) Get(key BlockKey) []string {
	single := func(s string) []string {
		if strings.TrimSpace(s) == "" {
			return []string{}
		}
		return []string{s}
	}
	switch key {
	case BlockProblem:
		return slices.Clone(c.Problem)
	case BlockCustomerSegments:
		return slices.Clone(c.CustomerSegments)
	case BlockUVP:
		return single(c.UniqueValueProposition)
	case BlockSolution:
		return slices.Clone(c.Solution)
	case BlockChannels:
		return slices.Clone(c.Channels)
	case BlockRevenueStreams:
		return slices.Clone(c.RevenueStreams)
	case BlockCostStructure:
		return slices.Clone(c.CostStructure)
	case BlockKeyMetrics:
		return slices.Clone(c.KeyMetrics)
	case BlockUnfairAdvantage:
		return single(c.UnfairAdvantage)
	default:
		return []string{}
	}
}

// Set replaces the entries of one block. Blank entries are dropped.
func (c *Canvas) Set(key BlockKey, entries []string) bool {
	clean := []string{}
	for _, e := range entries {
		if e = strings.TrimSpace(e); e != "" {
			clean = append(clean, e)
		}
	}
	first := strings.Join(clean, "; ")
	switch key {
	case BlockProblem:
		c.Problem = clean
	case BlockCustomerSegments:
		c.CustomerSegments = clean
	case BlockUVP:
		c.UniqueValueProposition = first
	case BlockSolution:
		c.Solution = clean
	case BlockChannels:
		c.Channels = clean
	case BlockRevenueStreams:
		c.RevenueStreams = clean
	case BlockCostStructure:
		c.CostStructure = clean
	case BlockKeyMetrics:
		c.KeyMetrics = clean
	case BlockUnfairAdvantage:
		c.UnfairAdvantage = first
	default:
		return false
	}
	return true
}

// Missing lists blocks with no non-blank entry, in fill order.
func (c Canvas) Missing() []BlockKey {
	out := []BlockKey{}
	for _, b := range blocks {
		filled := false
		for _, e := range c.Get(b.Key) {
			if strings.TrimSpace(e) != "" {
				filled = true
				break
			}
		}
		if !filled {
			out = append(out, b.Key)
		}
	}
	return out
}

// Completeness is the filled fraction of the nine blocks.
func (c Canvas) Completeness() float64 {
	return float64(len(blocks)-len(c.Missing())) / float64(len(blocks))
}
