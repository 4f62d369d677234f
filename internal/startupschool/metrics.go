package startupschool

import "math"

// maxProjectionMonths bounds DefaultAlive projections.
const maxProjectionMonths = 120

// WeeklyGrowthRate returns the compound weekly rate that takes start to end
// in weeks, as a fraction (0.07 is 7%). Non-positive inputs return 0.
func WeeklyGrowthRate(start, end float64, weeks int) float64 {
	if start <= 0 || end <= 0 || weeks <= 0 {
		return 0
	}
	return math.Pow(end/start, 1/float64(weeks)) - 1
}

// Runway returns the months of cash left at monthlyBurn. A company that
// does not burn has infinite runway.
func Runway(cash, monthlyBurn float64) float64 {
	if monthlyBurn <= 0 {
		return math.Inf(1)
	}
	if cash <= 0 {
		return 0
	}
	return cash / monthlyBurn
}

// Projection is the outcome of a month-by-month cash projection.
type Projection struct {
	// Alive is true when revenue covers expenses before cash runs out.
	Alive bool `json:"alive"`
	// MonthsToProfit is the first month revenue covers expenses, or -1.
	MonthsToProfit int `json:"months_to_profit"`
	// MonthsOfCash is the month cash runs out, or -1 if it never does
	// within the projection.
	MonthsOfCash int `json:"months_of_cash"`
}

// DefaultAlive projects cash month by month with constant expenses and
// revenue compounding at monthlyGrowth, for up to ten years.
func DefaultAlive(cash, expenses, revenue, monthlyGrowth float64) Projection {
	p := Projection{MonthsToProfit: -1, MonthsOfCash: -1}
	if revenue >= expenses {
		p.Alive = true
		p.MonthsToProfit = 0
		return p
	}
	if cash <= 0 {
		p.MonthsOfCash = 0
		return p
	}

	for month := 1; month <= maxProjectionMonths; month++ {
		revenue *= 1 + monthlyGrowth
		if revenue >= expenses {
			p.Alive = true
			p.MonthsToProfit = month
			return p
		}
		cash -= expenses - revenue
		if cash <= 0 {
			p.MonthsOfCash = month
			return p
		}
	}
	return p
}
