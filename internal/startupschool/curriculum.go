// Package startupschool encodes the Y Combinator Startup School
// curriculum (lectures, concepts and company phases) plus the runway
// and growth arithmetic founders use in office hours.
package startupschool

import (
	"slices"
	"strings"
)

// Category groups lectures and concepts by topic.
type Category string

const (
	CategoryIdeas       Category = "ideas"
	CategoryProduct     Category = "product"
	CategoryGrowth      Category = "growth"
	CategoryFundraising Category = "fundraising"
	CategoryTeam        Category = "team"
	CategoryOperations  Category = "operations"
)

// Lecture is one Startup School talk.
type Lecture struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Speaker  string   `json:"speaker"`
	Category Category `json:"category"`
	Phase    int      `json:"phase"`
	Summary  string   `json:"summary"`
}

// Concept is a term from the curriculum.
type Concept struct {
	Slug       string   `json:"slug"`
	Name       string   `json:"name"`
	Definition string   `json:"definition"`
	Category   Category `json:"category"`
	Lectures   []string `json:"lectures"`
}

// Phase is a stage of company building.
type Phase struct {
	Number      int      `json:"number"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Milestones  []string `json:"milestones"`
}

var lectures = []Lecture{
	{ID: "how-to-get-startup-ideas", Title: "How to Get Startup Ideas", Speaker: "Jared Friedman",
		Category: CategoryIdeas, Phase: 1,
		Summary: "Good ideas come from problems founders have themselves, found by living in the future and noticing what's missing."},
	{ID: "how-to-evaluate-startup-ideas", Title: "How to Evaluate Startup Ideas", Speaker: "Kevin Hale",
		Category: CategoryIdeas, Phase: 1,
		Summary: "Judge ideas by founder-market fit, market size, problem acuteness, competition and recent change."},
	{ID: "how-to-talk-to-users", Title: "How to Talk to Users", Speaker: "Eric Migicovsky",
		Category: CategoryProduct, Phase: 2,
		Summary: "Ask about specific past behavior, not hypotheticals, and listen more than you talk."},
	{ID: "how-to-build-an-mvp", Title: "How to Plan an MVP", Speaker: "Michael Seibel",
		Category: CategoryProduct, Phase: 2,
		Summary: "Launch something small quickly, get it in front of users and iterate on what you learn."},
	{ID: "how-to-launch", Title: "How to Launch (Again and Again)", Speaker: "Kat Mañalac",
		Category: CategoryGrowth, Phase: 2,
		Summary: "Launch early and often; every launch is a chance to reach new users."},
	{ID: "how-to-find-product-market-fit", Title: "How to Find Product-Market Fit", Speaker: "David Rusenko",
		Category: CategoryProduct, Phase: 3,
		Summary: "Product-market fit is pulled by the market; look for users who would be very disappointed without you."},
	{ID: "how-to-set-kpis-and-goals", Title: "How to Set KPIs and Goals", Speaker: "Adora Cheung",
		Category: CategoryGrowth, Phase: 3,
		Summary: "Pick one primary metric tied to value delivered and set a weekly growth target."},
	{ID: "how-to-get-your-first-customers", Title: "How to Get Your First Customers", Speaker: "Gustaf Alströmer",
		Category: CategoryGrowth, Phase: 3,
		Summary: "Do things that don't scale: recruit users one by one and delight them by hand."},
	{ID: "how-to-price", Title: "Pricing", Speaker: "Kevin Hale",
		Category: CategoryGrowth, Phase: 3,
		Summary: "Price on value, not cost; raise prices until someone complains."},
	{ID: "how-to-raise-a-seed-round", Title: "How to Raise a Seed Round", Speaker: "Ali Rowghani",
		Category: CategoryFundraising, Phase: 4,
		Summary: "Raise when you have traction, keep the process short and treat it as a sales pipeline."},
	{ID: "understanding-safes", Title: "Understanding SAFEs and Priced Equity Rounds", Speaker: "Kirsty Nathoo",
		Category: CategoryFundraising, Phase: 4,
		Summary: "Know what dilution each instrument implies before you sign."},
	{ID: "how-to-work-together", Title: "How to Work Together", Speaker: "Kevin Hale",
		Category: CategoryTeam, Phase: 4,
		Summary: "Co-founder relationships fail on communication; set explicit expectations early."},
	{ID: "how-to-hire", Title: "How to Hire Your First Engineer", Speaker: "Harj Taggar",
		Category: CategoryTeam, Phase: 5,
		Summary: "Hire slowly, for people who would thrive in chaos and share the mission."},
	{ID: "default-alive", Title: "Default Alive or Default Dead?", Speaker: "Paul Graham",
		Category: CategoryOperations, Phase: 5,
		Summary: "Know whether current growth and expenses get you to profitability before the money runs out."},
}

var concepts = []Concept{
	{Slug: "product-market-fit", Name: "Product-market fit", Category: CategoryProduct,
		Definition: "Being in a good market with a product that satisfies it; users pull the product out of your hands.",
		Lectures:   []string{"how-to-find-product-market-fit", "how-to-talk-to-users"}},
	{Slug: "mvp", Name: "Minimum viable product", Category: CategoryProduct,
		Definition: "The smallest thing you can launch that delivers value to a specific user and teaches you something.",
		Lectures:   []string{"how-to-build-an-mvp"}},
	{Slug: "do-things-that-dont-scale", Name: "Do things that don't scale", Category: CategoryGrowth,
		Definition: "Recruit and serve early users manually to learn and to get growth started.",
		Lectures:   []string{"how-to-get-your-first-customers"}},
	{Slug: "weekly-growth-rate", Name: "Weekly growth rate", Category: CategoryGrowth,
		Definition: "Compound week-over-week growth of the primary metric; 5 to 7 percent is good, 10 percent exceptional.",
		Lectures:   []string{"how-to-set-kpis-and-goals"}},
	{Slug: "default-alive", Name: "Default alive", Category: CategoryOperations,
		Definition: "A company that reaches profitability on current growth and expenses before its money runs out.",
		Lectures:   []string{"default-alive"}},
	{Slug: "runway", Name: "Runway", Category: CategoryOperations,
		Definition: "Months until the bank balance hits zero at the current net burn.",
		Lectures:   []string{"default-alive", "how-to-raise-a-seed-round"}},
	{Slug: "safe", Name: "SAFE", Category: CategoryFundraising,
		Definition: "Simple Agreement for Future Equity: an investment that converts to shares at the next priced round.",
		Lectures:   []string{"understanding-safes"}},
	{Slug: "founder-market-fit", Name: "Founder-market fit", Category: CategoryIdeas,
		Definition: "Why this founding team is unusually well placed to win this market.",
		Lectures:   []string{"how-to-evaluate-startup-ideas"}},
	{Slug: "tarpit-idea", Name: "Tar pit idea", Category: CategoryIdeas,
		Definition: "An idea that looks easy and attracts many founders but hides a structural reason it fails.",
		Lectures:   []string{"how-to-get-startup-ideas", "how-to-evaluate-startup-ideas"}},
	{Slug: "cofounder-conflict", Name: "Co-founder conflict", Category: CategoryTeam,
		Definition: "The most common cause of early startup death; prevented by explicit roles and honest communication.",
		Lectures:   []string{"how-to-work-together"}},
}

var phases = []Phase{
	{Number: 1, Name: "Idea", Description: "Finding a problem worth solving and a team to solve it.",
		Milestones: []string{"Problem you have experienced", "Committed co-founder", "Reason now is the time"}},
	{Number: 2, Name: "Build", Description: "Talking to users and shipping a first version.",
		Milestones: []string{"Twenty user interviews", "MVP launched", "First active users"}},
	{Number: 3, Name: "Launch and iterate", Description: "Finding product-market fit and a repeatable way to grow.",
		Milestones: []string{"Primary metric chosen", "Consistent weekly growth", "Users who would be very disappointed without you"}},
	{Number: 4, Name: "Fundraise", Description: "Raising capital on the back of traction.",
		Milestones: []string{"Investor update habit", "Seed round closed"}},
	{Number: 5, Name: "Scale", Description: "Hiring, building process and reaching default alive.",
		Milestones: []string{"First hires", "Default alive"}},
}

func (c Concept) clone() Concept {
	c.Lectures = slices.Clone(c.Lectures)
	return c
}

func (p Phase) clone() Phase {
	p.Milestones = slices.Clone(p.Milestones)
	return p
}

// Lectures returns every lecture in curriculum order.
func Lectures() []Lecture {
	return slices.Clone(lectures)
}

// LectureByID looks up a lecture.
func LectureByID(id string) (Lecture, bool) {
	for _, l := range lectures {
		if l.ID == strings.TrimSpace(id) {
			return l, true
		}
	}
	return Lecture{}, false
}

// LecturesByCategory filters lectures by topic.
func LecturesByCategory(c Category) []Lecture {
	return filterLectures(func(l Lecture) bool { return l.Category == c })
}

// LecturesBySpeaker filters lectures by speaker, ignoring case.
func LecturesBySpeaker(speaker string) []Lecture {
	speaker = strings.TrimSpace(speaker)
	return filterLectures(func(l Lecture) bool { return strings.EqualFold(l.Speaker, speaker) })
}

// LecturesForPhase filters lectures by company phase.
func LecturesForPhase(phase int) []Lecture {
	return filterLectures(func(l Lecture) bool { return l.Phase == phase })
}

func filterLectures(keep func(Lecture) bool) []Lecture {
	out := []Lecture{}
	for _, l := range lectures {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}

// Concepts returns every concept.
func Concepts() []Concept {
	out := make([]Concept, len(concepts))
	for i, c := range concepts {
		out[i] = c.clone()
	}
	return out
}

// ConceptBySlug looks up a concept, ignoring case.
func ConceptBySlug(slug string) (Concept, bool) {
	for _, c := range concepts {
		if strings.EqualFold(c.Slug, strings.TrimSpace(slug)) {
			return c.clone(), true
		}
	}
	return Concept{}, false
}

// ConceptsByCategory filters concepts by topic.
func ConceptsByCategory(cat Category) []Concept {
	out := []Concept{}
	for _, c := range concepts {
		if c.Category == cat {
			out = append(out, c.clone())
		}
	}
	return out
}

// Phases returns the five company phases.
func Phases() []Phase {
	out := make([]Phase, len(phases))
	for i, p := range phases {
		out[i] = p.clone()
	}
	return out
}

// PhaseByNumber looks up a phase by its 1-based number.
func PhaseByNumber(n int) (Phase, bool) {
	if n < 1 || n > len(phases) {
		return Phase{}, false
	}
	return phases[n-1].clone(), true
}
