package startupschool

import (
	"context"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/llm"
)

// ConceptQuestion asks for an explanation of a curriculum concept.
type ConceptQuestion struct {
	Concept  string `json:"concept"`
	Question string `json:"question,omitempty"`
}

// Explanation is a generated concept explainer.
type Explanation struct {
	Answer   string    `json:"answer"`
	Examples []string  `json:"examples"`
	Lectures []Lecture `json:"lectures"`
}

// Situation describes where a founder is.
type Situation struct {
	Phase       int    `json:"phase"`
	Description string `json:"description"`
	Challenge   string `json:"challenge,omitempty"`
	Metrics     string `json:"metrics,omitempty"`
}

// Recommendation is a lecture suggested for a situation.
type Recommendation struct {
	Lecture Lecture `json:"lecture"`
	Reason  string  `json:"reason"`
}

// Advice is the outcome of an office hours session.
type Advice struct {
	Diagnosis     string   `json:"diagnosis"`
	Advice        []string `json:"advice"`
	PrimaryMetric string   `json:"primary_metric"`
	NextSteps     []string `json:"next_steps"`
}

// Service generates Startup School guidance with a language model.
type Service interface {
	ExplainConcept(ctx context.Context, q ConceptQuestion) (*Explanation, error)

	// RecommendLectures returns known lectures only; IDs the model
	// invents are dropped.
	RecommendLectures(ctx context.Context, s Situation) ([]Recommendation, error)

	OfficeHours(ctx context.Context, s Situation) (*Advice, error)
}

type explainInput struct {
	ConceptQuestion
	Known *Concept
}

type explainOutput struct {
	Answer   string   `json:"answer"`
	Examples []string `json:"examples"`
	Lectures []string `json:"lectures"`
}

type recommendInput struct {
	Situation
	Catalog []Lecture
}

type recommendOutput struct {
	Recommendations []struct {
		LectureID string `json:"lecture_id"`
		Reason    string `json:"reason"`
	} `json:"recommendations"`
}

type service struct {
	explain     llm.Completer[explainInput, explainOutput]
	recommend   llm.Completer[recommendInput, recommendOutput]
	officeHours llm.Completer[Situation, Advice]
}

// NewService creates a Service backed by client.
func NewService(client llm.Client) Service {
	return &service{
		explain: llm.MustFunction[explainInput, explainOutput](client, llm.FunctionSpec{
			Name:   "school_explain_concept",
			Task:   llm.TaskStartupSchool,
			System: partnerSystemPrompt,
			Prompt: explainPrompt,
			Schema: explainSchema,
		}, nil),
		recommend: llm.MustFunction[recommendInput, recommendOutput](client, llm.FunctionSpec{
			Name:   "school_recommend_lectures",
			Task:   llm.TaskStartupSchool,
			System: partnerSystemPrompt,
			Prompt: recommendPrompt,
			Schema: recommendSchema,
		}, nil),
		officeHours: llm.MustFunction[Situation, Advice](client, llm.FunctionSpec{
			Name:   "school_office_hours",
			Task:   llm.TaskStartupSchool,
			System: partnerSystemPrompt,
			Prompt: officeHoursPrompt,
			Schema: officeHoursSchema,
		}, nil),
	}
}

func (s *service) ExplainConcept(ctx context.Context, q ConceptQuestion) (*Explanation, error) {
	in := explainInput{ConceptQuestion: q}
	if c, ok := ConceptBySlug(q.Concept); ok {
		in.Known = &c
	}
	out, err := s.explain.Complete(ctx, in)
	if err != nil {
		return nil, err
	}
	return &Explanation{
		Answer:   out.Answer,
		Examples: out.Examples,
		Lectures: knownLectures(out.Lectures),
	}, nil
}

func (s *service) RecommendLectures(ctx context.Context, sit Situation) ([]Recommendation, error) {
	out, err := s.recommend.Complete(ctx, recommendInput{Situation: sit, Catalog: Lectures()})
	if err != nil {
		return nil, err
	}
	recs := []Recommendation{}
	seen := map[string]bool{}
	for _, r := range out.Recommendations {
		l, ok := LectureByID(r.LectureID)
		if !ok || seen[l.ID] {
			continue
		}
		seen[l.ID] = true
		recs = append(recs, Recommendation{Lecture: l, Reason: r.Reason})
	}
	return recs, nil
}

func (s *service) OfficeHours(ctx context.Context, sit Situation) (*Advice, error) {
	out, err := s.officeHours.Complete(ctx, sit)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func knownLectures(ids []string) []Lecture {
	out := []Lecture{}
	for _, id := range ids {
		if l, ok := LectureByID(id); ok {
			out = append(out, l)
		}
	}
	return out
}
