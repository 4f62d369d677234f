package sprint

import (
	"context"
	"fmt"
	"strings"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/llm"
)

// Challenge is the problem a team brings to the sprint.
type Challenge struct {
	Company   string `json:"company"`
	Product   string `json:"product"`
	Challenge string `json:"challenge"`
	Customer  string `json:"customer,omitempty"`
}

// SprintQuestions frames Monday: where the team is going and what could stop it.
type SprintQuestions struct {
	LongTermGoal string   `json:"long_term_goal"`
	Questions    []string `json:"questions"`
}

// HowMightWeNote is one opportunity captured during Ask the Experts.
type HowMightWeNote struct {
	Theme string `json:"theme"`
	Note  string `json:"note"`
}

// HowMightWeNotes groups the generated notes.
type HowMightWeNotes struct {
	Notes []HowMightWeNote `json:"notes"`
}

// ScriptAct is one act of a tailored interview script.
type ScriptAct struct {
	Act       int      `json:"act"`
	Name      string   `json:"name"`
	Questions []string `json:"questions"`
}

// InterviewScript is Friday's interview, tailored to one challenge.
type InterviewScript struct {
	Acts []ScriptAct `json:"acts"`
}

// Service generates sprint artifacts with a language model.
type Service interface {
	// SprintQuestions drafts the long-term goal and sprint questions.
	SprintQuestions(ctx context.Context, c Challenge) (*SprintQuestions, error)

	// HowMightWe drafts opportunity notes grouped by theme.
	HowMightWe(ctx context.Context, c Challenge) (*HowMightWeNotes, error)

	// InterviewScript tailors the five-act interview to the challenge.
	InterviewScript(ctx context.Context, c Challenge) (*InterviewScript, error)
}

type interviewInput struct {
	Challenge
	Acts []InterviewAct
}

type service struct {
	questions  llm.Completer[Challenge, SprintQuestions]
	howMightWe llm.Completer[Challenge, HowMightWeNotes]
	interview  llm.Completer[interviewInput, InterviewScript]
}

// NewService creates a Service backed by client.
func NewService(client llm.Client) Service {
	return &service{
		questions: llm.MustFunction[Challenge, SprintQuestions](client, llm.FunctionSpec{
			Name:   "sprint_questions",
			Task:   llm.TaskSprint,
			System: facilitatorSystemPrompt,
			Prompt: questionsPrompt,
			Schema: questionsSchema,
		}, nil),
		howMightWe: llm.MustFunction[Challenge, HowMightWeNotes](client, llm.FunctionSpec{
			Name:   "sprint_how_might_we",
			Task:   llm.TaskSprint,
			System: facilitatorSystemPrompt,
			Prompt: howMightWePrompt,
			Schema: howMightWeSchema,
		}, validateHowMightWe),
		interview: llm.MustFunction[interviewInput, InterviewScript](client, llm.FunctionSpec{
			Name:   "sprint_interview_script",
			Task:   llm.TaskSprint,
			System: facilitatorSystemPrompt,
			Prompt: interviewPrompt,
			Schema: interviewSchema,
		}, validateInterview),
	}
}

func (s *service) SprintQuestions(ctx context.Context, c Challenge) (*SprintQuestions, error) {
	out, err := s.questions.Complete(ctx, c)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) HowMightWe(ctx context.Context, c Challenge) (*HowMightWeNotes, error) {
	out, err := s.howMightWe.Complete(ctx, c)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) InterviewScript(ctx context.Context, c Challenge) (*InterviewScript, error) {
	out, err := s.interview.Complete(ctx, interviewInput{Challenge: c, Acts: InterviewActs()})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func validateHowMightWe(n HowMightWeNotes) error {
	for i, note := range n.Notes {
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(note.Note)), "how might we") {
			return fmt.Errorf("note %d does not start with \"How might we\": %q", i+1, note.Note)
		}
	}
	return nil
}

func validateInterview(s InterviewScript) error {
	if len(s.Acts) != len(interviewActs) {
		return fmt.Errorf("expected %d acts, got %d", len(interviewActs), len(s.Acts))
	}
	for i, act := range s.Acts {
		if act.Act != i+1 {
			return fmt.Errorf("act %d out of order (got act %d)", i+1, act.Act)
		}
	}
	return nil
}
