package naming

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/llm"
)

// DefaultCount is how many names Names asks for when the brief has no count.
const DefaultCount = 10

// Brief describes the business to name.
type Brief struct {
	Description string   `json:"description"`
	Industry    string   `json:"industry,omitempty"`
	Audience    string   `json:"audience,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	// Styles restricts suggestions to these style slugs.
	Styles []string `json:"styles,omitempty"`
	Count  int      `json:"count,omitempty"`
}

// NameIdea is a generated name with its score.
type NameIdea struct {
	Name      string    `json:"name"`
	Style     string    `json:"style"`
	Rationale string    `json:"rationale"`
	Score     NameScore `json:"score"`
}

// NameSet holds generated names, best scoring first.
type NameSet struct {
	Names []NameIdea `json:"names"`
}

// Service generates startup names with a language model.
type Service interface {
	// Names returns scored name ideas. Repeated names are kept once.
	Names(ctx context.Context, b Brief) (*NameSet, error)
}

type namesInput struct {
	Brief
	Roots   []string `json:"-"`
	Catalog []Style  `json:"-"`
}

type namesOutput struct {
	Names []struct {
		Name      string `json:"name"`
		Style     string `json:"style"`
		Rationale string `json:"rationale"`
	} `json:"names"`
}

type service struct {
	names llm.Completer[namesInput, namesOutput]
}

// NewService creates a Service backed by client.
func NewService(client llm.Client) Service {
	return &service{
		names: llm.MustFunction[namesInput, namesOutput](client, llm.FunctionSpec{
			Name:   "naming_names",
			Task:   llm.TaskNaming,
			System: namerSystemPrompt,
			Prompt: namesPrompt,
			Schema: namesSchema,
		}, validateNames),
	}
}

func (s *service) Names(ctx context.Context, b Brief) (*NameSet, error) {
	if b.Count <= 0 {
		b.Count = DefaultCount
	}
	in := namesInput{Brief: b, Catalog: Styles()}
	if roots, ok := RootsFor(b.Industry); ok {
		in.Roots = roots
	}

	out, err := s.names.Complete(ctx, in)
	if err != nil {
		return nil, err
	}

	set := &NameSet{Names: []NameIdea{}}
	seen := map[string]bool{}
	for _, n := range out.Names {
		key := strings.ToLower(strings.TrimSpace(n.Name))
		if seen[key] {
			continue
		}
		seen[key] = true
		style, _ := StyleBySlug(n.Style)
		set.Names = append(set.Names, NameIdea{
			Name:      strings.TrimSpace(n.Name),
			Style:     style.Slug,
			Rationale: n.Rationale,
			Score:     ScoreName(n.Name),
		})
	}
	sort.SliceStable(set.Names, func(i, j int) bool {
		return set.Names[i].Score.Score > set.Names[j].Score.Score
	})
	return set, nil
}

func validateNames(out namesOutput) error {
	for _, n := range out.Names {
		if _, ok := StyleBySlug(n.Style); !ok {
			return fmt.Errorf("name %q has unknown style %q", n.Name, n.Style)
		}
	}
	return nil
}
