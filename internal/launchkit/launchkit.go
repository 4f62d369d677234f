// Package launchkit builds a first set of launch material for an idea by
// running several generators at once.
package launchkit

import (
	"context"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/domain"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/landingpage"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/leancanvas"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/naming"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/service"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/storybrand"
	"golang.org/x/sync/errgroup"
)

// DefaultLimit caps how many generators run at the same time.
const DefaultLimit = 2

// Generators are the services a kit draws on. A nil service is skipped.
type Generators struct {
	StoryBrand  storybrand.Service
	LeanCanvas  leancanvas.Service
	Naming      naming.Service
	LandingPage landingpage.Service
}

// Idea is the startup idea a kit is built for.
type Idea struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Customer    string `json:"customer"`
	Problem     string `json:"problem,omitempty"`
	Industry    string `json:"industry,omitempty"`
}

// Kit is the generated material. Fields for skipped generators are nil.
type Kit struct {
	Idea        Idea                     `json:"idea"`
	BrandScript *storybrand.BrandScript  `json:"brand_script,omitempty"`
	Canvas      *leancanvas.Canvas       `json:"canvas,omitempty"`
	Names       *naming.NameSet          `json:"names,omitempty"`
	Headlines   *landingpage.HeadlineSet `json:"headlines,omitempty"`
}

// Generations lists the kit's parts for recording.
func (k *Kit) Generations() []service.Generation {
	var gens []service.Generation
	if k.BrandScript != nil {
		gens = append(gens, service.Generation{Framework: domain.FrameworkStoryBrand, Kind: "brand_script", Input: k.Idea, Output: k.BrandScript})
	}
	if k.Canvas != nil {
		gens = append(gens, service.Generation{Framework: domain.FrameworkLeanCanvas, Kind: "canvas", Input: k.Idea, Output: k.Canvas})
	}
	if k.Names != nil {
		gens = append(gens, service.Generation{Framework: domain.FrameworkNaming, Kind: "names", Input: k.Idea, Output: k.Names})
	}
	if k.Headlines != nil {
		gens = append(gens, service.Generation{Framework: domain.FrameworkLandingPage, Kind: "headlines", Input: k.Idea, Output: k.Headlines})
	}
	return gens
}

type options struct {
	limit int
}

// Option configures Build.
type Option func(*options)

// WithLimit sets how many generators may run at once. Values below one
// mean no limit.
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// Build runs every configured generator for idea. The first failure
// cancels the others and is returned unchanged.
func Build(ctx context.Context, gens Generators, idea Idea, opts ...Option) (*Kit, error) {
	o := options{limit: DefaultLimit}
	for _, opt := range opts {
		opt(&o)
	}
	if o.limit < 1 {
		o.limit = -1
	}

	kit := &Kit{Idea: idea}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.limit)

	// Each goroutine writes a distinct field; Wait orders the writes
	// before the return.
	if gens.StoryBrand != nil {
		g.Go(func() error {
			script, err := gens.StoryBrand.BrandScript(ctx, storybrand.Business{
				Name:     idea.Name,
				Product:  idea.Description,
				Customer: idea.Customer,
				Problem:  idea.Problem,
			})
			kit.BrandScript = script
			return err
		})
	}
	if gens.LeanCanvas != nil {
		g.Go(func() error {
			canvas, err := gens.LeanCanvas.Canvas(ctx, leancanvas.Idea{
				Name:        idea.Name,
				Description: idea.Description,
				Customer:    idea.Customer,
			})
			kit.Canvas = canvas
			return err
		})
	}
	if gens.Naming != nil {
		g.Go(func() error {
			names, err := gens.Naming.Names(ctx, naming.Brief{
				Description: idea.Description,
				Industry:    idea.Industry,
				Audience:    idea.Customer,
			})
			kit.Names = names
			return err
		})
	}
	if gens.LandingPage != nil {
		g.Go(func() error {
			headlines, err := gens.LandingPage.Headlines(ctx, landingpage.Product{
				Name:        idea.Name,
				Description: idea.Description,
				Audience:    idea.Customer,
			})
			kit.Headlines = headlines
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return kit, nil
}
