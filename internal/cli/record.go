package cli

import (
	"context"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/domain"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/service"
	"go.uber.org/zap"
)

// record stores a generation when a database is available. A failed write
// is logged; the generated output is still printed.
func (a *App) record(ctx context.Context, framework domain.Framework, kind string, input, output any) {
	if a.Recorder == nil {
		return
	}
	artifact, err := a.Recorder.Record(ctx, framework, kind, input, output)
	if err != nil {
		a.logger().Warn("recording generation failed",
			zap.String("framework", string(framework)),
			zap.String("kind", kind),
			zap.Error(err))
		return
	}
	a.logger().Debug("generation recorded", zap.String("id", artifact.ID))
}

func (a *App) recordKit(ctx context.Context, gens []service.Generation) {
	if a.Recorder == nil || len(gens) == 0 {
		return
	}
	if _, err := a.Recorder.RecordKit(ctx, gens); err != nil {
		a.logger().Warn("recording kit failed", zap.Error(err))
	}
}
