package system

import (
	"log/slog"

	"github.com/milk9111/pathrig/ecs"
)

// PipelineConfig configures NewPipeline.
type PipelineConfig struct {
	Logger *slog.Logger
	// ShakeSeed seeds the shake jitter.
	ShakeSeed uint64
	// Changes enables hot reload of route prefabs and cue scripts.
	Changes ChangeSource
	// Scripts overrides where cue scripts are read from.
	Scripts ScriptLoader
}

// NewPipeline returns the follower systems in tick order: triggers first,
// then position, the additive effects, and orientation last so it sees the
// finished position.
func NewPipeline(cfg PipelineConfig) *ecs.Scheduler {
	cues := NewCueScriptSystem(cfg.Scripts, cfg.Logger)
	return ecs.NewScheduler(
		NewActivationSystem(cfg.Logger),
		cues,
		NewGroupSwitchSystem(cfg.Logger),
		NewProgressSystem(),
		NewPathFollowSystem(),
		NewOscillationSystem(),
		NewShakeSystem(cfg.ShakeSeed, cfg.Logger),
		NewOrientationSystem(),
		NewSteeringSystem(),
		NewRouteReloadSystem(cfg.Changes, cues.Invalidate, cfg.Logger),
	)
}
