package system

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/pathrig/ecs"
	"github.com/milk9111/pathrig/ecs/component"
	"github.com/milk9111/pathrig/ecs/entity"
	"github.com/milk9111/pathrig/prefabs"
)

// ScriptLoader returns the source of a cue script by name.
type ScriptLoader func(name string) ([]byte, error)

type cueRuntime struct {
	scriptPath string
	compiled   *tengo.Compiled
	stateData  *tengo.Map
	failed     bool
	// lastErr is the most recent runtime error message, reported once.
	lastErr string
}

const cueDispatchScript = `
update(__engine, __state)
`

// CueScriptSystem runs each follower's tengo cue script once per tick. The
// script drives the follower only through the trigger functions exposed on
// its engine object, the same entry points a cutscene system would use.
type CueScriptSystem struct {
	load   ScriptLoader
	cache  map[ecs.Entity]*cueRuntime
	logger *slog.Logger
}

func NewCueScriptSystem(load ScriptLoader, logger *slog.Logger) *CueScriptSystem {
	if load == nil {
		load = prefabs.LoadScript
	}
	return &CueScriptSystem{
		load:   load,
		cache:  map[ecs.Entity]*cueRuntime{},
		logger: componentLogger(logger, "system.cue_script"),
	}
}

// Invalidate drops compiled scripts whose file name matches name so they are
// recompiled on the next tick. Script state is reset.
func (s *CueScriptSystem) Invalidate(name string) {
	for e, rt := range s.cache {
		if filepath.Base(rt.scriptPath) == name {
			delete(s.cache, e)
		}
	}
}

func (s *CueScriptSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.CueScriptComponent.Kind(), func(e ecs.Entity, cue *component.CueScript) {
		pf, ok := ecs.Get(w, e, component.PathFollowerComponent.Kind())
		if !ok || !pf.Enabled || strings.TrimSpace(cue.Path) == "" {
			return
		}

		rt, err := s.runtime(e, cue.Path)
		if err != nil {
			s.logger.Warn("load cue script", "entity", e, "script", cue.Path, "err", err)
			return
		}
		if rt.failed {
			return
		}

		engine := s.buildEngine(w, e, pf)
		if err := rt.run(engine); err != nil {
			if msg := err.Error(); msg != rt.lastErr {
				rt.lastErr = msg
				s.logger.Warn("cue script update", "entity", e, "script", cue.Path, "err", err)
			}
			return
		}
		if rt.lastErr != "" {
			s.logger.Info("cue script recovered", "entity", e, "script", cue.Path)
			rt.lastErr = ""
		}
	})

	for e := range s.cache {
		if !ecs.IsAlive(w, e) {
			delete(s.cache, e)
		}
	}
}

func (s *CueScriptSystem) runtime(e ecs.Entity, path string) (*cueRuntime, error) {
	if rt, ok := s.cache[e]; ok && rt.scriptPath == path {
		return rt, nil
	}

	src, err := s.load(path)
	if err != nil {
		// remember the failure so a missing script is reported once
		s.cache[e] = &cueRuntime{scriptPath: path, failed: true}
		return nil, err
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + cueDispatchScript))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		s.cache[e] = &cueRuntime{scriptPath: path, failed: true}
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}

	rt := &cueRuntime{
		scriptPath: path,
		compiled:   compiled,
		stateData:  &tengo.Map{Value: map[string]tengo.Object{}},
	}
	s.cache[e] = rt
	return rt, nil
}

func (rt *cueRuntime) run(engine *tengo.ImmutableMap) error {
	if rt == nil || rt.compiled == nil {
		return fmt.Errorf("nil script runtime")
	}
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.stateData); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func (s *CueScriptSystem) buildEngine(w *ecs.World, e ecs.Entity, pf *component.PathFollower) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}
	clock := w.Clock()

	getter := func(name string, fn func() tengo.Object) {
		values[name] = &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
			return fn(), nil
		}}
	}
	trigger := func(name string, fn func(args []tengo.Object) bool) {
		values[name] = &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
			if fn(args) {
				return tengo.TrueValue, nil
			}
			return tengo.FalseValue, nil
		}}
	}

	getter("time", func() tengo.Object { return &tengo.Float{Value: clock.Elapsed()} })
	getter("delta", func() tengo.Object { return &tengo.Float{Value: clock.Delta()} })
	getter("progress", func() tengo.Object { return &tengo.Float{Value: pf.T} })
	getter("active_group", func() tengo.Object { return &tengo.Int{Value: int64(pf.Switcher.Active())} })
	getter("group_count", func() tengo.Object { return &tengo.Int{Value: int64(pf.Route.Len())} })

	switchFn := func(kind component.SwitchKind) func(args []tengo.Object) bool {
		return func(args []tengo.Object) bool {
			req := component.SwitchRequest{Kind: kind}
			if kind == component.SwitchTo {
				if len(args) < 1 {
					return false
				}
				idx, ok := tengo.ToInt(args[0])
				if !ok {
					return false
				}
				req.Index = idx
			}
			return ApplySwitch(w, e, pf, req, s.logger) == nil
		}
	}
	trigger("switch_next", switchFn(component.SwitchNext))
	trigger("switch_previous", switchFn(component.SwitchPrevious))
	trigger("switch_to", switchFn(component.SwitchTo))
	trigger("switch_to_name", func(args []tengo.Object) bool {
		if len(args) < 1 {
			return false
		}
		name, ok := tengo.ToString(args[0])
		if !ok {
			return false
		}
		return ApplySwitch(w, e, pf, component.SwitchRequest{Kind: component.SwitchToName, Name: name}, s.logger) == nil
	})

	trigger("move_to_waypoint", func(args []tengo.Object) bool {
		if len(args) < 1 {
			return false
		}
		idx, ok := tengo.ToFloat64(args[0])
		if !ok {
			return false
		}
		frac := 0.0
		if len(args) > 1 {
			frac, _ = tengo.ToFloat64(args[1])
		}
		return entity.MoveToWaypoint(w, e, idx, frac) == nil
	})
	trigger("set_progress", func(args []tengo.Object) bool {
		if len(args) < 1 {
			return false
		}
		t, ok := tengo.ToFloat64(args[0])
		if !ok {
			return false
		}
		return entity.SetProgress(w, e, t) == nil
	})
	trigger("start_oscillation", func([]tengo.Object) bool { return entity.StartOscillation(w, e) == nil })
	trigger("stop_oscillation", func([]tengo.Object) bool { return entity.StopOscillation(w, e) == nil })
	trigger("play_shake", func(args []tengo.Object) bool {
		sh, ok := ecs.Get(w, e, component.ShakeComponent.Kind())
		if !ok || sh.Shake.Running() {
			return false
		}
		if len(args) == 0 {
			return entity.PlayShake(w, e) == nil
		}
		preset, ok := tengo.ToString(args[0])
		if !ok {
			return false
		}
		if _, known := sh.Presets[preset]; !known {
			return false
		}
		return entity.PlayShakePreset(w, e, preset) == nil
	})
	trigger("log", func(args []tengo.Object) bool {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		s.logger.Info(strings.Join(parts, " "), "entity", e)
		return true
	})

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
