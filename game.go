package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/pathrig/ecs"
	"github.com/milk9111/pathrig/ecs/component"
	"github.com/milk9111/pathrig/ecs/entity"
	"github.com/milk9111/pathrig/ecs/system"
	"github.com/milk9111/pathrig/geom"
	"github.com/milk9111/pathrig/prefabs"
	"github.com/milk9111/pathrig/route"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	pathSamples = 64
	margin      = 48.0
)

// Game is a top-down preview host: ebiten's fixed-rate Update is the tick
// source and the keyboard stands in for the cutscene triggers.
type Game struct {
	world    *ecs.World
	sched    *ecs.Scheduler
	follower ecs.Entity
	watcher  *prefabs.Watcher
	logger   *slog.Logger
	ui       *ebitenui.UI

	oscillating bool
	lastEvent   string
}

func NewGame(routeName string, watch bool, seed uint64) (*Game, error) {
	logger := slog.Default().With("component", "preview")

	w := ecs.NewWorld()
	follower, err := entity.LoadFollower(w, routeName)
	if err != nil {
		return nil, err
	}

	cfg := system.PipelineConfig{Logger: slog.Default(), ShakeSeed: seed}
	g := &Game{world: w, follower: follower, logger: logger}
	if watch {
		watcher, err := prefabs.WatchDefault()
		if err != nil {
			logger.Warn("hot reload disabled", "err", err)
		} else {
			g.watcher = watcher
			cfg.Changes = watcher
		}
	}
	g.sched = system.NewPipeline(cfg)

	if pf, ok := ecs.Get(w, follower, component.PathFollowerComponent.Kind()); ok {
		g.ui = NewControlsUI(g, pf.Route)
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.ui != nil {
		g.ui.Update()
	}
	g.handleInput()
	g.sched.Tick(g.world, 1/float64(ebiten.TPS()))
	for _, ev := range g.world.Events().Drain() {
		g.lastEvent = fmt.Sprintf("%s %v", ev.Type, ev.Data)
	}
	return nil
}

func (g *Game) handleInput() {
	var err error
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		err = entity.SwitchToNext(g.world, g.follower)
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		err = entity.SwitchToPrevious(g.world, g.follower)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		err = entity.PlayShake(g.world, g.follower)
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		err = g.toggleOscillation()
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		err = g.toggleEnabled()
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		if pf, ok := ecs.Get(g.world, g.follower, component.PathFollowerComponent.Kind()); ok {
			idx, _ := route.FromNormalized(pf.T, len(pf.Path))
			err = entity.MoveToWaypoint(g.world, g.follower, float64(idx+1), 0)
		}
	}
	for k := ebiten.Key1; k <= ebiten.Key9; k++ {
		if inpututil.IsKeyJustPressed(k) {
			err = entity.SwitchTo(g.world, g.follower, int(k-ebiten.Key1))
		}
	}
	if err != nil {
		g.logger.Warn("trigger", "err", err)
	}
}

func (g *Game) toggleOscillation() error {
	g.oscillating = !g.oscillating
	if g.oscillating {
		return entity.StartOscillation(g.world, g.follower)
	}
	return entity.StopOscillation(g.world, g.follower)
}

func (g *Game) toggleEnabled() error {
	pf, ok := ecs.Get(g.world, g.follower, component.PathFollowerComponent.Kind())
	if !ok {
		return nil
	}
	return entity.SetEnabled(g.world, g.follower, !pf.Enabled)
}

// view maps the route's horizontal extent onto the screen, +X right and +Z up.
type view struct {
	minX, minZ, scale float64
	height            float64
}

func newView(rt *route.Route, width, height float64) view {
	minX, minZ := math.Inf(1), math.Inf(1)
	maxX, maxZ := math.Inf(-1), math.Inf(-1)
	for _, grp := range rt.Groups {
		for _, cp := range grp.Path {
			minX = math.Min(minX, cp.Position.X)
			maxX = math.Max(maxX, cp.Position.X)
			minZ = math.Min(minZ, cp.Position.Z)
			maxZ = math.Max(maxZ, cp.Position.Z)
		}
	}
	if math.IsInf(minX, 1) {
		return view{scale: 1, height: height}
	}
	spanX := math.Max(maxX-minX, 1)
	spanZ := math.Max(maxZ-minZ, 1)
	scale := math.Min((width-2*margin)/spanX, (height-2*margin)/spanZ)
	return view{minX: minX, minZ: minZ, scale: scale, height: height}
}

func (v view) project(p geom.Vec) (float32, float32) {
	x := margin + (p.X-v.minX)*v.scale
	y := v.height - margin - (p.Z-v.minZ)*v.scale
	return float32(x), float32(y)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	pf, ok := ecs.Get(g.world, g.follower, component.PathFollowerComponent.Kind())
	if !ok {
		return
	}
	tr, ok := ecs.Get(g.world, g.follower, component.TransformComponent.Kind())
	if !ok {
		return
	}

	v := newView(pf.Route, baseWidth, baseHeight)
	for i, grp := range pf.Route.Groups {
		clr := color.Color(colornames.Slategray)
		if i == pf.Switcher.Active() {
			clr = colornames.Gold
		}
		drawPath(screen, v, grp.Path, pf.Interpolation, clr)
	}

	x, y := v.project(tr.Position)
	vector.FillRect(screen, x-5, y-5, 10, 10, colornames.Crimson, false)
	fwd := geom.Flatten(geom.ForwardOf(tr.Rotation))
	vector.StrokeLine(screen, x, y, x+float32(fwd.X*24), y-float32(fwd.Z*24), 2, colornames.White, true)

	steer := 0.0
	if rig, ok := ecs.Get(g.world, g.follower, component.SteeringRigComponent.Kind()); ok {
		steer = rig.Angle
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"route=%s group=%d/%d progress=%.3f height=%.2f steer=%.1f enabled=%v\n%s\nN/P next/prev  1-9 group  W waypoint  O bob  S shake  E enable",
		pf.Route.Name, pf.Switcher.Active(), pf.Route.Len(), pf.T, tr.Position.Y, steer, pf.Enabled, g.lastEvent))

	if g.ui != nil {
		g.ui.Draw(screen)
	}
}

func drawPath(screen *ebiten.Image, v view, p route.Path, mode route.Interpolation, clr color.Color) {
	if len(p) == 0 {
		return
	}
	prev, _ := p.Position(0, mode)
	for i := 1; i <= pathSamples; i++ {
		next, _ := p.Position(float64(i)/pathSamples, mode)
		x0, y0 := v.project(prev)
		x1, y1 := v.project(next)
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, clr, true)
		prev = next
	}
	for _, cp := range p {
		x, y := v.project(cp.Position)
		vector.FillRect(screen, x-2, y-2, 4, 4, clr, false)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
