// Command routecheck runs a route prefab headlessly at a fixed timestep and
// prints the follower's pose every tick.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/milk9111/pathrig/ecs"
	"github.com/milk9111/pathrig/ecs/component"
	"github.com/milk9111/pathrig/ecs/entity"
	"github.com/milk9111/pathrig/ecs/system"
	"github.com/milk9111/pathrig/geom"
)

type sample struct {
	Tick     uint64     `json:"tick"`
	Time     float64    `json:"time"`
	Group    int        `json:"group"`
	Progress float64    `json:"progress"`
	Position [3]float64 `json:"position"`
	Yaw      float64    `json:"yaw_deg"`
	Steering float64    `json:"steering_deg"`
}

func main() {
	routeName := flag.String("route", "canal", "route prefab name in prefabs/routes (basename, .yaml optional)")
	ticks := flag.Int("ticks", 600, "number of ticks to simulate")
	dt := flag.Float64("dt", 1.0/60.0, "seconds per tick")
	jsonOut := flag.Bool("json", false, "write JSON lines instead of text")
	seed := flag.Uint64("seed", 1, "shake jitter seed")
	every := flag.Int("every", 30, "print every n-th tick")
	verbose := flag.Bool("v", false, "log system diagnostics to stderr")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(os.Stdout, logger, *routeName, *ticks, *dt, *seed, *every, *jsonOut); err != nil {
		log.Fatal(err)
	}
}

func run(out io.Writer, logger *slog.Logger, routeName string, ticks int, dt float64, seed uint64, every int, jsonOut bool) error {
	if dt <= 0 {
		return fmt.Errorf("dt must be positive, got %v", dt)
	}
	if every < 1 {
		every = 1
	}

	w := ecs.NewWorld()
	follower, err := entity.LoadFollower(w, routeName)
	if err != nil {
		return err
	}
	sched := system.NewPipeline(system.PipelineConfig{Logger: logger, ShakeSeed: seed})

	enc := json.NewEncoder(out)
	for i := 0; i < ticks; i++ {
		sched.Tick(w, dt)
		for _, ev := range w.Events().Drain() {
			logger.Debug("event", "type", ev.Type, "entity", ev.Entity, "data", ev.Data)
		}
		if i%every != 0 && i != ticks-1 {
			continue
		}

		s, ok := snapshot(w, follower)
		if !ok {
			return fmt.Errorf("follower %v disappeared", follower)
		}
		if jsonOut {
			if err := enc.Encode(s); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(out, "%5d t=%7.3fs group=%d progress=%.3f pos=(%.3f, %.3f, %.3f) yaw=%7.2f steer=%6.2f\n",
			s.Tick, s.Time, s.Group, s.Progress, s.Position[0], s.Position[1], s.Position[2], s.Yaw, s.Steering)
	}
	return nil
}

func snapshot(w *ecs.World, e ecs.Entity) (sample, bool) {
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return sample{}, false
	}
	pf, ok := ecs.Get(w, e, component.PathFollowerComponent.Kind())
	if !ok {
		return sample{}, false
	}
	s := sample{
		Tick:     w.Clock().Ticks(),
		Time:     w.Clock().Elapsed(),
		Group:    pf.Switcher.Active(),
		Progress: pf.T,
		Position: [3]float64{tr.Position.X, tr.Position.Y, tr.Position.Z},
		Yaw:      geom.Rad2Deg(geom.Yaw(tr.Rotation)),
	}
	if rig, ok := ecs.Get(w, e, component.SteeringRigComponent.Kind()); ok {
		s.Steering = rig.Angle
	}
	return s, true
}
