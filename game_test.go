package main

import (
	"testing"

	"github.com/milk9111/pathrig/geom"
	"github.com/milk9111/pathrig/route"
)

func TestViewFitsRoute(t *testing.T) {
	rt := route.NewRoute("box",
		route.Group{Name: "a", Path: route.Path{{Position: geom.V(-10, 0, 0)}, {Position: geom.V(10, 0, 0)}}},
		route.Group{Name: "b", Path: route.Path{{Position: geom.V(0, 5, 10)}}},
		route.Group{Name: "empty"},
	)
	v := newView(rt, baseWidth, baseHeight)

	x, y := v.project(geom.V(-10, 0, 0))
	if x != margin || y != float32(baseHeight-margin) {
		t.Fatalf("min corner projected to (%v, %v)", x, y)
	}
	x, y = v.project(geom.V(10, 3, 10))
	if x > baseWidth-margin+0.01 || y < margin-0.01 {
		t.Fatalf("max corner (%v, %v) outside the margins", x, y)
	}

	empty := newView(route.NewRoute("none", route.Group{Name: "e"}), baseWidth, baseHeight)
	if empty.scale != 1 {
		t.Fatalf("expected unit scale for a route without waypoints, got %v", empty.scale)
	}
}
