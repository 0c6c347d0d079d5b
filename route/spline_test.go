package route

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/milk9111/pathrig/geom"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func pathOf(points ...geom.Vec) Path {
	p := make(Path, len(points))
	for i, v := range points {
		p[i] = ControlPoint{Position: v}
	}
	return p
}

func collinear() Path {
	return pathOf(geom.V(0, 0, 0), geom.V(1, 0, 0), geom.V(2, 0, 0), geom.V(3, 0, 0))
}

func TestPositionCollinear(t *testing.T) {
	tests := []struct {
		name string
		mode Interpolation
		t    float64
		want geom.Vec
	}{
		{"linear_start", Linear, 0, geom.V(0, 0, 0)},
		{"linear_mid", Linear, 0.5, geom.V(1.5, 0, 0)},
		{"linear_end", Linear, 1, geom.V(3, 0, 0)},
		{"catmull_start", CatmullRom, 0, geom.V(0, 0, 0)},
		{"catmull_mid", CatmullRom, 0.5, geom.V(1.5, 0, 0)},
		{"catmull_end", CatmullRom, 1, geom.V(3, 0, 0)},
		{"clamped_low", Linear, -2, geom.V(0, 0, 0)},
		{"clamped_high", CatmullRom, 7, geom.V(3, 0, 0)},
	}

	p := collinear()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := p.Position(tc.t, tc.mode)
			if !ok {
				t.Fatalf("Position reported no value")
			}
			if diff := cmp.Diff(tc.want, got, approx); diff != "" {
				t.Fatalf("position mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPositionDegeneratePaths(t *testing.T) {
	if _, ok := Path(nil).Position(0.5, Linear); ok {
		t.Fatalf("empty path should report no position")
	}

	single := pathOf(geom.V(4, 5, 6))
	for _, tv := range []float64{0, 0.3, 1} {
		got, ok := single.Position(tv, CatmullRom)
		if !ok || got != geom.V(4, 5, 6) {
			t.Fatalf("t=%v: expected the single waypoint, got %v ok=%v", tv, got, ok)
		}
	}
}

func TestCatmullRomFallsBackBelowFourPoints(t *testing.T) {
	p := pathOf(geom.V(0, 0, 0), geom.V(1, 0, 1), geom.V(2, 0, 0))
	for _, tv := range []float64{0, 0.25, 0.6, 1} {
		lin, _ := p.Position(tv, Linear)
		cr, _ := p.Position(tv, CatmullRom)
		if diff := cmp.Diff(lin, cr, approx); diff != "" {
			t.Fatalf("t=%v: expected linear fallback (-linear +catmull):\n%s", tv, diff)
		}
	}
}

func TestCatmullRomPassesThroughWaypoints(t *testing.T) {
	p := pathOf(
		geom.V(0, 0, 0),
		geom.V(2, 1, 3),
		geom.V(5, 0, 1),
		geom.V(7, 2, 4),
		geom.V(9, 0, 0),
	)
	n := len(p)
	for i := range p {
		tv := float64(i) / float64(n-1)
		got, _ := p.Position(tv, CatmullRom)
		if !geom.ApproxEqual(got, p[i].Position, 1e-9) {
			t.Fatalf("waypoint %d: expected %v, got %v", i, p[i].Position, got)
		}
	}

	// continuity across an interior boundary
	boundary := 2.0 / float64(n-1)
	before, _ := p.Position(boundary-1e-7, CatmullRom)
	after, _ := p.Position(boundary+1e-7, CatmullRom)
	if !geom.ApproxEqual(before, after, 1e-5) {
		t.Fatalf("discontinuity at boundary: %v vs %v", before, after)
	}
}

func TestSegment(t *testing.T) {
	tests := []struct {
		t        float64
		n        int
		wantIdx  int
		wantFrac float64
	}{
		{0, 4, 0, 0},
		{0.5, 4, 1, 0.5},
		{1, 4, 2, 1},
		{0.5, 2, 0, 0.5},
		{0.5, 1, 0, 0},
	}
	for _, tc := range tests {
		idx, frac := Segment(tc.t, tc.n)
		if idx != tc.wantIdx || !cmp.Equal(frac, tc.wantFrac, approx) {
			t.Fatalf("Segment(%v,%d) = %d,%v; want %d,%v", tc.t, tc.n, idx, frac, tc.wantIdx, tc.wantFrac)
		}
	}
}

func TestParseInterpolation(t *testing.T) {
	for in, want := range map[string]Interpolation{
		"":            Linear,
		"linear":      Linear,
		"catmull_rom": CatmullRom,
		"spline":      CatmullRom,
	} {
		got, err := ParseInterpolation(in)
		if err != nil || got != want {
			t.Fatalf("ParseInterpolation(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseInterpolation("bezier"); err == nil {
		t.Fatalf("expected error for unknown interpolation")
	}
}
