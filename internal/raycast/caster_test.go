package raycast

import (
	"math"
	"testing"
)

func TestCastRay_HitsEastWall(t *testing.T) {
	w := newTestWorld(t, corridorMaze...)
	p := Player{Pos: Vec2{150, 150}, A: 0, FOV: DefaultFOV}

	hit := CastRay(nil, w, p, 0, false)
	if hit.Impact != CellGoal {
		t.Fatalf("impact = %q, want goal", hit.Impact)
	}
	if math.Abs(hit.Distance-450) > 1e-9 {
		t.Fatalf("distance = %f, want 450", hit.Distance)
	}
	// Vertical face: tx comes from hit.y = 150 → 50/100*128.
	if math.Abs(hit.TX-64) > 1e-9 {
		t.Fatalf("tx = %f, want 64", hit.TX)
	}
}

func TestCastRay_HorizontalFaceUsesX(t *testing.T) {
	w := newTestWorld(t, corridorMaze...)
	p := Player{Pos: Vec2{125, 150}, A: -math.Pi / 2, FOV: DefaultFOV}

	hit := CastRay(nil, w, p, p.A, false)
	if hit.Impact != '+' {
		t.Fatalf("impact = %q", hit.Impact)
	}
	if math.Abs(hit.Distance-50) > 1e-9 {
		t.Fatalf("distance = %f, want 50", hit.Distance)
	}
	if math.Abs(hit.TX-32) > 1e-9 {
		t.Fatalf("tx = %f, want 32 (25/100*128)", hit.TX)
	}
}

func TestCastRay_DiagonalDistanceIsEuclidean(t *testing.T) {
	w := newTestWorld(t, hallMaze...)
	p := Player{Pos: Vec2{100, 650}, A: 0, FOV: DefaultFOV}
	a := -math.Pi / 6
	hit := CastRay(nil, w, p, a, false)
	want := 500 / math.Cos(a)
	if math.Abs(hit.Distance-want) > 1e-6 {
		t.Fatalf("distance = %f, want %f", hit.Distance, want)
	}
	if hit.TX < 0 || hit.TX >= TextureSpan {
		t.Fatalf("tx %f out of range", hit.TX)
	}
}

func TestCastRay_LeavingMazeIsMiss(t *testing.T) {
	w := newTestWorld(t,
		"+++g",
		"+   ",
		"++++",
	)
	p := Player{Pos: Vec2{150, 150}, A: 0, FOV: DefaultFOV}
	hit := CastRay(nil, w, p, 0, false)
	if !hit.Missed() || hit.Distance != MaxRayDistance {
		t.Fatalf("expected miss, got %+v", hit)
	}
}

func TestCastRay_TXAlwaysInRange(t *testing.T) {
	w := newTestWorld(t, hallMaze...)
	p := Player{Pos: Vec2{333, 777}, FOV: DefaultFOV}
	for i := 0; i < 720; i++ {
		a := float64(i) * math.Pi / 360
		hit := CastRay(nil, w, p, a, false)
		if hit.Missed() {
			t.Fatalf("closed room should never miss (a=%f)", a)
		}
		if hit.TX < 0 || hit.TX >= TextureSpan {
			t.Fatalf("a=%f: tx %f outside [0,%d)", a, hit.TX, TextureSpan)
		}
	}
}

func TestCastRay_DebugPlotsPath(t *testing.T) {
	w := newTestWorld(t, corridorMaze...)
	fb := NewFramebuffer(700, 300)
	fb.SetCurrentColor(DebugRayColor)
	p := Player{Pos: Vec2{150, 150}, A: 0, FOV: DefaultFOV}

	CastRay(fb, w, p, 0, true)
	for x := 150; x < 600; x += 50 {
		if fb.Pixel(x, 150) != DebugRayColor {
			t.Fatalf("expected ray pixel at (%d,150)", x)
		}
	}
	if fb.Pixel(610, 150) == DebugRayColor {
		t.Fatal("ray plotted past the wall")
	}

	clean := NewFramebuffer(700, 300)
	clean.SetCurrentColor(DebugRayColor)
	CastRay(clean, w, p, 0, false)
	if countColor(clean, DebugRayColor) != 0 {
		t.Fatal("non-debug cast must not draw")
	}
}
