// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"math"
	"testing"

	qmath "qmap/math"
	"qmap/math/vec"
)

// floor of a solid above z=0: clockwise from below, normal points down
func floorPlane() Plane {
	return Plane{
		P1: vec.Vec3{X: 0, Y: 64, Z: 0},
		P2: vec.Vec3{X: 0, Y: 0, Z: 0},
		P3: vec.Vec3{X: 64, Y: 0, Z: 0},
	}
}

func TestNormalDirection(t *testing.T) {
	p := floorPlane()
	n := p.UnitNormal()
	want := vec.Vec3{Z: -1}
	if !vec.ApproxEqual(n, want, 1e-12) {
		t.Errorf("UnitNormal() = %v want %v", n, want)
	}
	if d := p.Dist(); d != 0 {
		t.Errorf("Dist() = %v want 0", d)
	}
}

func TestSideOf(t *testing.T) {
	p := floorPlane()
	// the half space contains everything above the floor
	cases := []struct {
		pt   vec.Vec3
		want Side
	}{
		{vec.Vec3{Z: 10}, SideBack},
		{vec.Vec3{Z: -10}, SideFront},
		{vec.Vec3{X: 5, Y: 5}, SideOn},
		{vec.Vec3{Z: 1e-9}, SideOn},
	}
	for _, c := range cases {
		if got := p.SideOf(c.pt, 1e-6); got != c.want {
			t.Errorf("SideOf(%v) = %v want %v", c.pt, got, c.want)
		}
	}
	if !p.Contains(vec.Vec3{Z: 10}, 1e-6) {
		t.Errorf("point above the floor is not inside the half space")
	}
	if p.Contains(vec.Vec3{Z: -10}, 1e-6) {
		t.Errorf("point below the floor is inside the half space")
	}
}

func TestDistanceTo(t *testing.T) {
	p := floorPlane()
	got := p.DistanceTo(vec.Vec3{Z: 7})
	if math.Abs(got - -7) > 1e-12 {
		t.Errorf("DistanceTo(z=7) = %v want -7", got)
	}
}

func TestIsDegenerate(t *testing.T) {
	collinear := Plane{
		P1: vec.Vec3{X: 0, Y: 0, Z: 0},
		P2: vec.Vec3{X: 1, Y: 1, Z: 1},
		P3: vec.Vec3{X: 2, Y: 2, Z: 2},
	}
	if !collinear.IsDegenerate(1e-9) {
		t.Errorf("collinear points are not reported degenerate")
	}
	if floorPlane().IsDegenerate(1e-9) {
		t.Errorf("a proper plane is reported degenerate")
	}
}

func TestProject(t *testing.T) {
	p := floorPlane()
	got := p.Project(vec.Vec3{X: 5, Y: 6, Z: 7})
	want := vec.Vec3{X: 5, Y: 6, Z: 0}
	if !vec.ApproxEqual(got, want, 1e-12) {
		t.Errorf("Project = %v want %v", got, want)
	}
}

func TestCoincident(t *testing.T) {
	p := floorPlane()
	flipped := Plane{P1: p.P3, P2: p.P2, P3: p.P1}
	if !p.Coincident(flipped, 1e-9) {
		t.Errorf("flipped plane is not coincident")
	}
	if p.SameOriented(flipped, 1e-9) {
		t.Errorf("flipped plane is reported same oriented")
	}
	if !p.SameOriented(p.Translated(vec.Vec3{X: 3}), 1e-9) {
		t.Errorf("in-plane translation changed the plane")
	}
	if p.Coincident(p.Translated(vec.Vec3{Z: 1}), 1e-9) {
		t.Errorf("offset plane is reported coincident")
	}
}

func TestIntersectPlanes(t *testing.T) {
	x := Plane{ // x = 2
		P1: vec.Vec3{X: 2, Y: 0, Z: 1},
		P2: vec.Vec3{X: 2, Y: 0, Z: 0},
		P3: vec.Vec3{X: 2, Y: 1, Z: 0},
	}
	y := Plane{ // y = 3
		P1: vec.Vec3{X: 0, Y: 3, Z: 0},
		P2: vec.Vec3{X: 1, Y: 3, Z: 0},
		P3: vec.Vec3{X: 1, Y: 3, Z: 1},
	}
	z := floorPlane() // z = 0
	got, ok := intersectPlanes(x, y, z, 1e-9)
	if !ok {
		t.Fatalf("axis planes do not intersect")
	}
	want := vec.Vec3{X: 2, Y: 3, Z: 0}
	if !vec.ApproxEqual(got, want, 1e-9) {
		t.Errorf("intersectPlanes = %v want %v", got, want)
	}
}

func TestIntersectParallelPlanes(t *testing.T) {
	z := floorPlane()
	z2 := z.Translated(vec.Vec3{Z: 5})
	x := Plane{
		P1: vec.Vec3{X: 2, Y: 0, Z: 1},
		P2: vec.Vec3{X: 2, Y: 0, Z: 0},
		P3: vec.Vec3{X: 2, Y: 1, Z: 0},
	}
	if _, ok := intersectPlanes(z, z2, x, 1e-9); ok {
		t.Errorf("parallel planes reported an intersection point")
	}
}

func TestRotated(t *testing.T) {
	p := floorPlane()
	got := p.Rotated(qmath.RotationX(90), vec.Vec3{})
	// the floor normal -z rotates to +y
	want := vec.Vec3{Y: 1}
	if n := got.UnitNormal(); !vec.ApproxEqual(n, want, 1e-12) {
		t.Errorf("rotated normal = %v want %v", n, want)
	}
}
