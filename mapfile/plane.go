// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"fmt"

	qmath "qmap/math"
	"qmap/math/vec"
)

// DefaultEpsilon is the tolerance used by all geometry entry points that do
// not take an explicit epsilon. It is expressed in normalized coordinate
// units, i.e. against plane equations with unit normals.
const DefaultEpsilon = 1e-6

// Plane is a half space boundary defined by three points. The points are
// expected in clockwise order as seen from outside the solid, so that the
// normal points outward. A point x is inside the half space when
// Normal()*x <= Dist().
type Plane struct {
	P1, P2, P3 vec.Vec3
}

// Normal returns the unnormalized outward plane normal
// cross(P1-P2, P3-P2). For the format's clockwise winding this points out
// of the solid.
func (p Plane) Normal() vec.Vec3 {
	return vec.Cross(vec.Sub(p.P1, p.P2), vec.Sub(p.P3, p.P2))
}

// UnitNormal returns the normalized plane normal. It is the null vector for
// a degenerate plane.
func (p Plane) UnitNormal() vec.Vec3 {
	n := p.Normal()
	return n.Normalize()
}

// Dist returns the plane offset so that Normal()*x == Dist() on the plane.
func (p Plane) Dist() float64 {
	n := p.Normal()
	return vec.Dot(n, p.P1)
}

// IsDegenerate reports whether the three defining points are collinear.
func (p Plane) IsDegenerate(eps float64) bool {
	n := p.Normal()
	return n.Length() <= eps
}

// DistanceTo returns the signed distance of pt from the plane. Positive
// values are outside the half space.
func (p Plane) DistanceTo(pt vec.Vec3) float64 {
	n := p.UnitNormal()
	return vec.Dot(n, pt) - vec.Dot(n, p.P1)
}

type Side int

const (
	SideOn Side = iota
	SideFront
	SideBack
)

// SideOf classifies pt against the plane. SideFront is outside the half
// space, SideBack inside.
func (p Plane) SideOf(pt vec.Vec3, eps float64) Side {
	d := p.DistanceTo(pt)
	switch {
	case d > eps:
		return SideFront
	case d < -eps:
		return SideBack
	default:
		return SideOn
	}
}

// Contains reports whether pt lies inside or on the half space.
func (p Plane) Contains(pt vec.Vec3, eps float64) bool {
	return p.SideOf(pt, eps) != SideFront
}

// Project returns the orthogonal projection of pt onto the plane.
func (p Plane) Project(pt vec.Vec3) vec.Vec3 {
	n := p.UnitNormal()
	d := vec.Dot(n, vec.Sub(pt, p.P1))
	return vec.Sub(pt, n.Scale(d))
}

// Coincident reports whether the two planes describe the same surface,
// regardless of orientation.
func (p Plane) Coincident(o Plane, eps float64) bool {
	n1 := p.UnitNormal()
	n2 := o.UnitNormal()
	if !vec.Parallel(n1, n2, eps) {
		return false
	}
	d := p.DistanceTo(o.P1)
	return d >= -eps && d <= eps
}

// SameOriented reports whether the two planes describe the same surface with
// the same outward direction.
func (p Plane) SameOriented(o Plane, eps float64) bool {
	if !p.Coincident(o, eps) {
		return false
	}
	return vec.Dot(p.UnitNormal(), o.UnitNormal()) > 0
}

// Translated returns the plane moved by delta.
func (p Plane) Translated(delta vec.Vec3) Plane {
	return Plane{
		P1: vec.Add(p.P1, delta),
		P2: vec.Add(p.P2, delta),
		P3: vec.Add(p.P3, delta),
	}
}

// Rotated returns the plane rotated by m around center.
func (p Plane) Rotated(m qmath.Mat3, center vec.Vec3) Plane {
	rot := func(pt vec.Vec3) vec.Vec3 {
		return vec.Add(m.Apply(vec.Sub(pt, center)), center)
	}
	return Plane{P1: rot(p.P1), P2: rot(p.P2), P3: rot(p.P3)}
}

func (p Plane) String() string {
	f := func(v vec.Vec3) string {
		return fmt.Sprintf("( %v %v %v )", v.X, v.Y, v.Z)
	}
	return fmt.Sprintf("%s %s %s", f(p.P1), f(p.P2), f(p.P3))
}

// intersectPlanes solves the three plane equations for their common point.
// The determinant is evaluated on unit normals so eps is scale independent.
// ok is false if the system is singular, i.e. two of the planes are parallel
// or all three intersect in a line.
func intersectPlanes(a, b, c Plane, eps float64) (pt vec.Vec3, ok bool) {
	n1 := a.UnitNormal()
	n2 := b.UnitNormal()
	n3 := c.UnitNormal()
	d1 := vec.Dot(n1, a.P1)
	d2 := vec.Dot(n2, b.P1)
	d3 := vec.Dot(n3, c.P1)

	c23 := vec.Cross(n2, n3)
	det := vec.Dot(n1, c23)
	if det > -eps && det < eps {
		return vec.Vec3{}, false
	}
	c31 := vec.Cross(n3, n1)
	c12 := vec.Cross(n1, n2)
	s := vec.Add(vec.Add(c23.Scale(d1), c31.Scale(d2)), c12.Scale(d3))
	return s.Scale(1 / det), true
}
