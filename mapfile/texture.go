// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"strings"

	qmath "qmap/math"
	"qmap/math/vec"
)

// Alignment selects how a face's texture axes behave under transforms.
type Alignment int

const (
	// WorldAligned axes are not stored on disk. They are derived from the
	// dominant axis of the face normal and re-derived after every
	// transform. This is the behavior of the plain Quake face syntax and
	// the default for new faces.
	WorldAligned Alignment = iota
	// FaceAligned axes are explicit (Valve220 face syntax) and follow the
	// face through rotations.
	FaceAligned
)

func (a Alignment) String() string {
	if a == FaceAligned {
		return "face"
	}
	return "world"
}

// Texture is the texture mapping of one face.
type Texture struct {
	Name             string
	UAxis, VAxis     vec.Vec3
	UOffset, VOffset float64
	Rotation         float64
	UScale, VScale   float64
}

// NewTexture returns a texture with identity scale and axes for a horizontal
// surface.
func NewTexture(name string) Texture {
	return Texture{
		Name:   name,
		UAxis:  vec.Vec3{X: 1},
		VAxis:  vec.Vec3{Y: -1},
		UScale: 1,
		VScale: 1,
	}
}

// baseAxes is the dominant axis table. For each of the six axis directions
// it lists the direction itself and the U and V axes a texture projects
// along when that direction dominates the face normal.
var baseAxes = [6][3]vec.Vec3{
	{{Z: 1}, {X: 1}, {Y: -1}},  // floor
	{{Z: -1}, {X: 1}, {Y: -1}}, // ceiling
	{{X: 1}, {Y: 1}, {Z: -1}},  // west wall
	{{X: -1}, {Y: 1}, {Z: -1}}, // east wall
	{{Y: 1}, {X: 1}, {Z: -1}},  // south wall
	{{Y: -1}, {X: 1}, {Z: -1}}, // north wall
}

// WorldAxes derives the texture axes for a world aligned face with the given
// normal and texture rotation in degrees.
func WorldAxes(normal vec.Vec3, rotation float64) (u, v vec.Vec3) {
	best := 0
	bestDot := 0.0
	n := normal.Normalize()
	for i := range baseAxes {
		d := vec.Dot(n, baseAxes[i][0])
		if d > bestDot {
			bestDot = d
			best = i
		}
	}
	u = baseAxes[best][1]
	v = baseAxes[best][2]
	if rotation != 0 {
		m := qmath.RotationAxis(rotation, baseAxes[best][0])
		u = m.Apply(u)
		v = m.Apply(v)
	}
	return u, v
}

// Matches reports whether the texture name matches. With exact it is a case
// insensitive full compare, otherwise a substring match.
func (t *Texture) Matches(name string, exact bool) bool {
	if exact {
		return strings.EqualFold(t.Name, name)
	}
	return strings.Contains(strings.ToUpper(t.Name), strings.ToUpper(name))
}

// shift keeps the projected texture anchored while the geometry moves by
// delta: offsets move against the displacement along each axis.
func (t *Texture) shift(delta vec.Vec3) {
	us := t.UScale
	if us == 0 {
		us = 1
	}
	vs := t.VScale
	if vs == 0 {
		vs = 1
	}
	t.UOffset -= vec.Dot(delta, t.UAxis) / us
	t.VOffset -= vec.Dot(delta, t.VAxis) / vs
}

// rotateAxes applies m to both texture axes.
func (t *Texture) rotateAxes(m qmath.Mat3) {
	t.UAxis = m.Apply(t.UAxis)
	t.VAxis = m.Apply(t.VAxis)
}
