// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"fmt"

	"qmap/math/vec"
)

// Face is one bounding plane of a brush together with its texture mapping.
// Faces are owned by exactly one brush.
type Face struct {
	Plane     Plane
	Texture   Texture
	Alignment Alignment
}

// NewFace builds a world aligned face from three clockwise points. The
// texture axes are derived from the plane, the texture name and rotation of
// tex are kept.
func NewFace(p1, p2, p3 vec.Vec3, tex Texture) Face {
	f := Face{
		Plane:     Plane{P1: p1, P2: p2, P3: p3},
		Texture:   tex,
		Alignment: WorldAligned,
	}
	f.deriveAxes()
	return f
}

// deriveAxes recomputes the texture axes from the plane normal. Only world
// aligned faces are affected.
func (f *Face) deriveAxes() {
	if f.Alignment != WorldAligned {
		return
	}
	f.Texture.UAxis, f.Texture.VAxis = WorldAxes(f.Plane.Normal(), f.Texture.Rotation)
}

// Normal returns the outward face normal.
func (f *Face) Normal() vec.Vec3 {
	return f.Plane.Normal()
}

// IsValid reports whether the face has usable geometry: the plane points are
// not collinear and neither texture axis is parallel to the normal.
func (f *Face) IsValid(eps float64) bool {
	if f.Plane.IsDegenerate(eps) {
		return false
	}
	n := f.Plane.UnitNormal()
	u := f.Texture.UAxis.Normalize()
	v := f.Texture.VAxis.Normalize()
	if vec.Parallel(n, u, eps) || vec.Parallel(n, v, eps) {
		return false
	}
	return true
}

func (f *Face) String() string {
	return fmt.Sprintf("%s %s", f.Plane.String(), f.Texture.Name)
}
