// SPDX-License-Identifier: GPL-2.0-or-later

// Transforms treat the face planes as the source of truth: defining points
// are mapped, vertices are re-derived afterwards. Every brush transform is
// computed on a working copy and committed only if the result still
// encloses a volume, so a failed transform leaves the brush untouched.

package mapfile

import (
	qmath "qmap/math"
	"qmap/math/vec"
)

// translate moves the face by delta, keeping the projected texture anchored.
func (f *Face) translate(delta vec.Vec3) {
	f.Plane = f.Plane.Translated(delta)
	f.Texture.shift(delta)
}

// rotate applies m around center. Face aligned texture axes rotate with the
// geometry, world aligned axes are re-derived from the new normal.
func (f *Face) rotate(m qmath.Mat3, center vec.Vec3) {
	f.Plane = f.Plane.Rotated(m, center)
	if f.Alignment == FaceAligned {
		f.Texture.rotateAxes(m)
	} else {
		f.deriveAxes()
	}
}

// MoveBy translates the brush by delta. On failure the brush is unchanged.
func (b *Brush) MoveBy(delta vec.Vec3) error {
	work := b.Copy()
	for i := range work.faces {
		work.faces[i].translate(delta)
	}
	return b.commit(work)
}

// MoveTo moves the brush so its vertex centroid ends up at target.
func (b *Brush) MoveTo(target vec.Vec3) error {
	c, err := b.Centroid()
	if err != nil {
		return err
	}
	return b.MoveBy(vec.Sub(target, c))
}

// MoveToBounds moves the brush so its bounding box center ends up at target.
func (b *Brush) MoveToBounds(target vec.Vec3) error {
	c, err := b.BoundsCenter()
	if err != nil {
		return err
	}
	return b.MoveBy(vec.Sub(target, c))
}

// RotateX rotates the brush around an x axis through center.
func (b *Brush) RotateX(degree float64, center vec.Vec3) error {
	return b.rotate(qmath.RotationX(degree), center)
}

// RotateY rotates the brush around a y axis through center.
func (b *Brush) RotateY(degree float64, center vec.Vec3) error {
	return b.rotate(qmath.RotationY(degree), center)
}

// RotateZ rotates the brush around a z axis through center.
func (b *Brush) RotateZ(degree float64, center vec.Vec3) error {
	return b.rotate(qmath.RotationZ(degree), center)
}

// RotateXYZ rotates around x by phi, y by theta and z by psi, in that
// order, through center.
func (b *Brush) RotateXYZ(phi, theta, psi float64, center vec.Vec3) error {
	return b.rotate(qmath.RotationXYZ(phi, theta, psi), center)
}

// RotateAxis rotates the brush around an arbitrary axis through center.
func (b *Brush) RotateAxis(degree float64, axis, center vec.Vec3) error {
	return b.rotate(qmath.RotationAxis(degree, axis), center)
}

func (b *Brush) rotate(m qmath.Mat3, center vec.Vec3) error {
	work := b.Copy()
	for i := range work.faces {
		work.faces[i].rotate(m, center)
	}
	return b.commit(work)
}

// commit replaces the faces with the transformed working copy if it still
// has enumerable vertices.
func (b *Brush) commit(work *Brush) error {
	if _, err := work.Vertices(); err != nil {
		return err
	}
	b.faces = work.faces
	return nil
}
