// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"qmap/math/vec"
)

// Brush is a convex solid described as the intersection of the half spaces
// of at least four faces. It owns its faces and is owned by at most one
// entity. Vertices are never stored, they are derived from the planes on
// demand.
type Brush struct {
	faces []Face
	owner *Entity
}

// NewBrush builds a brush from the given faces. It fails with a
// GeometryError if fewer than four faces are given, two faces lie on the
// same oriented plane, or the faces do not enclose a volume.
func NewBrush(faces ...Face) (*Brush, error) {
	b := &Brush{faces: faces}
	if err := b.check(DefaultEpsilon); err != nil {
		return nil, err
	}
	return b, nil
}

// check verifies the brush invariant.
func (b *Brush) check(eps float64) error {
	if len(b.faces) < 4 {
		return &GeometryError{Context: "brush", Reason: "degenerate brush: fewer than 4 faces"}
	}
	for i := range b.faces {
		for j := i + 1; j < len(b.faces); j++ {
			if b.faces[i].Plane.SameOriented(b.faces[j].Plane, eps) {
				return &GeometryError{Context: "brush", Reason: "duplicate face plane"}
			}
		}
	}
	verts, _ := enumerateVertices(b.faces, eps)
	if len(verts) == 0 {
		return &GeometryError{Context: "brush", Reason: "degenerate brush: no enumerable vertices"}
	}
	return nil
}

// Faces returns the brush's faces in order. The slice is owned by the brush.
func (b *Brush) Faces() []Face {
	return b.faces
}

// AddFace appends a face. No validation happens here, see NewBrush and
// (*Map).Validate.
func (b *Brush) AddFace(f ...Face) {
	b.faces = append(b.faces, f...)
}

// Copy returns a deep copy of the brush. The copy has no owning entity.
func (b *Brush) Copy() *Brush {
	nb := &Brush{faces: make([]Face, len(b.faces))}
	copy(nb.faces, b.faces)
	return nb
}

// Vertices enumerates the brush's vertices with the default tolerance.
func (b *Brush) Vertices() ([]vec.Vec3, error) {
	return b.VerticesEps(DefaultEpsilon)
}

// VerticesEps enumerates the brush's vertices. It fails with a
// GeometryError if the faces do not bound a volume.
func (b *Brush) VerticesEps(eps float64) ([]vec.Vec3, error) {
	if len(b.faces) < 4 {
		return nil, &GeometryError{Context: "brush", Reason: "degenerate brush: fewer than 4 faces"}
	}
	verts, _ := enumerateVertices(b.faces, eps)
	if len(verts) == 0 {
		return nil, &GeometryError{Context: "brush", Reason: "degenerate brush: no enumerable vertices"}
	}
	return verts, nil
}

// Polygons derives the wound face loops with the default tolerance.
// Degenerate faces are dropped and reported in the diagnostics.
func (b *Brush) Polygons() ([]Polygon, []Diagnostic, error) {
	return b.PolygonsEps(DefaultEpsilon)
}

func (b *Brush) PolygonsEps(eps float64) ([]Polygon, []Diagnostic, error) {
	return polygons(b.faces, "brush", eps)
}

// Centroid returns the arithmetic mean of the enumerated vertices.
func (b *Brush) Centroid() (vec.Vec3, error) {
	verts, err := b.Vertices()
	if err != nil {
		return vec.Vec3{}, err
	}
	var c vec.Vec3
	for _, v := range verts {
		c = vec.Add(c, v)
	}
	return c.Scale(1 / float64(len(verts))), nil
}

// Bounds returns the axis aligned bounding box of the brush.
func (b *Brush) Bounds() (mins, maxs vec.Vec3, err error) {
	verts, err := b.Vertices()
	if err != nil {
		return vec.Vec3{}, vec.Vec3{}, err
	}
	mins, maxs = verts[0], verts[0]
	for _, v := range verts[1:] {
		low, _ := vec.MinMax(mins, v)
		_, high := vec.MinMax(maxs, v)
		mins, maxs = low, high
	}
	return mins, maxs, nil
}

// BoundsCenter returns the center of the bounding box, as opposed to the
// vertex centroid.
func (b *Brush) BoundsCenter() (vec.Vec3, error) {
	mins, maxs, err := b.Bounds()
	if err != nil {
		return vec.Vec3{}, err
	}
	return vec.Add(mins, maxs).Scale(0.5), nil
}

// HasTexture reports whether any face uses the texture.
func (b *Brush) HasTexture(name string, exact bool) bool {
	for i := range b.faces {
		if b.faces[i].Texture.Matches(name, exact) {
			return true
		}
	}
	return false
}

// SetTexture sets the texture name on every face.
func (b *Brush) SetTexture(name string) {
	for i := range b.faces {
		b.faces[i].Texture.Name = name
	}
}

// ReplaceTexture renames the texture only on faces that use old.
func (b *Brush) ReplaceTexture(old, new string) {
	for i := range b.faces {
		if b.faces[i].Texture.Matches(old, true) {
			b.faces[i].Texture.Name = new
		}
	}
}
