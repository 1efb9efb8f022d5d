// SPDX-License-Identifier: GPL-2.0-or-later

// Brush geometry is stored as bounding planes only. Everything vertex shaped
// is derived here: candidate vertices come from solving each face triple's
// plane equations, survivors are the candidates inside every other half
// space, and per face windings come from sorting the surviving vertices
// around the face centroid.

package mapfile

import (
	"math"
	"sort"

	"qmap/math/vec"
)

// Polygon is one face of a brush with its derived vertex loop. The loop is
// wound clockwise as seen from the front of the face.
type Polygon struct {
	Face  *Face
	Verts []vec.Vec3
}

// enumerateVertices derives the vertex set of the solid bounded by faces.
// The second return value lists, per face, the indexes of the vertices that
// lie on that face. A vertex shared by more than three faces is associated
// with all of them, not only the triple that produced it.
func enumerateVertices(faces []Face, eps float64) (verts []vec.Vec3, byFace [][]int) {
	n := len(faces)
	byFace = make([][]int, n)

	for i := 0; i < n-2; i++ {
		for j := i + 1; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				pt, ok := intersectPlanes(faces[i].Plane, faces[j].Plane, faces[k].Plane, eps)
				if !ok {
					continue
				}
				outside := false
				for m := 0; m < n; m++ {
					if m == i || m == j || m == k {
						continue
					}
					if !faces[m].Plane.Contains(pt, eps) {
						outside = true
						break
					}
				}
				if outside {
					continue
				}
				dup := false
				for _, v := range verts {
					if vec.ApproxEqual(pt, v, eps) {
						dup = true
						break
					}
				}
				if dup {
					continue
				}
				idx := len(verts)
				verts = append(verts, pt)
				for m := 0; m < n; m++ {
					d := faces[m].Plane.DistanceTo(pt)
					if d >= -eps && d <= eps {
						byFace[m] = append(byFace[m], idx)
					}
				}
			}
		}
	}
	return verts, byFace
}

// planeBasis returns an in-plane orthonormal basis (u, v) with
// cross(u, v) == n for the unit normal n.
func planeBasis(n vec.Vec3) (u, v vec.Vec3) {
	ref := vec.Vec3{Z: 1}
	if math.Abs(n.Z) > 0.999 {
		ref = vec.Vec3{X: 1}
	}
	u = vec.Cross(ref, n)
	u = u.Normalize()
	v = vec.Cross(n, u)
	return u, v
}

// windFace orders the face's vertices clockwise as seen from the front. The
// vertices are projected into the face plane and sorted by polar angle
// around their centroid.
func windFace(f *Face, verts []vec.Vec3) []vec.Vec3 {
	n := f.Plane.UnitNormal()
	u, v := planeBasis(n)

	var center vec.Vec3
	for _, pt := range verts {
		center = vec.Add(center, pt)
	}
	center = center.Scale(1 / float64(len(verts)))

	type polar struct {
		pt    vec.Vec3
		angle float64
	}
	ps := make([]polar, 0, len(verts))
	for _, pt := range verts {
		d := vec.Sub(f.Plane.Project(pt), f.Plane.Project(center))
		ps = append(ps, polar{pt: pt, angle: math.Atan2(vec.Dot(d, v), vec.Dot(d, u))})
	}
	// descending angle is clockwise when the normal points at the viewer
	sort.Slice(ps, func(a, b int) bool { return ps[a].angle > ps[b].angle })

	out := make([]vec.Vec3, len(ps))
	for i, p := range ps {
		out[i] = p.pt
	}
	return out
}

// polygons derives the wound faces of the solid. Faces that retain fewer
// than three vertices are dropped and reported in diags; if fewer than four
// faces survive, the brush as a whole is unusable and a GeometryError is
// returned.
func polygons(faces []Face, context string, eps float64) ([]Polygon, []Diagnostic, error) {
	if len(faces) < 4 {
		return nil, nil, &GeometryError{Context: context, Reason: "degenerate brush: fewer than 4 faces"}
	}
	verts, byFace := enumerateVertices(faces, eps)
	if len(verts) == 0 {
		return nil, nil, &GeometryError{Context: context, Reason: "degenerate brush: no enumerable vertices"}
	}

	var polys []Polygon
	var diags []Diagnostic
	for i := range faces {
		if len(byFace[i]) < 3 {
			diags = append(diags, Diagnostic{
				Entity: -1, Brush: -1,
				Err: &GeometryError{
					Context: context,
					Reason:  "degenerate face " + faces[i].Texture.Name + ": fewer than 3 vertices",
				},
			})
			continue
		}
		fv := make([]vec.Vec3, 0, len(byFace[i]))
		for _, idx := range byFace[i] {
			fv = append(fv, verts[idx])
		}
		polys = append(polys, Polygon{
			Face:  &faces[i],
			Verts: windFace(&faces[i], fv),
		})
	}
	if len(polys) < 4 {
		return nil, diags, &GeometryError{Context: context, Reason: "degenerate brush: fewer than 4 faces with area"}
	}
	return polys, diags, nil
}
