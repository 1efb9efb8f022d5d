// SPDX-License-Identifier: GPL-2.0-or-later

// Package build provides factory functions for common brushes and entities.
// It sits strictly on top of mapfile: everything returned satisfies the
// brush and entity invariants and can be added to a document as is.
package build

import (
	"qmap/mapfile"
	"qmap/math/vec"
)

// Cuboid returns an axis aligned box brush of the given extents. pos is the
// minimum corner, or the box center with centered. All faces are world
// aligned and textured with texture.
func Cuboid(w, l, h float64, pos vec.Vec3, centered bool, texture string) (*mapfile.Brush, error) {
	if w <= 0 || l <= 0 || h <= 0 {
		return nil, &mapfile.ValidationError{Msg: "cuboid extents must be positive"}
	}
	if centered {
		pos = vec.Sub(pos, vec.Vec3{X: w / 2, Y: l / 2, Z: h / 2})
	}
	x, y, z := pos.X, pos.Y, pos.Z
	tex := mapfile.NewTexture(texture)

	// clockwise as seen from outside, per face
	faces := []mapfile.Face{
		mapfile.NewFace( // top
			vec.Vec3{X: x, Y: y, Z: z + h},
			vec.Vec3{X: x, Y: y + l, Z: z + h},
			vec.Vec3{X: x + w, Y: y + l, Z: z + h},
			tex),
		mapfile.NewFace( // bottom
			vec.Vec3{X: x, Y: y + l, Z: z},
			vec.Vec3{X: x, Y: y, Z: z},
			vec.Vec3{X: x + w, Y: y, Z: z},
			tex),
		mapfile.NewFace( // north
			vec.Vec3{X: x + w, Y: y + l, Z: z},
			vec.Vec3{X: x + w, Y: y + l, Z: z + h},
			vec.Vec3{X: x, Y: y + l, Z: z + h},
			tex),
		mapfile.NewFace( // south
			vec.Vec3{X: x + w, Y: y, Z: z + h},
			vec.Vec3{X: x + w, Y: y, Z: z},
			vec.Vec3{X: x, Y: y, Z: z},
			tex),
		mapfile.NewFace( // west
			vec.Vec3{X: x, Y: y, Z: z},
			vec.Vec3{X: x, Y: y + l, Z: z},
			vec.Vec3{X: x, Y: y + l, Z: z + h},
			tex),
		mapfile.NewFace( // east
			vec.Vec3{X: x + w, Y: y + l, Z: z},
			vec.Vec3{X: x + w, Y: y, Z: z},
			vec.Vec3{X: x + w, Y: y, Z: z + h},
			tex),
	}
	return mapfile.NewBrush(faces...)
}

// Room returns the six brushes of a hollow box: floor, ceiling and four
// walls of the given wall thickness. The outer extents are w, l, h; pos is
// the minimum outer corner, or the room center with centered.
func Room(w, l, h, thickness float64, pos vec.Vec3, centered bool, texture string) ([]*mapfile.Brush, error) {
	t := thickness
	if t <= 0 || w <= 2*t || l <= 2*t || h <= 2*t {
		return nil, &mapfile.ValidationError{Msg: "room extents must leave an interior"}
	}
	if centered {
		pos = vec.Sub(pos, vec.Vec3{X: w / 2, Y: l / 2, Z: h / 2})
	}
	x, y, z := pos.X, pos.Y, pos.Z

	parts := []struct {
		w, l, h float64
		pos     vec.Vec3
	}{
		{w, l, t, vec.Vec3{X: x, Y: y, Z: z}},                             // floor
		{w, l, t, vec.Vec3{X: x, Y: y, Z: z + h - t}},                     // ceiling
		{w, t, h - 2*t, vec.Vec3{X: x, Y: y, Z: z + t}},                   // south wall
		{w, t, h - 2*t, vec.Vec3{X: x, Y: y + l - t, Z: z + t}},           // north wall
		{t, l - 2*t, h - 2*t, vec.Vec3{X: x, Y: y + t, Z: z + t}},         // west wall
		{t, l - 2*t, h - 2*t, vec.Vec3{X: x + w - t, Y: y + t, Z: z + t}}, // east wall
	}
	room := make([]*mapfile.Brush, 0, len(parts))
	for _, part := range parts {
		b, err := Cuboid(part.w, part.l, part.h, part.pos, false, texture)
		if err != nil {
			return nil, err
		}
		room = append(room, b)
	}
	return room, nil
}
