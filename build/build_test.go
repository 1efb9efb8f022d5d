// SPDX-License-Identifier: GPL-2.0-or-later

package build

import (
	"errors"
	"strings"
	"testing"

	"qmap/mapfile"
	"qmap/math/vec"
)

func TestCuboid(t *testing.T) {
	b, err := Cuboid(64, 128, 32, vec.Vec3{X: 16, Y: 0, Z: -8}, false, "STONE1_3")
	if err != nil {
		t.Fatalf("Cuboid: %v", err)
	}
	min, max, err := b.Bounds()
	if err != nil {
		t.Fatal(err)
	}
	wantMin := vec.Vec3{X: 16, Y: 0, Z: -8}
	wantMax := vec.Vec3{X: 80, Y: 128, Z: 24}
	if !vec.ApproxEqual(min, wantMin, 1e-9) {
		t.Errorf("min = %v want %v", min, wantMin)
	}
	if !vec.ApproxEqual(max, wantMax, 1e-9) {
		t.Errorf("max = %v want %v", max, wantMax)
	}
	verts, err := b.Vertices()
	if err != nil {
		t.Fatal(err)
	}
	if len(verts) != 8 {
		t.Errorf("vertex count = %d want 8", len(verts))
	}
	if !b.HasTexture("STONE1_3", true) {
		t.Errorf("texture not applied")
	}
}

func TestCuboidCentered(t *testing.T) {
	b, err := Cuboid(64, 64, 64, vec.Vec3{X: 100, Y: 200, Z: 300}, true, "STONE1_3")
	if err != nil {
		t.Fatal(err)
	}
	c, err := b.BoundsCenter()
	if err != nil {
		t.Fatal(err)
	}
	want := vec.Vec3{X: 100, Y: 200, Z: 300}
	if !vec.ApproxEqual(c, want, 1e-9) {
		t.Errorf("center = %v want %v", c, want)
	}
}

func TestCuboidRejectsBadExtents(t *testing.T) {
	for _, dims := range [][3]float64{{0, 64, 64}, {64, -1, 64}, {64, 64, 0}} {
		if _, err := Cuboid(dims[0], dims[1], dims[2], vec.Vec3{}, false, "X"); err == nil {
			t.Errorf("Cuboid(%v) succeeded", dims)
		}
	}
}

func TestRoom(t *testing.T) {
	room, err := Room(256, 256, 128, 16, vec.Vec3{}, false, "STONE1_3")
	if err != nil {
		t.Fatalf("Room: %v", err)
	}
	if len(room) != 6 {
		t.Fatalf("brush count = %d want 6", len(room))
	}

	// the union of the parts spans the outer extents
	outMin := vec.Vec3{X: 1e18, Y: 1e18, Z: 1e18}
	outMax := outMin.Scale(-1)
	for _, b := range room {
		min, max, err := b.Bounds()
		if err != nil {
			t.Fatal(err)
		}
		outMin, _ = vec.MinMax(outMin, min)
		_, outMax = vec.MinMax(outMax, max)
	}
	if !vec.ApproxEqual(outMin, vec.Vec3{}, 1e-9) {
		t.Errorf("outer min = %v", outMin)
	}
	if !vec.ApproxEqual(outMax, vec.Vec3{X: 256, Y: 256, Z: 128}, 1e-9) {
		t.Errorf("outer max = %v", outMax)
	}

	// the interior stays hollow
	inside := vec.Vec3{X: 128, Y: 128, Z: 64}
	for i, b := range room {
		contains := true
		for _, f := range b.Faces() {
			if !f.Plane.Contains(inside, 1e-9) {
				contains = false
				break
			}
		}
		if contains {
			t.Errorf("brush %d contains the room center", i)
		}
	}
}

func TestRoomRejectsThickWalls(t *testing.T) {
	if _, err := Room(64, 64, 64, 32, vec.Vec3{}, false, "X"); err == nil {
		t.Errorf("walls thicker than the interior accepted")
	}
	if _, err := Room(64, 64, 64, 0, vec.Vec3{}, false, "X"); err == nil {
		t.Errorf("zero thickness accepted")
	}
}

func TestPlayerStart(t *testing.T) {
	e := PlayerStart(vec.Vec3{X: 0, Y: 0, Z: 24}, 90)
	if got := e.Classname(); got != "info_player_start" {
		t.Errorf("classname = %q", got)
	}
	o, err := e.Origin()
	if err != nil {
		t.Fatal(err)
	}
	if !vec.ApproxEqual(o, vec.Vec3{Z: 24}, 1e-9) {
		t.Errorf("origin = %v", o)
	}
	if got := e.Get("angles"); got != "0 90 0" {
		t.Errorf("angles = %q", got)
	}
	if !e.IsPointEntity() {
		t.Errorf("player start owns brushes")
	}
}

func TestLightEnvironment(t *testing.T) {
	e := LightEnvironment(vec.Vec3{Z: 512}, 45, -60)
	if got := e.Classname(); got != "light_environment" {
		t.Errorf("classname = %q", got)
	}
	if got := e.Get("pitch"); got != "-60" {
		t.Errorf("pitch = %q", got)
	}
	if got := e.Get("_light"); got == "" {
		t.Errorf("no _light property")
	}
}

func TestLight(t *testing.T) {
	e := Light(vec.Vec3{Z: 128}, 300)
	if got := e.Get("_light"); got != "255 255 255 300" {
		t.Errorf("_light = %q", got)
	}
}

func TestBrushEntity(t *testing.T) {
	b, err := Cuboid(64, 64, 16, vec.Vec3{}, false, "DOOR1")
	if err != nil {
		t.Fatal(err)
	}
	e, err := BrushEntity("func_door", b)
	if err != nil {
		t.Fatalf("BrushEntity: %v", err)
	}
	if got := e.Classname(); got != "func_door" {
		t.Errorf("classname = %q", got)
	}
	if len(e.Brushes()) != 1 {
		t.Errorf("brush count = %d want 1", len(e.Brushes()))
	}
	name := e.Get("targetname")
	if !strings.HasPrefix(name, "func_door_") {
		t.Errorf("targetname = %q", name)
	}

	b2, err := Cuboid(64, 64, 16, vec.Vec3{}, false, "DOOR1")
	if err != nil {
		t.Fatal(err)
	}
	e2, err := BrushEntity("func_door", b2)
	if err != nil {
		t.Fatal(err)
	}
	if e2.Get("targetname") == name {
		t.Errorf("generated targetnames collide")
	}
}

func TestBrushEntityValidation(t *testing.T) {
	b, err := Cuboid(8, 8, 8, vec.Vec3{}, false, "X")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := BrushEntity("", b); err == nil {
		t.Errorf("empty classname accepted")
	}
	if _, err := BrushEntity("func_wall"); err == nil {
		t.Errorf("brushless entity accepted")
	}
	var verr *mapfile.ValidationError
	if _, err := BrushEntity(""); !errors.As(err, &verr) {
		t.Errorf("error = %T want *mapfile.ValidationError", err)
	}
}
