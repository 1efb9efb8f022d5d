// SPDX-License-Identifier: GPL-2.0-or-later

package build

import (
	"fmt"

	"github.com/google/uuid"

	"qmap/mapfile"
	"qmap/math/vec"
)

// PlayerStart returns an info_player_start entity at origin facing the
// given yaw angle.
func PlayerStart(origin vec.Vec3, angle float64) *mapfile.Entity {
	e := mapfile.NewEntity("info_player_start")
	e.SetOrigin(origin)
	e.SetProperty("angles", fmt.Sprintf("0 %v 0", angle))
	return e
}

// LightEnvironment returns a light_environment entity, the map wide sun
// light.
func LightEnvironment(origin vec.Vec3, angle, pitch float64) *mapfile.Entity {
	e := mapfile.NewEntity("light_environment")
	e.SetProperty("angle", fmt.Sprintf("%v", angle))
	e.SetProperty("pitch", fmt.Sprintf("%v", pitch))
	e.SetProperty("_light", "255 255 255 200")
	e.SetOrigin(origin)
	return e
}

// Light returns a point light at origin with the given brightness.
func Light(origin vec.Vec3, brightness int) *mapfile.Entity {
	e := mapfile.NewEntity("light")
	e.SetOrigin(origin)
	e.SetProperty("_light", fmt.Sprintf("255 255 255 %d", brightness))
	return e
}

// BrushEntity returns an entity of the given class owning the brushes, with
// a generated collision free targetname. It fails with a ValidationError if
// classname is empty or no brush is given.
func BrushEntity(classname string, brushes ...*mapfile.Brush) (*mapfile.Entity, error) {
	if classname == "" {
		return nil, &mapfile.ValidationError{Msg: "brush entity needs a classname"}
	}
	if len(brushes) == 0 {
		return nil, &mapfile.ValidationError{Msg: "brush entity needs at least one brush"}
	}
	e := mapfile.NewEntity(classname)
	e.SetProperty("targetname", classname+"_"+uuid.Must(uuid.NewV7()).String())
	e.AddBrush(brushes...)
	return e, nil
}
