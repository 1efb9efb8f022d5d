// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"errors"
	"fmt"

	qmath "qmap/math"
	"qmap/math/vec"
)

// ErrPropertyNotFound is returned by the strict property accessor.
var ErrPropertyNotFound = errors.New("property not found")

// Property is one key/value pair of an entity.
type Property struct {
	Key, Value string
}

// Entity is an ordered key/value property store owning zero or more
// brushes. Keys are unique, insertion order is preserved through
// serialization.
type Entity struct {
	props   []Property
	brushes []*Brush
}

// NewEntity returns an entity with the given classname as its only
// property.
func NewEntity(classname string) *Entity {
	e := &Entity{}
	e.SetProperty("classname", classname)
	return e
}

// Property returns the value for name and whether it exists.
func (e *Entity) Property(name string) (string, bool) {
	for _, p := range e.props {
		if p.Key == name {
			return p.Value, true
		}
	}
	return "", false
}

// Get is the lenient accessor: it returns the empty string for a missing
// property. Use Property or Must to distinguish missing from empty.
func (e *Entity) Get(name string) string {
	v, _ := e.Property(name)
	return v
}

// Must is the strict accessor: it fails with ErrPropertyNotFound when the
// property is absent.
func (e *Entity) Must(name string) (string, error) {
	v, ok := e.Property(name)
	if !ok {
		return "", fmt.Errorf("%q: %w", name, ErrPropertyNotFound)
	}
	return v, nil
}

// SetProperty sets name to value, keeping the position of an existing key.
func (e *Entity) SetProperty(name, value string) {
	for i := range e.props {
		if e.props[i].Key == name {
			e.props[i].Value = value
			return
		}
	}
	e.props = append(e.props, Property{Key: name, Value: value})
}

// RemoveProperty deletes name and reports whether it existed.
func (e *Entity) RemoveProperty(name string) bool {
	for i := range e.props {
		if e.props[i].Key == name {
			e.props = append(e.props[:i], e.props[i+1:]...)
			return true
		}
	}
	return false
}

// Properties returns the ordered property list. The slice is owned by the
// entity.
func (e *Entity) Properties() []Property {
	return e.props
}

// Classname returns the entity's classname, sugar over Get.
func (e *Entity) Classname() string {
	return e.Get("classname")
}

// SetClassname is sugar over SetProperty.
func (e *Entity) SetClassname(name string) {
	e.SetProperty("classname", name)
}

// Origin parses the entity's origin property.
func (e *Entity) Origin() (vec.Vec3, error) {
	v, err := e.Must("origin")
	if err != nil {
		return vec.Vec3{}, err
	}
	var o vec.Vec3
	if n, err := fmt.Sscanf(v, "%f %f %f", &o.X, &o.Y, &o.Z); n != 3 || err != nil {
		return vec.Vec3{}, fmt.Errorf("invalid origin %q", v)
	}
	return o, nil
}

// SetOrigin stores o as the origin property.
func (e *Entity) SetOrigin(o vec.Vec3) {
	e.SetProperty("origin", fmt.Sprintf("%s %s %s", ftoa(o.X), ftoa(o.Y), ftoa(o.Z)))
}

// IsPointEntity reports whether the entity owns no brushes.
func (e *Entity) IsPointEntity() bool {
	return len(e.brushes) == 0
}

// Brushes returns the owned brushes in order. The slice is owned by the
// entity.
func (e *Entity) Brushes() []*Brush {
	return e.brushes
}

// AddBrush transfers ownership of the brushes to e. A brush owned by
// another entity is removed from that entity first.
func (e *Entity) AddBrush(bs ...*Brush) {
	for _, b := range bs {
		if b.owner == e {
			continue
		}
		if b.owner != nil {
			b.owner.RemoveBrush(b)
		}
		b.owner = e
		e.brushes = append(e.brushes, b)
	}
}

// RemoveBrush releases the brush and reports whether e owned it.
func (e *Entity) RemoveBrush(b *Brush) bool {
	for i, ob := range e.brushes {
		if ob == b {
			e.brushes = append(e.brushes[:i], e.brushes[i+1:]...)
			b.owner = nil
			return true
		}
	}
	return false
}

// Copy returns a deep copy of the entity and its brushes.
func (e *Entity) Copy() *Entity {
	ne := &Entity{props: make([]Property, len(e.props))}
	copy(ne.props, e.props)
	for _, b := range e.brushes {
		ne.AddBrush(b.Copy())
	}
	return ne
}

// MoveBy translates every owned brush and, for a point entity, the origin
// property. All brushes move or none does.
func (e *Entity) MoveBy(delta vec.Vec3) error {
	works := make([]*Brush, len(e.brushes))
	for i, b := range e.brushes {
		w := b.Copy()
		if err := w.MoveBy(delta); err != nil {
			return err
		}
		works[i] = w
	}
	for i, b := range e.brushes {
		b.faces = works[i].faces
	}
	if o, err := e.Origin(); err == nil {
		e.SetOrigin(vec.Add(o, delta))
	}
	return nil
}

// RotateZ rotates every owned brush around a z axis through center, and a
// point entity's origin with them. All brushes rotate or none does.
func (e *Entity) RotateZ(degree float64, center vec.Vec3) error {
	works := make([]*Brush, len(e.brushes))
	for i, b := range e.brushes {
		w := b.Copy()
		if err := w.RotateZ(degree, center); err != nil {
			return err
		}
		works[i] = w
	}
	for i, b := range e.brushes {
		b.faces = works[i].faces
	}
	if o, err := e.Origin(); err == nil {
		m := qmath.RotationZ(degree)
		e.SetOrigin(vec.Add(m.Apply(vec.Sub(o, center)), center))
	}
	return nil
}
