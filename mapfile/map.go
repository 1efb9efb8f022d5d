// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"fmt"
)

// Worldspawn is the classname of the distinguished entity carrying a map's
// structural geometry.
const Worldspawn = "worldspawn"

// Format selects the on disk face syntax.
type Format int

const (
	// FormatStandard is the plain Quake face syntax, texture axes derived
	// from the plane.
	FormatStandard Format = iota
	// FormatValve220 stores explicit texture axes per face.
	FormatValve220
)

func (f Format) String() string {
	if f == FormatValve220 {
		return "valve220"
	}
	return "standard"
}

// Map is an ordered sequence of entities. Exactly one entity is the
// worldspawn, conventionally the first.
type Map struct {
	// Format is the face syntax the map was read with and will be written
	// with.
	Format   Format
	entities []*Entity
}

// New returns a map containing a single empty worldspawn entity.
func New() *Map {
	m := &Map{}
	m.entities = append(m.entities, NewEntity(Worldspawn))
	return m
}

// Entities returns the entities in document order. The slice is owned by
// the map.
func (m *Map) Entities() []*Entity {
	return m.entities
}

// AddEntity appends entities to the document. Adding a second worldspawn
// fails with a ValidationError and leaves the document unchanged.
func (m *Map) AddEntity(es ...*Entity) error {
	for _, e := range es {
		if e.Classname() == Worldspawn && m.Worldspawn() != nil {
			return &ValidationError{Msg: "duplicate worldspawn entity"}
		}
		m.entities = append(m.entities, e)
	}
	return nil
}

// RemoveEntity deletes e from the document and reports whether it was
// present.
func (m *Map) RemoveEntity(e *Entity) bool {
	for i, oe := range m.entities {
		if oe == e {
			m.entities = append(m.entities[:i], m.entities[i+1:]...)
			return true
		}
	}
	return false
}

// Worldspawn returns the worldspawn entity, or nil if the document has
// none.
func (m *Map) Worldspawn() *Entity {
	for _, e := range m.entities {
		if e.Classname() == Worldspawn {
			return e
		}
	}
	return nil
}

// EntitiesByClass returns all entities with the given classname.
func (m *Map) EntitiesByClass(name string) []*Entity {
	var es []*Entity
	for _, e := range m.entities {
		if e.Classname() == name {
			es = append(es, e)
		}
	}
	return es
}

// EntityForBrush returns the entity owning b, or nil.
func (m *Map) EntityForBrush(b *Brush) *Entity {
	for _, e := range m.entities {
		if e == b.owner {
			return e
		}
	}
	return nil
}

// Brushes returns every brush in the document in document order.
func (m *Map) Brushes() []*Brush {
	var bs []*Brush
	for _, e := range m.entities {
		bs = append(bs, e.brushes...)
	}
	return bs
}

// AddBrush adds brushes to the worldspawn entity.
func (m *Map) AddBrush(bs ...*Brush) error {
	ws := m.Worldspawn()
	if ws == nil {
		return &ValidationError{Msg: "document has no worldspawn entity"}
	}
	ws.AddBrush(bs...)
	return nil
}

// Copy returns a deep copy of the document.
func (m *Map) Copy() *Map {
	nm := &Map{Format: m.Format}
	for _, e := range m.entities {
		nm.entities = append(nm.entities, e.Copy())
	}
	return nm
}

func (m *Map) String() string {
	return fmt.Sprintf("map with %d entities", len(m.entities))
}
