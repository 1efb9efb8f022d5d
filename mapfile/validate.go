// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"fmt"
	"sync"
)

// Validate checks the whole document and returns the accumulated
// diagnostics: the worldspawn invariant, a classname on every entity, and
// every brush's geometry. Entities are checked concurrently; brush geometry
// is read only, so this is safe as long as nothing mutates the document
// meanwhile. The result is in document order.
func (m *Map) Validate() []Diagnostic {
	return m.ValidateEps(DefaultEpsilon)
}

func (m *Map) ValidateEps(eps float64) []Diagnostic {
	perEntity := make([][]Diagnostic, len(m.entities))
	var wg sync.WaitGroup
	for i, e := range m.entities {
		wg.Add(1)
		go func(i int, e *Entity) {
			defer wg.Done()
			perEntity[i] = validateEntity(i, e, eps)
		}(i, e)
	}
	wg.Wait()

	var diags []Diagnostic
	worldspawns := 0
	for _, e := range m.entities {
		if e.Classname() == Worldspawn {
			worldspawns++
		}
	}
	switch {
	case worldspawns == 0:
		diags = append(diags, Diagnostic{
			Entity: -1, Brush: -1,
			Err: &ValidationError{Msg: "no worldspawn entity"},
		})
	case worldspawns > 1:
		diags = append(diags, Diagnostic{
			Entity: -1, Brush: -1,
			Err: &ValidationError{Msg: fmt.Sprintf("%d worldspawn entities, want exactly 1", worldspawns)},
		})
	}
	for _, ds := range perEntity {
		diags = append(diags, ds...)
	}
	return diags
}

func validateEntity(idx int, e *Entity, eps float64) []Diagnostic {
	var diags []Diagnostic
	if _, ok := e.Property("classname"); !ok {
		diags = append(diags, Diagnostic{
			Entity: idx, Brush: -1,
			Err: &ValidationError{Msg: "missing classname"},
		})
	}
	for bi, b := range e.brushes {
		for i := range b.faces {
			for j := i + 1; j < len(b.faces); j++ {
				if b.faces[i].Plane.SameOriented(b.faces[j].Plane, eps) {
					diags = append(diags, Diagnostic{
						Entity: idx, Brush: bi,
						Err: &GeometryError{Context: "brush", Reason: "duplicate face plane"},
					})
				}
			}
		}
		_, faceDiags, err := polygons(b.faces, "brush", eps)
		for _, d := range faceDiags {
			d.Entity, d.Brush = idx, bi
			diags = append(diags, d)
		}
		if err != nil {
			diags = append(diags, Diagnostic{Entity: idx, Brush: bi, Err: err})
		}
	}
	return diags
}
