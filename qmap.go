// SPDX-License-Identifier: GPL-2.0-or-later

// Package qmap reads, edits and writes Quake and GoldSrc .map files: text
// documents of entities whose brushes are convex solids described by
// bounding planes. The heavy lifting lives in qmap/mapfile; this package is
// the convenience surface.
package qmap

import (
	"qmap/mapfile"
)

// Load reads the map file at path. See mapfile.Load.
func Load(path string) (*mapfile.Map, []mapfile.Diagnostic, error) {
	return mapfile.Load(path)
}

// Save writes the document to path atomically. See mapfile.Save.
func Save(m *mapfile.Map, path string) error {
	return mapfile.Save(m, path)
}

// New returns a fresh document holding a single empty worldspawn entity.
func New() *mapfile.Map {
	return mapfile.New()
}
