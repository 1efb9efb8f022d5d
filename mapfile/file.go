// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Load reads and parses the map file at path. Parse and geometry problems
// come back as diagnostics next to a best effort document; the error is
// reserved for an unreadable file.
func Load(path string) (*Map, []Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "load %s", path)
	}
	defer f.Close()
	m, diags, err := Decode(f)
	if err != nil {
		return m, diags, errors.Wrapf(err, "load %s", path)
	}
	return m, diags, nil
}

// Save serializes the document to path. The document is written to a
// temporary file in the same directory first and renamed over the
// destination, so a failure mid write cannot truncate an existing file.
func Save(m *Map, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".qmap-*.tmp")
	if err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	defer os.Remove(tmp.Name())
	if err := Encode(tmp, m); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "save %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}
