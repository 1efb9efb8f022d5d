// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"fmt"
)

// ParseError is a syntax error in the map text. Line is 1-based.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// GeometryError reports degenerate or unsolvable brush geometry. Context
// names the brush or face the error belongs to.
type GeometryError struct {
	Context string
	Reason  string
}

func (e *GeometryError) Error() string {
	if e.Context == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Context, e.Reason)
}

// ValidationError reports a violated document invariant, like a second
// worldspawn entity or a missing required property.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Diagnostic is a non fatal problem found while parsing or validating a
// document. Entity and Brush are indexes into the document at the time the
// diagnostic was recorded, -1 if not applicable.
type Diagnostic struct {
	Entity int
	Brush  int
	Err    error
}

func (d Diagnostic) String() string {
	switch {
	case d.Entity < 0:
		return d.Err.Error()
	case d.Brush < 0:
		return fmt.Sprintf("entity %d: %v", d.Entity, d.Err)
	default:
		return fmt.Sprintf("entity %d brush %d: %v", d.Entity, d.Brush, d.Err)
	}
}
