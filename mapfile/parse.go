// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"qmap/math/vec"
)

// Decode parses a map document from r.
//
// The returned error is reserved for read failures. Malformed syntax inside
// an entity block abandons that block with a ParseError diagnostic; sibling
// entities before and after it stay in the document. A brush whose faces do
// not bound a valid convex solid is dropped with a GeometryError
// diagnostic. The document that comes back is the maximal valid one.
func Decode(r io.Reader) (*Map, []Diagnostic, error) {
	p := &parser{sc: bufio.NewScanner(r)}
	p.sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	m := &Map{}
	for {
		tok, ok := p.next()
		if !ok {
			break
		}
		if tok != "{" {
			p.fail(-1, fmt.Sprintf("expected '{' to open an entity, got %q", tok))
			continue
		}
		ent, err := p.entity(len(m.entities))
		if err != nil {
			p.diags = append(p.diags, Diagnostic{Entity: len(m.entities), Brush: -1, Err: err})
			p.skipBlock()
			continue
		}
		if err := m.AddEntity(ent); err != nil {
			p.diags = append(p.diags, Diagnostic{Entity: len(m.entities), Brush: -1, Err: err})
		}
	}
	if err := p.sc.Err(); err != nil {
		return m, p.diags, err
	}
	if p.valve {
		m.Format = FormatValve220
	}
	return m, p.diags, nil
}

type parser struct {
	sc    *bufio.Scanner
	line  int
	depth int
	diags []Diagnostic
	valve bool
}

// next returns the next non empty, non comment line, trimmed.
func (p *parser) next() (string, bool) {
	for p.sc.Scan() {
		p.line++
		t := strings.TrimSpace(p.sc.Text())
		if t == "" || strings.HasPrefix(t, "//") {
			continue
		}
		return t, true
	}
	return "", false
}

func (p *parser) fail(entity int, msg string) {
	p.diags = append(p.diags, Diagnostic{
		Entity: entity,
		Brush:  -1,
		Err:    &ParseError{Line: p.line, Msg: msg},
	})
}

// skipBlock consumes lines until the braces opened so far balance out
// again. Called after a ParseError with the parser positioned inside an
// abandoned entity block, possibly nested inside one of its brushes.
func (p *parser) skipBlock() {
	for p.depth > 0 {
		tok, ok := p.next()
		if !ok {
			p.depth = 0
			return
		}
		switch tok {
		case "{":
			p.depth++
		case "}":
			p.depth--
		}
	}
}

// entity parses the inside of an entity block, the opening brace already
// consumed. idx is the prospective entity index, used for brush
// diagnostics.
func (p *parser) entity(idx int) (*Entity, *ParseError) {
	p.depth = 1
	e := &Entity{}
	for {
		tok, ok := p.next()
		if !ok {
			return nil, &ParseError{Line: p.line, Msg: "unexpected end of file inside entity"}
		}
		switch {
		case tok == "}":
			p.depth--
			return e, nil
		case tok == "{":
			p.depth++
			b, err := p.brush()
			if err != nil {
				return nil, err
			}
			if gerr := b.check(DefaultEpsilon); gerr != nil {
				p.diags = append(p.diags, Diagnostic{Entity: idx, Brush: len(e.brushes), Err: gerr})
				continue
			}
			e.AddBrush(b)
		case strings.HasPrefix(tok, `"`):
			key, value, err := property(tok, p.line)
			if err != nil {
				return nil, err
			}
			e.SetProperty(key, value)
		default:
			return nil, &ParseError{Line: p.line, Msg: fmt.Sprintf("unexpected token %q inside entity", tok)}
		}
	}
}

// property splits a `"key" "value"` line.
func property(line string, lineno int) (key, value string, err *ParseError) {
	parts := strings.SplitN(line, `" "`, 2)
	if len(parts) != 2 ||
		!strings.HasPrefix(parts[0], `"`) ||
		!strings.HasSuffix(parts[1], `"`) {
		return "", "", &ParseError{Line: lineno, Msg: fmt.Sprintf("malformed property %q", line)}
	}
	key = strings.TrimPrefix(parts[0], `"`)
	value = strings.TrimSuffix(parts[1], `"`)
	return key, value, nil
}

// brush parses the inside of a brush block, the opening brace already
// consumed.
func (p *parser) brush() (*Brush, *ParseError) {
	b := &Brush{}
	for {
		tok, ok := p.next()
		if !ok {
			return nil, &ParseError{Line: p.line, Msg: "unexpected end of file inside brush"}
		}
		switch {
		case tok == "}":
			p.depth--
			return b, nil
		case strings.HasPrefix(tok, "("):
			f, err := p.face(tok)
			if err != nil {
				return nil, err
			}
			b.AddFace(f)
		default:
			return nil, &ParseError{Line: p.line, Msg: fmt.Sprintf("unexpected token %q inside brush", tok)}
		}
	}
}

// face parses one face line in either syntax:
//
//	( x y z ) ( x y z ) ( x y z ) NAME uoff voff rot uscale vscale
//	( x y z ) ( x y z ) ( x y z ) NAME [ ux uy uz uoff ] [ vx vy vz voff ] rot uscale vscale
func (p *parser) face(line string) (Face, *ParseError) {
	t := tokens{fields: strings.Fields(line), line: p.line}

	var pts [3]vec.Vec3
	for i := range pts {
		if err := t.expect("("); err != nil {
			return Face{}, err
		}
		v, err := t.vec3()
		if err != nil {
			return Face{}, err
		}
		pts[i] = v
		if err := t.expect(")"); err != nil {
			return Face{}, err
		}
	}
	name, err := t.word()
	if err != nil {
		return Face{}, err
	}

	f := Face{
		Plane:   Plane{P1: pts[0], P2: pts[1], P3: pts[2]},
		Texture: Texture{Name: name},
	}
	if t.peek() == "[" {
		p.valve = true
		f.Alignment = FaceAligned
		if f.Texture.UAxis, f.Texture.UOffset, err = t.axis(); err != nil {
			return Face{}, err
		}
		if f.Texture.VAxis, f.Texture.VOffset, err = t.axis(); err != nil {
			return Face{}, err
		}
	} else {
		f.Alignment = WorldAligned
		if f.Texture.UOffset, err = t.number(); err != nil {
			return Face{}, err
		}
		if f.Texture.VOffset, err = t.number(); err != nil {
			return Face{}, err
		}
	}
	if f.Texture.Rotation, err = t.number(); err != nil {
		return Face{}, err
	}
	if f.Texture.UScale, err = t.number(); err != nil {
		return Face{}, err
	}
	if f.Texture.VScale, err = t.number(); err != nil {
		return Face{}, err
	}
	if !t.done() {
		return Face{}, &ParseError{Line: p.line, Msg: fmt.Sprintf("trailing tokens on face line: %q", t.rest())}
	}
	if f.Alignment == WorldAligned {
		f.deriveAxes()
	}
	return f, nil
}

// tokens walks the whitespace separated fields of one face line.
type tokens struct {
	fields []string
	pos    int
	line   int
}

func (t *tokens) peek() string {
	if t.pos >= len(t.fields) {
		return ""
	}
	return t.fields[t.pos]
}

func (t *tokens) word() (string, *ParseError) {
	if t.pos >= len(t.fields) {
		return "", &ParseError{Line: t.line, Msg: "unexpected end of face line"}
	}
	w := t.fields[t.pos]
	t.pos++
	return w, nil
}

func (t *tokens) expect(want string) *ParseError {
	w, err := t.word()
	if err != nil {
		return err
	}
	if w != want {
		return &ParseError{Line: t.line, Msg: fmt.Sprintf("expected %q, got %q", want, w)}
	}
	return nil
}

func (t *tokens) number() (float64, *ParseError) {
	w, err := t.word()
	if err != nil {
		return 0, err
	}
	f, perr := strconv.ParseFloat(w, 64)
	if perr != nil {
		return 0, &ParseError{Line: t.line, Msg: fmt.Sprintf("expected a number, got %q", w)}
	}
	return f, nil
}

func (t *tokens) vec3() (vec.Vec3, *ParseError) {
	var v vec.Vec3
	var err *ParseError
	if v.X, err = t.number(); err != nil {
		return v, err
	}
	if v.Y, err = t.number(); err != nil {
		return v, err
	}
	if v.Z, err = t.number(); err != nil {
		return v, err
	}
	return v, nil
}

// axis parses `[ x y z offset ]`.
func (t *tokens) axis() (vec.Vec3, float64, *ParseError) {
	if err := t.expect("["); err != nil {
		return vec.Vec3{}, 0, err
	}
	v, err := t.vec3()
	if err != nil {
		return vec.Vec3{}, 0, err
	}
	off, err := t.number()
	if err != nil {
		return vec.Vec3{}, 0, err
	}
	if err := t.expect("]"); err != nil {
		return vec.Vec3{}, 0, err
	}
	return v, off, nil
}

func (t *tokens) done() bool {
	return t.pos >= len(t.fields)
}

func (t *tokens) rest() string {
	return strings.Join(t.fields[t.pos:], " ")
}
