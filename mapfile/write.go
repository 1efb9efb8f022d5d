// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"qmap/math/vec"
)

// Encode writes the document to w in its Format. The output is
// deterministic: properties and faces keep their order and floats are
// canonicalized, so encoding the same document twice yields identical
// bytes. Round trip fidelity is geometric, not textual; see Decode.
func Encode(w io.Writer, m *Map) error {
	bw := bufio.NewWriter(w)
	for i, e := range m.Entities() {
		fmt.Fprintf(bw, "// entity %d\n{\n", i)
		for _, p := range e.Properties() {
			// not %q: wad paths contain backslashes that must stay as is
			fmt.Fprintf(bw, "\"%s\" \"%s\"\n", p.Key, p.Value)
		}
		for j, b := range e.Brushes() {
			fmt.Fprintf(bw, "// brush %d\n{\n", j)
			for k := range b.Faces() {
				writeFace(bw, &b.Faces()[k], m.Format)
			}
			fmt.Fprintln(bw, "}")
		}
		fmt.Fprintln(bw, "}")
	}
	return bw.Flush()
}

func writeFace(w io.Writer, f *Face, format Format) {
	writePoint(w, f.Plane.P1)
	writePoint(w, f.Plane.P2)
	writePoint(w, f.Plane.P3)
	fmt.Fprintf(w, "%s ", f.Texture.Name)
	t := &f.Texture
	if format == FormatValve220 {
		fmt.Fprintf(w, "[ %s %s %s %s ] [ %s %s %s %s ] ",
			ftoa(t.UAxis.X), ftoa(t.UAxis.Y), ftoa(t.UAxis.Z), ftoa(t.UOffset),
			ftoa(t.VAxis.X), ftoa(t.VAxis.Y), ftoa(t.VAxis.Z), ftoa(t.VOffset))
	} else {
		fmt.Fprintf(w, "%s %s ", ftoa(t.UOffset), ftoa(t.VOffset))
	}
	fmt.Fprintf(w, "%s %s %s\n", ftoa(t.Rotation), ftoa(t.UScale), ftoa(t.VScale))
}

func writePoint(w io.Writer, p vec.Vec3) {
	fmt.Fprintf(w, "( %s %s %s ) ", ftoa(p.X), ftoa(p.Y), ftoa(p.Z))
}

// ftoa formats a coordinate deterministically: rounded at 1e-6, integral
// values without a fraction.
func ftoa(v float64) string {
	r := math.Round(v*1e6) / 1e6
	if r == 0 {
		// avoid -0
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
