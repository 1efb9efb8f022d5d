// SPDX-License-Identifier: GPL-2.0-or-later

// mapinfo loads a .map file, validates it and prints a summary. It can
// rotate or translate the worldspawn geometry and write the result back.
//
//	mapinfo [-validate] [-json] [-rotate-z deg] [-move dx,dy,dz] [-o out.map] in.map
//
// MAPINFO_EPSILON overrides the geometry tolerance, MAPINFO_FORMAT
// (standard|valve220) forces the face syntax written with -o.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/caarlos0/env/v11"

	"qmap/mapfile"
	"qmap/math/vec"
)

type config struct {
	Epsilon float64 `env:"MAPINFO_EPSILON" envDefault:"1e-6"`
	Format  string  `env:"MAPINFO_FORMAT"`
}

func main() {
	validate := flag.Bool("validate", false, "run full geometry validation")
	asJSON := flag.Bool("json", false, "print the summary as JSON")
	rotateZ := flag.Float64("rotate-z", 0, "rotate worldspawn brushes around the z axis by `degrees`")
	move := flag.String("move", "", "translate worldspawn brushes by `dx,dy,dz`")
	out := flag.String("o", "", "write the (possibly transformed) map to `file`")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Error("bad environment", "err", err)
		os.Exit(2)
	}
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: mapinfo [flags] in.map")
		flag.PrintDefaults()
		os.Exit(2)
	}

	m, diags, err := mapfile.Load(flag.Arg(0))
	if err != nil {
		log.Error("load failed", "err", err)
		os.Exit(1)
	}
	for _, d := range diags {
		log.Warn("load diagnostic", "diag", d.String())
	}
	if *validate {
		for _, d := range m.ValidateEps(cfg.Epsilon) {
			log.Warn("validation", "diag", d.String())
		}
	}

	if (*move != "" || *rotateZ != 0) && m.Worldspawn() == nil {
		log.Error("no worldspawn to transform")
		os.Exit(1)
	}
	if *move != "" {
		var delta vec.Vec3
		if _, err := fmt.Sscanf(*move, "%f,%f,%f", &delta.X, &delta.Y, &delta.Z); err != nil {
			log.Error("bad -move", "value", *move)
			os.Exit(2)
		}
		if err := m.Worldspawn().MoveBy(delta); err != nil {
			log.Error("move failed", "err", err)
			os.Exit(1)
		}
	}
	if *rotateZ != 0 {
		if err := m.Worldspawn().RotateZ(*rotateZ, vec.Vec3{}); err != nil {
			log.Error("rotate failed", "err", err)
			os.Exit(1)
		}
	}

	summarize(m, cfg.Epsilon, *asJSON)

	if *out != "" {
		switch cfg.Format {
		case "":
		case "standard":
			m.Format = mapfile.FormatStandard
		case "valve220":
			m.Format = mapfile.FormatValve220
		default:
			log.Error("bad MAPINFO_FORMAT", "value", cfg.Format)
			os.Exit(2)
		}
		if err := mapfile.Save(m, *out); err != nil {
			log.Error("save failed", "err", err)
			os.Exit(1)
		}
	}
}

func summarize(m *mapfile.Map, eps float64, asJSON bool) {
	classes := map[string]int{}
	brushes := 0
	verts := 0
	var mins, maxs vec.Vec3
	first := true
	for _, e := range m.Entities() {
		classes[e.Classname()]++
		for _, b := range e.Brushes() {
			brushes++
			vs, err := b.VerticesEps(eps)
			if err != nil {
				continue
			}
			verts += len(vs)
			for _, v := range vs {
				if first {
					mins, maxs = v, v
					first = false
					continue
				}
				mins, _ = vec.MinMax(mins, v)
				_, maxs = vec.MinMax(maxs, v)
			}
		}
	}

	if asJSON {
		s := struct {
			Format   string         `json:"format"`
			Entities int            `json:"entities"`
			Brushes  int            `json:"brushes"`
			Vertices int            `json:"vertices"`
			Mins     *[3]float64    `json:"mins,omitempty"`
			Maxs     *[3]float64    `json:"maxs,omitempty"`
			Classes  map[string]int `json:"classes"`
		}{
			Format:   m.Format.String(),
			Entities: len(m.Entities()),
			Brushes:  brushes,
			Vertices: verts,
			Classes:  classes,
		}
		if !first {
			lo, hi := mins.Array(), maxs.Array()
			s.Mins, s.Maxs = &lo, &hi
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(s)
		return
	}

	fmt.Printf("format:   %s\n", m.Format)
	fmt.Printf("entities: %d\n", len(m.Entities()))
	fmt.Printf("brushes:  %d\n", brushes)
	fmt.Printf("vertices: %d\n", verts)
	if !first {
		fmt.Printf("bounds:   (%v %v %v) - (%v %v %v)\n",
			mins.X, mins.Y, mins.Z, maxs.X, maxs.Y, maxs.Z)
	}
	names := make([]string, 0, len(classes))
	for n := range classes {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Printf("  %-24s %d\n", n, classes[n])
	}
}
