// Package plotter generates HPGL trim programs that let a contour cutter
// trim each printed strip back to its panel edge.
package plotter

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/WrapCut/internal/model"
)

// Program is the HPGL cut file for one strip.
type Program struct {
	Filename string
	Code     string
}

// Generator produces HPGL from decomposed print strips.
type Generator struct {
	Profile CutterProfile
	Speed   int // cm/s
	Force   int // grams
	Bleed   float64
}

func New(profile CutterProfile, speed, force int, constants model.PrintConstants) *Generator {
	return &Generator{
		Profile: profile,
		Speed:   speed,
		Force:   force,
		Bleed:   constants.Bleed,
	}
}

// GenerateStrip returns the program that cuts a strip's trim rectangle.
//
// The printed strip is PrintWidth along the roll (plotter X) by
// PrintHeight across it (plotter Y). The blade follows the rectangle inset
// by the bleed on every side, i.e. the strip's real panel edges.
func (g *Generator) GenerateStrip(s model.PrintStrip) string {
	var b strings.Builder
	p := g.Profile

	for _, code := range p.InitCode {
		g.cmd(&b, code)
	}
	g.cmd(&b, p.PenSelect)
	if p.SpeedCmd != "" && g.Speed > 0 {
		g.cmd(&b, fmt.Sprintf(p.SpeedCmd, g.Speed))
	}
	if p.ForceCmd != "" && g.Force > 0 {
		g.cmd(&b, fmt.Sprintf(p.ForceCmd, g.Force))
	}

	x0 := g.units(g.Bleed)
	y0 := g.units(g.Bleed)
	x1 := g.units(s.PrintWidth - g.Bleed)
	y1 := g.units(s.PrintHeight - g.Bleed)

	g.cmd(&b, fmt.Sprintf("PU%d,%d", x0, y0))
	g.cmd(&b, fmt.Sprintf("PD%d,%d", x1, y0))
	g.cmd(&b, fmt.Sprintf("PD%d,%d", x1, y1))
	g.cmd(&b, fmt.Sprintf("PD%d,%d", x0, y1))
	g.cmd(&b, fmt.Sprintf("PD%d,%d", x0, y0))

	for _, code := range p.EndCode {
		g.cmd(&b, code)
	}

	return b.String()
}

// GenerateAll produces one program per strip, in print order. Program
// file names are safe to join onto an output directory and unique across
// the job: panels sharing a label get a numeric suffix.
func (g *Generator) GenerateAll(result model.LayoutResult) []Program {
	strips := result.AllStrips()
	programs := make([]Program, 0, len(strips))
	used := make(map[string]int, len(strips))
	for _, s := range strips {
		programs = append(programs, Program{
			Filename: uniqueName(used, programFilename(s.Filename)),
			Code:     g.GenerateStrip(s),
		})
	}
	return programs
}

// programFilename turns a strip file name into a single path element.
func programFilename(name string) string {
	name = strings.NewReplacer("/", "_", "\\", "_", ":", "_").Replace(name)
	name = strings.TrimLeft(name, ".")
	if name == "" {
		name = "strip"
	}
	return name
}

// uniqueName appends .plt, adding _2, _3, ... to names already taken.
// Names are compared case-insensitively.
func uniqueName(used map[string]int, base string) string {
	name := base
	for {
		key := strings.ToLower(name)
		n := used[key]
		used[key] = n + 1
		if n == 0 {
			return name + ".plt"
		}
		name = fmt.Sprintf("%s_%d", base, n+1)
	}
}

// WriteAll writes every program into dir, creating it if needed, and
// returns the written paths.
func (g *Generator) WriteAll(dir string, result model.LayoutResult) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	var paths []string
	for _, prog := range g.GenerateAll(result) {
		path := filepath.Join(dir, prog.Filename)
		if err := os.WriteFile(path, []byte(prog.Code), 0644); err != nil {
			return paths, fmt.Errorf("write %s: %w", prog.Filename, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (g *Generator) cmd(b *strings.Builder, code string) {
	if code == "" {
		return
	}
	b.WriteString(code)
	b.WriteString(g.terminator())
}

func (g *Generator) terminator() string {
	if g.Profile.Terminator == "" {
		return ";"
	}
	return g.Profile.Terminator
}

// units converts inches to integer plotter units.
func (g *Generator) units(inches float64) int {
	upi := g.Profile.UnitsPerInch
	if upi <= 0 {
		upi = 1016
	}
	return int(math.Round(inches * upi))
}
