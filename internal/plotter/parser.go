package plotter

import (
	"math"
	"strconv"
	"strings"
)

// MoveType represents the type of blade movement.
type MoveType int

const (
	MovePenUp   MoveType = iota // PU: travel with the blade lifted
	MovePenDown                 // PD: cutting move
)

// Move represents a single parsed movement from HPGL, in plotter units.
type Move struct {
	Type  MoveType
	FromX float64
	FromY float64
	ToX   float64
	ToY   float64
}

// ParseHPGL parses an HPGL program into pen-up and pen-down moves. It
// tracks absolute (PA) and relative (PR) plotting and ignores every other
// command. Coordinate pairs following PU or PD each produce a move; a PU or
// PD without coordinates only changes the pen state.
func ParseHPGL(code string) []Move {
	var moves []Move

	curX, curY := 0.0, 0.0
	penDown := false
	relative := false

	for _, raw := range strings.FieldsFunc(code, func(r rune) bool {
		return r == ';' || r == '\n' || r == '\r'
	}) {
		stmt := strings.TrimSpace(raw)
		if len(stmt) < 2 {
			continue
		}

		op := strings.ToUpper(stmt[:2])
		args := parseArgs(stmt[2:])

		switch op {
		case "IN":
			curX, curY = 0, 0
			penDown = false
			relative = false
			continue
		case "PA":
			relative = false
		case "PR":
			relative = true
		case "PU":
			penDown = false
		case "PD":
			penDown = true
		default:
			continue
		}

		for i := 0; i+1 < len(args); i += 2 {
			toX, toY := args[i], args[i+1]
			if relative {
				toX += curX
				toY += curY
			}
			moveType := MovePenUp
			if penDown {
				moveType = MovePenDown
			}
			moves = append(moves, Move{
				Type:  moveType,
				FromX: curX,
				FromY: curY,
				ToX:   toX,
				ToY:   toY,
			})
			curX, curY = toX, toY
		}
	}

	return moves
}

func parseArgs(s string) []float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	vals := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			continue
		}
		vals = append(vals, v)
	}
	return vals
}

// CutLength returns the total pen-down travel of the moves, in plotter units.
func CutLength(moves []Move) float64 {
	var total float64
	for _, m := range moves {
		if m.Type != MovePenDown {
			continue
		}
		dx := m.ToX - m.FromX
		dy := m.ToY - m.FromY
		total += math.Hypot(dx, dy)
	}
	return total
}

// CutBounds returns the bounding box of all pen-down moves. ok is false
// when nothing is cut.
func CutBounds(moves []Move) (minX, minY, maxX, maxY float64, ok bool) {
	for _, m := range moves {
		if m.Type != MovePenDown {
			continue
		}
		for _, pt := range [2][2]float64{{m.FromX, m.FromY}, {m.ToX, m.ToY}} {
			if !ok {
				minX, maxX, minY, maxY = pt[0], pt[0], pt[1], pt[1]
				ok = true
				continue
			}
			minX = min(minX, pt[0])
			maxX = max(maxX, pt[0])
			minY = min(minY, pt[1])
			maxY = max(maxY, pt[1])
		}
	}
	return minX, minY, maxX, maxY, ok
}
