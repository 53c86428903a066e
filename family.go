package reedsshepp

import (
	"fmt"
	"math"
)

const halfPi = 0.5 * math.Pi

// frame describes which symmetry image of a canonical word a variant solves.
// backward re-derives the displacement as seen from the far end of the path;
// timeReverse swaps which end of the word is driven first; mirror swaps left
// and right steering. backward is applied before the other two.
type frame struct {
	timeReverse bool // (x, y, φ) → (−x, y, −φ)
	mirror      bool // (x, y, φ) → (x, −y, −φ)
	backward    bool // (x, y, φ) → (x·cosφ + y·sinφ, x·sinφ − y·cosφ, φ)
}

func (f frame) apply(x, y, phi float64) (float64, float64, float64) {
	if f.backward {
		sin, cos := math.Sincos(phi)
		x, y = x*cos+y*sin, x*sin-y*cos
	}
	if f.timeReverse {
		x, phi = -x, -phi
	}
	if f.mirror {
		y, phi = -y, -phi
	}
	return x, y, phi
}

// variant is one row of a family table: a canonical solver, the symmetry
// frame to solve it in, the word the result is labeled with, and the rule
// mapping the solution's magnitudes onto the word's signed segment lengths.
type variant struct {
	solve   func(x, y, phi float64) solution
	frame   frame
	word    string
	lengths func(s solution) []float64
}

var (
	identity     = frame{}
	timeReversed = frame{timeReverse: true}
	mirrored     = frame{mirror: true}
	both         = frame{timeReverse: true, mirror: true}
)

// The six family tables below enumerate every geometrically distinct
// Reeds-Shepp variant. Candidate enumeration order is fixed: the families in
// the order scsTable, cscTable, cccTable, ccccTable, ccscTable, ccsccTable,
// each table in its declared row order. Equal-length candidates are broken
// by this order.

// scsTable: straight-turn-straight words.
var scsTable = []variant{
	{sls, identity, "SLS", func(s solution) []float64 { return []float64{s.t, s.u, s.v} }},
	{sls, mirrored, "SRS", func(s solution) []float64 { return []float64{s.t, s.u, s.v} }},
}

// cscTable: turn-straight-turn words.
var cscTable = []variant{
	{lsl, identity, "LSL", func(s solution) []float64 { return []float64{s.t, s.u, s.v} }},
	{lsl, timeReversed, "LSL", func(s solution) []float64 { return []float64{-s.t, -s.u, -s.v} }},
	{lsl, mirrored, "RSR", func(s solution) []float64 { return []float64{s.t, s.u, s.v} }},
	{lsl, both, "RSR", func(s solution) []float64 { return []float64{-s.t, -s.u, -s.v} }},
	{lsr, identity, "LSR", func(s solution) []float64 { return []float64{s.t, s.u, s.v} }},
	{lsr, timeReversed, "LSR", func(s solution) []float64 { return []float64{-s.t, -s.u, -s.v} }},
	{lsr, mirrored, "RSL", func(s solution) []float64 { return []float64{s.t, s.u, s.v} }},
	{lsr, both, "RSL", func(s solution) []float64 { return []float64{-s.t, -s.u, -s.v} }},
}

// cccTable: three-turn words. The backward rows reverse the segment order,
// re-deriving the path as traversed from the far end.
var cccTable = []variant{
	{lrl, identity, "LRL", func(s solution) []float64 { return []float64{s.t, s.u, s.v} }},
	{lrl, timeReversed, "LRL", func(s solution) []float64 { return []float64{-s.t, -s.u, -s.v} }},
	{lrl, mirrored, "RLR", func(s solution) []float64 { return []float64{s.t, s.u, s.v} }},
	{lrl, both, "RLR", func(s solution) []float64 { return []float64{-s.t, -s.u, -s.v} }},
	{lrl, frame{backward: true}, "LRL", func(s solution) []float64 { return []float64{s.v, s.u, s.t} }},
	{lrl, frame{backward: true, timeReverse: true}, "LRL", func(s solution) []float64 { return []float64{-s.v, -s.u, -s.t} }},
	{lrl, frame{backward: true, mirror: true}, "RLR", func(s solution) []float64 { return []float64{s.v, s.u, s.t} }},
	{lrl, frame{backward: true, timeReverse: true, mirror: true}, "RLR", func(s solution) []float64 { return []float64{-s.v, -s.u, -s.t} }},
}

// ccccTable: four-turn words; the repeated middle turn magnitude comes from
// the solver's u, negated on the third segment for the LRLR(−) word.
var ccccTable = []variant{
	{lrlrn, identity, "LRLR", func(s solution) []float64 { return []float64{s.t, s.u, -s.u, s.v} }},
	{lrlrn, timeReversed, "LRLR", func(s solution) []float64 { return []float64{-s.t, -s.u, s.u, -s.v} }},
	{lrlrn, mirrored, "RLRL", func(s solution) []float64 { return []float64{s.t, s.u, -s.u, s.v} }},
	{lrlrn, both, "RLRL", func(s solution) []float64 { return []float64{-s.t, -s.u, s.u, -s.v} }},
	{lrlrp, identity, "LRLR", func(s solution) []float64 { return []float64{s.t, s.u, s.u, s.v} }},
	{lrlrp, timeReversed, "LRLR", func(s solution) []float64 { return []float64{-s.t, -s.u, -s.u, -s.v} }},
	{lrlrp, mirrored, "RLRL", func(s solution) []float64 { return []float64{s.t, s.u, s.u, s.v} }},
	{lrlrp, both, "RLRL", func(s solution) []float64 { return []float64{-s.t, -s.u, -s.u, -s.v} }},
}

// ccscTable: turn-turn-straight-turn words, from the two mixed closed-form
// solvers with a fixed ±π/2 second turn. The backward rows reverse the
// segment order, as in cccTable.
var ccscTable = []variant{
	{lrsl, identity, "LRSL", func(s solution) []float64 { return []float64{s.t, -halfPi, s.u, s.v} }},
	{lrsl, timeReversed, "LRSL", func(s solution) []float64 { return []float64{-s.t, halfPi, -s.u, -s.v} }},
	{lrsl, mirrored, "RLSR", func(s solution) []float64 { return []float64{s.t, -halfPi, s.u, s.v} }},
	{lrsl, both, "RLSR", func(s solution) []float64 { return []float64{-s.t, halfPi, -s.u, -s.v} }},
	{lrsr, identity, "LRSR", func(s solution) []float64 { return []float64{s.t, -halfPi, s.u, s.v} }},
	{lrsr, timeReversed, "LRSR", func(s solution) []float64 { return []float64{-s.t, halfPi, -s.u, -s.v} }},
	{lrsr, mirrored, "RLSL", func(s solution) []float64 { return []float64{s.t, -halfPi, s.u, s.v} }},
	{lrsr, both, "RLSL", func(s solution) []float64 { return []float64{-s.t, halfPi, -s.u, -s.v} }},
	{lrsl, frame{backward: true}, "LSRL", func(s solution) []float64 { return []float64{s.v, s.u, -halfPi, s.t} }},
	{lrsl, frame{backward: true, timeReverse: true}, "LSRL", func(s solution) []float64 { return []float64{-s.v, -s.u, halfPi, -s.t} }},
	{lrsl, frame{backward: true, mirror: true}, "RSLR", func(s solution) []float64 { return []float64{s.v, s.u, -halfPi, s.t} }},
	{lrsl, frame{backward: true, timeReverse: true, mirror: true}, "RSLR", func(s solution) []float64 { return []float64{-s.v, -s.u, halfPi, -s.t} }},
	{lrsr, frame{backward: true}, "RSRL", func(s solution) []float64 { return []float64{s.v, s.u, -halfPi, s.t} }},
	{lrsr, frame{backward: true, timeReverse: true}, "RSRL", func(s solution) []float64 { return []float64{-s.v, -s.u, halfPi, -s.t} }},
	{lrsr, frame{backward: true, mirror: true}, "LSLR", func(s solution) []float64 { return []float64{s.v, s.u, -halfPi, s.t} }},
	{lrsr, frame{backward: true, timeReverse: true, mirror: true}, "LSLR", func(s solution) []float64 { return []float64{-s.v, -s.u, halfPi, -s.t} }},
}

// ccsccTable: the five-segment turn-turn-straight-turn-turn words.
var ccsccTable = []variant{
	{lrslr, identity, "LRSLR", func(s solution) []float64 { return []float64{s.t, -halfPi, s.u, -halfPi, s.v} }},
	{lrslr, timeReversed, "LRSLR", func(s solution) []float64 { return []float64{-s.t, halfPi, -s.u, halfPi, -s.v} }},
	{lrslr, mirrored, "RLSRL", func(s solution) []float64 { return []float64{s.t, -halfPi, s.u, -halfPi, s.v} }},
	{lrslr, both, "RLSRL", func(s solution) []float64 { return []float64{-s.t, halfPi, -s.u, halfPi, -s.v} }},
}

// generate runs one family table against the start-frame displacement,
// appending a candidate for every variant whose solver reports validity.
func generate(table []variant, x, y, phi float64, paths *[]Path) error {
	for _, r := range table {
		rx, ry, rphi := r.frame.apply(x, y, phi)
		s := r.solve(rx, ry, rphi)
		if !s.ok {
			continue
		}
		if err := appendPath(paths, r.lengths(s), r.word); err != nil {
			return fmt.Errorf("appending %s candidate: %w", r.word, err)
		}
	}
	return nil
}

// The six family generators.

func scs(x, y, phi float64, paths *[]Path) error   { return generate(scsTable, x, y, phi, paths) }
func csc(x, y, phi float64, paths *[]Path) error   { return generate(cscTable, x, y, phi, paths) }
func ccc(x, y, phi float64, paths *[]Path) error   { return generate(cccTable, x, y, phi, paths) }
func cccc(x, y, phi float64, paths *[]Path) error  { return generate(ccccTable, x, y, phi, paths) }
func ccsc(x, y, phi float64, paths *[]Path) error  { return generate(ccscTable, x, y, phi, paths) }
func ccscc(x, y, phi float64, paths *[]Path) error { return generate(ccsccTable, x, y, phi, paths) }
