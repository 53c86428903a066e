package reedsshepp

import (
	"fmt"
	"math"
)

// Segment is the type of one piece of a Reeds-Shepp path.
type Segment uint8

const (
	Straight Segment = iota
	LeftTurn
	RightTurn
)

func (s Segment) String() string {
	switch s {
	case Straight:
		return "S"
	case LeftTurn:
		return "L"
	case RightTurn:
		return "R"
	default:
		return fmt.Sprintf("Segment(%d)", uint8(s))
	}
}

// Sample is one discretized point of a path: a world-frame position, a
// heading in (−π, π], and the gear (true for forward travel).
type Sample struct {
	Point   Point
	Theta   float64
	Forward bool
}

// Path is one Reeds-Shepp candidate. Lengths runs parallel to Segments; the
// sign of a length encodes the direction of traversal (negative is
// backward). Lengths are in curvature-normalized units until
// [Path.Discretize] rescales them to physical distance. Samples is populated
// only for a discretized path.
type Path struct {
	Segments []Segment
	Lengths  []float64
	Total    float64
	Samples  []Sample
}

// Word returns the path's segment types as a word such as "LSL".
func (p Path) Word() string {
	b := make([]byte, len(p.Segments))
	for i, s := range p.Segments {
		b[i] = s.String()[0]
	}
	return string(b)
}

// parseWord maps a word such as "LRSLR" to its segment types.
func parseWord(word string) ([]Segment, error) {
	segs := make([]Segment, len(word))
	for i := 0; i < len(word); i++ {
		switch word[i] {
		case 'S':
			segs[i] = Straight
		case 'L':
			segs[i] = LeftTurn
		case 'R':
			segs[i] = RightTurn
		default:
			return nil, fmt.Errorf("bad segment type %q in word %q", word[i], word)
		}
	}
	return segs, nil
}

// appendPath assembles a candidate from parallel signed magnitudes and a
// segment-type word and appends it to paths.
func appendPath(paths *[]Path, lengths []float64, word string) error {
	segs, err := parseWord(word)
	if err != nil {
		return err
	}
	total := 0.0
	for _, l := range lengths {
		total += math.Abs(l)
	}
	*paths = append(*paths, Path{
		Segments: segs,
		Lengths:  lengths,
		Total:    total,
	})
	return nil
}
