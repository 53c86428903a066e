package reedsshepp

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// drive executes a candidate's segments from the local origin with unit
// turning radius and returns the displacement it produces. Used to verify
// that solver outputs actually connect the origin to the requested goal.
func drive(segs []Segment, lengths []float64) (x, y, theta float64) {
	for i, s := range lengths {
		switch segs[i] {
		case Straight:
			x += s * math.Cos(theta)
			y += s * math.Sin(theta)
		case LeftTurn:
			x += math.Sin(theta+s) - math.Sin(theta)
			y += -math.Cos(theta+s) + math.Cos(theta)
			theta += s
		case RightTurn:
			x += -math.Sin(theta-s) + math.Sin(theta)
			y += math.Cos(theta-s) - math.Cos(theta)
			theta -= s
		}
	}
	return x, y, theta
}

// driveWord is drive for a word literal and raw lengths.
func driveWord(t *testing.T, word string, lengths []float64) (x, y, theta float64) {
	t.Helper()
	segs, err := parseWord(word)
	if err != nil {
		t.Fatal(err)
	}
	return drive(segs, lengths)
}
