package reedsshepp

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoPath is returned when no valid Reeds-Shepp candidate connects the two
// poses. The algebraic family is complete, so with well-formed numeric
// inputs this is effectively unreachable; a caller must not retry with the
// same inputs.
var ErrNoPath = errors.New("no feasible Reeds-Shepp path")

// AllPaths returns every valid Reeds-Shepp candidate connecting start to
// goal, in a fixed enumeration order (see the family tables), with segment
// lengths in curvature-normalized units and no samples. Most callers want
// [ShortestPath] instead.
func AllPaths(start, goal Pose, veh Vehicle) ([]Path, error) {
	kappa := veh.MaxCurvature()
	if !(kappa > 0) || math.IsInf(kappa, 0) || math.IsNaN(kappa) {
		return nil, fmt.Errorf("vehicle max curvature must be finite and positive, got %g", kappa)
	}

	// Normalize the goal into the start's frame: rotate the displacement by
	// −start.Theta, then scale so the turning radius is 1.
	d := goal.Point.Sub(start.Point).Rotate(-start.Theta)
	x := d.X * kappa
	y := d.Y * kappa
	dphi := goal.Theta - start.Theta

	var paths []Path
	generators := []func(x, y, phi float64, paths *[]Path) error{
		scs, csc, ccc, cccc, ccsc, ccscc,
	}
	for _, gen := range generators {
		if err := gen(x, y, dphi, &paths); err != nil {
			return nil, err
		}
	}
	if len(paths) == 0 {
		return nil, ErrNoPath
	}
	return paths, nil
}

// ShortestPath computes the shortest Reeds-Shepp path from start to goal for
// the given vehicle, discretized at cfg.StepSize. The returned path carries
// world-frame samples and segment lengths in the poses' distance units. Ties
// on total length keep the first candidate in enumeration order, so the
// result is deterministic for identical inputs.
func ShortestPath(start, goal Pose, veh Vehicle, cfg Config) (Path, error) {
	if err := cfg.validate(); err != nil {
		return Path{}, err
	}
	paths, err := AllPaths(start, goal, veh)
	if err != nil {
		return Path{}, err
	}

	best := 0
	for i, p := range paths {
		if p.Total < paths[best].Total {
			best = i
		}
	}
	path := paths[best]
	if err := path.Discretize(start, veh.MaxCurvature(), cfg.StepSize); err != nil {
		return Path{}, err
	}
	return path, nil
}
