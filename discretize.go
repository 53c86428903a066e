package reedsshepp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Discretize samples the path at stepSize intervals (curvature-normalized
// units) along each segment in order, producing world-frame samples anchored
// at the start pose, and rescales the segment lengths and total from
// curvature-normalized units to physical distance. It must be called exactly
// once, on a path whose lengths are still curvature-normalized, with the
// same maxKappa used to generate it.
//
// Segment boundaries are sampled exactly: the last step within a segment is
// shortened to land on the segment's end rather than overshoot into the next
// one. Each sample's gear is forward iff its local step is non-negative.
func (p *Path) Discretize(start Pose, maxKappa, stepSize float64) error {
	if !(stepSize > 0) {
		return fmt.Errorf("step size must be positive, got %g", stepSize)
	}
	if !(maxKappa > 0) || math.IsInf(maxKappa, 0) || math.IsNaN(maxKappa) {
		return fmt.Errorf("max curvature must be finite and positive, got %g", maxKappa)
	}
	if len(p.Lengths) == 0 || len(p.Lengths) != len(p.Segments) {
		return fmt.Errorf("malformed path: %d lengths for %d segments", len(p.Lengths), len(p.Segments))
	}

	samples := make([]Sample, 0, int(p.Total/stepSize)+len(p.Lengths)+1)
	samples = append(samples, Sample{Forward: p.Lengths[0] >= 0})

	for i, l := range p.Lengths {
		if l == 0 {
			continue
		}
		seg := p.Segments[i]
		base := samples[len(samples)-1]
		step := math.Copysign(stepSize, l)
		for pd := step; math.Abs(pd) < math.Abs(l); pd += step {
			samples = append(samples, interpolate(base, seg, pd, maxKappa))
		}
		samples = append(samples, interpolate(base, seg, l, maxKappa))
	}

	// Back into the world frame: the inverse of the rotation that normalized
	// the goal into the start's frame, then the start's translation.
	for i, s := range samples {
		samples[i].Point = s.Point.Rotate(start.Theta).Add(start.Point)
		samples[i].Theta = NormalizeAngle(s.Theta + start.Theta)
	}
	p.Samples = samples

	// Rescale into a fresh slice: candidates from AllPaths share their
	// Lengths backing array with the caller's slice.
	p.Lengths = floats.ScaleTo(make([]float64, len(p.Lengths)), 1/maxKappa, p.Lengths)
	p.Total /= maxKappa
	return nil
}

// interpolate advances from the segment-origin sample base by the signed
// normalized arc length pd along a segment of type seg. Positions are in
// physical units within the start-local frame; headings stay normalized.
func interpolate(base Sample, seg Segment, pd, maxKappa float64) Sample {
	var out Sample
	switch seg {
	case Straight:
		out.Point = Pt(
			base.Point.X+pd/maxKappa*math.Cos(base.Theta),
			base.Point.Y+pd/maxKappa*math.Sin(base.Theta),
		)
		out.Theta = base.Theta
	default:
		ldx := math.Sin(pd) / maxKappa
		ldy := (1 - math.Cos(pd)) / maxKappa
		if seg == RightTurn {
			ldy = -ldy
		}
		out.Point = base.Point.Add(Pt(ldx, ldy).Rotate(base.Theta))
		if seg == LeftTurn {
			out.Theta = base.Theta + pd
		} else {
			out.Theta = base.Theta - pd
		}
	}
	out.Forward = pd >= 0
	return out
}
