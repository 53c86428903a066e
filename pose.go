package reedsshepp

import (
	"fmt"
	"math"
)

// Pose is an oriented planar configuration of the vehicle: a position and a
// heading angle in radians.
type Pose struct {
	Point Point
	Theta float64
}

// PoseAt returns the pose at (x, y) with heading theta.
func PoseAt(x, y, theta float64) Pose {
	return Pose{Point: Pt(x, y), Theta: theta}
}

func (p Pose) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.Point.X, p.Point.Y, p.Theta)
}

// Vehicle holds the geometric parameters that bound the paths a car-like
// vehicle can follow. Both values are owned and validated by the surrounding
// planner configuration; this package only derives the curvature bound.
type Vehicle struct {
	// MaxSteeringAngle is the maximum front wheel steering angle in radians.
	MaxSteeringAngle float64
	// FrontToCenter is the distance from the front axle to the vehicle
	// center, in the same distance units as the poses.
	FrontToCenter float64
}

// MaxCurvature returns the maximum path curvature the vehicle can sustain.
// Its reciprocal is the minimum turning radius.
func (v Vehicle) MaxCurvature() float64 {
	return math.Tan(v.MaxSteeringAngle) / v.FrontToCenter
}

// Config carries the sampling parameters for path discretization.
type Config struct {
	// StepSize is the arc-length interval between consecutive samples, in
	// curvature-normalized units (multiply by the turning radius for the
	// physical spacing). Must be positive.
	StepSize float64
}

func (c Config) validate() error {
	if !(c.StepSize > 0) {
		return fmt.Errorf("step size must be positive, got %g", c.StepSize)
	}
	return nil
}
