package reedsshepp

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// checkWord verifies that a valid solution, expanded to its full segment
// lengths, drives the vehicle from the origin to the displacement the solver
// was asked to connect.
func checkWord(t *testing.T, word string, lengths []float64, x, y, phi float64) {
	t.Helper()
	gx, gy, gtheta := driveWord(t, word, lengths)
	if !scalar.EqualWithinAbs(gx, x, 1e-9) ||
		!scalar.EqualWithinAbs(gy, y, 1e-9) ||
		!scalar.EqualWithinAbs(NormalizeAngle(gtheta-phi), 0, 1e-9) {
		t.Errorf("%s%v drives to (%g, %g, %g), want (%g, %g, %g)",
			word, lengths, gx, gy, gtheta, x, y, phi)
	}
}

func TestLSL(t *testing.T) {
	s := lsl(4, 0, 0)
	if !s.ok {
		t.Fatal("lsl(4, 0, 0) infeasible, want valid")
	}
	diffSolution(t, solution{ok: true, t: 0, u: 4, v: 0}, s)

	s = lsl(0, 2, math.Pi)
	if !s.ok {
		t.Fatal("lsl(0, 2, π) infeasible, want valid")
	}
	diffSolution(t, solution{ok: true, t: 0, u: 0, v: math.Pi}, s)
	checkWord(t, "LSL", []float64{s.t, s.u, s.v}, 0, 2, math.Pi)

	if s := lsl(0, -2, 0); s.ok {
		t.Errorf("lsl(0, -2, 0) = %+v, want infeasible", s)
	}
}

func TestLSR(t *testing.T) {
	s := lsr(0, 2, math.Pi)
	if !s.ok {
		t.Fatal("lsr(0, 2, π) infeasible, want valid")
	}
	diffSolution(t, solution{ok: true, t: math.Pi, u: 0, v: 0}, s)
	checkWord(t, "LSR", []float64{s.t, s.u, s.v}, 0, 2, math.Pi)

	// Inside the two-circle bound, no LSR connection exists.
	if s := lsr(0, 1, 0); s.ok {
		t.Errorf("lsr(0, 1, 0) = %+v, want infeasible", s)
	}
}

func TestLRL(t *testing.T) {
	s := lrl(4, 0, 0)
	if !s.ok {
		t.Fatal("lrl(4, 0, 0) infeasible, want valid")
	}
	diffSolution(t, solution{ok: true, t: math.Pi / 2, u: -math.Pi, v: math.Pi / 2}, s)
	checkWord(t, "LRL", []float64{s.t, s.u, s.v}, 4, 0, 0)

	// Beyond the four-radius reach of three tangent circles.
	if s := lrl(6, 0, 0); s.ok {
		t.Errorf("lrl(6, 0, 0) = %+v, want infeasible", s)
	}
}

func TestSLS(t *testing.T) {
	s := sls(1, 1, math.Pi/2)
	if !s.ok {
		t.Fatal("sls(1, 1, π/2) infeasible, want valid")
	}
	checkWord(t, "SLS", []float64{s.t, s.u, s.v}, 1, 1, math.Pi/2)

	s = sls(1, -1, math.Pi/2)
	if !s.ok {
		t.Fatal("sls(1, -1, π/2) infeasible, want valid")
	}
	if s.v >= 0 {
		t.Errorf("sls(1, -1, π/2).v = %g, want negative (reversing straight)", s.v)
	}
	checkWord(t, "SLS", []float64{s.t, s.u, s.v}, 1, -1, math.Pi/2)

	if s := sls(4, 0, 0); s.ok {
		t.Errorf("sls(4, 0, 0) = %+v, want infeasible (needs 0 < φ < 0.99π)", s)
	}
	if s := sls(1, 0, math.Pi/2); s.ok {
		t.Errorf("sls(1, 0, π/2) = %+v, want infeasible (y = 0)", s)
	}
}

func TestLRLRn(t *testing.T) {
	s := lrlrn(0, 2, math.Pi)
	if !s.ok {
		t.Fatal("lrlrn(0, 2, π) infeasible, want valid")
	}
	diffSolution(t, solution{ok: true, t: math.Pi, u: 0, v: 0}, s)

	// A pure lateral shift is the classic four-turn maneuver: the solution
	// is symmetric with t = u, v = -u and cos(u) = 1 - y/8.
	s = lrlrn(0, 0.5, 0)
	if !s.ok {
		t.Fatal("lrlrn(0, 0.5, 0) infeasible, want valid")
	}
	u := math.Acos(0.875)
	diffSolution(t, solution{ok: true, t: u, u: u, v: -u}, s)
	checkWord(t, "LRLR", []float64{s.t, s.u, -s.u, s.v}, 0, 0.5, 0)

	// Tangent-circle bound: ρ > 1 for this displacement.
	if s := lrlrn(4, 0, 0); s.ok {
		t.Errorf("lrlrn(4, 0, 0) = %+v, want infeasible", s)
	}
}

func TestLRLRp(t *testing.T) {
	s := lrlrp(4, 0, 0)
	if !s.ok {
		t.Fatal("lrlrp(4, 0, 0) infeasible, want valid")
	}
	diffSolution(t, solution{ok: true, t: math.Pi / 2, u: -math.Pi / 2, v: math.Pi / 2}, s)
	checkWord(t, "LRLR", []float64{s.t, s.u, s.u, s.v}, 4, 0, 0)

	if s := lrlrp(6, 0, 0); s.ok {
		t.Errorf("lrlrp(6, 0, 0) = %+v, want infeasible (ρ < 0)", s)
	}
}

func TestLRSR(t *testing.T) {
	s := lrsr(2, -2, -math.Pi/2)
	if !s.ok {
		t.Fatal("lrsr(2, -2, -π/2) infeasible, want valid")
	}
	if s.t < 0 || s.u > 0 || s.v > 0 {
		t.Fatalf("lrsr(2, -2, -π/2) = %+v violates its sign predicate", s)
	}
	checkWord(t, "LRSR", []float64{s.t, -math.Pi / 2, s.u, s.v}, 2, -2, -math.Pi/2)

	if s := lrsr(0, 0, 0); s.ok {
		t.Errorf("lrsr(0, 0, 0) = %+v, want infeasible", s)
	}
}

func TestLRSL(t *testing.T) {
	s := lrsl(4, 4, math.Pi/2)
	if !s.ok {
		t.Fatal("lrsl(4, 4, π/2) infeasible, want valid")
	}
	if s.t < 0 || s.u > 0 || s.v > 0 {
		t.Fatalf("lrsl(4, 4, π/2) = %+v violates its sign predicate", s)
	}
	checkWord(t, "LRSL", []float64{s.t, -math.Pi / 2, s.u, s.v}, 4, 4, math.Pi/2)

	if s := lrsl(0, 0, 0); s.ok {
		t.Errorf("lrsl(0, 0, 0) = %+v, want infeasible (ρ < 2)", s)
	}
}

func TestLRSLR(t *testing.T) {
	s := lrslr(4, 4, 0)
	if !s.ok {
		t.Fatal("lrslr(4, 4, 0) infeasible, want valid")
	}
	if s.t < 0 || s.u > 0 || s.v < 0 {
		t.Fatalf("lrslr(4, 4, 0) = %+v violates its sign predicate", s)
	}
	checkWord(t, "LRSLR",
		[]float64{s.t, -math.Pi / 2, s.u, -math.Pi / 2, s.v}, 4, 4, 0)

	if s := lrslr(1, 0, 0); s.ok {
		t.Errorf("lrslr(1, 0, 0) = %+v, want infeasible (middle straight must reverse)", s)
	}
}

func TestTauOmega(t *testing.T) {
	tau, omega := tauOmega(-math.Pi/2, 0, 4, -2, 0)
	wantTau := math.Atan2(4, 2)
	wantOmega := NormalizeAngle(wantTau + math.Pi/2)
	if !scalar.EqualWithinAbs(tau, wantTau, 1e-12) ||
		!scalar.EqualWithinAbs(omega, wantOmega, 1e-12) {
		t.Errorf("tauOmega(-π/2, 0, 4, -2, 0) = (%g, %g), want (%g, %g)",
			tau, omega, wantTau, wantOmega)
	}
}

func diffSolution(t *testing.T, want, got solution) {
	t.Helper()
	if want.ok != got.ok ||
		!scalar.EqualWithinAbs(want.t, got.t, 1e-9) ||
		!scalar.EqualWithinAbs(want.u, got.u, 1e-9) ||
		!scalar.EqualWithinAbs(want.v, got.v, 1e-9) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
