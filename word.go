package reedsshepp

import "math"

// solution is the outcome of one canonical word solver: three signed segment
// magnitudes in curvature-normalized units. t and v are the turn angles of
// the first and last arc; u is either a straight-segment length or a middle
// turn angle, depending on the word. ok is false when the word is
// geometrically infeasible from the given displacement, which is normal
// control flow, not an error.
type solution struct {
	ok      bool
	t, u, v float64
}

// Each solver below receives the goal displacement (x, y, phi) expressed in
// the frame where the start pose is the origin with heading 0 and the
// turning radius is 1. The closed forms are the classic Reeds-Shepp
// equation systems; solver names spell the base word they solve.

func lsl(x, y, phi float64) solution {
	u, t := cartesianToPolar(x-math.Sin(phi), y-1+math.Cos(phi))
	if t < 0 {
		return solution{}
	}
	v := NormalizeAngle(phi - t)
	if v < 0 {
		return solution{}
	}
	return solution{ok: true, t: t, u: u, v: v}
}

func lsr(x, y, phi float64) solution {
	r, theta := cartesianToPolar(x+math.Sin(phi), y-1-math.Cos(phi))
	u1 := r * r
	if u1 < 4 {
		return solution{}
	}
	u := math.Sqrt(u1 - 4)
	t := NormalizeAngle(theta + math.Atan2(2, u))
	v := NormalizeAngle(t - phi)
	if t < 0 || v < 0 {
		return solution{}
	}
	return solution{ok: true, t: t, u: u, v: v}
}

func lrl(x, y, phi float64) solution {
	u1, t1 := cartesianToPolar(x-math.Sin(phi), y-1+math.Cos(phi))
	if u1 > 4 {
		return solution{}
	}
	u := -2 * math.Asin(0.25*u1)
	t := NormalizeAngle(t1 + 0.5*u + math.Pi)
	v := NormalizeAngle(phi - t + u)
	if t < 0 || u > 0 {
		return solution{}
	}
	return solution{ok: true, t: t, u: u, v: v}
}

func sls(x, y, phi float64) solution {
	phi = NormalizeAngle(phi)
	if y == 0 || phi <= 0 || phi >= math.Pi*0.99 {
		return solution{}
	}
	xd := -y/math.Tan(phi) + x
	t := xd - math.Tan(phi/2)
	u := phi
	v := math.Hypot(x-xd, y) - math.Tan(phi/2)
	if y < 0 {
		v = -math.Hypot(x-xd, y) - math.Tan(phi/2)
	}
	return solution{ok: true, t: t, u: u, v: v}
}

func lrlrn(x, y, phi float64) solution {
	xi := x + math.Sin(phi)
	eta := y - 1 - math.Cos(phi)
	rho := 0.25 * (2 + math.Hypot(xi, eta))
	if rho > 1 {
		return solution{}
	}
	u := math.Acos(rho)
	tau, omega := tauOmega(u, -u, xi, eta, phi)
	if tau < 0 || omega > 0 {
		return solution{}
	}
	return solution{ok: true, t: tau, u: u, v: omega}
}

func lrlrp(x, y, phi float64) solution {
	xi := x + math.Sin(phi)
	eta := y - 1 - math.Cos(phi)
	rho := (20 - xi*xi - eta*eta) / 16
	if rho < 0 || rho > 1 {
		return solution{}
	}
	u := -math.Acos(rho)
	if u < -0.5*math.Pi {
		return solution{}
	}
	tau, omega := tauOmega(u, u, xi, eta, phi)
	if tau < 0 || omega < 0 {
		return solution{}
	}
	return solution{ok: true, t: tau, u: u, v: omega}
}

func lrsr(x, y, phi float64) solution {
	xi := x + math.Sin(phi)
	eta := y - 1 - math.Cos(phi)
	rho, theta := cartesianToPolar(-eta, xi)
	if rho < 2 {
		return solution{}
	}
	t := theta
	u := 2 - rho
	v := NormalizeAngle(t + 0.5*math.Pi - phi)
	if t < 0 || u > 0 || v > 0 {
		return solution{}
	}
	return solution{ok: true, t: t, u: u, v: v}
}

func lrsl(x, y, phi float64) solution {
	xi := x - math.Sin(phi)
	eta := y - 1 + math.Cos(phi)
	rho, theta := cartesianToPolar(xi, eta)
	if rho < 2 {
		return solution{}
	}
	r := math.Sqrt(rho*rho - 4)
	u := 2 - r
	t := NormalizeAngle(theta + math.Atan2(r, -2))
	v := NormalizeAngle(phi - 0.5*math.Pi - t)
	if t < 0 || u > 0 || v > 0 {
		return solution{}
	}
	return solution{ok: true, t: t, u: u, v: v}
}

func lrslr(x, y, phi float64) solution {
	xi := x + math.Sin(phi)
	eta := y - 1 - math.Cos(phi)
	rho, _ := cartesianToPolar(xi, eta)
	if rho < 2 {
		return solution{}
	}
	u := 4 - math.Sqrt(rho*rho-4)
	if u > 0 {
		return solution{}
	}
	t := NormalizeAngle(math.Atan2((4-u)*xi-2*eta, -2*xi+(u-4)*eta))
	v := NormalizeAngle(t - phi)
	if t < 0 || v < 0 {
		return solution{}
	}
	return solution{ok: true, t: t, u: u, v: v}
}

// tauOmega is the shared trigonometric step of the four- and five-segment
// words: given candidate turn magnitudes (u, v) and the displacement
// (xi, eta, phi), it solves for the first turn angle τ and the last turn
// angle ω.
func tauOmega(u, v, xi, eta, phi float64) (tau, omega float64) {
	delta := NormalizeAngle(u - v)
	a := math.Sin(u) - math.Sin(delta)
	b := math.Cos(u) - math.Cos(delta) - 1

	t1 := math.Atan2(eta*a-xi*b, xi*a+eta*b)
	t2 := 2*(math.Cos(delta)-math.Cos(v)-math.Cos(u)) + 3
	if t2 < 0 {
		tau = NormalizeAngle(t1 + math.Pi)
	} else {
		tau = NormalizeAngle(t1)
	}
	omega = NormalizeAngle(tau - u + v - phi)
	return tau, omega
}
