// Package reedsshepp computes analytically-shortest Reeds-Shepp paths: the
// minimum-length sequence of forward/backward circular arcs and straight
// lines, respecting a minimum turning radius, that connects two oriented 2D
// poses of a car-like vehicle. It is the curve-generation primitive of an
// open-space motion planner, producing drivable connections between sampled
// vehicle configurations, including the reverse maneuvers needed for
// parking.
//
// # Approach
//
// Nine canonical closed-form equation systems each solve one base path word
// (for example L-S-L: turn left, drive straight, turn left) in a frame where
// the start pose is the origin and the turning radius is 1. A small,
// table-driven reflection engine expands those solvers into every
// geometrically distinct variant: mirrored steering, time-reversed
// traversal, and paths re-derived from the far end. The shortest valid
// candidate is selected and discretized into fixed-step samples carrying
// position, heading, and gear.
//
// # Usage
//
// [ShortestPath] is the planner-facing entry point. [AllPaths] exposes the
// raw candidate set for callers that want to rank or filter words
// themselves; a chosen candidate can then be sampled with [Path.Discretize].
//
// All computation is synchronous and free of shared state; every solver and
// generator is a pure function of its numeric inputs, so calls may be issued
// concurrently from multiple goroutines.
//
// # Literature
//
//   - [Optimal paths for a car that goes both forwards and backwards] by
//     Reeds and Shepp
//   - the open-space planner of [Baidu Apollo], whose path family this
//     package reproduces
//
// [Optimal paths for a car that goes both forwards and backwards]: https://msp.org/pjm/1990/145-2/pjm-v145-n2-p06-s.pdf
// [Baidu Apollo]: https://github.com/ApolloAuto/apollo
package reedsshepp
