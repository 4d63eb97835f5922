// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package s2sample generates random points on the surface of the unit sphere.
//
// Two generators are provided and both are kept on purpose:
//
//   - GenerateNaive draws the polar angle phi from U(0, pi) and the azimuth
//     theta from U(0, 2*pi). The result is uniform in (phi, theta) but not
//     over the surface: the area element is sin(phi) dphi dtheta, so a band
//     of fixed dphi near a pole covers less area than the same band at the
//     equator while receiving the same share of points. Points cluster at the
//     poles.
//
//   - GenerateCorrect draws z from U(-1, 1) and theta from U(0, 2*pi). By
//     Archimedes' hat-box theorem the radial projection of the sphere onto
//     its circumscribing cylinder preserves area, and the unrolled cylinder is
//     a 2 x 2*pi rectangle on which (z, theta) is plainly uniform. The points
//     are therefore uniform over the surface, and since z and theta are
//     independent and the sphere is rotation invariant, every spherical cap
//     of solid angle omega receives an expected omega/(4*pi) share of the
//     points regardless of where it is centred.
//
// Without options both generators draw from the process-wide math/rand
// source, which is safe for concurrent use and not seeded to a fixed value.
package s2sample

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/2dChan/s2sample/spherical"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// ErrInvalidArgument is returned for a negative point count or an invalid
// option value.
var ErrInvalidArgument = errors.New("s2sample: invalid argument")

// Source is a stream of uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64()
}

// Options configures a single call of GenerateNaive or GenerateCorrect.
type Options struct {
	Source Source
}

// Option sets a field of Options. It returns an error for invalid values.
type Option func(*Options) error

// WithSeed makes the call draw from a fresh source seeded with seed. Calls
// with the same seed and count return identical sets.
func WithSeed(seed int64) Option {
	return func(o *Options) error {
		//nolint:gosec
		o.Source = rand.New(rand.NewSource(seed))
		return nil
	}
}

// WithRand makes the call draw from r. r is not safe for concurrent use, so
// callers sharing it between goroutines must synchronize themselves.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) error {
		if r == nil {
			return fmt.Errorf("WithRand: nil *rand.Rand: %w", ErrInvalidArgument)
		}
		o.Source = r
		return nil
	}
}

// WithSource makes the call draw from src.
func WithSource(src Source) Option {
	return func(o *Options) error {
		if src == nil {
			return fmt.Errorf("WithSource: nil source: %w", ErrInvalidArgument)
		}
		o.Source = src
		return nil
	}
}

// CoordinateSet holds n points on the unit sphere as three parallel
// coordinate sequences.
type CoordinateSet struct {
	X []float64
	Y []float64
	Z []float64
}

// Len returns the number of points in the set.
func (cs *CoordinateSet) Len() int {
	return len(cs.X)
}

// At returns the coordinates of the i-th point.
func (cs *CoordinateSet) At(i int) (x, y, z float64) {
	return cs.X[i], cs.Y[i], cs.Z[i]
}

// Points returns the set as an s2.PointVector. The coordinates are copied,
// not renormalized.
func (cs *CoordinateSet) Points() s2.PointVector {
	points := make(s2.PointVector, cs.Len())
	for i := range points {
		points[i] = s2.Point{Vector: r3.Vector{X: cs.X[i], Y: cs.Y[i], Z: cs.Z[i]}}
	}
	return points
}

// PointsFromVector converts an s2.PointVector to a CoordinateSet.
func PointsFromVector(points s2.PointVector) *CoordinateSet {
	cs := newCoordinateSet(len(points))
	for i, p := range points {
		cs.X[i], cs.Y[i], cs.Z[i] = p.X, p.Y, p.Z
	}
	return cs
}

func newCoordinateSet(n int) *CoordinateSet {
	return &CoordinateSet{
		X: make([]float64, n),
		Y: make([]float64, n),
		Z: make([]float64, n),
	}
}

// GenerateNaive returns n points whose polar angle and azimuth are each drawn
// uniformly. The points are not uniform over the sphere's area; their density
// grows towards the poles.
func GenerateNaive(n int, setters ...Option) (*CoordinateSet, error) {
	src, err := newSource("GenerateNaive", n, setters)
	if err != nil {
		return nil, err
	}

	phi := uniformSequence(src, n, 0, math.Pi)
	theta := uniformSequence(src, n, 0, 2*math.Pi)

	x, y, z, err := spherical.ToCartesian(phi, theta)
	if err != nil {
		return nil, err
	}
	return &CoordinateSet{X: x, Y: y, Z: z}, nil
}

// GenerateCorrect returns n points distributed uniformly over the sphere's
// surface area.
func GenerateCorrect(n int, setters ...Option) (*CoordinateSet, error) {
	src, err := newSource("GenerateCorrect", n, setters)
	if err != nil {
		return nil, err
	}

	cs := newCoordinateSet(n)
	// z is the height on the circumscribing cylinder and, by the equal-area
	// projection, the sphere's z coordinate as well.
	for i := range n {
		cs.Z[i] = uniform(src, -1, 1)
	}
	theta := uniformSequence(src, n, 0, 2*math.Pi)

	for i, z := range cs.Z {
		// sin(acos(z)) == sqrt(1 - z*z) for z in [-1, 1].
		sinPhi := math.Sqrt(1 - z*z)
		sinTheta, cosTheta := math.Sincos(theta[i])
		cs.X[i] = sinPhi * cosTheta
		cs.Y[i] = sinPhi * sinTheta
	}

	return cs, nil
}

// newSource validates n and applies setters. It never draws.
func newSource(op string, n int, setters []Option) (Source, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: negative point count %d: %w", op, n, ErrInvalidArgument)
	}

	opts := Options{
		Source: globalSource{},
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return opts.Source, nil
}

func uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

func uniformSequence(src Source, n int, lo, hi float64) []float64 {
	seq := make([]float64, n)
	for i := range seq {
		seq[i] = uniform(src, lo, hi)
	}
	return seq
}
