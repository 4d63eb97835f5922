// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package spherical converts between spherical angles on the unit sphere and
// Cartesian coordinates.
//
// Angles follow the physics convention: phi is the polar angle measured from
// the positive z pole, in [0, pi], and theta is the azimuth around the z axis,
// in [0, 2*pi).

package spherical

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// ErrLengthMismatch is returned when parallel angle sequences differ in length.
var ErrLengthMismatch = errors.New("spherical: sequences have different lengths")

// Cartesian maps a single (phi, theta) pair to a point on the unit sphere.
func Cartesian(phi, theta float64) (x, y, z float64) {
	sinPhi, cosPhi := math.Sincos(phi)
	sinTheta, cosTheta := math.Sincos(theta)
	return sinPhi * cosTheta, sinPhi * sinTheta, cosPhi
}

// ToCartesian maps parallel phi and theta sequences to x, y and z sequences of
// the same length.
func ToCartesian(phi, theta []float64) (x, y, z []float64, err error) {
	if len(phi) != len(theta) {
		return nil, nil, nil, fmt.Errorf("ToCartesian: len(phi) = %d, len(theta) = %d: %w",
			len(phi), len(theta), ErrLengthMismatch)
	}

	n := len(phi)
	x = make([]float64, n)
	y = make([]float64, n)
	z = make([]float64, n)
	for i := range n {
		x[i], y[i], z[i] = Cartesian(phi[i], theta[i])
	}

	return x, y, z, nil
}

// PointFromAngles returns the s2.Point at the given polar angle and azimuth.
func PointFromAngles(phi, theta float64) s2.Point {
	x, y, z := Cartesian(phi, theta)
	return s2.Point{Vector: r3.Vector{X: x, Y: y, Z: z}}
}

// Angles returns the polar angle and azimuth of p. The azimuth is normalized
// to [0, 2*pi). p does not need to be unit length.
func Angles(p s2.Point) (phi, theta float64) {
	n := p.Norm()
	if n == 0 {
		return 0, 0
	}

	z := math.Max(-1, math.Min(1, p.Z/n))
	phi = math.Acos(z)
	theta = math.Atan2(p.Y, p.X)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return phi, theta
}
