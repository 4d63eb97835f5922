// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package uniformity measures how evenly a point set covers the unit sphere.
//
// A set is uniform over area when every spherical cap holds a share of the
// points equal to its share of the sphere's area, Area(cap) / (4*pi), for
// caps centred anywhere. The functions here compare empirical and expected
// shares and, through a Delaunay triangulation, compare how large the gaps
// between neighbouring points are near the poles and near the equator.
package uniformity

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/2dChan/s2sample"
	"github.com/2dChan/s2sample/s2delaunay"
	"github.com/2dChan/s2sample/spherical"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const (
	// polarBandZ and equatorBandZ bound the bands compared by BandAreaRatio.
	// Both bands cover 10% of the sphere's area.
	polarBandZ   = 0.9
	equatorBandZ = 0.1

	// DefaultCapAngle is the cap radius used by NewReport. A 60 degree cap
	// around a pole is the region z > 0.5 and covers a quarter of the sphere.
	DefaultCapAngle = 60 * s1.Degree
)

// ErrEmptyBand is returned by BandAreaRatio when no triangle falls in the
// polar or the equatorial band.
var ErrEmptyBand = errors.New("uniformity: empty band")

// CapFraction returns the fraction of points inside c. It returns 0 for an
// empty point set.
func CapFraction(points s2.PointVector, c s2.Cap) float64 {
	if len(points) == 0 {
		return 0
	}
	inside := 0
	for _, p := range points {
		if c.ContainsPoint(p) {
			inside++
		}
	}
	return float64(inside) / float64(len(points))
}

// ExpectedCapFraction returns the share of an area-uniform sample expected
// inside c.
func ExpectedCapFraction(c s2.Cap) float64 {
	return c.Area() / (4 * math.Pi)
}

// ZAboveFraction returns the fraction of points with z > z0.
func ZAboveFraction(points s2.PointVector, z0 float64) float64 {
	if len(points) == 0 {
		return 0
	}
	above := 0
	for _, p := range points {
		if p.Z > z0 {
			above++
		}
	}
	return float64(above) / float64(len(points))
}

// PolarAngleBelowFraction returns the fraction of points whose polar angle is
// at most phi.
func PolarAngleBelowFraction(points s2.PointVector, phi float64) float64 {
	if len(points) == 0 {
		return 0
	}
	below := 0
	for _, p := range points {
		if pPhi, _ := spherical.Angles(p); pPhi <= phi {
			below++
		}
	}
	return float64(below) / float64(len(points))
}

// MaxCapDeviation returns the largest absolute difference between the
// empirical and the expected fraction over caps.
func MaxCapDeviation(points s2.PointVector, caps []s2.Cap) float64 {
	var worst float64
	for _, c := range caps {
		d := math.Abs(CapFraction(points, c) - ExpectedCapFraction(c))
		worst = max(worst, d)
	}
	return worst
}

// AxisCaps returns caps of the given radius centred on the six coordinate
// axis directions and the eight octant diagonals.
func AxisCaps(angle s1.Angle) []s2.Cap {
	centers := []r3.Vector{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
	}
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				centers = append(centers, r3.Vector{X: sx, Y: sy, Z: sz})
			}
		}
	}

	caps := make([]s2.Cap, len(centers))
	for i, c := range centers {
		caps[i] = s2.CapFromCenterAngle(s2.Point{Vector: c.Normalize()}, angle)
	}
	return caps
}

// RandomCaps returns k caps of the given radius whose centres are drawn
// uniformly over the sphere from r.
func RandomCaps(r *rand.Rand, k int, angle s1.Angle) ([]s2.Cap, error) {
	centers, err := s2sample.GenerateCorrect(k, s2sample.WithRand(r))
	if err != nil {
		return nil, fmt.Errorf("RandomCaps: %w", err)
	}

	caps := make([]s2.Cap, k)
	for i, p := range centers.Points() {
		caps[i] = s2.CapFromCenterAngle(p, angle)
	}
	return caps, nil
}

// BandAreaRatio triangulates points and returns the mean area of triangles
// near the poles (|z| > 0.9) divided by the mean area of triangles near the
// equator (|z| < 0.1). It is close to 1 for an area-uniform set and well
// below 1 when points cluster at the poles.
func BandAreaRatio(points s2.PointVector) (float64, error) {
	dt, err := s2delaunay.NewTriangulation(points)
	if err != nil {
		return 0, err
	}

	var (
		polarSum, equatorSum float64
		polarCnt, equatorCnt int
	)
	for i := range dt.NumTriangles() {
		z := math.Abs(dt.TriangleCentroid(i).Z)
		switch {
		case z > polarBandZ:
			polarSum += dt.TriangleArea(i)
			polarCnt++
		case z < equatorBandZ:
			equatorSum += dt.TriangleArea(i)
			equatorCnt++
		}
	}
	if polarCnt == 0 || equatorCnt == 0 {
		return 0, fmt.Errorf("BandAreaRatio: %d polar, %d equatorial triangles: %w",
			polarCnt, equatorCnt, ErrEmptyBand)
	}

	return (polarSum / float64(polarCnt)) / (equatorSum / float64(equatorCnt)), nil
}

// Report summarizes the uniformity of a point set.
type Report struct {
	N int
	// ZAboveHalf is the fraction with z > 0.5; 0.25 for an area-uniform set.
	ZAboveHalf float64
	// NorthernHemisphere is the fraction with phi <= pi/2.
	NorthernHemisphere float64
	// MaxCapDeviation is taken over AxisCaps(DefaultCapAngle).
	MaxCapDeviation float64
	BandAreaRatio   float64
}

// NewReport computes a Report for points. At least 4 points are required.
func NewReport(points s2.PointVector) (Report, error) {
	ratio, err := BandAreaRatio(points)
	if err != nil {
		return Report{}, err
	}

	return Report{
		N:                  len(points),
		ZAboveHalf:         ZAboveFraction(points, 0.5),
		NorthernHemisphere: PolarAngleBelowFraction(points, math.Pi/2),
		MaxCapDeviation:    MaxCapDeviation(points, AxisCaps(DefaultCapAngle)),
		BandAreaRatio:      ratio,
	}, nil
}
