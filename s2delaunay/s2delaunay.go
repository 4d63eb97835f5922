// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package s2delaunay triangulates point sets on the unit sphere.
//
// The convex hull of points lying on a sphere is their spherical Delaunay
// triangulation, so the triangles are taken directly from QuickHull.

package s2delaunay

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	defaultEps = 1e-12
)

// Triangulation is a spherical Delaunay triangulation. Triangles index into
// Vertices and are sorted CCW when looking out of the sphere.
type Triangulation struct {
	Vertices  s2.PointVector
	Triangles [][3]int
}

// NumTriangles returns the number of triangles. For n points in general
// position it equals 2n - 4.
func (dt *Triangulation) NumTriangles() int {
	return len(dt.Triangles)
}

// TriangleVertices returns the three vertices of triangle tIdx.
func (dt *Triangulation) TriangleVertices(tIdx int) (s2.Point, s2.Point, s2.Point) {
	if tIdx < 0 || tIdx >= len(dt.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := dt.Triangles[tIdx]
	return dt.Vertices[t[0]], dt.Vertices[t[1]], dt.Vertices[t[2]]
}

// TriangleArea returns the area of spherical triangle tIdx in steradians.
func (dt *Triangulation) TriangleArea(tIdx int) float64 {
	a, b, c := dt.TriangleVertices(tIdx)
	return s2.PointArea(a, b, c)
}

// TriangleCentroid returns the unit-length centroid of triangle tIdx.
func (dt *Triangulation) TriangleCentroid(tIdx int) s2.Point {
	a, b, c := dt.TriangleVertices(tIdx)
	return s2.Point{Vector: a.Add(b.Vector).Add(c.Vector).Normalize()}
}

// TriangulationOptions configures NewTriangulation.
type TriangulationOptions struct {
	Eps float64
}

// TriangulationOption sets a field of TriangulationOptions.
type TriangulationOption func(*TriangulationOptions) error

// WithEps sets the QuickHull tolerance. eps must be positive.
func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// NewTriangulation triangulates vertices, which must all lie on the unit
// sphere. At least 4 vertices are required.
func NewTriangulation(vertices s2.PointVector, setters ...TriangulationOption) (*Triangulation, error) {
	opts := TriangulationOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	numVertices := len(vertices)
	if numVertices < 4 {
		return nil,
			errors.New("s2delaunay: insufficient vertices for triangulation (minimum 4 required)")
	}
	numTriangles := 2 * (numVertices - 2)

	r3vertices := make([]r3.Vector, numVertices)
	for i, p := range vertices {
		r3vertices[i] = p.Vector
	}
	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(r3vertices, true, true, opts.Eps)
	if len(ch.Indices) != numTriangles*3 {
		return nil, errors.New("s2delaunay: inconsistent number of indices returned from QuickHull")
	}

	dt := &Triangulation{
		Vertices:  vertices,
		Triangles: make([][3]int, numTriangles),
	}
	for i := range numTriangles {
		base := i * 3
		dt.Triangles[i] = [3]int{ch.Indices[base], ch.Indices[base+1], ch.Indices[base+2]}
		sortTriangleVerticesCCW(&dt.Triangles[i], dt.Vertices)
	}

	return dt, nil
}

func sortTriangleVerticesCCW(t *[3]int, v s2.PointVector) {
	p0, p1, p2 := v[t[0]], v[t[1]], v[t[2]]
	norm := p1.Sub(p0.Vector).Cross(p2.Sub(p0.Vector))
	if norm.Dot(p0.Vector) < 0 {
		t[1], t[2] = t[2], t[1]
	}
}
