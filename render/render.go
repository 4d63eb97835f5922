// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package render draws points on the unit sphere as an SVG scatter plot.

package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

const (
	defaultWidth       = 800
	defaultPointRadius = 2

	backgroundStyle = "fill:rgb(255,255,255)"
	outlineStyle    = "fill:none;stroke:rgb(170,170,170);stroke-width:1"
	frontStyle      = "fill:rgb(0,0,255);fill-opacity:0.8"
	backStyle       = "fill:rgb(170,170,255);fill-opacity:0.4"
	titleStyle      = "font-family:sans-serif;font-size:16px;fill:rgb(0,0,0)"
)

// ErrLengthMismatch is returned when the coordinate sequences differ in length.
var ErrLengthMismatch = errors.New("render: sequences have different lengths")

// Projection selects how the sphere is flattened onto the canvas.
type Projection int

const (
	// Orthographic shows the sphere as seen from far along the +x axis. Points
	// on the far hemisphere are drawn fainter, underneath the near ones.
	Orthographic Projection = iota
	// Mercator is the conformal cylindrical projection. Points beyond the
	// canvas near the poles are clipped.
	Mercator
	// PlateCarree maps longitude and latitude linearly.
	PlateCarree
)

func (p Projection) String() string {
	switch p {
	case Orthographic:
		return "orthographic"
	case Mercator:
		return "mercator"
	case PlateCarree:
		return "platecarree"
	}
	return fmt.Sprintf("Projection(%d)", int(p))
}

// ParseProjection returns the Projection named s.
func ParseProjection(s string) (Projection, error) {
	for _, p := range []Projection{Orthographic, Mercator, PlateCarree} {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("render: unknown projection %q", s)
}

// Options configures Scatter.
type Options struct {
	Projection  Projection
	Width       int
	PointRadius int
	Title       string
}

// Option sets a field of Options.
type Option func(*Options) error

// WithProjection sets the projection. The default is Orthographic.
func WithProjection(p Projection) Option {
	return func(o *Options) error {
		if p < Orthographic || p > PlateCarree {
			return fmt.Errorf("WithProjection: unknown projection %v", p)
		}
		o.Projection = p
		return nil
	}
}

// WithWidth sets the canvas width in pixels. The height is derived from the
// projection.
func WithWidth(width int) Option {
	return func(o *Options) error {
		if width <= 0 {
			return fmt.Errorf("WithWidth: width must be positive, got %d", width)
		}
		o.Width = width
		return nil
	}
}

// WithPointRadius sets the radius of each drawn point in pixels.
func WithPointRadius(r int) Option {
	return func(o *Options) error {
		if r <= 0 {
			return fmt.Errorf("WithPointRadius: radius must be positive, got %d", r)
		}
		o.PointRadius = r
		return nil
	}
}

// WithTitle draws title in the top-left corner.
func WithTitle(title string) Option {
	return func(o *Options) error {
		o.Title = title
		return nil
	}
}

// Scatter writes an SVG scatter plot of the points (x[i], y[i], z[i]) to w.
// Nothing is written if the sequences differ in length or an option is
// invalid.
func Scatter(w io.Writer, x, y, z []float64, setters ...Option) error {
	if len(x) != len(y) || len(x) != len(z) {
		return fmt.Errorf("Scatter: lengths (%d, %d, %d): %w", len(x), len(y), len(z), ErrLengthMismatch)
	}

	opts := Options{
		Projection:  Orthographic,
		Width:       defaultWidth,
		PointRadius: defaultPointRadius,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return err
		}
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	s := newScreen(opts)
	canvas.Start(s.width, s.height)
	canvas.Rect(0, 0, s.width, s.height, backgroundStyle)

	points := make(s2.PointVector, len(x))
	for i := range points {
		points[i] = s2.Point{Vector: r3.Vector{X: x[i], Y: y[i], Z: z[i]}}
	}

	if opts.Projection == Orthographic {
		s.drawOrthographic(canvas, points)
	} else {
		s.drawCylindrical(canvas, points)
	}

	if opts.Title != "" {
		canvas.Text(10, 24, opts.Title, titleStyle)
	}
	canvas.End()

	return ew.err
}

type screen struct {
	width  int
	height int
	radius int
	proj   s2.Projection
}

func newScreen(opts Options) *screen {
	s := &screen{
		width:  opts.Width,
		height: opts.Width / 2,
		radius: opts.PointRadius,
	}
	xScale := float64(opts.Width)
	switch opts.Projection {
	case Orthographic:
		s.height = opts.Width
	case Mercator:
		s.proj = s2.NewMercatorProjection(xScale)
	case PlateCarree:
		s.proj = s2.NewPlateCarreeProjection(xScale)
	}
	return s
}

// drawOrthographic draws the far hemisphere (x < 0) first, then the near one.
func (s *screen) drawOrthographic(canvas *svg.SVG, points s2.PointVector) {
	cx, cy := s.width/2, s.height/2
	r := float64(s.width)/2 - float64(s.radius) - 1
	canvas.Circle(cx, cy, int(r), outlineStyle)

	for _, near := range []bool{false, true} {
		style := backStyle
		if near {
			style = frontStyle
		}
		for _, p := range points {
			if (p.X >= 0) != near {
				continue
			}
			px := cx + int(math.Round(p.Y*r))
			py := cy - int(math.Round(p.Z*r))
			canvas.Circle(px, py, s.radius, style)
		}
	}
}

func (s *screen) drawCylindrical(canvas *svg.SVG, points s2.PointVector) {
	xScale := float64(s.width)
	for _, p := range points {
		r2p := s.proj.Project(p)

		x := (r2p.X + xScale) / (2 * xScale)
		y := (-r2p.Y + xScale/2) / xScale
		if y < 0 || y > 1 || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}

		canvas.Circle(int(x*float64(s.width)), int(y*float64(s.height)), s.radius, frontStyle)
	}
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
