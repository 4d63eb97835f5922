// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/2dChan/s2sample"
)

// Options

func TestWithWidth(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		wantErr bool
	}{
		{"positive", 400, false},
		{"zero", 0, true},
		{"negative", -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &Options{Width: defaultWidth}
			err := WithWidth(tt.width)(opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("WithWidth(%v) error = %v, wantErr %v", tt.width, err, tt.wantErr)
			}
			if err == nil && opts.Width != tt.width {
				t.Errorf("WithWidth(%v) opts.Width = %v, want %v", tt.width, opts.Width, tt.width)
			}
		})
	}
}

func TestWithPointRadius(t *testing.T) {
	tests := []struct {
		name    string
		r       int
		wantErr bool
	}{
		{"positive", 3, false},
		{"zero", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &Options{PointRadius: defaultPointRadius}
			err := WithPointRadius(tt.r)(opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("WithPointRadius(%v) error = %v, wantErr %v", tt.r, err, tt.wantErr)
			}
		})
	}
}

func TestWithProjection_Unknown(t *testing.T) {
	opts := &Options{}
	if err := WithProjection(Projection(42))(opts); err == nil {
		t.Errorf("WithProjection(42) error = nil, want non-nil")
	}
}

func TestParseProjection(t *testing.T) {
	for _, want := range []Projection{Orthographic, Mercator, PlateCarree} {
		got, err := ParseProjection(want.String())
		if err != nil {
			t.Fatalf("ParseProjection(%q) error = %v, want nil", want.String(), err)
		}
		if got != want {
			t.Errorf("ParseProjection(%q) = %v, want %v", want.String(), got, want)
		}
	}
	if _, err := ParseProjection("gnomonic"); err == nil {
		t.Errorf("ParseProjection(%q) error = nil, want non-nil", "gnomonic")
	}
}

// Scatter

func TestScatter_LengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := Scatter(&buf, []float64{1}, []float64{0}, nil)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Scatter(...) error = %v, want %v", err, ErrLengthMismatch)
	}
	if buf.Len() != 0 {
		t.Errorf("Scatter(...) wrote %d bytes, want 0", buf.Len())
	}
}

func TestScatter_InvalidOption(t *testing.T) {
	var buf bytes.Buffer
	if err := Scatter(&buf, nil, nil, nil, WithWidth(0)); err == nil {
		t.Errorf("Scatter(..., WithWidth(0)) error = nil, want non-nil")
	}
	if buf.Len() != 0 {
		t.Errorf("Scatter(..., WithWidth(0)) wrote %d bytes, want 0", buf.Len())
	}
}

func TestScatter_Orthographic(t *testing.T) {
	const n = 200
	cs := mustGenerate(t, n)

	var buf bytes.Buffer
	if err := Scatter(&buf, cs.X, cs.Y, cs.Z, WithTitle("correct")); err != nil {
		t.Fatalf("Scatter(...) error = %v, want nil", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") {
		t.Errorf("Scatter(...) output does not start with an XML declaration")
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Errorf("Scatter(...) output does not end with </svg>")
	}
	// One circle per point plus the sphere outline.
	if got, want := strings.Count(out, "<circle"), n+1; got != want {
		t.Errorf("Scatter(...) circles = %v, want %v", got, want)
	}
	if !strings.Contains(out, ">correct</text>") {
		t.Errorf("Scatter(..., WithTitle(%q)) output has no title", "correct")
	}
}

func TestScatter_Cylindrical(t *testing.T) {
	const n = 200
	cs := mustGenerate(t, n)
	for _, p := range []Projection{Mercator, PlateCarree} {
		t.Run(p.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Scatter(&buf, cs.X, cs.Y, cs.Z, WithProjection(p), WithWidth(600)); err != nil {
				t.Fatalf("Scatter(...) error = %v, want nil", err)
			}
			got := strings.Count(buf.String(), "<circle")
			if got == 0 || got > n {
				t.Errorf("Scatter(..., WithProjection(%v)) circles = %v, want in (0, %v]", p, got, n)
			}
			if p == PlateCarree && got != n {
				t.Errorf("Scatter(..., WithProjection(%v)) circles = %v, want %v", p, got, n)
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestScatter_WriteError(t *testing.T) {
	cs := mustGenerate(t, 10)
	if err := Scatter(failingWriter{}, cs.X, cs.Y, cs.Z); err == nil {
		t.Errorf("Scatter(failingWriter, ...) error = nil, want non-nil")
	}
}

// Helpers

func mustGenerate(t *testing.T, n int) *s2sample.CoordinateSet {
	t.Helper()
	cs, err := s2sample.GenerateCorrect(n, s2sample.WithSeed(0))
	if err != nil {
		t.Fatalf("GenerateCorrect(%d) error = %v, want nil", n, err)
	}
	return cs
}
