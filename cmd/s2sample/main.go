// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// s2sample draws random points on the unit sphere with the naive and the
// area-uniform generator and renders each set to an SVG file.
//
// Usage:
//
//	s2sample [--count N] [--seed S] [--out DIR] [--projection NAME] [--radius R]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/2dChan/s2sample"
	"github.com/2dChan/s2sample/render"
	"github.com/2dChan/s2sample/uniformity"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const (
	defaultCount = 2000
	width        = 800
)

type sampler struct {
	name  string
	title string
	gen   func(int, ...s2sample.Option) (*s2sample.CoordinateSet, error)
}

var samplers = []sampler{
	{"naive", "uniform (phi, theta)", s2sample.GenerateNaive},
	{"correct", "uniform (z, theta)", s2sample.GenerateCorrect},
}

type config struct {
	count      int
	seed       int64
	seeded     bool
	outDir     string
	projection render.Projection
	radius     int
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := newApp(logger).Run(context.Background(), os.Args); err != nil {
		logger.Error("s2sample failed", "error", err)
		os.Exit(1)
	}
}

func newApp(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "s2sample",
		Usage: "compare angle-uniform and area-uniform random points on the unit sphere",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "number of points per sampler",
				Value:   defaultCount,
			},
			&cli.Int64Flag{
				Name:    "seed",
				Aliases: []string{"s"},
				Usage:   "seed both samplers for reproducible output",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "directory for naive.svg and correct.svg",
				Value:   ".",
			},
			&cli.StringFlag{
				Name:    "projection",
				Aliases: []string{"p"},
				Usage:   "orthographic, mercator or platecarree",
				Value:   render.Orthographic.String(),
			},
			&cli.IntFlag{
				Name:  "radius",
				Usage: "point radius in pixels",
				Value: 2,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			proj, err := render.ParseProjection(cmd.String("projection"))
			if err != nil {
				return err
			}
			cfg := config{
				count:      cmd.Int("count"),
				seed:       cmd.Int64("seed"),
				seeded:     cmd.IsSet("seed"),
				outDir:     cmd.String("out"),
				projection: proj,
				radius:     cmd.Int("radius"),
			}
			return run(ctx, logger, cfg)
		},
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg config) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, s := range samplers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return sampleAndRender(logger, cfg, s)
		})
	}
	return g.Wait()
}

func sampleAndRender(logger *slog.Logger, cfg config, s sampler) (err error) {
	var setters []s2sample.Option
	if cfg.seeded {
		setters = append(setters, s2sample.WithSeed(cfg.seed))
	}
	cs, err := s.gen(cfg.count, setters...)
	if err != nil {
		return fmt.Errorf("%s: %w", s.name, err)
	}

	path := filepath.Join(cfg.outDir, s.name+".svg")
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	err = render.Scatter(file, cs.X, cs.Y, cs.Z,
		render.WithProjection(cfg.projection),
		render.WithWidth(width),
		render.WithPointRadius(cfg.radius),
		render.WithTitle(fmt.Sprintf("%s: %s, n = %d", s.name, s.title, cfg.count)),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", s.name, err)
	}

	attrs := []any{"sampler", s.name, "n", cs.Len(), "file", path}
	// The band ratio needs a triangulation, which needs at least 4 points.
	if report, rerr := uniformity.NewReport(cs.Points()); rerr == nil {
		attrs = append(attrs,
			"z_above_half", report.ZAboveHalf,
			"northern_hemisphere", report.NorthernHemisphere,
			"max_cap_deviation", report.MaxCapDeviation,
			"band_area_ratio", report.BandAreaRatio,
		)
	} else {
		logger.Warn("uniformity report skipped", "sampler", s.name, "error", rerr)
	}
	logger.Info("rendered sample", attrs...)

	return nil
}
