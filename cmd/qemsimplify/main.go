// Command qemsimplify builds a fixture mesh, simplifies it with the quadric
// error metric and prints the resulting statistics.
//
// Usage:
//
//	qemsimplify -shape icosphere -level 3 -alpha 0.25
//	qemsimplify -shape cube -alpha 0.5 -out cube.obj -v
//
// Shapes: tetrahedron, octahedron, cube, icosahedron, icosphere, grid.
// With -out the simplified mesh is written as Wavefront OBJ.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/qemesh/builder"
	"github.com/katalvlaran/qemesh/halfedge"
	"github.com/katalvlaran/qemesh/qem"
)

type config struct {
	shape   string
	level   int
	rows    int
	cols    int
	scale   float64
	alpha   float64
	out     string
	verbose bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.shape, "shape", "icosphere", "fixture: tetrahedron|octahedron|cube|icosahedron|icosphere|grid")
	flag.IntVar(&cfg.level, "level", 2, "icosphere subdivision level")
	flag.IntVar(&cfg.rows, "rows", 8, "grid rows")
	flag.IntVar(&cfg.cols, "cols", 8, "grid columns")
	flag.Float64Var(&cfg.scale, "scale", 1, "uniform scale of the fixture")
	flag.Float64Var(&cfg.alpha, "alpha", 0.5, "target edge ratio in [0,1]")
	flag.StringVar(&cfg.out, "out", "", "write the simplified mesh as OBJ to this path")
	flag.BoolVar(&cfg.verbose, "v", false, "log every round")
	flag.Parse()

	logger, err := newLogger(cfg.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Error("qemsimplify failed", zap.Error(err))
		stop()
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, cfg config, logger *zap.Logger, w io.Writer) error {
	m, err := buildShape(cfg)
	if err != nil {
		return err
	}
	logger.Info("mesh built",
		zap.String("shape", cfg.shape),
		zap.Int("vertices", m.NumVertices()),
		zap.Int("edges", m.NumEdges()),
		zap.Int("faces", m.NumFaces()))

	s, err := qem.NewSimplifier(m, qem.WithLogger(logger), qem.WithContext(ctx))
	if err != nil {
		return err
	}
	stats, err := s.RunSimplify(cfg.alpha)
	switch {
	case errors.Is(err, qem.ErrTargetNotReached):
		logger.Warn("target not reached", zap.Int("edges_left", stats.FinalEdges))
	case err != nil:
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}

	fmt.Fprintf(w, "edges    %d -> %d (target %.0f)\n", stats.OriginalEdges, stats.FinalEdges, cfg.alpha*float64(stats.OriginalEdges))
	fmt.Fprintf(w, "vertices %d\nfaces    %d\n", stats.FinalVertices, stats.FinalFaces)
	fmt.Fprintf(w, "rounds   %d (collapsed %d, skipped %d)\n", stats.Rounds, stats.Collapses, stats.Skipped)

	if cfg.out == "" {
		return nil
	}
	f, err := os.Create(cfg.out)
	if err != nil {
		return err
	}
	if err := writeOBJ(f, m); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func buildShape(cfg config) (*halfedge.Mesh, error) {
	opts := []builder.BuilderOption{builder.WithScale(cfg.scale)}
	switch strings.ToLower(cfg.shape) {
	case "tetrahedron":
		return builder.PlatonicSolid(builder.Tetrahedron, opts...)
	case "octahedron":
		return builder.PlatonicSolid(builder.Octahedron, opts...)
	case "cube":
		return builder.PlatonicSolid(builder.Cube, opts...)
	case "icosahedron":
		return builder.PlatonicSolid(builder.Icosahedron, opts...)
	case "icosphere":
		return builder.Icosphere(cfg.level, opts...)
	case "grid":
		return builder.Grid(cfg.rows, cfg.cols, opts...)
	default:
		return nil, fmt.Errorf("unknown shape %q", cfg.shape)
	}
}

// writeOBJ emits positions and 1-based triangle indices.
func writeOBJ(w io.Writer, m *halfedge.Mesh) error {
	bw := bufio.NewWriter(w)
	positions, triangles := builder.ToTriangles(m)
	for _, p := range positions {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X(), p.Y(), p.Z())
	}
	for _, t := range triangles {
		fmt.Fprintf(bw, "f %d %d %d\n", t[0]+1, t[1]+1, t[2]+1)
	}
	return bw.Flush()
}
