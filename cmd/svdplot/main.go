// SPDX-License-Identifier: MIT
// Command svdplot renders the singular value spectrum (a scree plot) of a
// random matrix. Handy for eyeballing the numerical rank of a test matrix:
// a sharp drop in the curve marks where the effective rank ends.
//
// Usage:
//
//	svdplot [-rows N] [-cols N] [-rank K] [-seed S] [-o scree.png]
//
// With -rank K the matrix is built as a product of random factors of inner
// dimension K, so exactly K singular values stand above roundoff.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/linalg/dense"
)

func main() {
	rows := flag.Int("rows", 40, "matrix row count")
	cols := flag.Int("cols", 30, "matrix column count")
	rank := flag.Int("rank", 0, "target rank (0 means full rank)")
	seed := flag.Int64("seed", 1, "random seed")
	out := flag.String("o", "scree.png", "output image path")
	flag.Parse()

	m, err := buildMatrix(*rows, *cols, *rank, *seed)
	if err != nil {
		log.Fatalf("svdplot: build matrix: %v", err)
	}

	svd, err := dense.NewSVD(m)
	if err != nil {
		log.Fatalf("svdplot: decompose: %v", err)
	}
	values := svd.Values()

	if err = renderScree(values, *out); err != nil {
		log.Fatalf("svdplot: render: %v", err)
	}
	fmt.Printf("wrote %s (%dx%d, rank %d, σ_max %.4g, cond %.4g)\n",
		*out, *rows, *cols, svd.Rank(), svd.MaxValue(), svd.Cond())
}

// buildMatrix returns a rows×cols matrix with uniform entries in [-1, 1),
// optionally squeezed through an inner dimension to cap its rank.
func buildMatrix(rows, cols, rank int, seed int64) (dense.Matrix, error) {
	rng := rand.New(rand.NewSource(seed))
	fill := func(m *dense.Dense) error {
		var i, j int
		for i = 0; i < m.Rows(); i++ {
			for j = 0; j < m.Cols(); j++ {
				if err := m.Set(i, j, 2*rng.Float64()-1); err != nil {
					return err
				}
			}
		}

		return nil
	}

	a, err := dense.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if rank <= 0 {
		return a, fill(a)
	}

	// Rank-limited: A = L·R with L rows×rank and R rank×cols.
	l, err := dense.NewDense(rows, rank)
	if err != nil {
		return nil, err
	}
	r, err := dense.NewDense(rank, cols)
	if err != nil {
		return nil, err
	}
	if err = fill(l); err != nil {
		return nil, err
	}
	if err = fill(r); err != nil {
		return nil, err
	}

	return dense.Mul(l, r)
}

// renderScree draws index→σ_i as a line-with-points chart and saves it.
func renderScree(values []float64, path string) error {
	pts := make(plotter.XYs, len(values))
	for i, sv := range values {
		pts[i].X = float64(i + 1)
		pts[i].Y = sv
	}

	p := plot.New()
	p.Title.Text = "Singular value spectrum"
	p.X.Label.Text = "index"
	p.Y.Label.Text = "σ"

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	p.Add(line, points, plotter.NewGrid())
	p.Legend.Add("σ_i", line)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
