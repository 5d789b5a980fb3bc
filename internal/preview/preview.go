// Package preview renders a terminal approximation of a plot with
// asciigraph, so the curve can be checked before the LaTeX is emitted.
package preview

import (
	"math"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/tikzgen/internal/expr"
	"github.com/san-kum/tikzgen/internal/plot"
)

const (
	defaultWidth  = 70
	defaultHeight = 12
	sampleCount   = 140
)

// Function samples the expression tree over the domain and renders it.
// Non-finite samples (poles, log of negatives) are replaced by the nearest
// finite neighbor so one asymptote does not blank the whole graph.
func Function(tree expr.Node, domain plot.Domain, caption string) string {
	step := (domain.High - domain.Low) / float64(sampleCount-1)
	data := make([]float64, sampleCount)
	last := 0.0
	for i := range data {
		v := tree.Eval(domain.Low + float64(i)*step)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = last
		}
		data[i] = v
		last = v
	}
	return render(data, caption)
}

// Coordinates renders the y-values of a point list in input order.
func Coordinates(points []plot.Point, caption string) string {
	data := make([]float64, len(points))
	for i, p := range points {
		data[i] = p.Y
	}
	if len(data) == 1 {
		// asciigraph needs two samples to draw a line
		data = append(data, data[0])
	}
	return render(data, caption)
}

func render(data []float64, caption string) string {
	return asciigraph.Plot(data,
		asciigraph.Height(defaultHeight),
		asciigraph.Width(defaultWidth),
		asciigraph.Caption(caption),
	)
}
