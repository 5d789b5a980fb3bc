package preview

import (
	"strings"
	"testing"

	"github.com/san-kum/tikzgen/internal/expr"
	"github.com/san-kum/tikzgen/internal/plot"
)

func TestFunctionPreview(t *testing.T) {
	tree, err := expr.Parse("x^2")
	if err != nil {
		t.Fatal(err)
	}
	graph := Function(tree, plot.Domain{Low: -5, High: 5}, "x^2")
	if graph == "" {
		t.Fatal("empty preview")
	}
	if !strings.Contains(graph, "x^2") {
		t.Error("caption missing from preview")
	}
}

func TestFunctionPreviewSurvivesNonFiniteSamples(t *testing.T) {
	// sqrt is NaN left of zero; 1/x has a pole at zero
	for _, src := range []string{"sqrt(x)", "1/x", "log(x)"} {
		tree, err := expr.Parse(src)
		if err != nil {
			t.Fatal(err)
		}
		graph := Function(tree, plot.Domain{Low: -2, High: 2}, src)
		if graph == "" {
			t.Errorf("%s: empty preview", src)
		}
	}
}

func TestCoordinatesPreview(t *testing.T) {
	points := []plot.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 9}}
	graph := Coordinates(points, "3 points")
	if graph == "" {
		t.Fatal("empty preview")
	}
}

func TestCoordinatesPreviewSinglePoint(t *testing.T) {
	graph := Coordinates([]plot.Point{{X: 1, Y: 1}}, "1 point")
	if graph == "" {
		t.Fatal("single point should still render")
	}
}
