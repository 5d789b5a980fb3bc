package plot

import (
	"errors"
	"strconv"
	"strings"

	"github.com/san-kum/tikzgen/internal/expr"
	"github.com/san-kum/tikzgen/internal/latex"
)

// Preamble is the package setup the surrounding document needs once. It is
// printed ahead of every generated figure so the output is copy-pasteable
// on its own.
const Preamble = "Preamble to copy-paste:\n" +
	"\\usepackage{tikz}\n" +
	"\\usepackage{pgfplots}\n" +
	"\\pgfplotsset{compat=1.18,width=\\linewidth," +
	"height=0.5\\textheight,tick align=outside," +
	"grid=major,trig format plots=rad}\n"

// Document synthesizes the complete markup for a validated request. The
// output is deterministic: identical inputs give byte-identical documents.
func Document(req Request, opts Options) (string, error) {
	switch {
	case req.Function != nil:
		return functionDocument(req.Function, opts), nil
	case req.Coordinates != nil:
		return coordinateDocument(req.Coordinates, opts), nil
	}
	return "", errors.New("plot: empty request")
}

func functionDocument(fn *Function, opts Options) string {
	var sb strings.Builder
	sb.WriteString(Preamble)
	sb.WriteString("\n\\begin{tikzpicture}\n")
	sb.WriteString("  \\begin{axis}[\n")
	sb.WriteString("    domain=" + formatFloat(fn.Domain.Low) + ":" + formatFloat(fn.Domain.High) +
		", samples=" + strconv.Itoa(opts.Samples) + ",\n")
	writeAxisOptions(&sb, opts)
	sb.WriteString("  ]\n")
	sb.WriteString("    \\addplot [" + plotStyle(opts, opts.Smooth) + "] { " + expr.PGF(fn.Tree) + " };\n")
	sb.WriteString("  \\end{axis}\n")
	sb.WriteString("\\end{tikzpicture}\n")
	return sb.String()
}

func coordinateDocument(coords *Coordinates, opts Options) string {
	pairs := make([]string, len(coords.Points))
	for i, p := range coords.Points {
		pairs[i] = "(" + formatFloat(p.X) + "," + formatFloat(p.Y) + ")"
	}

	var sb strings.Builder
	sb.WriteString(Preamble)
	sb.WriteString("\n\\begin{tikzpicture}\n")
	sb.WriteString("  \\begin{axis}[\n")
	writeAxisOptions(&sb, opts)
	sb.WriteString("  ]\n")
	sb.WriteString("    \\addplot [" + plotStyle(opts, false) + "] coordinates {" +
		strings.Join(pairs, " ") + "};\n")
	sb.WriteString("  \\end{axis}\n")
	sb.WriteString("\\end{tikzpicture}\n")
	return sb.String()
}

func writeAxisOptions(sb *strings.Builder, opts Options) {
	sb.WriteString("    axis lines=middle,\n")
	sb.WriteString("    xlabel={" + latex.Escape(opts.XLabel) + "}, ylabel={" + latex.Escape(opts.YLabel) + "},\n")
	if opts.Grid {
		sb.WriteString("    grid=major,\n")
	} else {
		sb.WriteString("    grid=none,\n")
	}
	sb.WriteString("    enlargelimits=true\n")
}

func plotStyle(opts Options, smooth bool) string {
	parts := make([]string, 0, 3)
	if smooth {
		parts = append(parts, "smooth")
	}
	parts = append(parts, "thick", latex.Escape(opts.Color))
	return strings.Join(parts, ", ")
}

// formatFloat renders coordinates and bounds with a dot decimal point and
// no thousands separators, independent of locale.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
