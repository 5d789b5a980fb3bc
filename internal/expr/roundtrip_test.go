package expr_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/tikzgen/internal/expr"
)

// reparse turns an emitted pgfmath expression back into source grammar so
// it can be evaluated with the same evaluator: \x becomes x and ln becomes
// log. This only holds because the two grammars otherwise agree on the
// subset the translator emits.
func reparse(pgf string) (expr.Node, error) {
	src := strings.ReplaceAll(pgf, `\x`, "x")
	src = strings.ReplaceAll(src, "ln(", "log(")
	return expr.Parse(src)
}

var _ = Describe("translator round trip", func() {
	samples := []float64{-2.5, -1.0, -0.5, 0.25, 1.0, 2.0, 3.5}

	DescribeTable("evaluates to the same values as the source",
		func(input string) {
			tree, err := expr.Parse(input)
			Expect(err).NotTo(HaveOccurred())

			back, err := reparse(expr.PGF(tree))
			Expect(err).NotTo(HaveOccurred())

			for _, x := range samples {
				want := tree.Eval(x)
				got := back.Eval(x)
				if isFinite(want) {
					Expect(got).To(BeNumerically("~", want, 1e-9), "at x=%g", x)
				}
			}
		},
		Entry("quadratic plus sine", "x^2 + sin(x)"),
		Entry("root minus linear", "sqrt(x) - 3*x"),
		Entry("gaussian", "exp(-x^2)"),
		Entry("rational", "1/(1 + x^2)"),
		Entry("implicit products", "2x(x+1)"),
		Entry("nested powers", "x^2^3"),
		Entry("constants", "pi*cos(x) + e"),
		Entry("logarithm", "log(abs(x) + 1)"),
	)

	It("preserves the distinction between (x+1)^2 and x+1^2", func() {
		grouped, err := expr.Parse("(x+1)^2")
		Expect(err).NotTo(HaveOccurred())
		flat, err := expr.Parse("x+1^2")
		Expect(err).NotTo(HaveOccurred())

		Expect(grouped.Eval(2)).To(BeNumerically("==", 9))
		Expect(flat.Eval(2)).To(BeNumerically("==", 3))

		groupedOut := expr.PGF(grouped)
		flatOut := expr.PGF(flat)
		Expect(groupedOut).NotTo(Equal(flatOut))

		backGrouped, err := reparse(groupedOut)
		Expect(err).NotTo(HaveOccurred())
		backFlat, err := reparse(flatOut)
		Expect(err).NotTo(HaveOccurred())
		Expect(backGrouped.Eval(2)).To(BeNumerically("==", 9))
		Expect(backFlat.Eval(2)).To(BeNumerically("==", 3))
	})
})

func isFinite(v float64) bool {
	return v == v && v < 1e308 && v > -1e308
}
