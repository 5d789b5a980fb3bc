// Package tui implements the interactive prompt sequence as a Bubble Tea
// wizard: choose mode, enter the expression or point list, domain, labels,
// color and grid, preview, then emit the document. Validation failures keep
// the wizard on the current step with the error shown; they never exit.
package tui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/tikzgen/internal/config"
	"github.com/san-kum/tikzgen/internal/expr"
	"github.com/san-kum/tikzgen/internal/plot"
	"github.com/san-kum/tikzgen/internal/preview"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

type step int

const (
	stepMode step = iota
	stepExpression
	stepCoordinates
	stepDomainLow
	stepDomainHigh
	stepXLabel
	stepYLabel
	stepColor
	stepGrid
	stepConfirm
)

type model struct {
	step   step
	cursor int
	buf    string
	errMsg string

	defaults *config.Config

	// collected inputs
	functionMode bool
	source       string
	tree         expr.Node
	points       []plot.Point
	lowText      string
	domain       plot.Domain
	opts         plot.Options

	document string
	done     bool
}

func newWizard(cfg *config.Config) model {
	return model{
		defaults: cfg,
		opts: plot.Options{
			XLabel:  cfg.XLabel,
			YLabel:  cfg.YLabel,
			Color:   cfg.Color,
			Grid:    cfg.Grid,
			Samples: cfg.Samples,
			Smooth:  cfg.Smooth,
		},
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.step {
	case stepMode:
		return m.modeKey(key)
	case stepGrid:
		return m.gridKey(key)
	case stepConfirm:
		return m.confirmKey(key)
	default:
		return m.textKey(key)
	}
}

func (m model) modeKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < 1 {
			m.cursor++
		}
	case "1":
		m.cursor = 0
	case "2":
		m.cursor = 1
	case "enter", " ":
		m.functionMode = m.cursor == 0
		m.errMsg = ""
		m.buf = ""
		if m.functionMode {
			m.step = stepExpression
		} else {
			m.step = stepCoordinates
		}
	}
	return m, nil
}

func (m model) gridKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y", "Y":
		m.opts.Grid = true
		m.step = stepConfirm
	case "n", "N":
		m.opts.Grid = false
		m.step = stepConfirm
	case "enter":
		m.step = stepConfirm
	case "esc":
		m.step = stepColor
		m.buf = m.opts.Color
	}
	m.errMsg = ""
	return m, nil
}

func (m model) confirmKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y", "Y", "enter":
		doc, err := plot.Document(m.request(), m.opts)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.document = doc
		m.done = true
		return m, tea.Quit
	case "n", "N", "esc":
		m.step = stepMode
		m.cursor = 0
		m.errMsg = ""
	}
	return m, nil
}

// textKey edits the buffer for the free-text steps and validates the field
// on enter. Invalid input keeps the step and shows the error.
func (m model) textKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter":
		return m.submit()
	case "esc":
		m.back()
		return m, nil
	case "backspace":
		if len(m.buf) > 0 {
			m.buf = m.buf[:len(m.buf)-1]
		}
		return m, nil
	default:
		if key.Type == tea.KeyRunes {
			m.buf += string(key.Runes)
		} else if key.Type == tea.KeySpace {
			m.buf += " "
		}
		return m, nil
	}
}

func (m *model) back() {
	m.errMsg = ""
	switch m.step {
	case stepExpression, stepCoordinates:
		m.step = stepMode
	case stepDomainLow:
		m.step = stepExpression
		m.buf = m.source
	case stepDomainHigh:
		m.step = stepDomainLow
		m.buf = m.lowText
	case stepXLabel:
		if m.functionMode {
			m.step = stepDomainHigh
		} else {
			m.step = stepCoordinates
		}
		m.buf = ""
	case stepYLabel:
		m.step = stepXLabel
		m.buf = m.opts.XLabel
	case stepColor:
		m.step = stepYLabel
		m.buf = m.opts.YLabel
	}
}

func (m model) submit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.buf)
	switch m.step {
	case stepExpression:
		tree, err := expr.Parse(input)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.source = input
		m.tree = tree
		m.step = stepDomainLow
		m.buf = fmt.Sprintf("%g", m.defaults.DomainLow)
	case stepCoordinates:
		points, err := plot.ParseCoordinates(input)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.points = points
		m.step = stepXLabel
		m.buf = m.defaults.XLabel
	case stepDomainLow:
		m.lowText = input
		m.step = stepDomainHigh
		m.buf = fmt.Sprintf("%g", m.defaults.DomainHigh)
	case stepDomainHigh:
		domain, err := plot.ParseDomain(m.lowText, input)
		if err != nil {
			m.errMsg = err.Error()
			m.step = stepDomainLow
			m.buf = m.lowText
			return m, nil
		}
		m.domain = domain
		m.step = stepXLabel
		m.buf = m.defaults.XLabel
	case stepXLabel:
		if input == "" {
			m.errMsg = "x label must not be empty"
			return m, nil
		}
		m.opts.XLabel = input
		m.step = stepYLabel
		m.buf = m.defaults.YLabel
	case stepYLabel:
		if input == "" {
			m.errMsg = "y label must not be empty"
			return m, nil
		}
		m.opts.YLabel = input
		m.step = stepColor
		m.buf = m.defaults.Color
	case stepColor:
		if input == "" {
			m.errMsg = "color must not be empty"
			return m, nil
		}
		m.opts.Color = input
		m.step = stepGrid
		m.buf = ""
	}
	m.errMsg = ""
	return m, nil
}

func (m model) request() plot.Request {
	if m.functionMode {
		return plot.Request{Function: &plot.Function{
			Source: m.source,
			Tree:   m.tree,
			Domain: m.domain,
		}}
	}
	return plot.Request{Coordinates: &plot.Coordinates{Points: m.points}}
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("          " + cyan.Render("t i k z g e n") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	switch m.step {
	case stepMode:
		b.WriteString("      " + white.Render("choose input type") + "\n\n")
		choices := []string{"equation in x  (e.g. x^2 + sin(x))", "list of (x,y) coordinates"}
		for i, choice := range choices {
			if i == m.cursor {
				b.WriteString("      " + cyan.Render("▸ ") + white.Render(choice) + "\n")
			} else {
				b.WriteString("        " + dim.Render(choice) + "\n")
			}
		}
		b.WriteString("\n" + dim.Render("      ↑↓ select   enter continue   q quit") + "\n")
	case stepConfirm:
		b.WriteString(m.viewConfirm())
	default:
		b.WriteString(m.viewText())
	}

	if m.errMsg != "" {
		b.WriteString("\n      " + red.Render(m.errMsg) + "\n")
	}
	return b.String()
}

func (m model) viewText() string {
	prompts := map[step]string{
		stepExpression:  "enter your equation (e.g. x^2 + sin(x))",
		stepCoordinates: "enter coordinates as x,y pairs separated by semicolons (e.g. 0,0; 1,2; 2,1)",
		stepDomainLow:   "x-min of the plotting domain",
		stepDomainHigh:  "x-max of the plotting domain",
		stepXLabel:      "x-axis label",
		stepYLabel:      "y-axis label",
		stepColor:       "curve color (named or RGB)",
		stepGrid:        "show grid? (y/n)",
	}
	var b strings.Builder
	b.WriteString("      " + white.Render(prompts[m.step]) + "\n\n")
	if m.step == stepGrid {
		state := "y"
		if !m.opts.Grid {
			state = "n"
		}
		b.WriteString("      " + cyan.Render("▸ ") + white.Render(state) + "\n")
		b.WriteString("\n" + dim.Render("      y/n choose   enter keep   esc back") + "\n")
		return b.String()
	}
	b.WriteString("      " + cyan.Render("▸ ") + white.Render(m.buf+"▋") + "\n")
	b.WriteString("\n" + dim.Render("      enter confirm   esc back") + "\n")
	return b.String()
}

func (m model) viewConfirm() string {
	var b strings.Builder
	b.WriteString("      " + white.Render("preview") + "\n\n")
	if m.functionMode {
		graph := preview.Function(m.tree, m.domain, m.source)
		b.WriteString(indent(graph, "   ") + "\n\n")
		b.WriteString("      " + dim.Render(fmt.Sprintf("domain %g:%g   samples %d   color %s",
			m.domain.Low, m.domain.High, m.opts.Samples, m.opts.Color)) + "\n")
	} else {
		graph := preview.Coordinates(m.points, fmt.Sprintf("%d points", len(m.points)))
		b.WriteString(indent(graph, "   ") + "\n\n")
		b.WriteString("      " + dim.Render(fmt.Sprintf("points %d   color %s", len(m.points), m.opts.Color)) + "\n")
	}
	b.WriteString("\n      " + green.Render("generate the TikZ code?") + "\n")
	b.WriteString("\n" + dim.Render("      y generate   n start over   ctrl+c quit") + "\n")
	return b.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// Run starts the wizard and, on completion, prints the generated document
// to stdout or writes it to outPath when non-empty.
func Run(cfg *config.Config, outPath string) error {
	p := tea.NewProgram(newWizard(cfg))
	final, err := p.Run()
	if err != nil {
		return err
	}
	m, ok := final.(model)
	if !ok || !m.done {
		return nil
	}
	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(m.document), 0644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		fmt.Printf("wrote %s\n", outPath)
		return nil
	}
	fmt.Println("\nCopy the following TikZ/PGFPlots code:")
	fmt.Println()
	fmt.Println(m.document)
	return nil
}
