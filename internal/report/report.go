// SPDX-License-Identifier: MIT

// Package report renders solved cargo plans as plain console text.
//
// Section titles are styled with lipgloss through a renderer bound to the
// output writer, so nothing but the text itself reaches a pipe or a file.
// Write errors are sticky: the first one stops further output and is returned
// by Err.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/cargolp/cargo"
	"github.com/katalvlaran/cargolp/simplex"
)

// cellFormat is the fixed-width format of one tableau entry.
const cellFormat = "%8.2f"

// Writer prints report sections to an io.Writer.
type Writer struct {
	w     io.Writer
	err   error
	title lipgloss.Style
	bad   lipgloss.Style
	good  lipgloss.Style
}

// Option configures a Writer.
type Option func(*options)

type options struct {
	color bool
}

// WithColor(false) strips all styling. Otherwise the renderer picks a color
// profile from the terminal attached to the writer (none for pipes and files).
func WithColor(on bool) Option {
	return func(o *options) { o.color = on }
}

// New returns a Writer printing to w.
func New(w io.Writer, opts ...Option) *Writer {
	cfg := options{color: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := lipgloss.NewRenderer(w)
	if !cfg.color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Writer{
		w:     w,
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00AFFF")),
		good:  r.NewStyle().Foreground(lipgloss.Color("#00FF99")),
		bad:   r.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
	}
}

// Err returns the first write error, if any.
func (r *Writer) Err() error { return r.err }

func (r *Writer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// Title prints a styled section heading.
func (r *Writer) Title(s string) {
	r.printf("%s\n", r.title.Render(s))
}

// Tableau prints every row of t, one fixed-width cell per column.
func (r *Writer) Tableau(t *simplex.Tableau) {
	var (
		i, j  int
		row   []float64
		err   error
		cells []string
	)
	for i = 0; i < t.Rows(); i++ {
		if row, err = t.Row(i); err != nil {
			r.err = err
			return
		}
		cells = cells[:0]
		for j = range row {
			cells = append(cells, fmt.Sprintf(cellFormat, row[j]))
		}
		r.printf("%s\n", strings.Join(cells, " "))
	}
}

// Pivot prints one pivot event: a heading and the tableau after the pivot.
func (r *Writer) Pivot(ev simplex.PivotEvent) {
	r.Title(fmt.Sprintf("Iteration %d:", ev.Iteration))
	r.printf("Entering column %d, pivot row %d\n", ev.Entering, ev.Leaving)
	if ev.Tableau != nil {
		r.Tableau(ev.Tableau)
	}
}

// Distribution prints, per bin, the resources carried in it.
func (r *Writer) Distribution(p cargo.Plan) {
	r.Title("Optimal distribution by compartment:")
	var (
		bins = p.Bins()
		j    int
		a    cargo.Allocation
	)
	for j = range bins {
		r.printf("%s:\n", bins[j].Name)
		contents := p.BinContents(j)
		if len(contents) == 0 {
			r.printf("    no cargo\n")
			continue
		}
		for _, a = range contents {
			r.printf("    %s: %.2f\n", a.Resource.Name, a.Quantity)
		}
	}
}

// Profit prints the objective of p.
func (r *Writer) Profit(p cargo.Plan) {
	r.printf("Maximum profit: %.2f\n", p.Objective())
}

// Delta prints the objective change between two plans.
func (r *Writer) Delta(d cargo.Delta) {
	r.printf("Profit change: %.2f\n", d.Change)
}

// Assessment prints one profitability verdict per resource.
func (r *Writer) Assessment(as []cargo.Assessment) {
	r.Title("Profitability by cargo:")
	var a cargo.Assessment
	for _, a = range as {
		switch {
		case a.Used:
			r.printf("%s: %s\n", a.Resource.Name, r.good.Render("profitable to carry"))
		case a.HasIncrease:
			r.printf("%s: %s, raise the unit price by at least %.2f\n",
				a.Resource.Name, r.bad.Render("not profitable"), a.RequiredIncrease)
		default:
			r.printf("%s: not transported\n", a.Resource.Name)
		}
	}
}

// Plan prints the distribution and profit of p.
func (r *Writer) Plan(p cargo.Plan) {
	r.Distribution(p)
	r.Profit(p)
}
