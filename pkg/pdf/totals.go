package pdf

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

type emphasis int

const (
	// emphasisLarge prints the grand total in a bigger face.
	emphasisLarge emphasis = iota
	// emphasisRule separates the grand total with a short colored rule.
	emphasisRule
	// emphasisBoxed closes a framed summary with a divider above the total.
	emphasisBoxed
	// emphasisBar prints the grand total on a filled bar.
	emphasisBar
)

// frame outlines a boxed summary. Its height grows to cover every line.
type frame struct {
	X, W  float64
	Top   float64 // below the incoming cursor
	Pad   float64 // below the grand total baseline
	MinH  float64
	Color paint
	Width float64
	Inset float64 // first baseline below the frame top
}

// bar is the filled strip behind an emphasisBar total, placed relative to
// the grand total baseline.
type bar struct {
	X, W, Rise, H float64
	Fill          paint
}

// TotalsStyle positions the rollup block of one layout. Tax and discount
// labels may contain {rate}, replaced by the corresponding rate.
type TotalsStyle struct {
	Lead    float64 // first baseline below the incoming cursor
	TopRule *rule   // relative to the incoming cursor
	Frame   *frame

	Step           float64
	LabelX, ValueX float64
	LabelAlign     Align
	LabelFont      fontSpec
	ValueFont      fontSpec
	LabelColor     paint
	ValueColor     paint

	Subtotal, Tax, Discount string

	Emphasis emphasis
	// Gap is the distance from the last rollup baseline to the grand total.
	Gap float64
	// Reserve is the least distance from the first rollup baseline to the
	// grand total.
	Reserve float64

	GrandRule       *rule // relative to the last rollup baseline
	GrandBar        *bar
	GrandLabel      string
	GrandLabelX     float64
	GrandLabelAlign Align
	GrandLabelDY    float64
	GrandLabelFont  fontSpec
	GrandLabelColor paint
	GrandValueX     float64
	GrandValueFont  fontSpec
	GrandValueColor paint
}

type rollupLine struct {
	label string
	value string
}

// rollup lists the subtotal plus tax and discount when positive.
func (r *renderer) rollup(t *TotalsStyle) []rollupLine {
	d := r.doc
	out := []rollupLine{{t.Subtotal, r.money(d.Subtotal)}}
	if d.TaxAmount.GreaterThan(decimal.Zero) {
		out = append(out, rollupLine{withRate(t.Tax, d.TaxRate), r.money(d.TaxAmount)})
	}
	if d.DiscountAmount.GreaterThan(decimal.Zero) {
		out = append(out, rollupLine{withRate(t.Discount, d.DiscountRate), "-" + r.money(d.DiscountAmount)})
	}
	return out
}

func withRate(label string, rate decimal.Decimal) string {
	return strings.ReplaceAll(label, "{rate}", rate.String())
}

// totals draws the rollup and the emphasized grand total, returning the
// grand total baseline.
func (r *renderer) totals(t *TotalsStyle, y float64) float64 {
	r.rule(t.TopRule, y)

	first := y + t.Lead
	if t.Frame != nil {
		first = y + t.Frame.Top + t.Frame.Inset
	}

	lines := r.rollup(t)
	last := first
	for i, l := range lines {
		ly := first + float64(i)*t.Step
		r.useFont(t.LabelFont)
		r.ink(t.LabelColor)
		r.aligned(t.LabelX, ly, l.label, t.LabelAlign)
		r.useFont(t.ValueFont)
		r.ink(t.ValueColor)
		r.textRight(t.ValueX, ly, l.value)
		last = ly
	}

	grand := math.Max(last+t.Gap, first+t.Reserve)

	switch t.Emphasis {
	case emphasisRule:
		r.rule(t.GrandRule, last)
	case emphasisBoxed:
		f := t.Frame
		top := y + f.Top
		h := math.Max(f.MinH, grand+f.Pad-top)
		r.stroke(f.Color)
		r.s.SetLineWidth(f.Width)
		r.s.Rect(f.X, top, f.W, h, StyleStroke)
		r.rule(t.GrandRule, last)
	case emphasisBar:
		b := t.GrandBar
		r.fill(b.Fill)
		r.s.Rect(b.X, grand-b.Rise, b.W, b.H, StyleFill)
	}

	r.useFont(t.GrandLabelFont)
	r.ink(t.GrandLabelColor)
	r.aligned(t.GrandLabelX, grand+t.GrandLabelDY, t.GrandLabel, t.GrandLabelAlign)
	r.useFont(t.GrandValueFont)
	r.ink(t.GrandValueColor)
	r.textRight(t.GrandValueX, grand, r.money(r.doc.Amount))
	return grand
}
