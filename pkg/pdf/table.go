package pdf

import "math"

// band is the rectangle behind a table header row.
type band struct {
	X, W, H float64
	Fill    paint // nil: not filled
	Stroke  paint // nil: not outlined
	Width   float64
}

type borderKind int

const (
	borderNone borderKind = iota
	// borderSides draws left and right edges plus a bottom edge per row.
	borderSides
	// borderBox outlines each row as its own rectangle.
	borderBox
	// borderSeparator draws one line Offset from the row's bottom edge.
	borderSeparator
)

type rowBorder struct {
	Kind   borderKind
	X1, X2 float64
	Offset float64
	Color  paint
	Width  float64
}

// TableStyle positions the items table of one layout. All vertical offsets
// are relative to the table top, which sits Top below the incoming cursor.
type TableStyle struct {
	Lead *rule // drawn relative to the incoming cursor, before Top applies
	Top  float64

	Band           *band
	HeaderRule     *rule
	HeaderBaseline float64
	HeaderFont     fontSpec
	HeaderColor    paint
	Labels         [4]string

	DescX, QtyX, RateX, AmountX float64
	DescWidth                   float64

	BodyTop    float64
	TextOffset float64
	MinRow     float64
	LineHeight float64
	RowPad     float64

	DescFont, ValueFont, AmountFont    fontSpec
	DescColor, ValueColor, AmountColor paint
	// Currency prefixes rate and amount cells with the currency symbol.
	Currency bool

	Border rowBorder
}

// RowHeight is the vertical space a row whose description wraps to n lines
// occupies.
func (t *TableStyle) RowHeight(n int) float64 {
	return math.Max(t.MinRow, float64(n)*t.LineHeight+t.RowPad)
}

// itemsTable draws the header and one variable-height row per item,
// returning the cursor below the last row.
func (r *renderer) itemsTable(t *TableStyle, y float64) float64 {
	r.rule(t.Lead, y)
	top := y + t.Top

	if b := t.Band; b != nil {
		style := ""
		if b.Fill != nil {
			r.fill(b.Fill)
			style += StyleFill
		}
		if b.Stroke != nil {
			r.stroke(b.Stroke)
			r.s.SetLineWidth(b.Width)
			style += StyleStroke
		}
		r.s.Rect(b.X, top, b.W, b.H, style)
	}
	r.rule(t.HeaderRule, top)

	r.useFont(t.HeaderFont)
	r.ink(t.HeaderColor)
	hy := top + t.HeaderBaseline
	r.text(t.DescX, hy, t.Labels[0])
	r.textRight(t.QtyX, hy, t.Labels[1])
	r.textRight(t.RateX, hy, t.Labels[2])
	r.textRight(t.AmountX, hy, t.Labels[3])

	cur := top + t.BodyTop
	for _, it := range r.items {
		r.useFont(t.DescFont)
		lines := r.wrap(it.Description, t.DescWidth)
		h := t.RowHeight(len(lines))

		r.rowBorder(&t.Border, cur, h)

		ty := cur + t.TextOffset
		r.ink(t.DescColor)
		r.lines(t.DescX, ty, lines)

		rate, amount := it.Rate.StringFixed(2), it.Amount.StringFixed(2)
		if t.Currency {
			rate, amount = r.money(it.Rate), r.money(it.Amount)
		}
		r.useFont(t.ValueFont)
		r.ink(t.ValueColor)
		r.textRight(t.QtyX, ty, it.Quantity.String())
		r.textRight(t.RateX, ty, rate)
		r.useFont(t.AmountFont)
		r.ink(t.AmountColor)
		r.textRight(t.AmountX, ty, amount)

		cur += h
		if t.Border.Kind == borderSeparator {
			r.stroke(t.Border.Color)
			r.s.SetLineWidth(t.Border.Width)
			r.s.Line(t.Border.X1, cur+t.Border.Offset, t.Border.X2, cur+t.Border.Offset)
		}
	}
	return cur
}

func (r *renderer) rowBorder(b *rowBorder, y, h float64) {
	switch b.Kind {
	case borderSides:
		r.stroke(b.Color)
		r.s.SetLineWidth(b.Width)
		r.s.Line(b.X1, y, b.X1, y+h)
		r.s.Line(b.X2, y, b.X2, y+h)
		r.s.Line(b.X1, y+h, b.X2, y+h)
	case borderBox:
		r.stroke(b.Color)
		r.s.SetLineWidth(b.Width)
		r.s.Rect(b.X1, y, b.X2-b.X1, h, StyleStroke)
	}
}
