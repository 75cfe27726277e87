package pdf

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/invoicing-microservice/smartinvoice/pkg/invoice"
)

const (
	familySans  = "helvetica"
	familySerif = "times"

	styleNormal = ""
	styleBold   = "B"

	lineHeightFactor = 1.15
	ptPerMM          = 72 / 25.4

	poweredBy       = "Powered by SmartInvoice"
	defaultCompany  = "SmartInvoice"
	defaultTermsNet = "Payment Terms: Net 30 days"
)

type fontSpec struct {
	Family string
	Style  string
	Size   float64
}

// renderer carries the per-call drawing state. Nothing here outlives a
// single Generate call.
type renderer struct {
	s      Surface
	doc    *invoice.Invoice
	colors ColorScheme
	items  invoice.Items

	pageW, pageH float64
	size         float64
}

func (r *renderer) font(family, style string, size float64) {
	r.s.SetFont(family, style, size)
	r.size = size
}

func (r *renderer) useFont(f fontSpec) { r.font(f.Family, f.Style, f.Size) }

func (r *renderer) text(x, y float64, s string) {
	r.s.Text(x, y, s, TextOptions{})
}

func (r *renderer) textRight(x, y float64, s string) {
	r.s.Text(x, y, s, TextOptions{Align: AlignRight})
}

func (r *renderer) textCenter(x, y float64, s string) {
	r.s.Text(x, y, s, TextOptions{Align: AlignCenter})
}

func (r *renderer) aligned(x, y float64, s string, a Align) {
	r.s.Text(x, y, s, TextOptions{Align: a})
}

// lineHeight is the baseline distance between wrapped lines at the current size.
func (r *renderer) lineHeight() float64 {
	return r.size * lineHeightFactor / ptPerMM
}

// lines draws one run per line, stepping down by the current line height.
func (r *renderer) lines(x, y float64, lines []string) {
	lh := r.lineHeight()
	for i, l := range lines {
		r.text(x, y+float64(i)*lh, l)
	}
}

func (r *renderer) wrap(s string, width float64) []string {
	return wrapText(r.s.TextWidth, s, width)
}

// fitFont sets family/style at size, shrinking it until s fits in width.
func (r *renderer) fitFont(s, family, style string, size, width float64) {
	r.font(family, style, size)
	if w := r.s.TextWidth(s); w > width && w > 0 {
		r.font(family, style, size*width/w)
	}
}

func (r *renderer) money(d decimal.Decimal) string {
	return r.doc.Currency() + d.StringFixed(2)
}

func (r *renderer) typ() invoice.Type { return r.doc.InvoiceType.OrSales() }

// labelColor is the type color, or fallback for plain sales invoices.
func (r *renderer) labelColor(fallback RGB) RGB {
	if r.typ() == invoice.TypeSales {
		return fallback
	}
	return TypeColor(r.typ())
}

func (r *renderer) company() string {
	if r.doc.CompanyName != "" {
		return r.doc.CompanyName
	}
	return defaultCompany
}

func (r *renderer) terms(fallback string) string {
	if r.doc.Terms != "" {
		return r.doc.Terms
	}
	return fallback
}

// joinPresent joins the non-empty parts with sep.
func joinPresent(sep string, parts ...string) string {
	return strings.Join(nonEmpty(parts...), sep)
}

// nonEmpty drops empty strings, keeping order.
func nonEmpty(parts ...string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// paint picks a color from the palette in effect at draw time.
type paint func(ColorScheme) RGB

func fixed(c RGB) paint { return func(ColorScheme) RGB { return c } }

func primary(cs ColorScheme) RGB { return cs.Primary }

func (r *renderer) fill(p paint)   { r.s.SetFillColor(p(r.colors)) }
func (r *renderer) ink(p paint)    { r.s.SetTextColor(p(r.colors)) }
func (r *renderer) stroke(p paint) { r.s.SetDrawColor(p(r.colors)) }

// rule is a horizontal line Offset below a reference cursor.
type rule struct {
	Offset float64
	X1, X2 float64
	Color  paint
	Width  float64
}

func (r *renderer) rule(ru *rule, y float64) {
	if ru == nil {
		return
	}
	r.stroke(ru.Color)
	r.s.SetLineWidth(ru.Width)
	r.s.Line(ru.X1, y+ru.Offset, ru.X2, y+ru.Offset)
}
