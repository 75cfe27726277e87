package pdf

import "github.com/invoicing-microservice/smartinvoice/pkg/invoice"

// SectionGap places the specialized section relative to the cursor the
// header hands back.
type SectionGap struct {
	Lead  float64 // cursor to section start when the section is drawn
	Skip  float64 // cursor advance for sales documents
	After float64 // extra space below a drawn section
}

func (g SectionGap) place(r *renderer, y float64) float64 {
	if r.typ() == invoice.TypeSales {
		return y + g.Skip
	}
	return r.specializedSection(y+g.Lead) + g.After
}

// Layout is the style descriptor of one visual theme. Header draws the
// company block, type label, watermark and parties, and returns the anchor
// the specialized section is placed from. Footer receives the grand total
// baseline.
type Layout struct {
	Name string

	Header      func(r *renderer) float64
	Specialized SectionGap
	Table       TableStyle
	Totals      TotalsStyle
	Footer      func(r *renderer, y float64)
}

func (l *Layout) render(r *renderer) {
	y := l.Header(r)
	y = l.Specialized.place(r, y)
	y = r.itemsTable(&l.Table, y)
	y = r.totals(&l.Totals, y)
	r.paymentBlock()
	l.Footer(r, y)
}

// poweredBy draws the attribution line unless the document is white-label.
func (r *renderer) poweredBy(x, y float64, a Align) {
	if r.doc.WhiteLabelMode {
		return
	}
	r.aligned(x, y, poweredBy, a)
}

// LayoutFor builds the layout descriptor for theme on a w×h page. Themes
// without a layout of their own use the microsoft layout.
func LayoutFor(theme invoice.Theme, w, h float64) *Layout {
	switch theme {
	case invoice.ThemeUltraLuxury:
		return ultraLuxuryLayout(w, h)
	case invoice.ThemeAmazon:
		return amazonLayout(w, h)
	case invoice.ThemeFinancial:
		return financialLayout(w, h)
	case invoice.ThemeCreativeAgency:
		return creativeAgencyLayout(w, h)
	case invoice.ThemeProfessionalServices:
		return professionalServicesLayout(w, h)
	}
	return microsoftLayout(w, h)
}
