package pdf

import "github.com/invoicing-microservice/smartinvoice/pkg/invoice"

var (
	ultraInk   = RGB{29, 29, 31}
	ultraMuted = RGB{134, 134, 139}
	ultraRule  = RGB{210, 210, 215}
)

// ultraLuxuryLayout is an airy single-column page: huge light company name,
// hairline separators and a large grand total.
func ultraLuxuryLayout(w, h float64) *Layout {
	const left = 20.0
	right := w - left
	qty, rate, amount := right-70, right-40, right

	return &Layout{
		Name:        string(invoice.ThemeUltraLuxury),
		Header:      ultraLuxuryHeader,
		Specialized: SectionGap{Lead: 40, Skip: 45},
		Table: TableStyle{
			Lead:           &rule{X1: left, X2: right, Color: fixed(ultraRule), Width: 0.5},
			Top:            10,
			HeaderRule:     &rule{Offset: 5, X1: left, X2: right, Color: fixed(ultraRule), Width: 0.5},
			HeaderFont:     fontSpec{familySans, styleBold, 10},
			HeaderColor:    fixed(ultraMuted),
			Labels:         [4]string{"DESCRIPTION", "QTY", "RATE", "AMOUNT"},
			DescX:          left,
			QtyX:           qty,
			RateX:          rate,
			AmountX:        amount,
			DescWidth:      qty - left - 10,
			BodyTop:        15,
			MinRow:         10,
			LineHeight:     6,
			DescFont:       fontSpec{familySans, styleNormal, 11},
			ValueFont:      fontSpec{familySans, styleNormal, 11},
			AmountFont:     fontSpec{familySans, styleNormal, 11},
			DescColor:      fixed(ultraInk),
			ValueColor:     fixed(ultraInk),
			AmountColor:    fixed(ultraInk),
			Currency:       true,
		},
		Totals: TotalsStyle{
			TopRule:         &rule{Offset: 5, X1: left, X2: right, Color: fixed(ultraRule), Width: 0.5},
			Lead:            20,
			Step:            8,
			LabelX:          rate,
			ValueX:          amount,
			LabelAlign:      AlignRight,
			LabelFont:       fontSpec{familySans, styleNormal, 11},
			ValueFont:       fontSpec{familySans, styleNormal, 11},
			LabelColor:      fixed(ultraMuted),
			ValueColor:      fixed(ultraInk),
			Subtotal:        "Subtotal",
			Tax:             "Tax ({rate}%)",
			Discount:        "Discount ({rate}%)",
			Emphasis:        emphasisLarge,
			Gap:             13,
			GrandLabel:      "Total",
			GrandLabelX:     rate - 10,
			GrandLabelAlign: AlignRight,
			GrandLabelFont:  fontSpec{familySans, styleBold, 24},
			GrandLabelColor: fixed(ultraInk),
			GrandValueX:     amount,
			GrandValueFont:  fontSpec{familySans, styleBold, 24},
			GrandValueColor: fixed(ultraInk),
		},
		Footer: func(r *renderer, y float64) { ultraLuxuryFooter(r, y, left, right) },
	}
}

func ultraLuxuryHeader(r *renderer) float64 {
	const startY, left = 40.0, 20.0
	right := r.pageW - left
	d := r.doc

	r.font(familySans, styleNormal, 48)
	r.s.SetTextColor(ultraInk)
	r.text(left, startY, r.company())

	r.font(familySans, styleNormal, 10)
	r.lines(left, startY+15, nonEmpty(d.CompanyAddress, d.CompanyEmail))

	invoiceY := startY + 40
	r.font(familySans, styleNormal, 24)
	r.s.SetTextColor(TypeColor(r.typ()))
	r.text(left, invoiceY, TypeLabel(r.typ()))

	r.font(familySans, styleNormal, 11)
	r.s.SetTextColor(ultraMuted)
	r.text(left, invoiceY+8, d.InvoiceNumber)

	r.watermark(familySans)

	line1Y := invoiceY + 20
	r.s.SetDrawColor(ultraRule)
	r.s.SetLineWidth(0.5)
	r.s.Line(left, line1Y, right, line1Y)

	section := line1Y + 15
	ultraCaption(r, left, section, "BILL TO")
	r.font(familySans, styleNormal, 11)
	r.s.SetTextColor(ultraInk)
	cy := section + 8
	r.text(left, cy, d.ClientName)
	cy += 6
	if d.ClientCompany != "" {
		r.text(left, cy, d.ClientCompany)
		cy += 6
	}
	r.text(left, cy, d.ClientEmail)
	if d.ClientAddress != "" {
		r.lines(left, cy+6, r.wrap(d.ClientAddress, 80))
	}

	col2 := left + 100
	ultraCaption(r, col2, section, "INVOICE DATE")
	r.font(familySans, styleNormal, 11)
	r.s.SetTextColor(ultraInk)
	r.text(col2, section+8, invoice.FormatLong(d.Date))
	ultraCaption(r, col2, section+20, "DUE DATE")
	r.font(familySans, styleNormal, 11)
	r.s.SetTextColor(ultraInk)
	r.text(col2, section+28, invoice.FormatLong(d.DueDate))

	return section
}

func ultraCaption(r *renderer, x, y float64, s string) {
	r.font(familySans, styleBold, 10)
	r.s.SetTextColor(ultraMuted)
	r.text(x, y, s)
}

func ultraLuxuryFooter(r *renderer, y, left, right float64) {
	footerY := y + 30
	r.s.SetDrawColor(ultraRule)
	r.s.SetLineWidth(0.5)
	r.s.Line(left, footerY, right, footerY)

	r.font(familySans, styleNormal, 10)
	r.s.SetTextColor(ultraMuted)
	r.text(left, footerY+10, r.doc.CompanyEmail)
	r.font(familySans, styleNormal, 9)
	r.text(left, footerY+16, r.terms(defaultTermsNet))

	r.font(familySans, styleNormal, 8)
	r.s.SetTextColor(gray(180))
	r.poweredBy(right, footerY+10, AlignRight)
}
