package pdf

import (
	"strings"

	"github.com/invoicing-microservice/smartinvoice/pkg/invoice"
)

// creativeAgencyLayout is a bold poster-style page: diagonal color blocks in
// the top-right corner, no table rules and an oversized total.
func creativeAgencyLayout(w, h float64) *Layout {
	const m = 20.0
	right := w - m

	return &Layout{
		Name:        string(invoice.ThemeCreativeAgency),
		Header:      creativeAgencyHeader,
		Specialized: SectionGap{After: 20},
		Table: TableStyle{
			HeaderRule:  &rule{Offset: 2, X1: m, X2: right, Color: fixed(gray(230)), Width: 0.5},
			HeaderFont:  fontSpec{familySans, styleBold, 8},
			HeaderColor: fixed(gray(150)),
			Labels:      [4]string{"ITEM DESCRIPTION", "QTY", "RATE", "AMOUNT"},
			DescX:       m,
			QtyX:        right - 80,
			RateX:       right - 40,
			AmountX:     right,
			DescWidth:   100,
			BodyTop:     15,
			MinRow:      10,
			LineHeight:  5,
			RowPad:      8,
			DescFont:    fontSpec{familySans, styleBold, 10},
			ValueFont:   fontSpec{familySans, styleNormal, 10},
			AmountFont:  fontSpec{familySans, styleBold, 10},
			DescColor:   fixed(black),
			ValueColor:  fixed(gray(80)),
			AmountColor: fixed(black),
			Border:      rowBorder{Kind: borderSeparator, X1: m, X2: right, Offset: -5, Color: fixed(gray(245)), Width: 0.2},
		},
		Totals: TotalsStyle{
			Lead:            10,
			Step:            8,
			LabelX:          right - 60,
			ValueX:          right,
			LabelAlign:      AlignRight,
			LabelFont:       fontSpec{familySans, styleNormal, 9},
			ValueFont:       fontSpec{familySans, styleNormal, 9},
			LabelColor:      fixed(gray(100)),
			ValueColor:      fixed(black),
			Subtotal:        "Subtotal",
			Tax:             "Tax ({rate}%)",
			Discount:        "Discount ({rate}%)",
			Emphasis:        emphasisLarge,
			Gap:             17,
			Reserve:         25,
			GrandLabel:      "TOTAL DUE",
			GrandLabelX:     right,
			GrandLabelAlign: AlignRight,
			GrandLabelDY:    -12,
			GrandLabelFont:  fontSpec{familySans, styleBold, 10},
			GrandLabelColor: fixed(gray(80)),
			GrandValueX:     right,
			GrandValueFont:  fontSpec{familySans, styleBold, 28},
			GrandValueColor: primary,
		},
		Footer: creativeAgencyFooter,
	}
}

func creativeAgencyHeader(r *renderer) float64 {
	const m = 20.0
	right := r.pageW - m
	d := r.doc

	r.s.SetFillColor(r.colors.Primary)
	r.s.Triangle(r.pageW, 0, r.pageW, 120, r.pageW*0.4, 0, StyleFill)
	r.s.SetFillColor(r.colors.Accent)
	r.s.SetAlpha(0.8)
	r.s.Triangle(r.pageW, 0, r.pageW, 60, r.pageW*0.7, 0, StyleFill)
	r.s.SetAlpha(1)

	y := 30.0
	r.font(familySans, styleBold, 24)
	r.s.SetTextColor(black)
	r.text(m, y, r.company())

	y += 8
	r.font(familySans, styleNormal, 8)
	r.s.SetTextColor(gray(110))
	r.text(m, y, strings.ToUpper(joinPresent("  |  ", d.CompanyAddress, d.CompanyEmail, d.CompanyWebsite)))

	label := TypeLabel(r.typ())
	r.fitFont(label, familySans, styleBold, 42, r.pageW*0.55)
	r.s.SetTextColor(r.labelColor(white))
	r.textRight(right, 35, label)

	r.watermark(familySans)

	y += 40
	rightCol := r.pageW * 0.6

	r.font(familySans, styleBold, 8)
	r.s.SetTextColor(r.colors.Primary)
	r.text(m, y, "PREPARED FOR")

	r.font(familySans, styleBold, 14)
	r.s.SetTextColor(black)
	r.text(m, y+8, d.ClientName)

	r.font(familySans, styleNormal, 9)
	r.s.SetTextColor(gray(80))
	r.text(m, y+14, d.ClientCompany)
	r.text(m, y+19, d.ClientEmail)
	if d.ClientAddress != "" {
		r.lines(m, y+24, r.wrap(d.ClientAddress, 80))
	}

	meta := []Field{
		{"NUMBER", d.InvoiceNumber},
		{"DATE", invoice.FormatShort(d.Date)},
		{"DUE", invoice.FormatShort(d.DueDate)},
	}
	for i, row := range meta {
		ry := y + float64(i)*12
		r.font(familySans, styleBold, 8)
		r.s.SetTextColor(r.colors.Primary)
		r.text(rightCol, ry, row.Label)
		r.font(familySans, styleBold, 10)
		r.s.SetTextColor(black)
		r.text(rightCol+30, ry, row.Value)
	}

	return y + 60
}

func creativeAgencyFooter(r *renderer, _ float64) {
	const m = 20.0

	r.font(familySans, styleNormal, 8)
	r.s.SetTextColor(gray(110))
	r.text(m, r.pageH-28, r.terms(defaultTermsNet))

	r.font(familySans, styleBold, 8)
	r.s.SetTextColor(r.colors.Primary)
	r.text(m, r.pageH-20, "DESIGNED FOR SUCCESS")

	r.font(familySans, styleNormal, 8)
	r.s.SetTextColor(gray(150))
	r.poweredBy(r.pageW-m, r.pageH-20, AlignRight)
}
