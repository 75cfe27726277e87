package pdf

import "github.com/invoicing-microservice/smartinvoice/pkg/invoice"

// professionalServicesLayout is a navy-banded consulting statement with a
// meta box, an amount-due callout and a filled total bar.
func professionalServicesLayout(w, h float64) *Layout {
	const m = 20.0
	right := w - m

	return &Layout{
		Name:        string(invoice.ThemeProfessionalServices),
		Header:      professionalServicesHeader,
		Specialized: SectionGap{},
		Table: TableStyle{
			Top:            10,
			Band:           &band{X: m, W: right - m, H: 8, Fill: primary},
			HeaderBaseline: 6,
			HeaderFont:     fontSpec{familySans, styleBold, 9},
			HeaderColor:    fixed(white),
			Labels:         [4]string{"SERVICE DESCRIPTION", "QTY", "RATE", "TOTAL"},
			DescX:          m + 5,
			QtyX:           right - 50,
			RateX:          right - 30,
			AmountX:        right - 5,
			DescWidth:      100,
			BodyTop:        15,
			MinRow:         8,
			LineHeight:     5,
			RowPad:         4,
			DescFont:       fontSpec{familySans, styleNormal, 10},
			ValueFont:      fontSpec{familySans, styleNormal, 10},
			AmountFont:     fontSpec{familySans, styleNormal, 10},
			DescColor:      fixed(black),
			ValueColor:     fixed(black),
			AmountColor:    fixed(black),
			Border:         rowBorder{Kind: borderSeparator, X1: m, X2: right, Offset: -2, Color: fixed(gray(240)), Width: 0.5},
		},
		Totals: TotalsStyle{
			Lead:            10,
			Step:            6,
			LabelX:          right - 50,
			ValueX:          right - 5,
			LabelAlign:      AlignRight,
			LabelFont:       fontSpec{familySans, styleBold, 10},
			ValueFont:       fontSpec{familySans, styleBold, 10},
			LabelColor:      fixed(black),
			ValueColor:      fixed(black),
			Subtotal:        "Subtotal:",
			Tax:             "Tax ({rate}%):",
			Discount:        "Discount ({rate}%):",
			Emphasis:        emphasisBar,
			Gap:             8,
			GrandBar:        &bar{X: right - 60, W: 60, Rise: 6, H: 8, Fill: primary},
			GrandLabel:      "TOTAL DUE:",
			GrandLabelX:     right - 35,
			GrandLabelAlign: AlignRight,
			GrandLabelFont:  fontSpec{familySans, styleBold, 10},
			GrandLabelColor: fixed(white),
			GrandValueX:     right - 5,
			GrandValueFont:  fontSpec{familySans, styleBold, 10},
			GrandValueColor: fixed(white),
		},
		Footer: professionalServicesFooter,
	}
}

func professionalServicesHeader(r *renderer) float64 {
	const m = 20.0
	right := r.pageW - m
	d := r.doc

	r.s.SetFillColor(r.colors.Primary)
	r.s.Rect(0, 0, r.pageW, 18, StyleFill)
	r.s.SetFillColor(r.colors.Accent)
	r.s.Rect(0, 18, r.pageW, 1, StyleFill)

	y := 40.0
	r.font(familySerif, styleBold, 24)
	r.s.SetTextColor(black)
	r.text(m, y, r.company())

	y += 8
	r.font(familySans, styleNormal, 9)
	r.s.SetTextColor(gray(80))
	r.text(m, y, d.CompanyAddress)

	const boxW, boxY, boxH = 70.0, 25.0, 35.0
	boxX := right - boxW
	r.s.SetFillColor(RGB{248, 248, 250})
	r.s.SetDrawColor(gray(230))
	r.s.SetLineWidth(0.2)
	r.s.Rect(boxX, boxY, boxW, boxH, StyleFillStroke)

	label := TypeLabel(r.typ())
	r.fitFont(label, familySans, styleBold, 14, boxW-15)
	r.s.SetTextColor(r.labelColor(r.colors.Primary))
	r.text(boxX+10, boxY+12, label)

	r.font(familySans, styleBold, 10)
	r.s.SetTextColor(black)
	r.text(boxX+10, boxY+22, "# "+d.InvoiceNumber)

	r.font(familySans, styleNormal, 8)
	r.s.SetTextColor(gray(100))
	r.text(boxX+10, boxY+29, invoice.FormatLong(d.Date))

	r.watermark(familySans)

	y += 40
	r.font(familySans, styleBold, 8)
	r.s.SetTextColor(r.colors.Primary)
	r.text(m, y, "PREPARED FOR")

	r.font(familySans, styleBold, 12)
	r.s.SetTextColor(black)
	r.text(m, y+8, d.ClientName)

	r.font(familySans, styleNormal, 9)
	r.s.SetTextColor(gray(80))
	r.text(m, y+14, d.ClientCompany)
	r.text(m, y+19, d.ClientEmail)

	rightCol := r.pageW * 0.6
	r.s.SetDrawColor(gray(230))
	r.s.SetLineWidth(0.5)
	r.s.Line(rightCol, y, rightCol, y+30)

	r.font(familySans, styleBold, 8)
	r.s.SetTextColor(gray(100))
	r.text(rightCol+15, y+5, "AMOUNT DUE")

	r.font(familySerif, styleBold, 20)
	r.s.SetTextColor(r.colors.Primary)
	r.text(rightCol+15, y+15, r.money(d.Amount))

	if due := invoice.FormatShort(d.DueDate); due != "" {
		r.font(familySans, styleBold, 8)
		r.s.SetTextColor(r.colors.Accent)
		r.text(rightCol+15, y+24, "DUE: "+due)
	}

	return y + 45
}

func professionalServicesFooter(r *renderer, y float64) {
	const m = 20.0

	r.font(familySans, styleNormal, 8)
	r.s.SetTextColor(gray(100))
	r.text(m, y+18, "PAYMENT TERMS:")
	r.text(m, y+23, r.terms("Payment is due within 30 days."))

	r.s.SetTextColor(gray(150))
	r.poweredBy(r.pageW-m, r.pageH-15, AlignRight)
}
