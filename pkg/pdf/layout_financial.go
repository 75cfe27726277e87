package pdf

import "github.com/invoicing-microservice/smartinvoice/pkg/invoice"

var black = RGB{}

// financialLayout is a formal serif statement inside a double page border,
// with every heading centered.
func financialLayout(w, h float64) *Layout {
	right := w - 25
	qty, rate, amount := right-60, right-35, right-5
	const summaryW = 70.0
	summaryX := w - 20 - summaryW

	return &Layout{
		Name:        string(invoice.ThemeFinancial),
		Header:      financialHeader,
		Specialized: SectionGap{Lead: 25, Skip: 30},
		Table: TableStyle{
			Top:            5,
			Band:           &band{X: 20, W: w - 40, H: 8, Fill: fixed(black)},
			HeaderBaseline: 5,
			HeaderFont:     fontSpec{familySerif, styleBold, 9},
			HeaderColor:    fixed(white),
			Labels:         [4]string{"DESCRIPTION", "QTY", "RATE", "AMOUNT"},
			DescX:          25,
			QtyX:           qty,
			RateX:          rate,
			AmountX:        amount,
			DescWidth:      qty - 25 - 5,
			BodyTop:        8,
			TextOffset:     5,
			MinRow:         8,
			LineHeight:     4,
			RowPad:         4,
			DescFont:       fontSpec{familySerif, styleNormal, 9},
			ValueFont:      fontSpec{familySerif, styleNormal, 9},
			AmountFont:     fontSpec{familySerif, styleNormal, 9},
			DescColor:      fixed(black),
			ValueColor:     fixed(black),
			AmountColor:    fixed(black),
			Currency:       true,
			Border:         rowBorder{Kind: borderSides, X1: 20, X2: w - 20, Color: fixed(black), Width: 0.1},
		},
		Totals: TotalsStyle{
			Frame:           &frame{X: summaryX, W: summaryW, Top: 10, Inset: 6, Pad: 6, MinH: 30, Color: fixed(black), Width: 0.1},
			Step:            6,
			LabelX:          summaryX + 5,
			ValueX:          right,
			LabelFont:       fontSpec{familySerif, styleNormal, 9},
			ValueFont:       fontSpec{familySerif, styleNormal, 9},
			LabelColor:      fixed(black),
			ValueColor:      fixed(black),
			Subtotal:        "Subtotal",
			Tax:             "Tax ({rate}%)",
			Discount:        "Discount ({rate}%)",
			Emphasis:        emphasisBoxed,
			Gap:             12,
			GrandRule:       &rule{Offset: 6, X1: summaryX, X2: summaryX + summaryW, Color: fixed(black), Width: 0.1},
			GrandLabel:      "TOTAL",
			GrandLabelX:     summaryX + 5,
			GrandLabelFont:  fontSpec{familySerif, styleBold, 9},
			GrandLabelColor: fixed(black),
			GrandValueX:     right,
			GrandValueFont:  fontSpec{familySerif, styleBold, 9},
			GrandValueColor: fixed(black),
		},
		Footer: financialFooter,
	}
}

func financialHeader(r *renderer) float64 {
	const startY = 30.0
	mid := r.pageW / 2
	d := r.doc

	r.s.SetDrawColor(black)
	r.s.SetLineWidth(0.5)
	r.s.Rect(10, 10, r.pageW-20, r.pageH-20, StyleStroke)
	r.s.SetLineWidth(0.2)
	r.s.Rect(12, 12, r.pageW-24, r.pageH-24, StyleStroke)

	r.font(familySerif, styleBold, 28)
	r.s.SetTextColor(black)
	r.textCenter(mid, startY, r.company())

	r.font(familySerif, styleNormal, 10)
	r.textCenter(mid, startY+8, joinPresent(" • ", d.CompanyAddress, d.CompanyEmail))

	r.s.SetLineWidth(0.5)
	r.s.Line(30, startY+15, r.pageW-30, startY+15)

	r.font(familySerif, styleBold, 18)
	r.s.SetTextColor(TypeColor(r.typ()))
	r.textCenter(mid, startY+30, TypeLabel(r.typ()))

	r.font(familySerif, styleNormal, 12)
	r.s.SetTextColor(black)
	r.textCenter(mid, startY+36, d.InvoiceNumber)

	r.watermark(familySerif)

	section := startY + 50
	col1, col2 := 25.0, mid+10
	r.font(familySerif, styleBold, 10)
	r.s.SetTextColor(black)
	r.text(col1, section, "BILLED TO:")
	r.text(col2, section, "INVOICE INFORMATION:")

	r.font(familySerif, styleNormal, 10)
	r.text(col1, section+6, d.ClientName)
	r.text(col1, section+11, d.ClientEmail)
	r.text(col1, section+16, d.ClientCompany)
	r.text(col2, section+6, "Date: "+invoice.FormatShort(d.Date))
	r.text(col2, section+11, "Due: "+invoice.FormatShort(d.DueDate))

	return section
}

func financialFooter(r *renderer, _ float64) {
	mid := r.pageW / 2
	footerY := r.pageH - 30

	r.font(familySerif, styleNormal, 9)
	r.s.SetTextColor(black)
	r.textCenter(mid, footerY-6, r.terms(defaultTermsNet))

	r.font(familySerif, styleNormal, 8)
	r.s.SetTextColor(gray(150))
	r.poweredBy(mid, footerY, AlignCenter)
}
