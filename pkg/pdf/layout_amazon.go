package pdf

import "github.com/invoicing-microservice/smartinvoice/pkg/invoice"

var (
	amazonOrange = RGB{255, 153, 0}
	amazonInk    = gray(17)
	amazonBorder = gray(221)
)

// amazonLayout packs everything into thin-bordered boxes with a compact
// framed summary.
func amazonLayout(w, h float64) *Layout {
	const m = pageMargin
	qty, rate, amount := w-m-70, w-m-40, w-m-5
	const summaryW = 60.0
	summaryX := w - m - summaryW

	return &Layout{
		Name:        string(invoice.ThemeAmazon),
		Header:      amazonHeader,
		Specialized: SectionGap{Lead: 5, Skip: 10},
		Table: TableStyle{
			Band:           &band{X: m, W: w - 2*m, H: 8, Fill: fixed(gray(245)), Stroke: fixed(amazonBorder), Width: 0.1},
			HeaderBaseline: 5,
			HeaderFont:     fontSpec{familySans, styleBold, 9},
			HeaderColor:    fixed(amazonInk),
			Labels:         [4]string{"DESCRIPTION", "QTY", "RATE", "AMOUNT"},
			DescX:          m + 2,
			QtyX:           qty,
			RateX:          rate,
			AmountX:        amount,
			DescWidth:      qty - m - 10,
			BodyTop:        8,
			TextOffset:     4,
			MinRow:         8,
			LineHeight:     4,
			RowPad:         4,
			DescFont:       fontSpec{familySans, styleNormal, 9},
			ValueFont:      fontSpec{familySans, styleNormal, 9},
			AmountFont:     fontSpec{familySans, styleNormal, 9},
			DescColor:      fixed(amazonInk),
			ValueColor:     fixed(amazonInk),
			AmountColor:    fixed(amazonInk),
			Currency:       true,
			Border:         rowBorder{Kind: borderBox, X1: m, X2: w - m, Color: fixed(amazonBorder), Width: 0.1},
		},
		Totals: TotalsStyle{
			Frame:           &frame{X: summaryX, W: summaryW, Top: 5, Inset: 5, Pad: 5, MinH: 25, Color: fixed(amazonBorder), Width: 0.1},
			Step:            5,
			LabelX:          summaryX + 2,
			ValueX:          w - m - 2,
			LabelFont:       fontSpec{familySans, styleNormal, 9},
			ValueFont:       fontSpec{familySans, styleNormal, 9},
			LabelColor:      fixed(amazonInk),
			ValueColor:      fixed(amazonInk),
			Subtotal:        "Subtotal:",
			Tax:             "Tax:",
			Discount:        "Discount:",
			Emphasis:        emphasisBoxed,
			Gap:             15,
			GrandRule:       &rule{Offset: 10, X1: summaryX, X2: summaryX + summaryW, Color: fixed(amazonBorder), Width: 0.1},
			GrandLabel:      "Total:",
			GrandLabelX:     summaryX + 2,
			GrandLabelFont:  fontSpec{familySans, styleBold, 9},
			GrandLabelColor: fixed(amazonInk),
			GrandValueX:     w - m - 2,
			GrandValueFont:  fontSpec{familySans, styleBold, 9},
			GrandValueColor: fixed(amazonInk),
		},
		Footer: amazonFooter,
	}
}

func amazonHeader(r *renderer) float64 {
	const m, startY = pageMargin, 20.0
	right := r.pageW - m
	d := r.doc

	r.font(familySans, styleBold, 22)
	r.s.SetTextColor(amazonInk)
	r.text(m, startY+8, r.company())

	r.s.SetDrawColor(amazonOrange)
	r.s.SetLineWidth(0.5)
	r.s.Line(m+80, startY+5, right, startY+5)

	r.font(familySans, styleBold, 10)
	r.s.SetTextColor(TypeColor(r.typ()))
	r.text(right-40, startY+3, TypeLabel(r.typ()))

	r.font(familySans, styleNormal, 10)
	r.s.SetTextColor(amazonInk)
	r.textRight(right, startY+10, d.InvoiceNumber)

	r.watermark(familySans)

	r.font(familySans, styleNormal, 9)
	r.s.SetTextColor(amazonInk)
	r.text(m, startY+16, joinPresent(", ", d.CompanyAddress, d.CompanyEmail))

	const boxH = 25.0
	boxY := startY + 30
	col2 := m + 90

	r.s.SetDrawColor(amazonBorder)
	r.s.SetLineWidth(0.1)
	r.s.Rect(m, boxY, 85, boxH, StyleStroke)
	r.font(familySans, styleBold, 9)
	r.text(m+2, boxY+5, "Bill To:")
	r.font(familySans, styleNormal, 9)
	r.text(m+2, boxY+10, d.ClientName)
	r.text(m+2, boxY+15, d.ClientEmail)

	r.s.Rect(col2, boxY, 85, boxH, StyleStroke)
	r.font(familySans, styleBold, 9)
	r.text(col2+2, boxY+5, "Invoice Details:")
	r.font(familySans, styleNormal, 9)
	r.text(col2+2, boxY+10, "Date: "+invoice.FormatShort(d.Date))
	r.text(col2+2, boxY+15, "Due: "+invoice.FormatShort(d.DueDate))

	return boxY + boxH
}

func amazonFooter(r *renderer, _ float64) {
	const m = pageMargin
	r.font(familySans, styleNormal, 9)
	r.s.SetTextColor(amazonInk)
	r.text(m, r.pageH-20, r.terms("Payment Instructions: Net 30 days"))
	if r.doc.CompanyEmail != "" {
		r.text(m, r.pageH-15, "Questions: "+r.doc.CompanyEmail)
	}

	r.font(familySans, styleNormal, 8)
	r.s.SetTextColor(gray(150))
	r.poweredBy(r.pageW-m, r.pageH-20, AlignRight)
}
