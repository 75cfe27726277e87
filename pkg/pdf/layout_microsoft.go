package pdf

import "github.com/invoicing-microservice/smartinvoice/pkg/invoice"

var (
	msBlue  = RGB{0, 120, 212}
	msInk   = RGB{50, 49, 48}
	msMuted = RGB{96, 94, 92}
	msPanel = RGB{243, 242, 241}
)

const pageMargin = 15.0

// microsoftLayout is the structured corporate page and the fallback for any
// theme without a layout of its own.
func microsoftLayout(w, h float64) *Layout {
	const m = pageMargin
	right := w - m
	qty, rate, amount := right-70, right-40, right-5
	totalLabel := rate - 20

	return &Layout{
		Name:        string(invoice.ThemeMicrosoft),
		Header:      microsoftHeader,
		Specialized: SectionGap{Lead: 45, Skip: 50},
		Table: TableStyle{
			Top:            5,
			Band:           &band{X: m, W: w - 2*m, H: 10, Stroke: fixed(gray(200)), Width: 0.1},
			HeaderBaseline: 7,
			HeaderFont:     fontSpec{familySans, styleBold, 9},
			HeaderColor:    fixed(msMuted),
			Labels:         [4]string{"DESCRIPTION", "QTY", "UNIT PRICE", "AMOUNT"},
			DescX:          m + 5,
			QtyX:           qty,
			RateX:          rate,
			AmountX:        amount,
			DescWidth:      qty - m - 15,
			BodyTop:        10,
			TextOffset:     5,
			MinRow:         10,
			LineHeight:     5,
			RowPad:         4,
			DescFont:       fontSpec{familySans, styleNormal, 9},
			ValueFont:      fontSpec{familySans, styleNormal, 9},
			AmountFont:     fontSpec{familySans, styleNormal, 9},
			DescColor:      fixed(msInk),
			ValueColor:     fixed(msInk),
			AmountColor:    fixed(msInk),
			Currency:       true,
			Border:         rowBorder{Kind: borderSides, X1: m, X2: right, Color: fixed(gray(230)), Width: 0.1},
		},
		Totals: TotalsStyle{
			Lead:            10,
			Step:            6,
			LabelX:          totalLabel,
			ValueX:          amount,
			LabelAlign:      AlignRight,
			LabelFont:       fontSpec{familySans, styleNormal, 10},
			ValueFont:       fontSpec{familySans, styleNormal, 10},
			LabelColor:      fixed(msInk),
			ValueColor:      fixed(msInk),
			Subtotal:        "Subtotal:",
			Tax:             "Tax:",
			Discount:        "Discount:",
			Emphasis:        emphasisRule,
			Gap:             14,
			GrandRule:       &rule{Offset: 8, X1: amount - 30, X2: amount, Color: fixed(msBlue), Width: 0.5},
			GrandLabel:      "Total Due:",
			GrandLabelX:     totalLabel,
			GrandLabelAlign: AlignRight,
			GrandLabelFont:  fontSpec{familySans, styleBold, 12},
			GrandLabelColor: fixed(msInk),
			GrandValueX:     amount,
			GrandValueFont:  fontSpec{familySans, styleBold, 12},
			GrandValueColor: fixed(msInk),
		},
		Footer: microsoftFooter,
	}
}

func microsoftHeader(r *renderer) float64 {
	const m, startY = pageMargin, 40.0
	right := r.pageW - m
	d := r.doc

	r.s.SetFillColor(msBlue)
	r.s.Rect(m, 20, r.pageW-2*m, 5, StyleFill)

	r.font(familySans, styleBold, 24)
	r.s.SetTextColor(msInk)
	r.text(m, startY, r.company())

	r.s.SetTextColor(TypeColor(r.typ()))
	r.textRight(right, startY, TypeLabel(r.typ()))

	r.font(familySans, styleBold, 10)
	r.s.SetTextColor(msMuted)
	r.textRight(right, startY+8, d.InvoiceNumber)

	r.watermark(familySans)

	r.font(familySans, styleNormal, 9)
	r.s.SetTextColor(msInk)
	r.lines(m, startY+10, nonEmpty(d.CompanyAddress, d.CompanyEmail))

	dateY := startY + 20
	dateX := right - 50
	r.text(dateX, dateY, "Date:")
	r.textRight(right, dateY, invoice.FormatShort(d.Date))
	dateY += 6
	r.text(dateX, dateY, "Due:")
	r.textRight(right, dateY, invoice.FormatShort(d.DueDate))

	billTo := startY + 40
	r.s.SetFillColor(msPanel)
	r.s.Rect(m, billTo, 80, 40, StyleFill)

	r.font(familySans, styleBold, 9)
	r.s.SetTextColor(msMuted)
	r.text(m+5, billTo+8, "BILL TO")

	r.font(familySans, styleBold, 10)
	r.s.SetTextColor(msInk)
	r.text(m+5, billTo+16, d.ClientName)

	r.font(familySans, styleNormal, 9)
	cy := billTo + 22
	if d.ClientCompany != "" {
		r.text(m+5, cy, d.ClientCompany)
		cy += 5
	}
	r.text(m+5, cy, d.ClientEmail)

	return billTo
}

func microsoftFooter(r *renderer, _ float64) {
	const m = pageMargin
	right := r.pageW - m
	footerY := r.pageH - 20

	r.s.SetDrawColor(gray(200))
	r.s.SetLineWidth(0.1)
	r.s.Line(m, footerY, right, footerY)

	r.font(familySans, styleNormal, 9)
	r.s.SetTextColor(msMuted)
	r.text(m, footerY+5, r.terms(defaultTermsNet))

	r.font(familySans, styleNormal, 8)
	r.s.SetTextColor(gray(150))
	r.poweredBy(right, footerY+5, AlignRight)
}
