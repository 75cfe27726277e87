package pdf

import (
	"github.com/shopspring/decimal"

	"github.com/invoicing-microservice/smartinvoice/pkg/invoice"
)

// Field is one populated label/value pair of a specialized section.
type Field struct {
	Label string
	Value string
}

// SpecializedFields lists the type-specific fields of doc that carry a
// value, in their fixed per-type order. Sales documents have none.
func SpecializedFields(doc *invoice.Invoice) []Field {
	cur := doc.Currency()
	var all []Field
	switch doc.InvoiceType.OrSales() {
	case invoice.TypeProforma:
		all = []Field{
			{"Validity Period", doc.ValidityPeriod},
			{"Est. Delivery", doc.EstimatedDelivery},
		}
	case invoice.TypeInterim, invoice.TypeFinal:
		all = []Field{
			{"Project", doc.ProjectName},
			{"Milestone", doc.MilestoneDescription},
			{"Progress", suffixed(doc.PercentComplete, "%")},
		}
	case invoice.TypeRecurring:
		all = []Field{
			{"Billing Cycle", doc.BillingCycle},
			{"Next Billing", doc.NextBillingDate},
		}
	case invoice.TypeCreditNote:
		all = []Field{
			{"Original Inv #", doc.OriginalInvoiceNumber},
			{"Reason", doc.CreditReason},
		}
	case invoice.TypePastDue:
		all = []Field{
			{"Original Due Date", doc.OriginalDueDate},
			{"Late Fee", prefixed(cur, doc.LateFeeAmount)},
		}
	case invoice.TypeCommercial:
		all = []Field{
			{"HS Code", doc.HSCode},
			{"Origin", doc.CountryOfOrigin},
			{"Terms", doc.ShippingTerms},
			{"Exp License", doc.ExportLicenseNumber},
		}
	case invoice.TypeTax:
		all = []Field{
			{"Seller Tax ID", doc.SellerTaxID},
			{"Buyer Tax ID", doc.BuyerTaxID},
		}
	case invoice.TypeTimesheet:
		period := ""
		if doc.TimesheetPeriodStart != "" {
			period = doc.TimesheetPeriodStart + " to " + doc.TimesheetPeriodEnd
		}
		all = []Field{
			{"Consultant", doc.ConsultantName},
			{"Period", period},
		}
	case invoice.TypeRetainer:
		all = []Field{
			{"Retainer Amt", prefixed(cur, doc.RetainerAmount)},
			{"Terms", doc.RetainerTerms},
		}
	case invoice.TypeExpense:
		all = []Field{
			{"Employee", doc.EmployeeName},
			{"Employee ID", doc.EmployeeID},
			{"Reimb. Method", doc.ReimbursementMethod},
		}
	}

	fields := all[:0]
	for _, f := range all {
		if f.Value != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

func suffixed(d decimal.Decimal, suffix string) string {
	if d.IsZero() {
		return ""
	}
	return d.String() + suffix
}

func prefixed(prefix string, d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return prefix + d.String()
}

const (
	sectionMargin   = 20.0
	sectionValueGap = 25.0
	sectionRowStep  = 6.0
)

// specializedSection draws the type-specific block starting at y and returns
// the cursor below its closing divider. Sales documents draw nothing.
func (r *renderer) specializedSection(y float64) float64 {
	t := r.doc.InvoiceType.OrSales()
	if t == invoice.TypeSales {
		return y
	}
	left, right := sectionMargin, r.pageW-sectionMargin
	col2 := left + (right-left)/2

	y += 5
	r.s.SetDrawColor(r.colors.Light)
	r.s.SetLineWidth(0.1)
	r.s.Line(left, y, right, y)
	y += 8

	r.font(familySans, styleBold, 9)
	r.s.SetTextColor(TypeColor(t))
	r.text(left, y, TypeLabel(t)+" DETAILS")
	y += 8

	r.font(familySans, styleNormal, 8)
	r.s.SetTextColor(r.colors.Medium)
	fields := SpecializedFields(r.doc)
	for i, f := range fields {
		x := left
		if i%2 == 1 {
			x = col2
		}
		r.font(familySans, styleBold, 8)
		r.text(x, y, f.Label+":")
		r.font(familySans, styleNormal, 8)
		r.text(x+sectionValueGap, y, f.Value)
		if i%2 == 1 || i == len(fields)-1 {
			y += sectionRowStep
		}
	}

	y += 5
	r.s.Line(left, y, right, y)
	return y + 10
}
