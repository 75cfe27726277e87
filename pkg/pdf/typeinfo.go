package pdf

import "github.com/invoicing-microservice/smartinvoice/pkg/invoice"

// TypeLabel is the document title printed for t. Unknown types read INVOICE.
func TypeLabel(t invoice.Type) string {
	switch t {
	case invoice.TypeProforma:
		return "PROFORMA INVOICE"
	case invoice.TypeInterim:
		return "INTERIM INVOICE"
	case invoice.TypeFinal:
		return "FINAL INVOICE"
	case invoice.TypeRecurring:
		return "RECURRING INVOICE"
	case invoice.TypeCreditNote:
		return "CREDIT NOTE"
	case invoice.TypePastDue:
		return "PAST DUE INVOICE"
	case invoice.TypeCommercial:
		return "COMMERCIAL INVOICE"
	case invoice.TypeTax:
		return "TAX INVOICE"
	case invoice.TypeTimesheet:
		return "TIMESHEET INVOICE"
	case invoice.TypeRetainer:
		return "RETAINER INVOICE"
	case invoice.TypeExpense:
		return "EXPENSE REPORT"
	}
	return "INVOICE"
}

// TypeColor is the signal color for t. Unknown types are black.
func TypeColor(t invoice.Type) RGB {
	switch t {
	case invoice.TypeProforma:
		return RGB{147, 51, 234}
	case invoice.TypeInterim:
		return RGB{249, 115, 22}
	case invoice.TypeFinal:
		return RGB{34, 197, 94}
	case invoice.TypeRecurring:
		return RGB{6, 182, 212}
	case invoice.TypeCreditNote:
		return RGB{239, 68, 68}
	case invoice.TypePastDue:
		return RGB{234, 179, 8}
	case invoice.TypeCommercial:
		return RGB{59, 130, 246}
	case invoice.TypeTax:
		return RGB{16, 185, 129}
	case invoice.TypeTimesheet:
		return RGB{168, 85, 247}
	case invoice.TypeRetainer:
		return RGB{14, 165, 233}
	case invoice.TypeExpense:
		return RGB{251, 146, 60}
	}
	return RGB{}
}

// Watermark is the diagonal stamp drawn behind some document types.
type Watermark struct {
	Text  string
	Color RGB
}

// WatermarkFor returns the stamp for t and whether one applies.
func WatermarkFor(t invoice.Type) (Watermark, bool) {
	switch t {
	case invoice.TypeProforma:
		return Watermark{"NOT FOR PAYMENT", RGB{147, 51, 234}}, true
	case invoice.TypePastDue:
		return Watermark{"PAYMENT OVERDUE", RGB{239, 68, 68}}, true
	case invoice.TypeExpense:
		return Watermark{"REIMBURSEMENT REQUEST", RGB{251, 146, 60}}, true
	}
	return Watermark{}, false
}
