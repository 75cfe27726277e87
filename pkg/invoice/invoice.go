// pkg/invoice/invoice.go

package invoice

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Invoice represents the invoice data model handed to the PDF generator.
// It is built by the caller right before rendering and never mutated by it.
type Invoice struct {
	InvoiceNumber string `json:"invoiceNumber"`
	InvoiceType   Type   `json:"invoiceType,omitempty"`
	Theme         Theme  `json:"theme,omitempty"`
	InvoiceStatus string `json:"invoiceStatus,omitempty"`

	Date    string `json:"date"`
	DueDate string `json:"dueDate"`

	CompanyName    string `json:"companyName,omitempty"`
	CompanyAddress string `json:"companyAddress,omitempty"`
	CompanyGST     string `json:"companyGST,omitempty"`
	CompanyEmail   string `json:"companyEmail,omitempty"`
	CompanyPhone   string `json:"companyPhone,omitempty"`
	CompanyWebsite string `json:"companyWebsite,omitempty"`
	CompanyLogo    string `json:"companyLogo,omitempty"`

	ClientName     string `json:"clientName"`
	ClientEmail    string `json:"clientEmail"`
	ClientCompany  string `json:"clientCompany,omitempty"`
	ClientAddress  string `json:"clientAddress"`
	ClientGST      string `json:"clientGST,omitempty"`
	ClientCurrency string `json:"clientCurrency"`

	Items Items  `json:"items"`
	Notes string `json:"notes,omitempty"`
	Terms string `json:"terms,omitempty"`

	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxRate        decimal.Decimal `json:"taxRate"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	DiscountRate   decimal.Decimal `json:"discountRate"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	Amount         decimal.Decimal `json:"amount"`

	PaymentLink    string        `json:"paymentLink,omitempty"`
	CustomColors   *CustomColors `json:"customColors,omitempty"`
	WhiteLabelMode bool          `json:"whiteLabelMode,omitempty"`

	Extensions
}

// Item represents an item in the invoice. Amount is trusted as supplied.
type Item struct {
	ID          string          `json:"id,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	Note        string          `json:"note,omitempty"`
	Category    string          `json:"category,omitempty"`
}

// CustomColors overrides the theme palette with hex colors.
type CustomColors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
}

// Extensions holds the optional fields scoped to specific invoice types.
type Extensions struct {
	// proforma
	ValidityPeriod    string `json:"validityPeriod,omitempty"`
	EstimatedDelivery string `json:"estimatedDelivery,omitempty"`
	NotForPaymentNote bool   `json:"notForPaymentNote,omitempty"`

	// interim / final
	ProjectName          string          `json:"projectName,omitempty"`
	ProjectID            string          `json:"projectId,omitempty"`
	MilestoneDescription string          `json:"milestoneDescription,omitempty"`
	PercentComplete      decimal.Decimal `json:"percentComplete"`
	TotalProjectValue    decimal.Decimal `json:"totalProjectValue"`
	PreviouslyInvoiced   decimal.Decimal `json:"previouslyInvoiced"`
	WorkPeriod           string          `json:"workPeriod,omitempty"`
	ProjectStartDate     string          `json:"projectStartDate,omitempty"`
	ProjectEndDate       string          `json:"projectEndDate,omitempty"`
	FinalDeliverables    []string        `json:"finalDeliverables,omitempty"`

	// recurring
	SubscriptionPeriod  string `json:"subscriptionPeriod,omitempty"`
	BillingCycle        string `json:"billingCycle,omitempty"`
	NextBillingDate     string `json:"nextBillingDate,omitempty"`
	SubscriptionDetails string `json:"subscriptionDetails,omitempty"`
	AutoRenewal         bool   `json:"autoRenewal,omitempty"`
	CancellationPolicy  string `json:"cancellationPolicy,omitempty"`

	// credit-note
	OriginalInvoiceNumber string `json:"originalInvoiceNumber,omitempty"`
	OriginalInvoiceDate   string `json:"originalInvoiceDate,omitempty"`
	CreditReason          string `json:"creditReason,omitempty"`

	// past-due
	OriginalDueDate   string          `json:"originalDueDate,omitempty"`
	DaysOverdue       int             `json:"daysOverdue,omitempty"`
	LateFeeAmount     decimal.Decimal `json:"lateFeeAmount"`
	LateFeePercentage decimal.Decimal `json:"lateFeePercentage"`
	UrgentNote        string          `json:"urgentNote,omitempty"`

	// commercial
	HSCode              string          `json:"hsCode,omitempty"`
	CountryOfOrigin     string          `json:"countryOfOrigin,omitempty"`
	TotalWeight         string          `json:"totalWeight,omitempty"`
	TotalDimensions     string          `json:"totalDimensions,omitempty"`
	ShippingTerms       string          `json:"shippingTerms,omitempty"`
	DeclaredValue       decimal.Decimal `json:"declaredValue"`
	ExportLicenseNumber string          `json:"exportLicenseNumber,omitempty"`
	DestinationCountry  string          `json:"destinationCountry,omitempty"`
	PortOfLoading       string          `json:"portOfLoading,omitempty"`
	PortOfDischarge     string          `json:"portOfDischarge,omitempty"`

	// tax
	SellerTaxID string `json:"sellerTaxId,omitempty"`
	BuyerTaxID  string `json:"buyerTaxId,omitempty"`

	// timesheet
	TotalHours           decimal.Decimal `json:"totalHours"`
	HourlyRate           decimal.Decimal `json:"hourlyRate"`
	ConsultantName       string          `json:"consultantName,omitempty"`
	TimesheetPeriodStart string          `json:"timesheetPeriodStart,omitempty"`
	TimesheetPeriodEnd   string          `json:"timesheetPeriodEnd,omitempty"`

	// retainer
	RetainerPeriodStart string          `json:"retainerPeriodStart,omitempty"`
	RetainerPeriodEnd   string          `json:"retainerPeriodEnd,omitempty"`
	ServicesIncluded    []string        `json:"servicesIncluded,omitempty"`
	RetainerAmount      decimal.Decimal `json:"retainerAmount"`
	UnusedHours         decimal.Decimal `json:"unusedHours"`
	CarryoverPolicy     string          `json:"carryoverPolicy,omitempty"`
	RetainerTerms       string          `json:"retainerTerms,omitempty"`

	// expense
	TotalExpenses       decimal.Decimal `json:"totalExpenses"`
	ReimbursementMethod string          `json:"reimbursementMethod,omitempty"`
	EmployeeName        string          `json:"employeeName,omitempty"`
	EmployeeID          string          `json:"employeeId,omitempty"`
	ApprovedBy          string          `json:"approvedBy,omitempty"`
	ApprovalDate        string          `json:"approvalDate,omitempty"`
}

// Totals is an already-computed rollup that overrides the document's own.
type Totals struct {
	Subtotal       *decimal.Decimal `json:"subtotal,omitempty"`
	TaxAmount      *decimal.Decimal `json:"taxAmount,omitempty"`
	DiscountAmount *decimal.Decimal `json:"discountAmount,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
}

// ApplyTotals copies every non-nil rollup value onto the invoice.
func (inv *Invoice) ApplyTotals(t *Totals) {
	if t == nil {
		return
	}
	if t.Subtotal != nil {
		inv.Subtotal = *t.Subtotal
	}
	if t.TaxAmount != nil {
		inv.TaxAmount = *t.TaxAmount
	}
	if t.DiscountAmount != nil {
		inv.DiscountAmount = *t.DiscountAmount
	}
	if t.Amount != nil {
		inv.Amount = *t.Amount
	}
}

// Currency returns the client currency symbol, "$" when unset.
func (inv *Invoice) Currency() string {
	if inv.ClientCurrency == "" {
		return "$"
	}
	return inv.ClientCurrency
}

// Discrepancies reports rollup inconsistencies without correcting them.
// The renderer always prints the supplied amounts.
func (inv *Invoice) Discrepancies() []string {
	var out []string
	for i, it := range inv.Items {
		if want := it.Quantity.Mul(it.Rate); !want.Equal(it.Amount) {
			out = append(out, fmt.Sprintf("item %d: amount %s != quantity*rate %s", i+1, it.Amount, want))
		}
	}
	want := inv.Subtotal.Sub(inv.DiscountAmount).Add(inv.TaxAmount)
	if !want.Equal(inv.Amount) {
		out = append(out, fmt.Sprintf("total %s != subtotal-discount+tax %s", inv.Amount, want))
	}
	return out
}
