package invoice

// Type is the business classification of a document. It gates which
// specialized fields and which watermark are rendered.
type Type string

const (
	TypeSales      Type = "sales"
	TypeProforma   Type = "proforma"
	TypeInterim    Type = "interim"
	TypeFinal      Type = "final"
	TypeRecurring  Type = "recurring"
	TypeCreditNote Type = "credit-note"
	TypePastDue    Type = "past-due"
	TypeCommercial Type = "commercial"
	TypeTax        Type = "tax"
	TypeTimesheet  Type = "timesheet"
	TypeRetainer   Type = "retainer"
	TypeExpense    Type = "expense"
)

// Types lists every invoice type in declaration order.
var Types = []Type{
	TypeSales, TypeProforma, TypeInterim, TypeFinal, TypeRecurring, TypeCreditNote,
	TypePastDue, TypeCommercial, TypeTax, TypeTimesheet, TypeRetainer, TypeExpense,
}

// Valid reports whether t is one of the known types.
func (t Type) Valid() bool {
	switch t {
	case TypeSales, TypeProforma, TypeInterim, TypeFinal, TypeRecurring, TypeCreditNote,
		TypePastDue, TypeCommercial, TypeTax, TypeTimesheet, TypeRetainer, TypeExpense:
		return true
	}
	return false
}

// OrSales returns t, or TypeSales when t is empty or unknown.
func (t Type) OrSales() Type {
	if t.Valid() {
		return t
	}
	return TypeSales
}

// Theme names a color palette and, for six of them, a page layout.
type Theme string

const (
	ThemeProfessional         Theme = "professional"
	ThemeModern               Theme = "modern"
	ThemeLuxury               Theme = "luxury"
	ThemeMinimal              Theme = "minimal"
	ThemeElegantBlackGold     Theme = "elegant-black-gold"
	ThemeMinimalWhiteSilver   Theme = "minimal-white-silver"
	ThemeIvorySerifClassic    Theme = "ivory-serif-classic"
	ThemeModernRoseGold       Theme = "modern-rose-gold"
	ThemeUltraLuxury          Theme = "ultra-luxury"
	ThemeMicrosoft            Theme = "microsoft"
	ThemeAmazon               Theme = "amazon"
	ThemeFinancial            Theme = "financial"
	ThemeCreativeAgency       Theme = "creative-agency"
	ThemeProfessionalServices Theme = "professional-services"
)

// Valid reports whether th is one of the known theme ids.
func (th Theme) Valid() bool {
	switch th {
	case ThemeProfessional, ThemeModern, ThemeLuxury, ThemeMinimal, ThemeElegantBlackGold,
		ThemeMinimalWhiteSilver, ThemeIvorySerifClassic, ThemeModernRoseGold, ThemeUltraLuxury,
		ThemeMicrosoft, ThemeAmazon, ThemeFinancial, ThemeCreativeAgency, ThemeProfessionalServices:
		return true
	}
	return false
}
