package invoice

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestInvoice_UnmarshalItems(t *testing.T) {
	tests := []struct {
		name string
		json string
		want int
	}{
		{"array", `{"items":[{"description":"a","quantity":1,"rate":2,"amount":2},{"description":"b","quantity":"1.5","rate":"10","amount":"15"}]}`, 2},
		{"string", `{"items":"[{\"description\":\"a\",\"quantity\":1,\"rate\":2,\"amount\":2}]"}`, 1},
		{"malformed string", `{"items":"[{not json"}`, 0},
		{"null", `{"items":null}`, 0},
		{"missing", `{}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var inv Invoice
			require.NoError(t, json.Unmarshal([]byte(tt.json), &inv))
			assert.Len(t, inv.Items, tt.want)
		})
	}
}

func TestInvoice_UnmarshalItemsRejectsGarbage(t *testing.T) {
	var inv Invoice
	assert.Error(t, json.Unmarshal([]byte(`{"items":42}`), &inv))
}

func TestParseItems(t *testing.T) {
	items := ParseItems(`[{"description":"Consulting","quantity":3,"rate":"99.5","amount":"298.5"}]`)
	require.Len(t, items, 1)
	assert.Equal(t, "Consulting", items[0].Description)
	assert.True(t, items[0].Amount.Equal(dec("298.5")))

	assert.Equal(t, Items{}, ParseItems(""))
	assert.Equal(t, Items{}, ParseItems("null"))
	assert.Equal(t, Items{}, ParseItems("{}"))
}

func TestInvoice_DecodesExtensionsInline(t *testing.T) {
	var inv Invoice
	require.NoError(t, json.Unmarshal([]byte(`{
		"invoiceNumber": "INV-7",
		"invoiceType": "interim",
		"theme": "amazon",
		"projectName": "Bridge",
		"percentComplete": 40,
		"lateFeeAmount": "12.50",
		"customColors": {"primary": "#000000", "secondary": "#111111", "accent": "#222222", "background": "#ffffff"},
		"whiteLabelMode": true
	}`), &inv))

	assert.Equal(t, TypeInterim, inv.InvoiceType)
	assert.Equal(t, ThemeAmazon, inv.Theme)
	assert.Equal(t, "Bridge", inv.ProjectName)
	assert.True(t, inv.PercentComplete.Equal(dec("40")))
	assert.True(t, inv.LateFeeAmount.Equal(dec("12.5")))
	require.NotNil(t, inv.CustomColors)
	assert.Equal(t, "#ffffff", inv.CustomColors.Background)
	assert.True(t, inv.WhiteLabelMode)
}

func TestInvoice_Currency(t *testing.T) {
	assert.Equal(t, "$", (&Invoice{}).Currency())
	assert.Equal(t, "€", (&Invoice{ClientCurrency: "€"}).Currency())
}

func TestInvoice_ApplyTotals(t *testing.T) {
	inv := &Invoice{Subtotal: dec("10"), TaxAmount: dec("1"), Amount: dec("11")}
	inv.ApplyTotals(nil)
	assert.True(t, inv.Amount.Equal(dec("11")))

	sub, amount := dec("200"), dec("180")
	inv.ApplyTotals(&Totals{Subtotal: &sub, Amount: &amount})
	assert.True(t, inv.Subtotal.Equal(sub))
	assert.True(t, inv.Amount.Equal(amount))
	assert.True(t, inv.TaxAmount.Equal(dec("1")))
}

func TestInvoice_Discrepancies(t *testing.T) {
	inv := &Invoice{
		Items: Items{
			{Description: "ok", Quantity: dec("2"), Rate: dec("5"), Amount: dec("10")},
			{Description: "off", Quantity: dec("3"), Rate: dec("5"), Amount: dec("10")},
		},
		Subtotal:       dec("20"),
		DiscountAmount: dec("2"),
		TaxAmount:      dec("1.8"),
		Amount:         dec("19.8"),
	}
	got := inv.Discrepancies()
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "item 2")

	inv.Amount = dec("25")
	assert.Len(t, inv.Discrepancies(), 2)
}

func TestTypeAndTheme(t *testing.T) {
	assert.Len(t, Types, 12)
	for _, typ := range Types {
		assert.True(t, typ.Valid(), typ)
		assert.Equal(t, typ, typ.OrSales())
	}
	assert.Equal(t, TypeSales, Type("").OrSales())
	assert.Equal(t, TypeSales, Type("invoice").OrSales())
	assert.False(t, Type("Sales").Valid())

	assert.True(t, ThemeFinancial.Valid())
	assert.True(t, ThemeIvorySerifClassic.Valid())
	assert.False(t, Theme("retro").Valid())
}

func TestInvoice_EmptyStringsDecodeAsZero(t *testing.T) {
	var inv Invoice
	require.NoError(t, json.Unmarshal([]byte(`{
		"invoiceNumber": "INV-3",
		"invoiceType": "past-due",
		"lateFeeAmount": "",
		"discountAmount": "",
		"amount": "120.50",
		"items": [{"description": "Widget", "quantity": "", "rate": "", "amount": "120.50"}]
	}`), &inv))

	assert.Equal(t, "INV-3", inv.InvoiceNumber)
	assert.True(t, inv.LateFeeAmount.IsZero())
	assert.True(t, inv.DiscountAmount.IsZero())
	assert.True(t, inv.Amount.Equal(dec("120.5")))
	require.Len(t, inv.Items, 1)
	assert.True(t, inv.Items[0].Quantity.IsZero())
	assert.True(t, inv.Items[0].Rate.IsZero())
	assert.True(t, inv.Items[0].Amount.Equal(dec("120.5")))
}

func TestInvoice_EmptyItemsString(t *testing.T) {
	var inv Invoice
	require.NoError(t, json.Unmarshal([]byte(`{"items":"","clientName":""}`), &inv))
	assert.Equal(t, Items{}, inv.Items)
	assert.Empty(t, inv.ClientName)
}
