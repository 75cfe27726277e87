package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRenderRequest(t *testing.T) {
	req, err := decodeRenderRequest([]byte(`{"invoice":{"invoiceNumber":"A-1"},"totals":{"amount":"5"}}`))
	require.NoError(t, err)
	assert.Equal(t, "A-1", req.Invoice.InvoiceNumber)
	require.NotNil(t, req.Totals)
	assert.Equal(t, "5", req.Totals.Amount.String())

	req, err = decodeRenderRequest([]byte(`{"invoiceNumber":"B-2","theme":"financial"}`))
	require.NoError(t, err)
	assert.Equal(t, "B-2", req.Invoice.InvoiceNumber)
	assert.Nil(t, req.Totals)

	_, err = decodeRenderRequest([]byte(`[1,2]`))
	assert.Error(t, err)
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "doc.json")
	out := filepath.Join(dir, "doc.pdf")
	require.NoError(t, os.WriteFile(in, []byte(`{
		"invoiceNumber": "T-9",
		"invoiceType": "timesheet",
		"theme": "creative-agency",
		"items": [{"description": "Hours", "quantity": 10, "rate": "80", "amount": "800"}],
		"subtotal": "800",
		"amount": "800",
		"consultantName": "Sam"
	}`), 0o644))

	err := newApp().Run([]string{"smartinvoice", "--log-level", "error", "render", "--in", in, "--out", out})
	require.NoError(t, err)

	body, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
}

func TestRenderCommand_MissingInput(t *testing.T) {
	err := newApp().Run([]string{"smartinvoice", "render", "--in", filepath.Join(t.TempDir(), "nope.json")})
	assert.Error(t, err)
}

func TestMigrateCommand_RequiresDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	err := newApp().Run([]string{"smartinvoice", "migrate"})
	assert.EqualError(t, err, "database-url is required")
}
