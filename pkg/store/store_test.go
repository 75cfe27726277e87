package store

import (
	"context"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicing-microservice/smartinvoice/pkg/invoice"
)

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.Len(t, files, 2)
	for _, f := range files {
		body, err := fs.ReadFile(migrations, f)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", f)
		assert.Contains(t, string(body), "-- +goose Down", f)
	}
}

// openTestStore connects to TEST_DATABASE_URL; the test is skipped without it.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	s, err := Open(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(ctx))
	return s
}

func TestStore_SaveGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	doc := &invoice.Invoice{
		InvoiceNumber: "INV-1",
		InvoiceType:   invoice.TypeRetainer,
		Theme:         invoice.ThemeAmazon,
		Items:         invoice.Items{{Description: "Retainer", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(900), Amount: decimal.NewFromInt(900)}},
		Amount:        decimal.NewFromInt(900),
		Extensions:    invoice.Extensions{RetainerTerms: "Monthly"},
	}
	id, err := s.Save(ctx, doc)
	require.NoError(t, err)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "INV-1", got.InvoiceNumber)
	assert.Equal(t, "Monthly", got.RetainerTerms)
	require.Len(t, got.Items, 1)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(900)))

	require.NoError(t, s.SetPDFURL(ctx, id, "https://bucket/invoices/x.pdf"))
	assert.ErrorIs(t, s.SetPDFURL(ctx, uuid.NewString(), "x"), ErrNotFound)
}

func TestStore_GetMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Get(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_GetRejectsMalformedID(t *testing.T) {
	s := New(nil, nil)
	_, err := s.Get(context.Background(), strings.Repeat("x", 8))
	assert.ErrorIs(t, err, ErrNotFound)
}
