// Package store persists invoice documents in PostgreSQL.
package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/invoicing-microservice/smartinvoice/pkg/invoice"
)

//go:embed migrations/*.sql
var migrations embed.FS

// ErrNotFound is returned when no invoice has the requested id.
var ErrNotFound = errors.New("invoice not found")

// Store reads and writes invoice documents.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Open connects to PostgreSQL and verifies the connection.
func Open(ctx context.Context, url string, log *zap.Logger) (*Store, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	s := New(db, log)
	s.log.Info("database connected")
	return s, nil
}

// New wraps an open connection.
func New(db *sql.DB, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{db: db, log: log}
}

func (s *Store) Close() error { return s.db.Close() }

// Migrate applies every pending embedded migration.
func (s *Store) Migrate(ctx context.Context) error {
	s.log.Info("running database migrations")
	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, s.db, "migrations"); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	s.log.Info("database migrations complete")
	return nil
}

// Save stores doc and returns its new id.
func (s *Store) Save(ctx context.Context, doc *invoice.Invoice) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encoding invoice: %w", err)
	}
	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO invoices (id, invoice_number, invoice_type, theme, document) VALUES ($1, $2, $3, $4, $5)`,
		id, doc.InvoiceNumber, string(doc.InvoiceType.OrSales()), string(doc.Theme), body)
	if err != nil {
		return "", fmt.Errorf("inserting invoice: %w", err)
	}
	return id, nil
}

// Get loads the document stored under id.
func (s *Store) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	var body []byte
	err := s.db.QueryRowContext(ctx, `SELECT document FROM invoices WHERE id = $1`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("selecting invoice: %w", err)
	}
	var doc invoice.Invoice
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decoding invoice %s: %w", id, err)
	}
	return &doc, nil
}

// SetPDFURL records where the rendered PDF of id was archived.
func (s *Store) SetPDFURL(ctx context.Context, id, url string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE invoices SET pdf_url = $2 WHERE id = $1`, id, url)
	if err != nil {
		return fmt.Errorf("updating invoice: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
