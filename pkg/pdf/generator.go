// Package pdf renders invoice documents into single-page PDFs in one of six
// visual layouts.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/invoicing-microservice/smartinvoice/pkg/invoice"
)

// ErrGenerationFailed is the only error Generate returns.
var ErrGenerationFailed = errors.New("failed to generate premium PDF")

const (
	metaSubject  = "Premium Invoice Document"
	metaAuthor   = "Premium Invoice System"
	metaKeywords = "invoice, billing, payment, premium"
	metaCreator  = "Premium Invoice Generator Pro"
)

// SurfaceFactory builds a fresh drawing surface stamped with created.
type SurfaceFactory func(created time.Time) Surface

// Generator renders invoices. It holds no per-render state and is safe for
// concurrent use.
type Generator struct {
	log        *zap.Logger
	now        func() time.Time
	newSurface SurfaceFactory
}

type Option func(*Generator)

func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// WithClock sets the source of the document creation date.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func WithSurfaceFactory(f SurfaceFactory) Option {
	return func(g *Generator) { g.newSurface = f }
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		log:        zap.NewNop(),
		now:        time.Now,
		newSurface: NewFPDFSurface,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders doc and returns the serialized PDF. Any failure, including
// a panic inside a layout, is logged and reported as ErrGenerationFailed with
// no partial output.
func (g *Generator) Generate(doc *invoice.Invoice) (out []byte, err error) {
	if doc == nil {
		g.log.Error("premium pdf generation failed", zap.Error(errors.New("nil document")))
		return nil, ErrGenerationFailed
	}
	log := g.log.With(
		zap.String("invoice_number", doc.InvoiceNumber),
		zap.String("theme", string(doc.Theme)),
		zap.String("invoice_type", string(doc.InvoiceType)),
	)
	defer func() {
		if rec := recover(); rec != nil {
			log.Error("premium pdf generation failed", zap.Error(fmt.Errorf("panic: %v", rec)))
			out, err = nil, ErrGenerationFailed
		}
	}()

	s := g.newSurface(g.now())
	w, h := s.PageSize()
	colors := ResolveColors(doc.Theme, doc.CustomColors)

	s.SetMetadata(metadataFor(doc))
	s.SetFillColor(colors.Bg)
	s.Rect(0, 0, w, h, StyleFill)

	layout := LayoutFor(doc.Theme, w, h)
	items := doc.Items
	if items == nil {
		items = invoice.Items{}
	}
	r := &renderer{s: s, doc: doc, colors: colors, items: items, pageW: w, pageH: h}
	layout.render(r)

	var buf bytes.Buffer
	if err := s.Output(&buf); err != nil {
		log.Error("premium pdf generation failed", zap.Error(err))
		return nil, ErrGenerationFailed
	}
	log.Debug("premium pdf generated", zap.String("layout", layout.Name), zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

func metadataFor(doc *invoice.Invoice) Metadata {
	author := doc.CompanyName
	if author == "" {
		author = metaAuthor
	}
	return Metadata{
		Title:    "Invoice #" + doc.InvoiceNumber,
		Subject:  metaSubject,
		Author:   author,
		Keywords: metaKeywords,
		Creator:  metaCreator,
	}
}
