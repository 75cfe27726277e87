package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/invoicing-microservice/smartinvoice/pkg/cache"
	"github.com/invoicing-microservice/smartinvoice/pkg/invoice"
	"github.com/invoicing-microservice/smartinvoice/pkg/store"
)

const msgGenerationFailed = "failed to generate PDF"

// RenderRequest is the body of POST /api/v1/invoices/pdf.
type RenderRequest struct {
	Invoice invoice.Invoice `json:"invoice"`
	Totals  *invoice.Totals `json:"totals,omitempty"`
}

// Created is returned when an invoice is stored.
type Created struct {
	ID string `json:"id"`
}

// renderPDF godoc
// @Summary      Render an invoice to PDF
// @Description  Renders the document with its theme and type. Supplied totals override the document rollup.
// @Tags         invoices
// @Accept       json
// @Produce      application/pdf
// @Param        request  body      RenderRequest  true  "document and optional totals"
// @Success      200      {file}    binary
// @Failure      400      {object}  Response
// @Failure      500      {object}  Response
// @Router       /api/v1/invoices/pdf [post]
func (s *Server) renderPDF(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	doc := &req.Invoice
	doc.ApplyTotals(req.Totals)

	pdf, err := s.render(r.Context(), doc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgGenerationFailed)
		return
	}
	writePDF(w, Filename(doc), pdf)
}

// createInvoice godoc
// @Summary      Store an invoice document
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice  body      invoice.Invoice  true  "document"
// @Success      201      {object}  Response{data=Created}
// @Failure      400      {object}  Response
// @Failure      503      {object}  Response
// @Router       /api/v1/invoices [post]
func (s *Server) createInvoice(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "invoice storage not configured")
		return
	}
	var doc invoice.Invoice
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	id, err := s.store.Save(r.Context(), &doc)
	if err != nil {
		s.log.Error("saving invoice", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to save invoice")
		return
	}
	writeJSON(w, http.StatusCreated, Created{ID: id})
}

// getInvoice godoc
// @Summary      Fetch a stored invoice document
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "invoice id"
// @Success      200  {object}  Response{data=invoice.Invoice}
// @Failure      404  {object}  Response
// @Router       /api/v1/invoices/{id} [get]
func (s *Server) getInvoice(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// storedPDF godoc
// @Summary      Render a stored invoice to PDF
// @Description  The rendered bytes are also archived to object storage when it is configured.
// @Tags         invoices
// @Produce      application/pdf
// @Param        id   path      string  true  "invoice id"
// @Success      200  {file}    binary
// @Failure      404  {object}  Response
// @Failure      500  {object}  Response
// @Router       /api/v1/invoices/{id}/pdf [get]
func (s *Server) storedPDF(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.lookup(w, r)
	if !ok {
		return
	}
	pdf, err := s.render(r.Context(), doc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgGenerationFailed)
		return
	}
	s.archive(r.Context(), mux.Vars(r)["id"], doc, pdf)
	writePDF(w, Filename(doc), pdf)
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*invoice.Invoice, bool) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "invoice storage not configured")
		return nil, false
	}
	id := mux.Vars(r)["id"]
	doc, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "invoice not found")
		return nil, false
	}
	if err != nil {
		s.log.Error("loading invoice", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load invoice")
		return nil, false
	}
	return doc, true
}

// render serves from the cache when possible. Cache failures never fail the
// request.
func (s *Server) render(ctx context.Context, doc *invoice.Invoice) ([]byte, error) {
	if issues := doc.Discrepancies(); len(issues) > 0 {
		s.log.Warn("invoice totals are inconsistent, rendering supplied values",
			zap.String("invoice", doc.InvoiceNumber), zap.Strings("issues", issues))
	}

	key, err := cache.Key(doc)
	if err != nil {
		s.log.Warn("computing cache key", zap.Error(err))
	}
	if key != "" {
		pdf, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.log.Warn("pdf cache read", zap.Error(err))
		}
		if ok {
			return pdf, nil
		}
	}

	pdf, err := s.renderer.Generate(doc)
	if err != nil {
		return nil, err
	}
	if key != "" {
		if err := s.cache.Set(ctx, key, pdf); err != nil {
			s.log.Warn("pdf cache write", zap.Error(err))
		}
	}
	return pdf, nil
}

func (s *Server) archive(ctx context.Context, id string, doc *invoice.Invoice, pdf []byte) {
	if s.files == nil {
		return
	}
	obj, err := s.files.ArchivePDF(ctx, id+"/"+strings.TrimSuffix(Filename(doc), ".pdf"), pdf)
	if err != nil {
		s.log.Warn("archiving pdf", zap.String("id", id), zap.Error(err))
		return
	}
	if err := s.store.SetPDFURL(ctx, id, obj.URL); err != nil {
		s.log.Warn("recording archived pdf", zap.String("id", id), zap.Error(err))
	}
}

// Filename names the download, e.g. "credit-note-CN-12.pdf".
func Filename(doc *invoice.Invoice) string {
	number := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		case r == ' ' || r == '/' || r == '#':
			return '-'
		}
		return -1
	}, doc.InvoiceNumber)
	if number == "" {
		number = "draft"
	}
	return string(doc.InvoiceType.OrSales()) + "-" + number + ".pdf"
}
