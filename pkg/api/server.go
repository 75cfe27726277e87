// Package api exposes invoice rendering, storage and logo upload over HTTP.
package api

import (
	"context"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/invoicing-microservice/smartinvoice/pkg/cache"
	"github.com/invoicing-microservice/smartinvoice/pkg/invoice"
	"github.com/invoicing-microservice/smartinvoice/pkg/logging"
	"github.com/invoicing-microservice/smartinvoice/pkg/storage"
)

// Renderer turns a document into PDF bytes.
type Renderer interface {
	Generate(doc *invoice.Invoice) ([]byte, error)
}

// Store persists documents.
type Store interface {
	Save(ctx context.Context, doc *invoice.Invoice) (string, error)
	Get(ctx context.Context, id string) (*invoice.Invoice, error)
	SetPDFURL(ctx context.Context, id, url string) error
}

// Files uploads logos and archives PDFs.
type Files interface {
	StoreLogo(ctx context.Context, r io.Reader) (storage.Object, error)
	ArchivePDF(ctx context.Context, name string, pdf []byte) (storage.Object, error)
	MaxLogoBytes() int64
}

// Server holds the handler dependencies. Store and Files are optional; their
// endpoints answer 503 when unset.
type Server struct {
	renderer Renderer
	store    Store
	files    Files
	cache    cache.Cache
	log      *zap.Logger
}

type Option func(*Server)

func WithStore(s Store) Option { return func(srv *Server) { srv.store = s } }
func WithFiles(f Files) Option { return func(srv *Server) { srv.files = f } }
func WithCache(c cache.Cache) Option { return func(srv *Server) { srv.cache = c } }
func WithLogger(l *zap.Logger) Option {
	return func(srv *Server) { srv.log = l }
}

// NewServer builds a Server around r.
func NewServer(r Renderer, opts ...Option) *Server {
	srv := &Server{
		renderer: r,
		cache:    cache.Nop{},
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(srv)
	}
	return srv
}

// Router registers every route.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(logging.Middleware(s.log))

	r.HandleFunc("/healthz", s.health).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/invoices/pdf", s.renderPDF).Methods(http.MethodPost)
	v1.HandleFunc("/invoices", s.createInvoice).Methods(http.MethodPost)
	v1.HandleFunc("/invoices/{id}", s.getInvoice).Methods(http.MethodGet)
	v1.HandleFunc("/invoices/{id}/pdf", s.storedPDF).Methods(http.MethodGet)
	v1.HandleFunc("/logos", s.uploadLogo).Methods(http.MethodPost)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	return r
}

// health godoc
// @Summary      Liveness probe
// @Tags         system
// @Produce      json
// @Success      200  {object}  Response
// @Router       /healthz [get]
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
