package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicing-microservice/smartinvoice/pkg/cache"
	"github.com/invoicing-microservice/smartinvoice/pkg/invoice"
	"github.com/invoicing-microservice/smartinvoice/pkg/pdf"
	"github.com/invoicing-microservice/smartinvoice/pkg/storage"
	"github.com/invoicing-microservice/smartinvoice/pkg/store"
)

type fakeRenderer struct {
	calls int
	last  *invoice.Invoice
	err   error
}

func (f *fakeRenderer) Generate(doc *invoice.Invoice) ([]byte, error) {
	f.calls++
	f.last = doc
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-" + doc.InvoiceNumber), nil
}

type fakeStore struct {
	docs map[string]*invoice.Invoice
	urls map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[string]*invoice.Invoice{}, urls: map[string]string{}}
}

func (f *fakeStore) Save(_ context.Context, doc *invoice.Invoice) (string, error) {
	id := "id-" + doc.InvoiceNumber
	f.docs[id] = doc
	return id, nil
}

func (f *fakeStore) Get(_ context.Context, id string) (*invoice.Invoice, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return doc, nil
}

func (f *fakeStore) SetPDFURL(_ context.Context, id, url string) error {
	f.urls[id] = url
	return nil
}

type fakeFiles struct {
	archived map[string][]byte
	logo     []byte
	err      error
}

func (f *fakeFiles) StoreLogo(_ context.Context, r io.Reader) (storage.Object, error) {
	if f.err != nil {
		return storage.Object{}, f.err
	}
	f.logo, _ = io.ReadAll(r)
	return storage.Object{URL: "https://cdn.example.com/logos/a.png", Path: "logos/a.png"}, nil
}

func (f *fakeFiles) ArchivePDF(_ context.Context, name string, pdf []byte) (storage.Object, error) {
	if f.err != nil {
		return storage.Object{}, f.err
	}
	if f.archived == nil {
		f.archived = map[string][]byte{}
	}
	f.archived[name] = pdf
	return storage.Object{URL: "https://cdn.example.com/" + name + ".pdf", Path: name + ".pdf"}, nil
}

func (f *fakeFiles) MaxLogoBytes() int64 { return 1024 }

type mapCache struct {
	data map[string][]byte
	err  error
}

func (m *mapCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	if m.err != nil {
		return nil, false, m.err
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mapCache) Set(_ context.Context, key string, pdf []byte) error {
	if m.err != nil {
		return m.err
	}
	m.data[key] = pdf
	return nil
}

func do(t *testing.T, h http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	rr := do(t, NewServer(&fakeRenderer{}).Router(), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]any{"status": "ok"}, decode(t, rr)["data"])
}

func TestRenderPDF(t *testing.T) {
	r := &fakeRenderer{}
	h := NewServer(r).Router()

	body := `{"invoice":{"invoiceNumber":"CN-12","invoiceType":"credit-note","subtotal":"100","amount":"100"},"totals":{"amount":"90"}}`
	rr := do(t, h, http.MethodPost, "/api/v1/invoices/pdf", strings.NewReader(body))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="credit-note-CN-12.pdf"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-CN-12", rr.Body.String())
	assert.Equal(t, "90", r.last.Amount.String())
	assert.Equal(t, "100", r.last.Subtotal.String())
}

func TestRenderPDF_BadJSON(t *testing.T) {
	r := &fakeRenderer{}
	rr := do(t, NewServer(r).Router(), http.MethodPost, "/api/v1/invoices/pdf", strings.NewReader(`{"invoice":`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decode(t, rr)["error"], "invalid JSON")
	assert.Zero(t, r.calls)
}

func TestRenderPDF_GenerationFailure(t *testing.T) {
	r := &fakeRenderer{err: pdf.ErrGenerationFailed}
	rr := do(t, NewServer(r).Router(), http.MethodPost, "/api/v1/invoices/pdf", strings.NewReader(`{"invoice":{}}`))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "failed to generate PDF", decode(t, rr)["error"])
}

func TestRenderPDF_Cache(t *testing.T) {
	r := &fakeRenderer{}
	c := &mapCache{data: map[string][]byte{}}
	h := NewServer(r, WithCache(c)).Router()

	body := `{"invoice":{"invoiceNumber":"A-1"}}`
	for i := 0; i < 3; i++ {
		rr := do(t, h, http.MethodPost, "/api/v1/invoices/pdf", strings.NewReader(body))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "%PDF-A-1", rr.Body.String())
	}
	assert.Equal(t, 1, r.calls)
	assert.Len(t, c.data, 1)

	c.err = errors.New("redis down")
	rr := do(t, h, http.MethodPost, "/api/v1/invoices/pdf", strings.NewReader(body))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 2, r.calls)
}

func TestRenderPDF_RealGenerator(t *testing.T) {
	gen := pdf.NewGenerator(pdf.WithClock(func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }))
	h := NewServer(gen).Router()

	body := `{"invoice":{"invoiceNumber":"INV-1","theme":"amazon","invoiceType":"proforma",
		"items":[{"description":"Design","quantity":2,"rate":"50","amount":"100"}],
		"subtotal":"100","amount":"100"}}`
	rr := do(t, h, http.MethodPost, "/api/v1/invoices/pdf", strings.NewReader(body))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("%PDF-")))
	assert.Equal(t, `attachment; filename="proforma-INV-1.pdf"`, rr.Header().Get("Content-Disposition"))
}

func TestInvoices_CreateGetRender(t *testing.T) {
	st := newFakeStore()
	files := &fakeFiles{}
	h := NewServer(&fakeRenderer{}, WithStore(st), WithFiles(files)).Router()

	rr := do(t, h, http.MethodPost, "/api/v1/invoices", strings.NewReader(`{"invoiceNumber":"R-7","invoiceType":"retainer"}`))
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, map[string]any{"id": "id-R-7"}, decode(t, rr)["data"])

	rr = do(t, h, http.MethodGet, "/api/v1/invoices/id-R-7", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "R-7", decode(t, rr)["data"].(map[string]any)["invoiceNumber"])

	rr = do(t, h, http.MethodGet, "/api/v1/invoices/id-R-7/pdf", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `attachment; filename="retainer-R-7.pdf"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, []byte("%PDF-R-7"), files.archived["id-R-7/retainer-R-7"])
	assert.Equal(t, "https://cdn.example.com/id-R-7/retainer-R-7.pdf", st.urls["id-R-7"])

	rr = do(t, h, http.MethodGet, "/api/v1/invoices/missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	rr = do(t, h, http.MethodGet, "/api/v1/invoices/missing/pdf", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInvoices_ArchiveFailureStillServes(t *testing.T) {
	st := newFakeStore()
	st.docs["x"] = &invoice.Invoice{InvoiceNumber: "X"}
	h := NewServer(&fakeRenderer{}, WithStore(st), WithFiles(&fakeFiles{err: errors.New("s3 down")})).Router()

	rr := do(t, h, http.MethodGet, "/api/v1/invoices/x/pdf", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, st.urls)
}

func TestInvoices_WithoutStore(t *testing.T) {
	h := NewServer(&fakeRenderer{}).Router()
	assert.Equal(t, http.StatusServiceUnavailable, do(t, h, http.MethodPost, "/api/v1/invoices", strings.NewReader(`{}`)).Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(t, h, http.MethodGet, "/api/v1/invoices/1", nil).Code)
}

func multipartBody(t *testing.T, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="logo"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func postLogo(t *testing.T, h http.Handler, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, ct := multipartBody(t, contentType, data)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/logos", body)
	req.Header.Set("Content-Type", ct)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestUploadLogo(t *testing.T) {
	files := &fakeFiles{}
	h := NewServer(&fakeRenderer{}, WithFiles(files)).Router()

	rr := postLogo(t, h, "image/png", []byte("png-bytes"))
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, map[string]any{"url": "https://cdn.example.com/logos/a.png", "path": "logos/a.png"}, decode(t, rr)["data"])
	assert.Equal(t, []byte("png-bytes"), files.logo)

	rr = postLogo(t, h, "application/pdf", []byte("%PDF"))
	assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)

	rr = postLogo(t, h, "image/png", bytes.Repeat([]byte("a"), 2048))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)

	files.err = storage.ErrNotImage
	rr = postLogo(t, h, "image/png", []byte("fake"))
	assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
}

func TestUploadLogo_NotConfigured(t *testing.T) {
	rr := postLogo(t, NewServer(&fakeRenderer{}).Router(), "image/png", []byte("x"))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestFilename(t *testing.T) {
	tests := []struct {
		doc  invoice.Invoice
		want string
	}{
		{invoice.Invoice{InvoiceNumber: "INV-1"}, "sales-INV-1.pdf"},
		{invoice.Invoice{InvoiceNumber: "INV 2/3", InvoiceType: invoice.TypePastDue}, "past-due-INV-2-3.pdf"},
		{invoice.Invoice{InvoiceNumber: `"quoted"`, InvoiceType: "bogus"}, "sales-quoted.pdf"},
		{invoice.Invoice{}, "sales-draft.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Filename(&tt.doc))
	}
}

var _ cache.Cache = (*mapCache)(nil)
