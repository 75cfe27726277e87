package pdf

import (
	"bytes"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// fpdfSurface draws onto a single A4 portrait gofpdf page.
type fpdfSurface struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	images map[string]bool
}

var _ Surface = (*fpdfSurface)(nil)

// NewFPDFSurface returns a fresh gofpdf-backed surface. created is written as
// the document creation and modification date; with it fixed the output is
// byte-stable.
func NewFPDFSurface(created time.Time) Surface {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(created)
	pdf.AddPage()
	pdf.SetFont(familySans, "", 10)
	return &fpdfSurface{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		images: make(map[string]bool),
	}
}

func (f *fpdfSurface) PageSize() (float64, float64) {
	return f.pdf.GetPageSize()
}

func (f *fpdfSurface) SetFillColor(c RGB) { f.pdf.SetFillColor(c.R, c.G, c.B) }
func (f *fpdfSurface) SetTextColor(c RGB) { f.pdf.SetTextColor(c.R, c.G, c.B) }
func (f *fpdfSurface) SetDrawColor(c RGB) { f.pdf.SetDrawColor(c.R, c.G, c.B) }

func (f *fpdfSurface) SetLineWidth(w float64) { f.pdf.SetLineWidth(w) }

func (f *fpdfSurface) SetFont(family, style string, size float64) {
	f.pdf.SetFont(family, style, size)
}

func (f *fpdfSurface) SetAlpha(alpha float64) { f.pdf.SetAlpha(alpha, "Normal") }

func (f *fpdfSurface) Rect(x, y, w, h float64, style string) { f.pdf.Rect(x, y, w, h, style) }

func (f *fpdfSurface) Line(x1, y1, x2, y2 float64) { f.pdf.Line(x1, y1, x2, y2) }

func (f *fpdfSurface) Circle(x, y, r float64, style string) { f.pdf.Circle(x, y, r, style) }

func (f *fpdfSurface) Triangle(x1, y1, x2, y2, x3, y3 float64, style string) {
	f.pdf.Polygon([]gofpdf.PointType{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}}, style)
}

func (f *fpdfSurface) Text(x, y float64, s string, opt TextOptions) {
	if s == "" {
		return
	}
	txt := f.tr(s)
	switch opt.Align {
	case AlignRight:
		x -= f.pdf.GetStringWidth(txt)
	case AlignCenter:
		x -= f.pdf.GetStringWidth(txt) / 2
	}
	if opt.Angle == 0 {
		f.pdf.Text(x, y, txt)
		return
	}
	f.pdf.TransformBegin()
	f.pdf.TransformRotate(opt.Angle, x, y)
	f.pdf.Text(x, y, txt)
	f.pdf.TransformEnd()
}

func (f *fpdfSurface) TextWidth(s string) float64 {
	return f.pdf.GetStringWidth(f.tr(s))
}

func (f *fpdfSurface) Image(name string, png []byte, x, y, w, h float64) {
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	if !f.images[name] {
		f.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
		f.images[name] = true
	}
	f.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

func (f *fpdfSurface) Link(x, y, w, h float64, url string) {
	f.pdf.LinkString(x, y, w, h, url)
}

func (f *fpdfSurface) SetMetadata(m Metadata) {
	f.pdf.SetTitle(m.Title, true)
	f.pdf.SetSubject(m.Subject, true)
	f.pdf.SetAuthor(m.Author, true)
	f.pdf.SetKeywords(m.Keywords, true)
	f.pdf.SetCreator(m.Creator, true)
}

func (f *fpdfSurface) Output(w io.Writer) error {
	return f.pdf.Output(w)
}
