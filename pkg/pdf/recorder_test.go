package pdf

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	a4W = 210.0
	a4H = 297.0
)

// op is one recorded drawing call together with the state it was drawn in.
type op struct {
	Kind  string
	X, Y  float64
	W, H  float64
	Text  string
	Opt   TextOptions
	Font  fontSpec
	Color RGB
	Alpha float64
	Style string
}

// recorder is a Surface that keeps every call instead of drawing. Text is
// measured as half an em per rune.
type recorder struct {
	ops   []op
	meta  Metadata
	font  fontSpec
	fill  RGB
	ink   RGB
	draw  RGB
	alpha float64
	width float64

	outErr    error
	panicText string
}

var _ Surface = (*recorder)(nil)

func newRecorder() *recorder { return &recorder{alpha: 1} }

func (r *recorder) factory() SurfaceFactory {
	return func(time.Time) Surface { return r }
}

func (r *recorder) PageSize() (float64, float64) { return a4W, a4H }

func (r *recorder) SetFillColor(c RGB) { r.fill = c }
func (r *recorder) SetTextColor(c RGB) { r.ink = c }
func (r *recorder) SetDrawColor(c RGB) { r.draw = c }
func (r *recorder) SetLineWidth(w float64) { r.width = w }
func (r *recorder) SetAlpha(a float64) { r.alpha = a }

func (r *recorder) SetFont(family, style string, size float64) {
	r.font = fontSpec{family, style, size}
}

func (r *recorder) Rect(x, y, w, h float64, style string) {
	c := r.draw
	if strings.Contains(style, "F") {
		c = r.fill
	}
	r.ops = append(r.ops, op{Kind: "rect", X: x, Y: y, W: w, H: h, Style: style, Color: c, Alpha: r.alpha})
}

func (r *recorder) Line(x1, y1, x2, y2 float64) {
	r.ops = append(r.ops, op{Kind: "line", X: x1, Y: y1, W: x2 - x1, H: y2 - y1, Color: r.draw, Alpha: r.alpha})
}

func (r *recorder) Circle(x, y, rad float64, style string) {
	r.ops = append(r.ops, op{Kind: "circle", X: x, Y: y, W: rad, Style: style, Color: r.fill, Alpha: r.alpha})
}

func (r *recorder) Triangle(x1, y1, _, _, _, _ float64, style string) {
	r.ops = append(r.ops, op{Kind: "triangle", X: x1, Y: y1, Style: style, Color: r.fill, Alpha: r.alpha})
}

func (r *recorder) Text(x, y float64, s string, opt TextOptions) {
	if r.panicText != "" && s == r.panicText {
		panic("boom")
	}
	r.ops = append(r.ops, op{Kind: "text", X: x, Y: y, Text: s, Opt: opt, Font: r.font, Color: r.ink, Alpha: r.alpha})
}

func (r *recorder) TextWidth(s string) float64 {
	return measure(r.font.Size)(s)
}

func (r *recorder) Image(name string, _ []byte, x, y, w, h float64) {
	r.ops = append(r.ops, op{Kind: "image", Text: name, X: x, Y: y, W: w, H: h})
}

func (r *recorder) Link(x, y, w, h float64, url string) {
	r.ops = append(r.ops, op{Kind: "link", Text: url, X: x, Y: y, W: w, H: h})
}

func (r *recorder) SetMetadata(m Metadata) { r.meta = m }

func (r *recorder) Output(w io.Writer) error {
	if r.outErr != nil {
		return r.outErr
	}
	_, err := fmt.Fprintf(w, "%%PDF-recorded %d ops", len(r.ops))
	return err
}

// measure is the recorder's text metric at size points.
func measure(size float64) func(string) float64 {
	return func(s string) float64 {
		return float64(len([]rune(s))) * size * 0.5 / ptPerMM
	}
}

func (r *recorder) texts() []op {
	var out []op
	for _, o := range r.ops {
		if o.Kind == "text" {
			out = append(out, o)
		}
	}
	return out
}

func (r *recorder) find(text string) (op, bool) {
	for _, o := range r.texts() {
		if o.Text == text {
			return o, true
		}
	}
	return op{}, false
}

func (r *recorder) has(text string) bool {
	_, ok := r.find(text)
	return ok
}

func (r *recorder) hasPrefix(prefix string) bool {
	for _, o := range r.texts() {
		if strings.HasPrefix(o.Text, prefix) {
			return true
		}
	}
	return false
}

func (r *recorder) rotated() []op {
	var out []op
	for _, o := range r.texts() {
		if o.Opt.Angle != 0 {
			out = append(out, o)
		}
	}
	return out
}
