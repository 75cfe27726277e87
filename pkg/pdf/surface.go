package pdf

import (
	"io"
	"strings"
)

// Shape styles accepted by Rect, Circle and Triangle.
const (
	StyleFill       = "F"
	StyleStroke     = "D"
	StyleFillStroke = "FD"
)

// Align is the horizontal anchor of a text run relative to its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// TextOptions tweaks a single Text call. Angle is in degrees, counter-clockwise.
type TextOptions struct {
	Align Align
	Angle float64
}

// Metadata is written into the document information dictionary.
type Metadata struct {
	Title    string
	Subject  string
	Author   string
	Keywords string
	Creator  string
}

// Surface is the page-drawing primitive set every layout is written against.
// Coordinates are millimetres from the top-left corner of the single page.
type Surface interface {
	PageSize() (w, h float64)

	SetFillColor(c RGB)
	SetTextColor(c RGB)
	SetDrawColor(c RGB)
	SetLineWidth(w float64)
	SetFont(family, style string, size float64)
	SetAlpha(alpha float64)

	Rect(x, y, w, h float64, style string)
	Line(x1, y1, x2, y2 float64)
	Circle(x, y, r float64, style string)
	Triangle(x1, y1, x2, y2, x3, y3 float64, style string)

	Text(x, y float64, s string, opt TextOptions)
	TextWidth(s string) float64

	Image(name string, png []byte, x, y, w, h float64)
	Link(x, y, w, h float64, url string)

	SetMetadata(m Metadata)
	Output(w io.Writer) error
}

// wrapText breaks s into lines no wider than width, measuring with the
// current font. Explicit newlines always break. A word wider than width is
// split between characters. An empty string yields a single empty line.
func wrapText(measure func(string) float64, s string, width float64) []string {
	var out []string
	for _, para := range strings.Split(strings.ReplaceAll(s, "\r", ""), "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, word := range words {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if measure(candidate) <= width {
				line = candidate
				continue
			}
			if line != "" {
				out = append(out, line)
				line = ""
			}
			for measure(word) > width && len([]rune(word)) > 1 {
				head, tail := splitWord(measure, word, width)
				out = append(out, head)
				word = tail
			}
			line = word
		}
		out = append(out, line)
	}
	return out
}

func splitWord(measure func(string) float64, word string, width float64) (string, string) {
	runes := []rune(word)
	n := 1
	for n < len(runes) && measure(string(runes[:n+1])) <= width {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}
