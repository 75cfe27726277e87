package pdf

const (
	watermarkSize  = 60.0
	watermarkAngle = 45.0
	watermarkAlpha = 0.1
)

// watermark stamps the type's cautionary label diagonally across the middle
// of the page. Opacity is restored before returning.
func (r *renderer) watermark(family string) {
	wm, ok := WatermarkFor(r.doc.InvoiceType.OrSales())
	if !ok {
		return
	}
	r.s.SetAlpha(watermarkAlpha)
	r.font(family, styleBold, watermarkSize)
	r.s.SetTextColor(wm.Color)
	x := (r.pageW - r.s.TextWidth(wm.Text)) / 2
	r.s.Text(x, r.pageH/2, wm.Text, TextOptions{Angle: watermarkAngle})
	r.s.SetAlpha(1)
}
