package pdf

import (
	qrcode "github.com/skip2/go-qrcode"
)

const (
	qrSize    = 22.0
	qrPixels  = 256
	qrMargin  = 15.0
	qrBottom  = 55.0
	payPrompt = "Pay securely online"
)

// paymentBlock draws a QR code for the payment link above the footer band,
// with a clickable caption under it. A link that cannot be encoded still
// gets its caption.
func (r *renderer) paymentBlock() {
	link := r.doc.PaymentLink
	if link == "" {
		return
	}
	x := r.pageW - qrMargin - qrSize
	y := r.pageH - qrBottom
	if png, err := qrcode.Encode(link, qrcode.Medium, qrPixels); err == nil {
		r.s.Image("payment-qr", png, x, y, qrSize, qrSize)
	}

	r.font(familySans, styleNormal, 7)
	r.s.SetTextColor(r.colors.Medium)
	cy := y + qrSize + 4
	r.textCenter(x+qrSize/2, cy, payPrompt)
	w := r.s.TextWidth(payPrompt)
	r.s.Link(x+qrSize/2-w/2, cy-3, w, 4, link)
}
