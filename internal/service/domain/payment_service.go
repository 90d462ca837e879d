package domain

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const qrSize = 256

type PaymentService interface {
	PaymentURI(payerName string, amount int) string
	QRPNG(text string) ([]byte, error)
	DataURI(png []byte) string
	PayeeID() string
}

type paymentService struct {
	payeeID  string
	currency string
}

var _ PaymentService = (*paymentService)(nil)

func NewPaymentService(payeeID string) *paymentService {
	return &paymentService{
		payeeID:  payeeID,
		currency: "INR",
	}
}

// PaymentURI builds the UPI intent link. Payment apps expect exactly this
// parameter set in exactly this order (pa, pn, am, cu), so the query string
// is assembled by hand; url.Values.Encode would alphabetize the keys.
// The payee VPA is operator configuration and goes in verbatim ("@" stays
// readable); only the user-supplied name is escaped.
func (s *paymentService) PaymentURI(payerName string, amount int) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%d&cu=%s",
		s.payeeID,
		queryEscape(payerName),
		amount,
		s.currency,
	)
}

// QRPNG encodes text as a QR code PNG. Same text, same image.
func (s *paymentService) QRPNG(text string) ([]byte, error) {
	png, err := qrcode.Encode(text, qrcode.Medium, qrSize)
	if err != nil {
		return nil, err
	}
	return png, nil
}

// DataURI wraps PNG bytes for direct embedding in an <img> tag.
func (s *paymentService) DataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}

func (s *paymentService) PayeeID() string {
	return s.payeeID
}

// queryEscape percent-encodes a query value. Spaces become %20, not +,
// since UPI scanners treat the link as a URI rather than a form post.
func queryEscape(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}
