package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignatureHeader carries the processor's hex HMAC-SHA256 of the raw body.
const SignatureHeader = "X-Payment-Signature"

const (
	EventPaymentSucceeded = "payment.succeeded"
	EventPaymentFailed    = "payment.failed"
)

// WebhookEvent is the shape the payment processor posts on payment
// completion. Unknown event types are acknowledged and ignored.
type WebhookEvent struct {
	Type       string `json:"type"`
	OrderID    string `json:"orderId"`
	PaymentRef string `json:"paymentRef"`
	Amount     int    `json:"amount"`
}

// VerifySignature checks the processor's signature over the raw request
// body. Comparison is constant-time.
func VerifySignature(body []byte, signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

// Sign computes the signature a processor would send; used by tests and
// local tooling.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
