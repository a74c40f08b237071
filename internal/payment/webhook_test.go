package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"type":"payment.succeeded","orderId":"ord-1"}`)
	secret := "whsec_test"

	sig := Sign(body, secret)

	assert.True(t, VerifySignature(body, sig, secret))
	assert.False(t, VerifySignature(body, sig, "other-secret"))
	assert.False(t, VerifySignature([]byte(`{"tampered":true}`), sig, secret))
	assert.False(t, VerifySignature(body, "deadbeef", secret))
}

func TestVerifySignature_EmptyInputs(t *testing.T) {
	body := []byte("{}")

	assert.False(t, VerifySignature(body, "", "secret"))
	assert.False(t, VerifySignature(body, Sign(body, "secret"), ""))
}
