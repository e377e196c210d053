package ig

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
)

const (
	// SignatureKey is the shared secret the login endpoint expects signed bodies to use.
	SignatureKey = "5ad94d2b36f6a347f0fbd4e9ce0e3e4d"
	// SignatureKeyVersion is sent alongside the signed body as ig_sig_key_version.
	SignatureKeyVersion = "4"
)

// SignedEnvelope is the transport wrapper for a signed login payload.
type SignedEnvelope struct {
	SignedBody string
	KeyVersion string
}

// Sign computes hex(HMAC-SHA256(key, payload)) and packs it as "<hash>.<payload>".
func Sign(payload, key string) SignedEnvelope {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(payload))
	hash := hex.EncodeToString(mac.Sum(nil))

	return SignedEnvelope{
		SignedBody: hash + "." + payload,
		KeyVersion: SignatureKeyVersion,
	}
}

// Form returns the envelope as the form fields the login endpoint reads.
func (e SignedEnvelope) Form() url.Values {
	form := url.Values{}
	form.Set("signed_body", e.SignedBody)
	form.Set("ig_sig_key_version", e.KeyVersion)
	return form
}
