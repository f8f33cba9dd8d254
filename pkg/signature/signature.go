package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// Verify checks that a webhook body was signed with the shared secret.
//
// The signature header is either a bare base64-encoded HMAC-SHA256 digest or
// the composite "t=<timestamp>,v1=<signature>" format used by newer Sanity
// webhook deliveries, from which the v1 component is extracted.
//
// Verification happens on the raw body bytes, before any JSON parsing:
// re-serialization is not guaranteed to be byte-identical, so the caller must
// pass the body exactly as received.
//
// Verify never panics and never returns an error: any malformed header,
// missing secret, or mismatch yields false. Callers treat false as "reject
// with 401" and must not echo the computed digest back to the sender.
func Verify(rawBody []byte, signatureHeader, secret string) bool {
	if secret == "" || signatureHeader == "" {
		return false
	}

	provided := extractSignature(signatureHeader)
	if provided == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(provided))
}

// Sign computes the base64-encoded HMAC-SHA256 digest of body. Used by tests
// and by local tooling that simulates webhook deliveries.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// extractSignature pulls the digest out of the header value. Supports both
// the bare digest and the "t=...,v1=..." composite format.
func extractSignature(header string) string {
	if !strings.Contains(header, "=") || !strings.Contains(header, ",") {
		return header
	}

	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if v, ok := strings.CutPrefix(part, "v1="); ok {
			return v
		}
	}

	// No v1 component in a composite header
	return ""
}
