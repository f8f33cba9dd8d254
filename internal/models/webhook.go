package models

import "encoding/json"

// WebhookPayload represents a Sanity webhook delivery. The payload shape has
// changed across CMS versions and webhook configurations, so the slug field
// is kept raw and decoded defensively (see SlugValue).
type WebhookPayload struct {
	Type         string          `json:"_type"`
	DocumentType string          `json:"documentType"`
	ID           string          `json:"_id,omitempty"`
	Slug         json.RawMessage `json:"slug,omitempty"`
	Operation    string          `json:"operation,omitempty"` // create, update, delete
}

// DocType returns the document type discriminator, preferring the GROQ
// projection field over the raw document _type.
func (p *WebhookPayload) DocType() string {
	if p.DocumentType != "" {
		return p.DocumentType
	}
	return p.Type
}

// slugObject matches the object encodings of the slug field.
type slugObject struct {
	Type    string `json:"_type,omitempty"`
	Current string `json:"current,omitempty"`
}

// SlugValue extracts the slug from the three shapes observed in the wild:
// a bare string, {"current": "x"} and {"_type": "slug", "current": "x"}.
// Any other shape yields the empty string; it never fails.
func (p *WebhookPayload) SlugValue() string {
	if len(p.Slug) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(p.Slug, &s); err == nil {
		return s
	}

	var obj slugObject
	if err := json.Unmarshal(p.Slug, &obj); err == nil {
		return obj.Current
	}

	return ""
}

// RevalidationRule describes what must be invalidated when a document of a
// given type changes: a set of cache tags, plus an optional URL path prefix
// for content types with routed detail pages.
type RevalidationRule struct {
	Tags       []string
	PathPrefix string
}

// RevalidateResponse is the webhook endpoint response body
type RevalidateResponse struct {
	Revalidated bool     `json:"revalidated"`
	Type        string   `json:"type,omitempty"`
	Slug        string   `json:"slug,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Message     string   `json:"message,omitempty"`
}
