package ig

import "net/http"

// Headers is the constant header set sent with every request. It is never
// mutated after construction; per-request values are layered on in Compose.
type Headers struct {
	base map[string]string
}

func DefaultHeaders(langCode string) Headers {
	if langCode == "" {
		langCode = "en-US"
	}
	return NewHeaders(map[string]string{
		"User-Agent":           "Instagram 305.0.0.32.115 Android",
		"Content-Type":         "application/x-www-form-urlencoded; charset=UTF-8",
		"X-IG-App-ID":          "567067343352427",
		"X-IG-Capabilities":    "3brTvx8=",
		"X-IG-Connection-Type": "WIFI",
		"Accept-Language":      langCode,
	})
}

func NewHeaders(base map[string]string) Headers {
	cp := make(map[string]string, len(base))
	for k, v := range base {
		cp[http.CanonicalHeaderKey(k)] = v
	}
	return Headers{base: cp}
}

// Get returns a base header value.
func (h Headers) Get(key string) string {
	return h.base[http.CanonicalHeaderKey(key)]
}

// Compose builds a fresh http.Header from the base set and overrides.
// Overrides win; empty override values are skipped.
func (h Headers) Compose(overrides map[string]string) http.Header {
	out := make(http.Header, len(h.base)+len(overrides))
	for k, v := range h.base {
		out.Set(k, v)
	}
	for k, v := range overrides {
		if v == "" {
			continue
		}
		out.Set(k, v)
	}
	return out
}
