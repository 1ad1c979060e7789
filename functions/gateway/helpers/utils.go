package helpers

import "strings"

// FirstNonEmpty returns the first value that is not the empty string. It
// returns "" only when every value is empty.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// HeaderValue does a case-insensitive lookup. API Gateway v2 lowercases
// header names, requests built by hand often don't.
func HeaderValue(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
