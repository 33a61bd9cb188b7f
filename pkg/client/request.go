package client

import (
	"net/http"
	"strings"
)

type ContentType string

const (
	FormContentType ContentType = "application/x-www-form-urlencoded"
	JSONContentType ContentType = "application/json"
)

// SignedRequest is a request ready to be handed to a Session. Header
// carries the OAuth Authorization header and, when there is a body, its
// Content-Type.
type SignedRequest struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// appendQuery adds an already encoded query string to rawURL.
func appendQuery(rawURL, query string) string {
	if query == "" {
		return rawURL
	}
	if strings.Contains(rawURL, "?") {
		return rawURL + "&" + query
	}
	return rawURL + "?" + query
}
