package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// set of supported api header keys
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderRequestID     = "X-Request-Id"
	HeaderRequestOrigin = "X-Request-Origin"
)

// set of supported api media types
const (
	MediaTypeJSON = "application/json"
	MediaTypeCSV  = "text/csv"
)

// BearerToken formats the provided token as an Authorization header value
func BearerToken(token string) string {
	return "Bearer " + token
}

// RequestOptions are options to configure an *http.Request
type RequestOptions struct {
	Body        io.Reader
	ContentType string
	Query       map[string]string
}

// JSONRequestOptions returns RequestOptions configured to send the provided payload as JSON
func JSONRequestOptions(payload interface{}) (RequestOptions, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return RequestOptions{}, err
	}
	return RequestOptions{
		Body:        bytes.NewReader(body),
		ContentType: MediaTypeJSON,
	}, nil
}

// IncludeQuery adds the non-empty query parameters to the request's url
func IncludeQuery(req *http.Request, query map[string]string) {
	if len(query) == 0 {
		return
	}

	q := req.URL.Query()
	for key, value := range query {
		if value == "" {
			continue
		}
		q.Add(key, value)
	}
	req.URL.RawQuery = q.Encode()
}

// PathEscape escapes each path parameter and formats them into the provided pattern
func PathEscape(pattern string, params ...string) string {
	escaped := make([]interface{}, len(params))
	for i, param := range params {
		escaped[i] = url.PathEscape(param)
	}
	return fmt.Sprintf(pattern, escaped...)
}

// IsMediaType reports whether the response content type matches the provided media type,
// ignoring any parameters such as the charset
func IsMediaType(res *http.Response, mediaType string) bool {
	contentType := res.Header.Get(HeaderContentType)
	if idx := strings.IndexByte(contentType, ';'); idx != -1 {
		contentType = contentType[:idx]
	}
	return strings.EqualFold(strings.TrimSpace(contentType), mediaType)
}
