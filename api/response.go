package api

import (
	"net/http"

	"github.com/tidwall/gjson"
)

// RawResponse is what a transport hands back: the status line, the response
// headers and the undecoded body. Interpretation (2xx or not, JSON or not)
// is the client's job, so a custom transport cannot skip it.
type RawResponse struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// OK reports whether the status code is in the 2xx range.
func (r *RawResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// AccessToken pulls the OAuth access token out of a sign-in response body.
// The second result is false when the body carries none.
func AccessToken(body []byte) (string, bool) {
	tok := gjson.GetBytes(body, "access_token")
	if !tok.Exists() || tok.String() == "" {
		return "", false
	}
	return tok.String(), true
}

// SignUpToken pulls the token a sign-up response may carry.
func SignUpToken(body []byte) (string, bool) {
	tok := gjson.GetBytes(body, "token")
	if !tok.Exists() || tok.String() == "" {
		return "", false
	}
	return tok.String(), true
}

// ErrorMessage digs a human-readable message out of an error body. The token
// service answers with OAuth-style error/error_description pairs, the REST
// tree with a message field; either way the most specific non-empty one wins.
// Returns "" when the body has none of them (or is not JSON at all).
func ErrorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	for _, path := range []string{"error_description", "message", "error"} {
		if msg := gjson.GetBytes(body, path); msg.Exists() && msg.String() != "" {
			return msg.String()
		}
	}
	return ""
}
