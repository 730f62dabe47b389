// Package query renders Backand list options into the query-string dialect
// the /1/objects endpoints understand.
//
// Options are rendered strictly in the order they are given; the backend
// treats repeated keys as last-wins, so callers control precedence by
// ordering. The rendered string always begins with "?", even for an empty
// option list; that is what the service has always been sent, so it stays.
package query

import (
	"strings"

	"github.com/clok/kemba"
)

// A small debug helper
var localKemba = kemba.New("backand:query")

// Option is one query-string fragment. The set of implementations is closed;
// construct values through PageSize, PageNumber, Sort, Filters, Exclude,
// Deep, RelatedObjects, ReturnObject and Search.
type Option interface {
	// pair returns the key and the fully rendered (escaped where the wire
	// format wants escaping) value of the fragment.
	pair() (key string, value string)
}

// Encode renders opts into a query string: "?" followed by one key=value
// segment per option, "&"-joined, in input order. An empty or nil list
// yields a bare "?".
func Encode(opts []Option) string {
	k := localKemba.Extend("Encode")
	k.Printf("rendering %d option(s)", len(opts))

	var b strings.Builder
	b.WriteByte('?')
	for i, opt := range opts {
		if i > 0 {
			b.WriteByte('&')
		}
		key, value := opt.pair()
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(value)
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

// escape percent-encodes every byte outside the RFC 3986 unreserved set
// (letters, digits, "-", ".", "_", "~"). Unlike url.QueryEscape this never
// emits "+" for a space, and unlike url.PathEscape it does not wave
// sub-delims through; the backend decodes exactly this dialect.
func escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	return 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}
