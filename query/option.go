package query

import "strconv"

// intOpt covers the two paging knobs.
type intOpt struct {
	key string
	n   int
}

func (o intOpt) pair() (string, string) {
	return o.key, strconv.Itoa(o.n)
}

// PageSize limits how many items a list call returns.
func PageSize(n int) Option {
	return intOpt{key: "pageSize", n: n}
}

// PageNumber selects the 1-based page of a list call.
func PageNumber(n int) Option {
	return intOpt{key: "pageNumber", n: n}
}

// boolOpt renders as the canonical lowercase bool text.
type boolOpt struct {
	key string
	v   bool
}

func (o boolOpt) pair() (string, string) {
	return o.key, strconv.FormatBool(o.v)
}

// Deep asks the backend to inline related objects instead of returning
// collection stubs.
func Deep(v bool) Option {
	return boolOpt{key: "deep", v: v}
}

// RelatedObjects toggles whether one-to-many collections appear at all.
func RelatedObjects(v bool) Option {
	return boolOpt{key: "relatedObjects", v: v}
}

// ReturnObject makes mutating calls echo the stored object back.
func ReturnObject(v bool) Option {
	return boolOpt{key: "returnObject", v: v}
}

// searchOpt carries the term verbatim.
type searchOpt string

func (o searchOpt) pair() (string, string) {
	return "search", string(o)
}

// Search renders as search=<term> with the term NOT percent-encoded; the
// service has always received it raw. Callers that need reserved characters
// in a term must pre-encode it themselves.
func Search(term string) Option {
	return searchOpt(term)
}
