package query

import "strings"

// ExcludeKind names a response section the backend can leave out of a list
// response.
type ExcludeKind string

const (
	// ExcludeMetadata drops each item's __metadata envelope.
	ExcludeMetadata ExcludeKind = "metadata"
	// ExcludeTotalRows skips the (potentially expensive) totalRows count.
	ExcludeTotalRows ExcludeKind = "totalRows"
)

type excludeOpt []ExcludeKind

func (o excludeOpt) pair() (string, string) {
	parts := make([]string, len(o))
	for i, kind := range o {
		parts[i] = string(kind)
	}
	// Exclude is the one list value that goes out raw: the backend splits on
	// the literal comma and never percent-decodes it.
	return "exclude", strings.Join(parts, ",")
}

// Exclude renders the kinds as a comma-joined list on the exclude key.
func Exclude(kinds ...ExcludeKind) Option {
	return excludeOpt(kinds)
}
