package query

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Order is a sort direction.
type Order string

const (
	OrderAscending  Order = "asc"
	OrderDescending Order = "desc"
)

// Sorter orders a list call by one field.
type Sorter struct {
	FieldName string `json:"fieldName"`
	Order     Order  `json:"order"`
}

// Ascending is shorthand for a Sorter on field in ascending order.
func Ascending(field string) Sorter {
	return Sorter{FieldName: field, Order: OrderAscending}
}

// Descending is shorthand for a Sorter on field in descending order.
func Descending(field string) Sorter {
	return Sorter{FieldName: field, Order: OrderDescending}
}

type sortOpt []Sorter

func (o sortOpt) pair() (string, string) {
	raw, err := json.Marshal([]Sorter(o))
	if err != nil {
		panic(fmt.Sprintf("backand/query: cannot marshal sorter list: %v", err))
	}
	return "sort", escape(string(raw))
}

// Sort renders the given sorters as a JSON array on the sort key,
// percent-encoded for the query string. Sorter order is significant: the
// backend applies them left to right.
func Sort(sorters ...Sorter) Option {
	return sortOpt(sorters)
}
