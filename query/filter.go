package query

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/thoas/go-funk"
)

// Operator names one of the comparison kinds the filter endpoint accepts.
type Operator string

const (
	OperatorEquals                Operator = "equals"
	OperatorNotEquals             Operator = "notEquals"
	OperatorGreaterThan           Operator = "greaterThan"
	OperatorGreaterThanOrEqualsTo Operator = "greaterThanOrEqualsTo"
	OperatorLessThan              Operator = "lessThan"
	OperatorLessThanOrEqualsTo    Operator = "lessThanOrEqualsTo"
	OperatorEmpty                 Operator = "empty"
	OperatorNotEmpty              Operator = "notEmpty"
	OperatorStartsWith            Operator = "startsWith"
	OperatorEndsWith              Operator = "endsWith"
	OperatorContains              Operator = "contains"
	OperatorNotContains           Operator = "notContains"
	OperatorIn                    Operator = "in"
)

// Operators returns every comparison kind the backend understands.
func Operators() []Operator {
	return []Operator{
		OperatorEquals, OperatorNotEquals,
		OperatorGreaterThan, OperatorGreaterThanOrEqualsTo,
		OperatorLessThan, OperatorLessThanOrEqualsTo,
		OperatorEmpty, OperatorNotEmpty,
		OperatorStartsWith, OperatorEndsWith,
		OperatorContains, OperatorNotContains,
		OperatorIn,
	}
}

// Filter is one fieldName/operator/value predicate. Value may be any
// JSON-serializable value; the backend compares it against the field.
// FieldName must not be empty.
type Filter struct {
	FieldName string   `json:"fieldName"`
	Operator  Operator `json:"operator"`
	Value     any      `json:"value"`
}

// Where builds a Filter and validates it eagerly. An empty field name or an
// operator outside Operators() is a caller bug, so it panics rather than
// smuggling a bad predicate onto the wire.
func Where(field string, op Operator, value any) Filter {
	if field == "" {
		panic("backand/query: filter field name must not be empty")
	}
	if !funk.Contains(Operators(), op) {
		panic(fmt.Sprintf("backand/query: unknown filter operator %q", op))
	}
	return Filter{FieldName: field, Operator: op, Value: value}
}

type filterOpt []Filter

var filterKemba = localKemba.Extend("Filters")

func (o filterOpt) pair() (string, string) {
	for _, f := range o {
		if f.FieldName == "" {
			panic("backand/query: filter field name must not be empty")
		}
	}
	raw, err := json.Marshal([]Filter(o))
	if err != nil {
		// Value wasn't JSON-serializable. That is not a runtime condition,
		// it's a broken call site.
		panic(fmt.Sprintf("backand/query: cannot marshal filter list: %v", err))
	}
	filterKemba.Printf("filter payload: %s", raw)
	return "filter", escape(string(raw))
}

// Filters renders the given predicates as a JSON array on the filter key,
// percent-encoded for the query string.
func Filters(filters ...Filter) Option {
	return filterOpt(filters)
}
