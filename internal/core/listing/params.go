// Package listing turns raw request parameters into a normalized listing
// description: filter clauses, sort keys, a projection allow-list and
// pagination. It is storage-agnostic; the mongo adapter translates the
// result into an executable query.
package listing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmaia/sweetshop/internal/core/serviceerrors"
)

type Op string

const (
	OpEq  Op = "eq"
	OpGT  Op = "gt"
	OpGTE Op = "gte"
	OpLT  Op = "lt"
	OpLTE Op = "lte"
)

const (
	DefaultPage  = 1
	DefaultLimit = 100

	// DefaultSortField orders list results newest first when no sort is
	// requested. Storage order is never relied upon.
	DefaultSortField = "creationDate"
)

// reserved control parameters; everything else is a filter clause.
var reserved = map[string]bool{
	"page":   true,
	"sort":   true,
	"limit":  true,
	"fields": true,
}

var validOps = map[Op]bool{OpGT: true, OpGTE: true, OpLT: true, OpLTE: true}

type Filter struct {
	Field string
	Op    Op
	Value any
}

type SortKey struct {
	Field string
	Desc  bool
}

type Params struct {
	Filters []Filter
	Sort    []SortKey
	Fields  []string
	Page    int64
	Limit   int64
}

func (p Params) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

// Parse normalizes a raw parameter mapping. Comparison operators are
// written in suffix style, e.g. price[gte]=200. Malformed input is rejected
// here, before any query is built.
func Parse(raw map[string]string) (Params, error) {
	params := Params{Page: DefaultPage, Limit: DefaultLimit}

	for key, value := range raw {
		if reserved[key] {
			continue
		}
		filter, err := parseFilter(key, value)
		if err != nil {
			return Params{}, err
		}
		params.Filters = append(params.Filters, filter)
	}

	if sort, ok := raw["sort"]; ok && sort != "" {
		params.Sort = parseSort(sort)
	}
	if len(params.Sort) == 0 {
		params.Sort = []SortKey{{Field: DefaultSortField, Desc: true}}
	}

	if fields, ok := raw["fields"]; ok && fields != "" {
		for _, field := range strings.Split(fields, ",") {
			if field = strings.TrimSpace(field); field != "" {
				params.Fields = append(params.Fields, field)
			}
		}
	}

	var err error
	if params.Page, err = parsePositiveInt(raw, "page", DefaultPage); err != nil {
		return Params{}, err
	}
	if params.Limit, err = parsePositiveInt(raw, "limit", DefaultLimit); err != nil {
		return Params{}, err
	}

	return params, nil
}

func parseFilter(key, value string) (Filter, error) {
	field, op := key, OpEq

	if open := strings.IndexByte(key, '['); open > 0 {
		if !strings.HasSuffix(key, "]") {
			return Filter{}, serviceerrors.NewInvalidRequestError(fmt.Sprintf("malformed filter parameter %q", key))
		}
		field = key[:open]
		op = Op(key[open+1 : len(key)-1])
		if !validOps[op] {
			return Filter{}, serviceerrors.NewInvalidRequestError(fmt.Sprintf("unsupported filter operator %q", op))
		}
	}

	return Filter{Field: field, Op: op, Value: coerce(value)}, nil
}

// coerce keeps numeric filter values numeric so comparison operators work
// against number-typed fields.
func coerce(value string) any {
	if number, err := strconv.ParseFloat(value, 64); err == nil {
		return number
	}
	if value == "true" || value == "false" {
		return value == "true"
	}
	return value
}

func parseSort(sort string) []SortKey {
	var keys []SortKey
	for _, field := range strings.Split(sort, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if strings.HasPrefix(field, "-") {
			keys = append(keys, SortKey{Field: field[1:], Desc: true})
		} else {
			keys = append(keys, SortKey{Field: field})
		}
	}
	return keys
}

func parsePositiveInt(raw map[string]string, key string, fallback int64) (int64, error) {
	value, ok := raw[key]
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed < 1 {
		return 0, serviceerrors.NewInvalidRequestError(fmt.Sprintf("%s must be a positive integer", key))
	}
	return parsed, nil
}
