// Package resource declares, per resource family, what the generic CRUD
// machinery is allowed to touch: the fields a create must carry, the query
// parameters a list may filter on, and the columns an update may write.
// Client payloads never reach SQL except through these allow-lists.
package resource

import (
	"net/url"
	"strconv"

	"github.com/accordflow/engine/internal/repository"
)

// Filter maps a query parameter to a column. Substring filters compile to
// ILIKE '%v%', everything else to exact match.
type Filter struct {
	Param     string
	Column    string
	Substring bool
}

// Definition describes one resource family.
type Definition struct {
	// Singular is used in client-facing messages ("contract not found").
	Singular string
	// Path is the route segment under /api.
	Path string
	// Required lists the JSON keys a create payload must carry non-null.
	Required []string
	// Filters are the list query parameters this resource supports.
	Filters []Filter
	// Updatable is the explicit column allow-list for partial updates.
	// id and created_at are never listed.
	Updatable []string

	updatable map[string]struct{}
}

// New finalizes a Definition, building the allow-list lookup.
func New(d Definition) Definition {
	d.updatable = make(map[string]struct{}, len(d.Updatable))
	for _, c := range d.Updatable {
		d.updatable[c] = struct{}{}
	}
	return d
}

// IsUpdatable reports whether clients may write the named column.
func (d Definition) IsUpdatable(column string) bool {
	_, ok := d.updatable[column]
	return ok
}

// ListOptions resolves the supported filters plus limit/offset from a query
// string. Unknown parameters are ignored; malformed pagination values fall
// back to unpaginated.
func (d Definition) ListOptions(q url.Values) repository.ListOptions {
	var opts repository.ListOptions
	for _, f := range d.Filters {
		if v := q.Get(f.Param); v != "" {
			opts.Conditions = append(opts.Conditions, repository.Condition{
				Column:    f.Column,
				Value:     v,
				Substring: f.Substring,
			})
		}
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		opts.Limit = v
	}
	if v, err := strconv.Atoi(q.Get("offset")); err == nil && v > 0 {
		opts.Offset = v
	}
	return opts
}
