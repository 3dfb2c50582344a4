package wqx

import (
	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"

	"github.com/nwqmc/wqp/wqperr"
)

// Registry holds the compiled, cross-checked WQX tabular mapping. It
// is built once by NewRegistry and is read-only thereafter; a single
// Registry may drive any number of concurrent mappings.
type Registry struct {
	contexts map[ContextKind]*xpath.Expr
	columns  map[TableType][]string
	paths    map[ContextKind]map[string]string
	values   map[ContextKind]map[string]*xpath.Expr
	// scopes lists the context kinds admitted for each table type,
	// shallowest first. Merge order follows this: a deeper scope's
	// value wins any accidental key overlap.
	scopes map[TableType][]ContextKind
}

// NewRegistry compiles the static mapping assets and validates them.
//
// Construction fails if any nodeset or column value expression does
// not compile, if a table type's column sequence contains a
// duplicate name, or if a schema column does not resolve to exactly
// one value path among the context kinds admitted for its table
// type. Any such error indicates a corrupt static asset and must
// abort initialization; it is never recovered from.
func NewRegistry() (*Registry, error) {
	r := &Registry{
		contexts: make(map[ContextKind]*xpath.Expr, len(contextExprs)),
		columns:  tableColumns,
		paths:    kindPaths,
		values:   make(map[ContextKind]map[string]*xpath.Expr, len(kindPaths)),
		scopes:   make(map[TableType][]ContextKind, len(tableColumns)),
	}

	for kind, expr := range contextExprs {
		compiled, err := xpath.Compile(expr)
		if err != nil {
			return nil, errors.Wrapf(wqperr.BadExpression(kind.String(), wqperr.WithCause(err)),
				"compiling %s nodeset expression %q", kind, expr)
		}
		r.contexts[kind] = compiled
	}

	for kind, cols := range kindPaths {
		values := make(map[string]*xpath.Expr, len(cols))
		for column, path := range cols {
			// select the text child nodes so that empty elements
			// contribute nothing to the merged value
			compiled, err := xpath.Compile(path + "/text()")
			if err != nil {
				return nil, errors.Wrapf(wqperr.BadExpression(column, wqperr.WithCause(err)),
					"compiling %s value expression %q", kind, path)
			}
			values[column] = compiled
		}
		r.values[kind] = values
	}

	for table := range tableColumns {
		scopes := admittedScopes(table)
		r.scopes[table] = scopes
		if err := r.validate(table, scopes); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// admittedScopes returns the context kinds whose column scopes may
// contribute to a table type, ordered shallowest first. A kind is
// admitted unless the table type's exclusion rule names it.
func admittedScopes(table TableType) []ContextKind {
	excluded := make(map[ContextKind]bool)
	for _, kind := range contextExclusions[table] {
		excluded[kind] = true
	}
	var scopes []ContextKind
	for _, kind := range []ContextKind{KindOrg, KindStation, KindActivity, KindResult} {
		if !excluded[kind] {
			scopes = append(scopes, kind)
		}
	}
	return scopes
}

func (r *Registry) validate(table TableType, scopes []ContextKind) error {
	seen := make(map[string]bool, len(r.columns[table]))
	for _, column := range r.columns[table] {
		if seen[column] {
			return wqperr.DuplicateColumn(table.String(), column)
		}
		seen[column] = true

		matches := 0
		for _, kind := range scopes {
			if _, ok := r.paths[kind][column]; ok {
				matches++
			}
		}
		switch {
		case matches == 0:
			return wqperr.UnresolvableColumn(table.String(), column,
				wqperr.WithMessage("no value path in any admitted scope"))
		case matches > 1:
			return wqperr.AmbiguousColumn(table.String(), column,
				wqperr.WithMessage("value path found in more than one admitted scope"))
		}
	}
	return nil
}

// Columns returns the ordered column names defining output column
// order and completeness for the given table type. The returned
// slice is shared and must not be modified.
func (r *Registry) Columns(table TableType) ([]string, error) {
	cols, ok := r.columns[table]
	if !ok {
		return nil, wqperr.UnknownTableType(table.String())
	}
	return cols, nil
}

// Path returns the relative value path mapped to column within the
// scope of the given context kind.
func (r *Registry) Path(kind ContextKind, column string) (string, error) {
	path, ok := r.paths[kind][column]
	if !ok {
		return "", wqperr.UnknownColumn(column,
			wqperr.WithMessage("no mapping in "+kind.String()+" scope"))
	}
	return path, nil
}

// Scopes returns the context kinds admitted for the given table
// type, shallowest first.
func (r *Registry) Scopes(table TableType) ([]ContextKind, error) {
	scopes, ok := r.scopes[table]
	if !ok {
		return nil, wqperr.UnknownTableType(table.String())
	}
	return scopes, nil
}

// Children returns the nodeset of the given kind scoped to node, in
// document order. Document order determines row order in the final
// table and is preserved exactly: no normalization, filtering or
// deduplication is performed. For KindOrg, node must be the parsed
// document; for KindStation and KindActivity an org node; for
// KindResult an activity node.
func (r *Registry) Children(node *xmlquery.Node, kind ContextKind) []*xmlquery.Node {
	return xmlquery.QuerySelectorAll(node, r.contexts[kind])
}
