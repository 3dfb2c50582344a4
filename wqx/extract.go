package wqx

import (
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// extract evaluates each column's value expression against the
// context node, producing a fragment keyed by column name.
//
// A column's value is the merge of the text of every descendant node
// its expression matches: a single-space delimited concatenation in
// document order. Multiple matches mean the source held multiple
// sibling nodes with non-empty text; they are merged, never treated
// as ambiguous. Zero matches yield the empty string. Extraction
// never fails.
func extract(node *xmlquery.Node, values map[string]*xpath.Expr) map[string]string {
	fragment := make(map[string]string, len(values))
	for column, expr := range values {
		matches := xmlquery.QuerySelectorAll(node, expr)
		switch len(matches) {
		case 0:
			fragment[column] = ""
		case 1:
			fragment[column] = matches[0].Data
		default:
			texts := make([]string, len(matches))
			for i, m := range matches {
				texts[i] = m.Data
			}
			fragment[column] = strings.Join(texts, " ")
		}
	}
	return fragment
}
