// Package wqx maps WQX (Water Quality XML) documents onto their
// canonical tabular form.
//
// The canonical tabular form of WQX data is a sequence of named
// columns. It is the shape of the Water Quality Portal CSV and TSV
// downloads, and the basis for importing WQX into a dataframe. Each
// column maps uniquely to a particular semantic data definition; the
// definitive statement of those definitions is the WQX schema, so the
// tabular mapping preserves them completely.
//
// The core structure of the mapping is four kinds of logical XML
// nodes:
//
//	Organization
//	MonitoringLocation
//	Activity
//	Result
//
// Organization nodes contain MonitoringLocation and Activity
// nodesets; Activity nodes contain Result nodesets; neither
// MonitoringLocation nor Result nodes contain logical descendants.
// The presence of a MonitoringLocation node (for station data) or a
// Result node (for result data) corresponds to one data row in the
// tabular form.
//
// Two kinds of XPath expression drive the walk. A nodeset expression
// selects context nodes: the Organization expression is absolute,
// MonitoringLocation and Activity expressions are relative to a
// single Organization node, and the Result expression is relative to
// a single Activity node. A column value expression selects the
// value for an individual column within the context of the current
// logical node.
//
// All expressions live in a Registry constructed once by NewRegistry,
// which compiles and cross-checks them. The Registry is immutable
// after construction and safe for concurrent use by any number of
// Mapper invocations on different documents.
//
// The tabular form is sparse by design: a row carries an empty string
// for any column whose data item is not present in the XML. No data
// type coercion is performed; every extracted value is a string.
package wqx
