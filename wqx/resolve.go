package wqx

import (
	"strings"

	"github.com/nwqmc/wqp/wqperr"
)

// ResolveTableType inspects an HTTP response's status code and URL
// to determine which tabular schema applies to its payload. It is a
// precondition check performed before any tree traversal; it does
// not parse XML.
//
// Status codes outside [200,300) fail with a non-success-response
// error. URLs naming the /Station/search resource resolve to
// TableStation and /Result/search to TableResult; any other URL
// fails with an unrecognized-resource-type error. Failures are
// surfaced as explicit error values, never silently defaulted.
func ResolveTableType(statusCode int, url string) (TableType, error) {
	if statusCode < 200 || statusCode >= 300 {
		return 0, wqperr.NonSuccessResponse(statusCode, wqperr.WithMessage("the response is not OK"))
	}
	switch {
	case strings.Contains(url, "Station/search"):
		return TableStation, nil
	case strings.Contains(url, "Result/search"):
		return TableResult, nil
	}
	return 0, wqperr.UnrecognizedResourceType(url,
		wqperr.WithMessage("unable to determine table type from response URL"))
}
