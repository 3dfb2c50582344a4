package wqperr

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

// Kind classifies a WQP error by the stage at which it occurred
type Kind int

const (
	// KindSchema is a construction-time error indicating a corrupt
	// static mapping asset. Schema errors are fatal: they signal a
	// broken build and must abort initialization.
	KindSchema Kind = iota
	// KindPrecondition is a per-call precondition failure, surfaced
	// to the caller as an explicit error value and never silently
	// defaulted.
	KindPrecondition
	// KindTransport is an error at the HTTP client layer
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindSchema:
		return "schema"
	case KindPrecondition:
		return "precondition"
	case KindTransport:
		return "transport"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "schema":
		*k = KindSchema
	case "precondition":
		*k = KindPrecondition
	case "transport":
		*k = KindTransport
	default:
		return errors.New("unknown value")
	}
	return nil
}

// Error represents a structured WQP error.
//
// Tag identifies the failure condition; the remaining fields carry
// the offending inputs for the conditions that have them.
type Error struct {
	Kind       Kind   `json:"error-kind"`
	Tag        string `json:"error-tag"`
	Column     string `json:"column,omitempty"`
	TableType  string `json:"table-type,omitempty"`
	Parameter  string `json:"parameter,omitempty"`
	URL        string `json:"url,omitempty"`
	StatusCode int    `json:"status-code,omitempty"`
	Message    string `json:"error-message,omitempty"`

	cause error
}

func (e Error) Error() string {
	s := fmt.Sprintf("%s error tag:%s", e.Kind, e.Tag)
	if e.Column != "" {
		s += " column:" + e.Column
	}
	if e.TableType != "" {
		s += " table-type:" + e.TableType
	}
	if e.Parameter != "" {
		s += " parameter:" + e.Parameter
	}
	if e.StatusCode != 0 {
		s += " status:" + strconv.Itoa(e.StatusCode)
	}
	if e.URL != "" {
		s += " url:" + e.URL
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	return s
}

// Unwrap returns the wrapped cause, if any
func (e Error) Unwrap() error { return e.cause }

// IsKind reports whether err is (or wraps) an Error of kind k
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// HasTag reports whether err is (or wraps) an Error carrying tag
func HasTag(err error, tag string) bool {
	var e *Error
	return errors.As(err, &e) && e.Tag == tag
}

func DuplicateColumn(tableType, column string, opts ...Option) *Error {
	e := &Error{Kind: KindSchema, Tag: "duplicate-column", TableType: tableType, Column: column}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func AmbiguousColumn(tableType, column string, opts ...Option) *Error {
	e := &Error{Kind: KindSchema, Tag: "ambiguous-column", TableType: tableType, Column: column}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func UnresolvableColumn(tableType, column string, opts ...Option) *Error {
	e := &Error{Kind: KindSchema, Tag: "unresolvable-column", TableType: tableType, Column: column}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func BadExpression(column string, opts ...Option) *Error {
	e := &Error{Kind: KindSchema, Tag: "bad-expression", Column: column}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func UnknownTableType(tableType string, opts ...Option) *Error {
	e := &Error{Kind: KindPrecondition, Tag: "unknown-table-type", TableType: tableType}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func UnknownColumn(column string, opts ...Option) *Error {
	e := &Error{Kind: KindPrecondition, Tag: "unknown-column", Column: column}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NonSuccessResponse(statusCode int, opts ...Option) *Error {
	e := &Error{Kind: KindPrecondition, Tag: "non-success-response", StatusCode: statusCode}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func UnrecognizedResourceType(url string, opts ...Option) *Error {
	e := &Error{Kind: KindPrecondition, Tag: "unrecognized-resource-type", URL: url}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func UnknownResource(label string, opts ...Option) *Error {
	e := &Error{Kind: KindPrecondition, Tag: "unknown-resource", Parameter: label}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func UnsupportedMethod(method string, opts ...Option) *Error {
	e := &Error{Kind: KindPrecondition, Tag: "unsupported-method", Parameter: method}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func UnsupportedFormat(format string, opts ...Option) *Error {
	e := &Error{Kind: KindPrecondition, Tag: "unsupported-format", Parameter: format}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func UnknownParameter(name string, opts ...Option) *Error {
	e := &Error{Kind: KindPrecondition, Tag: "unknown-parameter", Parameter: name}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func InvalidParameter(name string, opts ...Option) *Error {
	e := &Error{Kind: KindPrecondition, Tag: "invalid-parameter", Parameter: name}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func RequestFailed(url string, opts ...Option) *Error {
	e := &Error{Kind: KindTransport, Tag: "request-failed", URL: url}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
