package wqx

import (
	"bytes"
	"errors"
	"fmt"
)

// TableType identifies one of the two supported tabular schemas
type TableType int

const (
	// TableStation is the tabular form of a /Station/search dataset
	TableStation TableType = iota
	// TableResult is the tabular form of a /Result/search dataset
	TableResult
)

// TableTypes returns all supported table types
func TableTypes() []TableType { return []TableType{TableStation, TableResult} }

func (t TableType) String() string {
	switch t {
	case TableStation:
		return "station"
	case TableResult:
		return "result"
	default:
		return fmt.Sprintf("TableType(%d)", int(t))
	}
}

func (t TableType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *TableType) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "station":
		*t = TableStation
	case "result":
		*t = TableResult
	default:
		return errors.New("unknown value")
	}
	return nil
}

// ContextKind identifies one of the four logical WQX node kinds.
// Context nodes define the structural patterns of the XML tree: they
// contain value child nodes, and possibly other context nodes.
type ContextKind int

const (
	// KindOrg is an Organization node, scoped to the document root
	KindOrg ContextKind = iota
	// KindStation is a MonitoringLocation node, scoped to an Organization
	KindStation
	// KindActivity is an Activity node, scoped to an Organization
	KindActivity
	// KindResult is a Result node, scoped to an Activity
	KindResult
)

func (k ContextKind) String() string {
	switch k {
	case KindOrg:
		return "org"
	case KindStation:
		return "station"
	case KindActivity:
		return "activity"
	case KindResult:
		return "result"
	default:
		return fmt.Sprintf("ContextKind(%d)", int(k))
	}
}

func (k ContextKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *ContextKind) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "org":
		*k = KindOrg
	case "station":
		*k = KindStation
	case "activity":
		*k = KindActivity
	case "result":
		*k = KindResult
	default:
		return errors.New("unknown value")
	}
	return nil
}
