package params

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nwqmc/wqp/wqperr"
)

func TestKnown(t *testing.T) {
	ck := assert.New(t)
	ck.True(Known("countrycode"))
	ck.True(Known("characteristicName"))
	ck.False(Known("charname"))

	def, ok := Lookup("huc")
	ck.True(ok)
	ck.Equal(GroupSite, def.Group)

	names := Names()
	ck.Len(names, 22)
	ck.True(sortedContains(names, "bBox"))
}

func sortedContains(names []string, want string) bool {
	for _, name := range names {
		if name == want {
			return true
		}
	}
	return false
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		values url.Values

		wantTag   string
		wantParam string
	}{
		{
			name: "boone county station query",
			values: url.Values{
				"countrycode": {"US"},
				"statecode":   {"US:19"},
				"countycode":  {"US:19:015"},
				"mimeType":    {"xml"},
				"zip":         {"no"},
			},
		},
		{
			name:   "empty",
			values: url.Values{},
		},
		{
			name:      "unknown name",
			values:    url.Values{"wqpResourceType": {"station"}},
			wantTag:   "unknown-parameter",
			wantParam: "wqpResourceType",
		},
		{
			name:   "bbox ok",
			values: url.Values{"bBox": {"-93.96,42.01,-93.89,42.07"}},
		},
		{
			name:      "bbox wrong arity",
			values:    url.Values{"bBox": {"-93.96,42.01,-93.89"}},
			wantTag:   "invalid-parameter",
			wantParam: "bBox",
		},
		{
			name:      "bbox not decimal",
			values:    url.Values{"bBox": {"-93.96,42.01,-93.89,north"}},
			wantTag:   "invalid-parameter",
			wantParam: "bBox",
		},
		{
			name:   "circle ok",
			values: url.Values{"lat": {"42.03"}, "long": {"-93.92"}, "within": {"25"}},
		},
		{
			name:      "circle incomplete",
			values:    url.Values{"lat": {"42.03"}, "within": {"25"}},
			wantTag:   "invalid-parameter",
			wantParam: "within",
		},
		{
			name:      "circle negative radius",
			values:    url.Values{"lat": {"42.03"}, "long": {"-93.92"}, "within": {"-1"}},
			wantTag:   "invalid-parameter",
			wantParam: "within",
		},
		{
			name:      "statecode without country prefix",
			values:    url.Values{"countrycode": {"US"}, "statecode": {"19"}},
			wantTag:   "invalid-parameter",
			wantParam: "statecode",
		},
		{
			name:      "countycode without statecode",
			values:    url.Values{"countycode": {"US:19:015"}},
			wantTag:   "invalid-parameter",
			wantParam: "countycode",
		},
		{
			name:      "countycode without state prefix",
			values:    url.Values{"statecode": {"US:19"}, "countycode": {"US:55:015"}},
			wantTag:   "invalid-parameter",
			wantParam: "countycode",
		},
		{
			name:   "date range ok",
			values: url.Values{"startDateLo": {"01-01-2006"}, "startDateHi": {"12-31-2006"}},
		},
		{
			name:      "date malformed",
			values:    url.Values{"startDateLo": {"2006-01-01"}},
			wantTag:   "invalid-parameter",
			wantParam: "startDateLo",
		},
		{
			name:      "date range inverted",
			values:    url.Values{"startDateLo": {"12-31-2006"}, "startDateHi": {"01-01-2006"}},
			wantTag:   "invalid-parameter",
			wantParam: "startDateHi",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ck := assert.New(t)
			err := Validate(tc.values)
			if tc.wantTag == "" {
				ck.NoError(err)
				return
			}
			ck.True(wqperr.HasTag(err, tc.wantTag), "got %v", err)
			var werr *wqperr.Error
			if ck.ErrorAs(err, &werr) {
				ck.Equal(tc.wantParam, werr.Parameter)
			}
		})
	}
}
