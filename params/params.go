// Package params validates Water Quality Portal query parameters.
//
// WQP parameters fall into five groups: general, geospatial
// constraints, political jurisdiction, site constraints and sampling
// constraints. Validate rejects parameter names outside the known
// set and checks the value shapes that are checkable without talking
// to the service (coordinate syntax, FIPS code consistency, date
// ranges).
package params

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nwqmc/wqp/wqperr"
)

// Group classifies a WQP parameter
type Group int

const (
	GroupGeneral Group = iota
	GroupGeospatial
	GroupPolitical
	GroupSite
	GroupSampling
)

func (g Group) String() string {
	switch g {
	case GroupGeneral:
		return "general"
	case GroupGeospatial:
		return "geospatial"
	case GroupPolitical:
		return "political"
	case GroupSite:
		return "site"
	case GroupSampling:
		return "sampling"
	default:
		return "Group(?)"
	}
}

// Definition describes one known WQP parameter
type Definition struct {
	Name  string
	Group Group
	Doc   string
}

var definitions = []Definition{
	{"providers", GroupGeneral, "space-delimited list of providers to which the query is restricted (default: all)"},
	{"mimeType", GroupGeneral, "response serialization; this library works with xml"},
	{"zip", GroupGeneral, `"yes" to compress the response body`},

	// all latitude and longitude values are expressed decimally as per WGS84
	{"bBox", GroupGeospatial, "bounding box: west longitude, south latitude, east longitude, north latitude"},
	{"lat", GroupGeospatial, "latitude of the center of a circular search area"},
	{"long", GroupGeospatial, "longitude of the center of a circular search area"},
	{"within", GroupGeospatial, "radius of the circular search area in decimal miles"},

	// codes are based on the US FIPS publications and are interdependent
	{"countrycode", GroupPolitical, "FIPS country code"},
	{"statecode", GroupPolitical, "FIPS state code, prefixed by its country code"},
	{"countycode", GroupPolitical, "FIPS county code, prefixed by its state code"},

	{"organization", GroupSite, "ID of the organization responsible for maintenance and sampling at the site"},
	{"siteid", GroupSite, "site identifier used by the owning organization, hyphen-appended to its designation"},
	{"siteType", GroupSite, "kind of monitoring location"},
	{"huc", GroupSite, "Hydrologic Unit Code as maintained by USGS"},

	{"activityId", GroupSampling, "project or program responsible for a specific sampling effort"},
	{"startDateLo", GroupSampling, "minimum startDate, inclusive (MM-DD-YYYY)"},
	{"startDateHi", GroupSampling, "maximum startDate, inclusive (MM-DD-YYYY)"},
	{"sampleMedia", GroupSampling, "sampled environmental medium"},
	{"characteristicType", GroupSampling, "general category applied to sampled characteristics"},
	{"characteristicName", GroupSampling, "identifier for a specific sampled characteristic"},
	{"pCode", GroupSampling, "NWIS-only classification scheme for sampling procedures"},
	{"analyticalMethod", GroupSampling, "fully urlencoded NEMI URI classifying the analytical protocol"},
}

var byName = func() map[string]Definition {
	m := make(map[string]Definition, len(definitions))
	for _, def := range definitions {
		m[def.Name] = def
	}
	return m
}()

// Known reports whether name is a known WQP parameter
func Known(name string) bool {
	_, ok := byName[name]
	return ok
}

// Lookup returns the definition of a known parameter
func Lookup(name string) (Definition, bool) {
	def, ok := byName[name]
	return def, ok
}

// Names returns the known parameter names, sorted
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// dateFormat is the WQP query date shape (MM-DD-YYYY)
const dateFormat = "01-02-2006"

// Validate checks a parameter set before it is sent to the service.
// Unknown names are rejected; value checks cover bBox shape, circle
// (lat/long/within) completeness and shape, FIPS code prefix
// consistency, and startDate ordering.
func Validate(values url.Values) error {
	for name := range values {
		if !Known(name) {
			return wqperr.UnknownParameter(name)
		}
	}
	if err := validateBBox(values.Get("bBox")); err != nil {
		return err
	}
	if err := validateCircle(values.Get("lat"), values.Get("long"), values.Get("within")); err != nil {
		return err
	}
	if err := validateFIPS(values.Get("countrycode"), values.Get("statecode"), values.Get("countycode")); err != nil {
		return err
	}
	return validateDateRange(values.Get("startDateLo"), values.Get("startDateHi"))
}

func validateBBox(bbox string) error {
	if bbox == "" {
		return nil
	}
	parts := strings.Split(bbox, ",")
	if len(parts) != 4 {
		return wqperr.InvalidParameter("bBox",
			wqperr.WithMessage("want 4 comma-separated coordinates"))
	}
	for _, part := range parts {
		if _, err := strconv.ParseFloat(strings.TrimSpace(part), 64); err != nil {
			return wqperr.InvalidParameter("bBox",
				wqperr.WithMessage("coordinate "+part+" is not decimal"))
		}
	}
	return nil
}

func validateCircle(lat, long, within string) error {
	if lat == "" && long == "" && within == "" {
		return nil
	}
	if lat == "" || long == "" || within == "" {
		return wqperr.InvalidParameter("within",
			wqperr.WithMessage("lat, long and within must be supplied together"))
	}
	for name, value := range map[string]string{"lat": lat, "long": long} {
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return wqperr.InvalidParameter(name,
				wqperr.WithMessage("not a decimal degree value"))
		}
	}
	radius, err := strconv.ParseFloat(within, 64)
	if err != nil || radius <= 0 {
		return wqperr.InvalidParameter("within",
			wqperr.WithMessage("radius must be a positive decimal mile value"))
	}
	return nil
}

func validateFIPS(country, state, county string) error {
	if state != "" && country != "" && !strings.HasPrefix(state, country+":") {
		return wqperr.InvalidParameter("statecode",
			wqperr.WithMessage("statecode must extend countrycode"))
	}
	if county != "" {
		if state == "" {
			return wqperr.InvalidParameter("countycode",
				wqperr.WithMessage("countycode requires statecode"))
		}
		if !strings.HasPrefix(county, state+":") {
			return wqperr.InvalidParameter("countycode",
				wqperr.WithMessage("countycode must extend statecode"))
		}
	}
	return nil
}

func validateDateRange(lo, hi string) error {
	var loT, hiT time.Time
	var err error
	if lo != "" {
		if loT, err = time.Parse(dateFormat, lo); err != nil {
			return wqperr.InvalidParameter("startDateLo",
				wqperr.WithMessage("want MM-DD-YYYY"))
		}
	}
	if hi != "" {
		if hiT, err = time.Parse(dateFormat, hi); err != nil {
			return wqperr.InvalidParameter("startDateHi",
				wqperr.WithMessage("want MM-DD-YYYY"))
		}
	}
	if lo != "" && hi != "" && hiT.Before(loT) {
		return wqperr.InvalidParameter("startDateHi",
			wqperr.WithMessage("startDateHi precedes startDateLo"))
	}
	return nil
}
