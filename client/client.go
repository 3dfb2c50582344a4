// Package client is a REST client for Water Quality Portal (WQP)
// dataset services, as described at
// http://www.waterqualitydata.us/webservices_documentation.jsp.
//
// The client fetches WQX documents, optionally stashing the raw HTTP
// exchange to disk, and can convert a fetched document straight to
// its canonical tabular form via the wqx package.
package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"

	"github.com/nwqmc/wqp/wqperr"
	"github.com/nwqmc/wqp/wqx"
)

// resourcePaths maps resource labels to WQP service paths
var resourcePaths = map[string]string{
	"station":       "/Station/search",
	"result":        "/Result/search",
	"simplestation": "/simplestation/search",
	"bio":           "/biologicalresult/search",
}

// ResourcePath returns the WQP service path for a resource label
func ResourcePath(label string) (string, error) {
	path, ok := resourcePaths[label]
	if !ok {
		return "", wqperr.UnknownResource(label)
	}
	return path, nil
}

// ResourceLabels returns the known resource labels
func ResourceLabels() []string {
	labels := make([]string, 0, len(resourcePaths))
	for label := range resourcePaths {
		labels = append(labels, label)
	}
	return labels
}

// Client issues requests to a WQP host. Construct with New.
type Client struct {
	host   string
	http   *http.Client
	mapper *wqx.Mapper
}

// New returns a Client for the given host URL. The host must include
// any context path, e.g. "https://www.waterqualitydata.us".
func New(host string, opts ...Option) (*Client, error) {
	reg, err := wqx.NewRegistry()
	if err != nil {
		return nil, errors.Wrap(err, "building WQX registry")
	}
	c := &Client{
		host:   strings.TrimRight(host, "/"),
		http:   http.DefaultClient,
		mapper: wqx.NewMapper(reg),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Option is a Client option function
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.http = hc } }

// Request performs a WQP request. Only the "get" and "head" verbs
// are supported; parameters are assumed to have been validated
// already (see the params package). The caller owns the response
// body.
func (c *Client) Request(ctx context.Context, verb, label string, params url.Values) (*http.Response, error) {
	var method string
	switch verb {
	case "get":
		method = http.MethodGet
	case "head":
		method = http.MethodHead
	default:
		return nil, wqperr.UnsupportedMethod(verb,
			wqperr.WithMessage(`only "get" and "head" are supported`))
	}

	path, err := ResourcePath(label)
	if err != nil {
		return nil, err
	}
	requestURL := c.host + path
	if encoded := params.Encode(); encoded != "" {
		requestURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building WQP request")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, wqperr.RequestFailed(requestURL, wqperr.WithCause(err))
	}
	return resp, nil
}

// Get fetches the named resource
func (c *Client) Get(ctx context.Context, label string, params url.Values) (*http.Response, error) {
	return c.Request(ctx, "get", label, params)
}

// Head fetches response metadata for the named resource
func (c *Client) Head(ctx context.Context, label string, params url.Values) (*http.Response, error) {
	return c.Request(ctx, "head", label, params)
}

// FetchTable fetches the named resource and converts the WQX payload
// to its canonical tabular form. The table type is resolved from the
// response status and URL before any parsing happens.
func (c *Client) FetchTable(ctx context.Context, label string, params url.Values, strategy wqx.Strategy) (*wqx.Table, error) {
	resp, err := c.Get(ctx, label, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	table, err := wqx.ResolveTableType(resp.StatusCode, resp.Request.URL.String())
	if err != nil {
		return nil, err
	}
	doc, err := xmlquery.Parse(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "parsing WQX response")
	}
	return c.mapper.Table(table, doc, strategy)
}
