package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwqmc/wqp/wqperr"
	"github.com/nwqmc/wqp/wqx"
)

const stationXML = `<WQX xmlns="http://qwwebservices.usgs.gov/schemas/WQX-Outbound/2_0/">
<Organization>
  <OrganizationDescription>
    <OrganizationIdentifier>USGS-IA</OrganizationIdentifier>
    <OrganizationFormalName>USGS Iowa Water Science Center</OrganizationFormalName>
  </OrganizationDescription>
  <MonitoringLocation>
    <MonitoringLocationIdentity>
      <MonitoringLocationIdentifier>IA001</MonitoringLocationIdentifier>
    </MonitoringLocationIdentity>
  </MonitoringLocation>
  <MonitoringLocation>
    <MonitoringLocationIdentity>
      <MonitoringLocationIdentifier>IA002</MonitoringLocationIdentifier>
    </MonitoringLocationIdentity>
  </MonitoringLocation>
</Organization>
</WQX>`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/Station/search", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml")
		io.WriteString(w, stationXML)
	})
	mux.HandleFunc("/Result/search", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no results", http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestResourcePath(t *testing.T) {
	ck := assert.New(t)
	for label, want := range map[string]string{
		"station":       "/Station/search",
		"result":        "/Result/search",
		"simplestation": "/simplestation/search",
		"bio":           "/biologicalresult/search",
	} {
		got, err := ResourcePath(label)
		ck.NoError(err)
		ck.Equal(want, got)
	}
	_, err := ResourcePath("biodata")
	ck.True(wqperr.HasTag(err, "unknown-resource"))
	ck.Len(ResourceLabels(), 4)
}

func TestClientRequest(t *testing.T) {
	ck := assert.New(t)
	srv := newTestServer(t)
	c, err := New(srv.URL, WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	ctx := context.Background()

	resp, err := c.Get(ctx, "station", url.Values{"countrycode": {"US"}})
	require.NoError(t, err)
	defer resp.Body.Close()
	ck.Equal(http.StatusOK, resp.StatusCode)
	ck.Contains(resp.Request.URL.String(), "/Station/search?countrycode=US")

	head, err := c.Head(ctx, "station", nil)
	require.NoError(t, err)
	head.Body.Close()
	ck.Equal(http.StatusOK, head.StatusCode)

	_, err = c.Request(ctx, "post", "station", nil)
	ck.True(wqperr.HasTag(err, "unsupported-method"))

	_, err = c.Get(ctx, "biodata", nil)
	ck.True(wqperr.HasTag(err, "unknown-resource"))
}

func TestClientFetchTable(t *testing.T) {
	ck := assert.New(t)
	srv := newTestServer(t)
	c, err := New(srv.URL, WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	table, err := c.FetchTable(context.Background(), "station", nil, wqx.RowMajor)
	require.NoError(t, err)
	ck.Equal(wqx.TableStation, table.Type)
	require.Equal(t, 2, table.Len())
	ck.Equal("USGS-IA", table.Rows[0]["OrganizationIdentifier"])
	ck.Equal("IA001", table.Rows[0]["MonitoringLocationIdentifier"])
	ck.Equal("IA002", table.Rows[1]["MonitoringLocationIdentifier"])

	// a non-2xx response fails table type resolution before parsing
	_, err = c.FetchTable(context.Background(), "result", nil, wqx.RowMajor)
	ck.True(wqperr.HasTag(err, "non-success-response"))
}

func TestStash(t *testing.T) {
	ck := assert.New(t)
	srv := newTestServer(t)
	c, err := New(srv.URL, WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	resp, err := c.Get(context.Background(), "station", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	name := filepath.Join(t.TempDir(), "boone")
	require.NoError(t, Stash(resp, name, "xml"))

	b, err := os.ReadFile(name + ".xml.http")
	require.NoError(t, err)
	content := string(b)
	ck.True(strings.HasPrefix(content, "HTTP/1.1 200 OK\n"))
	ck.Contains(content, "Content-Type:text/xml\n")
	ck.Contains(content, "\n\n<WQX")
	ck.Contains(content, "IA002")
}

func TestStashUnsupportedFormat(t *testing.T) {
	ck := assert.New(t)
	err := Stash(&http.Response{Status: "200 OK"}, "x", "hdf")
	ck.True(wqperr.HasTag(err, "unsupported-format"))
}
