package client

import (
	"bufio"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/nwqmc/wqp/wqperr"
)

// SerializeHead renders the HTTP status line and headers of resp in
// wire form. Headers are sorted by name so the output is stable.
func SerializeHead(resp *http.Response) string {
	var b strings.Builder
	b.WriteString("HTTP/1.1 " + resp.Status + "\n")
	names := make([]string, 0, len(resp.Header))
	for name := range resp.Header {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, value := range resp.Header[name] {
			b.WriteString(name + ":" + value + "\n")
		}
	}
	return b.String()
}

// Stash writes a replica of the HTTP exchange, head then body, to
// the named file. Only the "xml" format (Water Quality XML in
// text/xml serialization) is supported. When filename does not
// already end in the format, ".<format>.http" is appended.
//
// Stash consumes resp.Body; it does not close it.
func Stash(resp *http.Response, filename, format string) error {
	if format != "xml" {
		return wqperr.UnsupportedFormat(format,
			wqperr.WithMessage(`the only accepted format value is "xml"`))
	}
	if !strings.HasSuffix(filename, format) {
		filename += "." + format + ".http"
	}

	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "creating stash file")
	}
	w := bufio.NewWriter(f)

	_, err = w.WriteString(SerializeHead(resp) + "\n")
	if err == nil && resp.Body != nil {
		_, err = io.Copy(w, resp.Body)
	}
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return errors.Wrap(err, "writing stash file")
}
