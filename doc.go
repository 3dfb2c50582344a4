/*
Package wqp is a set of Water Quality Portal (WQP) support libraries.

The wqx package is the heart of the repository: it maps WQX (Water
Quality XML) documents onto their canonical tabular form, the sparse,
column-ordered representation used for CSV downloads and dataframe
imports. The mapping is driven by a statically validated schema
registry linking semantic column names to XPath expressions scoped to
the four logical WQX node kinds (Organization, MonitoringLocation,
Activity and Result).

The client package fetches WQX datasets from WQP REST services and can
stash raw responses to disk, the params package validates WQP query
parameters before a request is made, and the wqperr package carries the
structured error values shared by all of the above.

See cmd/wqp for a command line front end combining the libraries.
*/
package wqp
