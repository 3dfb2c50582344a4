package wqx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nwqmc/wqp/wqperr"
)

func TestResolveTableType(t *testing.T) {
	for _, tc := range []struct {
		name       string
		statusCode int
		url        string

		want    TableType
		wantTag string
	}{
		{
			name:       "station",
			statusCode: 200,
			url:        "https://www.waterqualitydata.us/Station/search?countrycode=US",
			want:       TableStation,
		},
		{
			name:       "result",
			statusCode: 200,
			url:        "https://www.waterqualitydata.us/Result/search?characteristicName=pH",
			want:       TableResult,
		},
		{
			name:       "station 204",
			statusCode: 204,
			url:        "https://host/Station/search",
			want:       TableStation,
		},
		{
			name:       "not found",
			statusCode: 404,
			url:        "https://host/Station/search",
			wantTag:    "non-success-response",
		},
		{
			name:       "redirect is not success",
			statusCode: 301,
			url:        "https://host/Result/search",
			wantTag:    "non-success-response",
		},
		{
			name:       "server error",
			statusCode: 500,
			url:        "https://host/Result/search",
			wantTag:    "non-success-response",
		},
		{
			name:       "unknown resource",
			statusCode: 200,
			url:        "https://host/Other/search",
			wantTag:    "unrecognized-resource-type",
		},
		{
			name:       "empty url",
			statusCode: 200,
			url:        "",
			wantTag:    "unrecognized-resource-type",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ck := assert.New(t)
			got, err := ResolveTableType(tc.statusCode, tc.url)
			if tc.wantTag != "" {
				ck.Error(err)
				ck.True(wqperr.HasTag(err, tc.wantTag), "want tag %s, got %v", tc.wantTag, err)
				return
			}
			ck.NoError(err)
			ck.Equal(tc.want, got)
		})
	}
}
