package observability

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/activities", "200"))

	RecordHTTPRequest(http.MethodGet, "/api/activities", http.StatusOK, 15*time.Millisecond)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/activities", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordHTTPRequest_Unmatched(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404"))

	RecordHTTPRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")))
}

func TestRecordExportRows(t *testing.T) {
	before := testutil.ToFloat64(exportRowsTotal.WithLabelValues("event", "csv"))

	RecordExportRows("event", "csv", 3)

	assert.Equal(t, before+3, testutil.ToFloat64(exportRowsTotal.WithLabelValues("event", "csv")))
}

func TestRecordRateLimited(t *testing.T) {
	before := testutil.ToFloat64(rateLimitedTotal)

	RecordRateLimited()

	assert.Equal(t, before+1, testutil.ToFloat64(rateLimitedTotal))
}
