package metrics

import (
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordTransaction(t *testing.T) {
	commits := testutil.ToFloat64(DBTransactions.WithLabelValues("group.delete", OutcomeCommit))
	rollbacks := testutil.ToFloat64(DBTransactions.WithLabelValues("group.delete", OutcomeRollback))

	RecordTransaction("group.delete", nil)
	RecordTransaction("group.delete", errors.New("fk violation"))
	RecordTransaction("group.delete", errors.New("deadlock"))

	assert.Equal(t, commits+1, testutil.ToFloat64(DBTransactions.WithLabelValues("group.delete", OutcomeCommit)))
	assert.Equal(t, rollbacks+2, testutil.ToFloat64(DBTransactions.WithLabelValues("group.delete", OutcomeRollback)))
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/student/list", "200"))
	RecordAPIRequest("GET", "/api/student/list", "200", 15*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/student/list", "200")))
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	assert.Equal(t, before+1, testutil.ToFloat64(APIActiveRequests))
	TrackActiveRequest(false)
	assert.Equal(t, before, testutil.ToFloat64(APIActiveRequests))
}

func TestRecordPoolStats(t *testing.T) {
	RecordPoolStats(sql.DBStats{OpenConnections: 7, InUse: 3})
	assert.Equal(t, float64(7), testutil.ToFloat64(DBOpenConnections))
	assert.Equal(t, float64(3), testutil.ToFloat64(DBInUseConnections))
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	RecordTransaction("sample.generate", nil)

	r := gin.New()
	r.GET("/metrics", Handler())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "db_transactions_total"))
}
