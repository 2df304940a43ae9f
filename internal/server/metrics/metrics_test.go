package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophaccount/internal/common"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", Outcome(nil))
	assert.Equal(t, "not_found", Outcome(common.ErrorNotFound))
	assert.Equal(t, "unauthenticated", Outcome(common.NewError(common.KindUnauthenticated, "password does not match")))
	assert.Equal(t, "conflict", Outcome(common.ErrorConflict))
	assert.Equal(t, "invalid_argument", Outcome(common.ErrorInvalidArgument))
	assert.Equal(t, "internal", Outcome(errors.New("db down")))
}

func TestObserve_CountsByOutcome(t *testing.T) {
	m := New()
	start := time.Now()

	m.Observe("login", start, nil)
	m.Observe("login", start, nil)
	m.Observe("login", start, common.ErrorNotFound)
	m.Observe("signUp", start, common.ErrorConflict)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("login", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("login", "not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("signUp", "conflict")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.latency))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New()
	m.Observe("privateInfo", time.Now(), nil)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `gophaccount_operations_total{operation="privateInfo",outcome="ok"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
