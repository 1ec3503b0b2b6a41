package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug", true)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger("loud", false)
	assert.Error(t, err)
}

func TestCollector_Independent(t *testing.T) {
	a := NewCollector("ppinet")
	b := NewCollector("ppinet")

	a.ObserveFetch("string", "ok", 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.Fetches.WithLabelValues("string", "ok")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Fetches.WithLabelValues("string", "ok")))
}

func TestCollector_Analysis(t *testing.T) {
	c := NewCollector("ppinet")

	c.ObserveAnalysis("ok")
	c.ObserveAnalysis("ok")
	c.ObserveAnalysis("empty")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Analyses.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Analyses.WithLabelValues("empty")))
}
