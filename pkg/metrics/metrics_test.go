package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMetrics(t *testing.T) {
	InitMetrics()
	InitMetrics() // 重复调用不应panic（重复注册）

	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInProgress)
	assert.NotNil(t, BookMutationsTotal)
}

func TestRecordBookMutation(t *testing.T) {
	before := counterValue(t, bookMutationCounter(t, "deleted"))

	RecordBookMutation("deleted")
	RecordBookMutation("deleted")

	assert.Equal(t, before+2, counterValue(t, bookMutationCounter(t, "deleted")))
}

func TestRecordCache(t *testing.T) {
	RecordCache("detail", "hit")
	c, err := CacheRequestsTotal.GetMetricWithLabelValues("detail", "hit")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, counterValue(t, c), float64(1))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("rabbitmq", 1)

	g, err := CircuitBreakerState.GetMetricWithLabelValues("rabbitmq")
	require.NoError(t, err)

	m := &dto.Metric{}
	require.NoError(t, g.Write(m))
	assert.Equal(t, float64(1), m.GetGauge().GetValue())
}

func bookMutationCounter(t *testing.T, action string) prometheus.Counter {
	t.Helper()
	InitMetrics()
	c, err := BookMutationsTotal.GetMetricWithLabelValues(action)
	require.NoError(t, err)
	return c
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, c.Write(m))
	return m.GetCounter().GetValue()
}
