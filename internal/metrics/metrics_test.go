package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterValue 從 registry 找出指定 metric 與 label 的值
func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	next:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue next
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestCollector_Observe(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.ObserveEncode("F1SetupRequest", ResultOK)
	c.ObserveEncode("F1SetupRequest", ResultOK)
	c.ObserveDecode("F1SetupFailure", "structure_mismatch")
	c.ObserveWarning("multiple_served_plmns")

	assert.Equal(t, 2.0, counterValue(t, reg, "f1ap_codec_encode_total",
		map[string]string{LabelMessageType: "F1SetupRequest", LabelResult: ResultOK}))
	assert.Equal(t, 1.0, counterValue(t, reg, "f1ap_codec_decode_total",
		map[string]string{LabelMessageType: "F1SetupFailure", LabelResult: "structure_mismatch"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "f1ap_codec_decode_warnings_total",
		map[string]string{LabelWarning: "multiple_served_plmns"}))
}

func TestCollector_NilIsNoop(t *testing.T) {
	t.Parallel()

	var c *Collector
	assert.NotPanics(t, func() {
		c.ObserveEncode("F1SetupRequest", ResultOK)
		c.ObserveDecode("F1SetupRequest", ResultOK)
		c.ObserveWarning("x")
	})
}

func TestNewCollector_NilRegisterer(t *testing.T) {
	t.Parallel()

	c := NewCollector(nil)
	require.NotNil(t, c)
	assert.NotPanics(t, func() { c.ObserveEncode("F1SetupResponse", ResultOK) })
}
