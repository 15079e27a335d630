package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "f1ap"
	subsystem = "codec"

	LabelMessageType = "message_type"
	LabelResult      = "result"
	LabelWarning     = "warning"

	ResultOK = "ok"
)

// Collector counts codec outcomes. A nil *Collector is valid and records
// nothing.
type Collector struct {
	encodeTotal  *prometheus.CounterVec
	decodeTotal  *prometheus.CounterVec
	warningTotal *prometheus.CounterVec
}

// NewCollector registers the codec counters on reg. A nil reg creates
// unregistered counters.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		encodeTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "encode_total",
			Help:      "Number of F1AP messages encoded, by message type and result.",
		}, []string{LabelMessageType, LabelResult}),
		decodeTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "decode_total",
			Help:      "Number of F1AP messages decoded, by message type and result.",
		}, []string{LabelMessageType, LabelResult}),
		warningTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "decode_warnings_total",
			Help:      "Number of non-fatal decode warnings, by warning code.",
		}, []string{LabelWarning}),
	}
}

func (c *Collector) ObserveEncode(messageType, result string) {
	if c == nil {
		return
	}
	c.encodeTotal.WithLabelValues(messageType, result).Inc()
}

func (c *Collector) ObserveDecode(messageType, result string) {
	if c == nil {
		return
	}
	c.decodeTotal.WithLabelValues(messageType, result).Inc()
}

func (c *Collector) ObserveWarning(code string) {
	if c == nil {
		return
	}
	c.warningTotal.WithLabelValues(code).Inc()
}
