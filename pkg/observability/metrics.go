package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsHooks records codec events as Prometheus metrics:
//
//	fcactx_detections_total{format, result}
//	fcactx_reads_total{format, result}
//	fcactx_writes_total{format, result}
//	fcactx_codec_duration_seconds{format, op}
//	fcactx_written_bytes_total{format}
//
// result is "ok" or "error"; undetected inputs count with format "".
type MetricsHooks struct {
	detections *prometheus.CounterVec
	reads      *prometheus.CounterVec
	writes     *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	bytes      *prometheus.CounterVec
}

// NewMetricsHooks creates the codec metrics and registers them with reg.
func NewMetricsHooks(reg prometheus.Registerer) (*MetricsHooks, error) {
	h := &MetricsHooks{
		detections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fcactx",
			Name:      "detections_total",
			Help:      "Format detection attempts.",
		}, []string{"format", "result"}),
		reads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fcactx",
			Name:      "reads_total",
			Help:      "Contexts decoded.",
		}, []string{"format", "result"}),
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fcactx",
			Name:      "writes_total",
			Help:      "Contexts encoded.",
		}, []string{"format", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fcactx",
			Name:      "codec_duration_seconds",
			Help:      "Time spent in codecs.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"format", "op"}),
		bytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fcactx",
			Name:      "written_bytes_total",
			Help:      "Bytes produced by successful writes.",
		}, []string{"format"}),
	}

	for _, c := range []prometheus.Collector{h.detections, h.reads, h.writes, h.duration, h.bytes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func result(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}

// OnDetect counts a detection attempt under its format and result.
func (h *MetricsHooks) OnDetect(_, format string, ok bool) {
	h.detections.WithLabelValues(format, result(ok)).Inc()
}

// OnRead counts a read and observes its duration.
func (h *MetricsHooks) OnRead(format string, _, _ int, d time.Duration, err error) {
	h.reads.WithLabelValues(format, result(err == nil)).Inc()
	h.duration.WithLabelValues(format, "read").Observe(d.Seconds())
}

// OnWrite counts a write, observes its duration and adds the bytes of a
// successful write.
func (h *MetricsHooks) OnWrite(format string, n int, d time.Duration, err error) {
	h.writes.WithLabelValues(format, result(err == nil)).Inc()
	h.duration.WithLabelValues(format, "write").Observe(d.Seconds())
	if err == nil {
		h.bytes.WithLabelValues(format).Add(float64(n))
	}
}

// multiHooks fans events out to several hooks in order.
type multiHooks []CodecHooks

// Multi returns hooks that forward every event to each of hooks. Nil
// entries are skipped.
func Multi(hooks ...CodecHooks) CodecHooks {
	var m multiHooks
	for _, h := range hooks {
		if h != nil {
			m = append(m, h)
		}
	}
	return m
}

func (m multiHooks) OnDetect(source, format string, ok bool) {
	for _, h := range m {
		h.OnDetect(source, format, ok)
	}
}

func (m multiHooks) OnRead(format string, objects, attributes int, d time.Duration, err error) {
	for _, h := range m {
		h.OnRead(format, objects, attributes, d, err)
	}
}

func (m multiHooks) OnWrite(format string, n int, d time.Duration, err error) {
	for _, h := range m {
		h.OnWrite(format, n, d, err)
	}
}
