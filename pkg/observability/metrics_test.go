package observability

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsHooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	h, err := NewMetricsHooks(reg)
	if err != nil {
		t.Fatalf("NewMetricsHooks() error = %v", err)
	}

	h.OnDetect("a.cxt", "burmeister", true)
	h.OnDetect("notes.txt", "", false)
	h.OnRead("burmeister", 2, 2, time.Millisecond, nil)
	h.OnWrite("json", 120, time.Millisecond, nil)
	h.OnWrite("json", 0, time.Millisecond, errors.New("disk full"))

	want := `
# HELP fcactx_writes_total Contexts encoded.
# TYPE fcactx_writes_total counter
fcactx_writes_total{format="json",result="error"} 1
fcactx_writes_total{format="json",result="ok"} 1
# HELP fcactx_written_bytes_total Bytes produced by successful writes.
# TYPE fcactx_written_bytes_total counter
fcactx_written_bytes_total{format="json"} 120
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(want), "fcactx_writes_total", "fcactx_written_bytes_total"); err != nil {
		t.Error(err)
	}

	tests := []struct {
		name   string
		labels []string
		want   float64
	}{
		{"detected", []string{"burmeister", "ok"}, 1},
		{"undetected", []string{"", "error"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testutil.ToFloat64(h.detections.WithLabelValues(tt.labels...)); got != tt.want {
				t.Errorf("detections%v = %v, want %v", tt.labels, got, tt.want)
			}
		})
	}
}

func TestMetricsHooksRegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewMetricsHooks(reg); err != nil {
		t.Fatal(err)
	}
	if _, err := NewMetricsHooks(reg); err == nil {
		t.Error("second NewMetricsHooks() on the same registry should fail")
	}
}

type recordingHooks struct {
	name   string
	events *[]string
}

func (h recordingHooks) OnDetect(_, format string, _ bool) {
	*h.events = append(*h.events, h.name+" detect "+format)
}

func (h recordingHooks) OnRead(format string, _, _ int, _ time.Duration, _ error) {
	*h.events = append(*h.events, h.name+" read "+format)
}

func (h recordingHooks) OnWrite(format string, _ int, _ time.Duration, _ error) {
	*h.events = append(*h.events, h.name+" write "+format)
}

func TestMulti(t *testing.T) {
	var events []string
	h := Multi(recordingHooks{"a", &events}, nil, recordingHooks{"b", &events})

	h.OnDetect("in", "yaml", true)
	h.OnRead("yaml", 1, 1, 0, nil)
	h.OnWrite("csv", 10, 0, nil)

	want := []string{
		"a detect yaml", "b detect yaml",
		"a read yaml", "b read yaml",
		"a write csv", "b write csv",
	}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}
