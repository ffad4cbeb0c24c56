package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	recommendationServedTotal atomic.Uint64
	compositionFallbackTotal  atomic.Uint64
	advisorFailedTotal        atomic.Uint64
	questCompletedTotal       atomic.Uint64

	advisorDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncRecommendationServed increments the served recommendations counter.
func IncRecommendationServed() {
	recommendationServedTotal.Add(1)
}

// IncCompositionFallback increments the fallback counter. It is bumped once
// per composition that used generic catalog entries for any sub-resource.
func IncCompositionFallback() {
	compositionFallbackTotal.Add(1)
}

// IncAdvisorFailed increments the advisor failure counter.
func IncAdvisorFailed() {
	advisorFailedTotal.Add(1)
}

// IncQuestCompleted increments the completed quests counter.
func IncQuestCompleted() {
	questCompletedTotal.Add(1)
}

// ObserveAdvisorDurationMs records an advisor round trip in milliseconds.
func ObserveAdvisorDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	advisorDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "recommendation_served_total", "Total recommendations served", recommendationServedTotal.Load())
	writeCounter(&buf, "composition_fallback_total", "Total compositions that used generic fallback entries", compositionFallbackTotal.Load())
	writeCounter(&buf, "advisor_failed_total", "Total advisor calls that failed", advisorFailedTotal.Load())
	writeCounter(&buf, "quest_completed_total", "Total quests completed", questCompletedTotal.Load())
	writeHistogram(&buf, "advisor_duration_ms", "Advisor round trip in milliseconds", advisorDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
