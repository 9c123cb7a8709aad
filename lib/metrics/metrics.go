package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glsample_frames_rendered_total",
		Help: "Total number of frames drawn and swapped",
	})
	ProgramsBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glsample_programs_built_total",
		Help: "Total number of shader programs compiled and linked",
	})
	ShaderErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glsample_shader_errors_total",
		Help: "Total number of shader build failures by stage",
	}, []string{"stage"})
	FrameDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "glsample_frame_duration_seconds",
		Help:    "Time spent rendering a single frame, including the buffer swap",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	})
	FrameInterval = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "glsample_frame_interval_seconds",
		Help:    "Wall time between the starts of consecutive frames",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	})
)

func init() {
	for _, stage := range []string{"vertex", "fragment", "link"} {
		ShaderErrors.WithLabelValues(stage).Add(0)
	}
}

func ObserveFrame(d time.Duration) {
	FramesRendered.Inc()
	FrameDuration.Observe(d.Seconds())
}

func ObserveFrameInterval(d time.Duration) {
	FrameInterval.Observe(d.Seconds())
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
