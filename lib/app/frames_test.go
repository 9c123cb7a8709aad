package app

import (
	"bufio"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/fosdem/glsample/lib/metrics"
	"github.com/fosdem/glsample/lib/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metricValue(t *testing.T, name string) float64 {
	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	sc := bufio.NewScanner(rec.Body)
	for sc.Scan() {
		if v, ok := strings.CutPrefix(sc.Text(), name+" "); ok {
			f, err := strconv.ParseFloat(v, 64)
			require.NoError(t, err)
			return f
		}
	}
	t.Fatalf("%s not exported", name)
	return 0
}

func TestFrameRecorderCountsTheFirstFrame(t *testing.T) {
	st := stats.New()
	frames := newFrameRecorder(st)

	rendered := metricValue(t, "glsample_frames_rendered_total")
	durations := metricValue(t, "glsample_frame_duration_seconds_count")
	intervals := metricValue(t, "glsample_frame_interval_seconds_count")

	frames.Record(time.Millisecond)

	assert.Equal(t, uint64(1), st.Snapshot().Frames)
	assert.Equal(t, rendered+1, metricValue(t, "glsample_frames_rendered_total"))
	assert.Equal(t, durations+1, metricValue(t, "glsample_frame_duration_seconds_count"))
	assert.Equal(t, intervals, metricValue(t, "glsample_frame_interval_seconds_count"))

	time.Sleep(2 * time.Millisecond)
	frames.Record(time.Millisecond)

	assert.Equal(t, uint64(2), st.Snapshot().Frames)
	assert.Equal(t, rendered+2, metricValue(t, "glsample_frames_rendered_total"))
	assert.Equal(t, intervals+1, metricValue(t, "glsample_frame_interval_seconds_count"))
}
