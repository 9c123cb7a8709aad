package app

import (
	"time"

	"github.com/fosdem/glsample/lib/metrics"
	"github.com/fosdem/glsample/lib/stats"
	"github.com/fosdem/glsample/lib/utils"
)

// frameRecorder books every presented frame, the one drawn on load
// included, into the stats and the prometheus metrics.
type frameRecorder struct {
	st       *stats.Stats
	interval utils.DeltaTimer
}

func newFrameRecorder(st *stats.Stats) *frameRecorder {
	return &frameRecorder{st: st}
}

// Record takes how long the frame took to draw and swap.
func (f *frameRecorder) Record(took time.Duration) {
	metrics.ObserveFrame(took)
	if dt := f.interval.Next(); dt > 0 {
		metrics.ObserveFrameInterval(dt)
	}
	f.st.Update()
}
