package renderer

import (
	"time"

	"github.com/loov/hrtime"
)

// FrameStats counts frames and reports the average rate once per interval.
type FrameStats struct {
	now      func() time.Duration
	interval time.Duration

	start  time.Duration
	frames int
}

func NewFrameStats(interval time.Duration) *FrameStats {
	s := &FrameStats{now: hrtime.Now, interval: interval}
	s.start = s.now()
	return s
}

// Tick records one frame. When the interval has elapsed it returns the
// frames per second and mean frame time over it, and starts a new interval.
func (s *FrameStats) Tick() (fps float64, frameTime time.Duration, ok bool) {
	s.frames++

	elapsed := s.now() - s.start
	if elapsed < s.interval {
		return 0, 0, false
	}

	fps = float64(s.frames) / elapsed.Seconds()
	frameTime = elapsed / time.Duration(s.frames)

	s.start += elapsed
	s.frames = 0
	return fps, frameTime, true
}
