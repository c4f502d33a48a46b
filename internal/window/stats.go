package window

// frameStats counts frames and reports a rate once per second of
// GLFW time.
type frameStats struct {
	total  uint64
	frames uint64
	since  float64
}

// tick records a frame drawn at now. Once at least a second has passed since
// the last report it returns the frame rate over that span.
func (s *frameStats) tick(now float64) (fps float64, ok bool) {
	s.total++
	s.frames++
	elapsed := now - s.since
	if elapsed < 1 {
		return 0, false
	}
	fps = float64(s.frames) / elapsed
	s.frames = 0
	s.since = now
	return fps, true
}
