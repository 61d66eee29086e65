package nes

// Stats is a point-in-time snapshot read by cmd/nesgo's debug overlay and
// its -stats throughput log; no core operation depends on these values.
type Stats struct {
	CyclesRun uint64
	FramesRun uint64
}

func (s *System) Stats() Stats {
	return Stats{CyclesRun: s.cyclesRun, FramesRun: s.framesRun}
}
