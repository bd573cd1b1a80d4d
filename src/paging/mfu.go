package paging

// mfuPolicy keeps the same per-frame touch counters as lruPolicy but evicts
// the frame with the LARGEST count, lowest frame index first on ties.
type mfuPolicy struct {
	counts []uint64
}

func newMfuPolicy(frameCount int) *mfuPolicy {
	return &mfuPolicy{counts: make([]uint64, frameCount)}
}

func (p *mfuPolicy) OnPlaced(page, frame int) {
	p.counts[frame]++
}

func (p *mfuPolicy) OnHit(page, frame int) {
	p.counts[frame]++
}

func (p *mfuPolicy) Victim(pt *PageTable) (int, error) {
	victim := 0
	for f := 1; f < len(p.counts); f++ {
		if p.counts[f] > p.counts[victim] {
			victim = f
		}
	}
	return victim, nil
}
