package paging

// lruPolicy approximates recency with one monotonic counter per frame.
// Every placement and every hit increments the counter of the frame
// involved; the victim is the frame with the smallest count, lowest frame
// index first on ties. Counters are never reset, even when a frame is
// reclaimed and reused.
type lruPolicy struct {
	counts []uint64
}

func newLruPolicy(frameCount int) *lruPolicy {
	return &lruPolicy{counts: make([]uint64, frameCount)}
}

func (p *lruPolicy) OnPlaced(page, frame int) {
	p.counts[frame]++
}

func (p *lruPolicy) OnHit(page, frame int) {
	p.counts[frame]++
}

func (p *lruPolicy) Victim(pt *PageTable) (int, error) {
	victim := 0
	for f := 1; f < len(p.counts); f++ {
		if p.counts[f] < p.counts[victim] {
			victim = f
		}
	}
	return victim, nil
}
