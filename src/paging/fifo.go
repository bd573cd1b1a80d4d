package paging

import (
	"fmt"

	"vmsim-golang/src/common"
)

// fifoPolicy evicts resident pages in placement order. The ring holds the
// page numbers of the currently resident pages, oldest at the head; its
// capacity equals the frame count, so it can never overflow while the
// frame table is consistent.
type fifoPolicy struct {
	ring  []int
	head  int
	count int
}

func newFifoPolicy(frameCount int) *fifoPolicy {
	return &fifoPolicy{ring: make([]int, frameCount)}
}

func (p *fifoPolicy) OnPlaced(page, frame int) {
	if p.count == len(p.ring) {
		return
	}
	p.ring[(p.head+p.count)%len(p.ring)] = page
	p.count++
}

func (p *fifoPolicy) OnHit(page, frame int) {}

func (p *fifoPolicy) Victim(pt *PageTable) (int, error) {
	if p.count == 0 {
		return common.EmptyFrame, fmt.Errorf("fifo queue is empty during eviction")
	}
	page := p.ring[p.head]
	p.head = (p.head + 1) % len(p.ring)
	p.count--

	frame := pt.entries[page].frameNumber
	if frame == common.EmptyFrame || pt.frames[frame] != page {
		return common.EmptyFrame, fmt.Errorf("fifo queue out of sync: page %d is not resident", page)
	}
	return frame, nil
}
