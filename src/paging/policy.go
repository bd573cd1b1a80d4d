package paging

import (
	"fmt"

	"vmsim-golang/src/common"
)

// policy answers which frame should be reclaimed when no free frame exists.
// The page table notifies it on every placement and hit so its bookkeeping
// stays consistent with the frame table.
type policy interface {
	OnPlaced(page, frame int)
	OnHit(page, frame int)
	Victim(pt *PageTable) (int, error)
}

func newPolicy(algorithm common.Algorithm, frameCount int) (policy, error) {
	switch algorithm {
	case common.FIFO:
		return newFifoPolicy(frameCount), nil
	case common.LRU:
		return newLruPolicy(frameCount), nil
	case common.MFU:
		return newMfuPolicy(frameCount), nil
	default:
		return nil, fmt.Errorf("unknown replacement algorithm %d", algorithm)
	}
}
