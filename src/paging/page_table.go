package paging

import (
	"fmt"

	"vmsim-golang/src/common"
)

// PageTable tracks which pages are resident in which frames and counts page
// faults. Victim selection on a full frame table is delegated to the policy
// chosen at construction. A table is owned by a single caller; accesses are
// processed one at a time.
type PageTable struct {
	entries   []PageTableEntry
	frames    []int
	algorithm common.Algorithm
	faults    int
	policy    policy
}

// New creates a page table with pageCount entries (all non-resident) and
// frameCount free frames, using the given replacement algorithm.
func New(pageCount, frameCount int, algorithm common.Algorithm) (*PageTable, error) {
	if pageCount <= 0 {
		return nil, fmt.Errorf("page count must be positive, got %d", pageCount)
	}
	if frameCount <= 0 {
		return nil, fmt.Errorf("frame count must be positive, got %d", frameCount)
	}
	pol, err := newPolicy(algorithm, frameCount)
	if err != nil {
		return nil, err
	}
	pt := &PageTable{
		entries:   make([]PageTableEntry, pageCount),
		frames:    make([]int, frameCount),
		algorithm: algorithm,
		policy:    pol,
	}
	for p := range pt.entries {
		pt.entries[p].frameNumber = common.EmptyFrame
	}
	for f := range pt.frames {
		pt.frames[f] = common.EmptyFrame
	}
	return pt, nil
}

// Access simulates one reference to page. A hit only updates the policy's
// bookkeeping; a fault places the page into the lowest-numbered free frame,
// evicting the policy's victim if no frame is free.
func (pt *PageTable) Access(page int) error {
	if page < 0 || page >= len(pt.entries) {
		return fmt.Errorf("page %d out of range [0, %d)", page, len(pt.entries))
	}
	if pt.entries[page].resident {
		pt.policy.OnHit(page, pt.entries[page].frameNumber)
		return nil
	}
	pt.faults++
	for f := range pt.frames {
		if pt.frames[f] == common.EmptyFrame {
			pt.place(page, f)
			return nil
		}
	}
	victim, err := pt.policy.Victim(pt)
	if err != nil {
		return err
	}
	evicted := pt.frames[victim]
	pt.entries[evicted].resident = false
	pt.place(page, victim)
	return nil
}

func (pt *PageTable) place(page, frame int) {
	pt.frames[frame] = page
	pt.entries[page].frameNumber = frame
	pt.entries[page].resident = true
	pt.policy.OnPlaced(page, frame)
}

func (pt *PageTable) Algorithm() common.Algorithm { return pt.algorithm }

func (pt *PageTable) Faults() int { return pt.faults }

func (pt *PageTable) PageCount() int { return len(pt.entries) }

func (pt *PageTable) FrameCount() int { return len(pt.frames) }

// Entry returns a copy of the entry for page.
func (pt *PageTable) Entry(page int) (PageTableEntry, error) {
	if page < 0 || page >= len(pt.entries) {
		return PageTableEntry{}, fmt.Errorf("page %d out of range [0, %d)", page, len(pt.entries))
	}
	return pt.entries[page], nil
}

// FramePage returns the page resident in frame, or common.EmptyFrame if the
// frame is free.
func (pt *PageTable) FramePage(frame int) (int, error) {
	if frame < 0 || frame >= len(pt.frames) {
		return common.EmptyFrame, fmt.Errorf("frame %d out of range [0, %d)", frame, len(pt.frames))
	}
	return pt.frames[frame], nil
}
