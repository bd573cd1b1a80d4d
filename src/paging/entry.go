package paging

// PageTableEntry tracks one virtual page: the frame it currently occupies
// (or most recently occupied), and whether it is resident right now.
type PageTableEntry struct {
	frameNumber int
	resident    bool
}

func (e *PageTableEntry) FrameNumber() int { return e.frameNumber }

func (e *PageTableEntry) Resident() bool { return e.resident }
