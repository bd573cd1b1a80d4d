package trace

import (
	"bufio"
	"fmt"
	"os"
)

// Scenario is a parsed reference trace: the table geometry plus the ordered
// page references to replay.
type Scenario struct {
	PageCount  int
	FrameCount int
	Refs       []int
}

// Load reads a scenario file: page count, frame count, reference count, then
// that many page numbers, all whitespace separated.
func Load(path string) (*Scenario, error) {
	fi, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open trace file: %w", err)
	}
	defer fi.Close()

	r := bufio.NewReader(fi)
	s := &Scenario{}
	if _, err := fmt.Fscan(r, &s.PageCount); err != nil {
		return nil, fmt.Errorf("read of number of pages failed: %w", err)
	}
	if _, err := fmt.Fscan(r, &s.FrameCount); err != nil {
		return nil, fmt.Errorf("read of number of frames failed: %w", err)
	}
	var refLen int
	if _, err := fmt.Fscan(r, &refLen); err != nil {
		return nil, fmt.Errorf("read of number of references failed: %w", err)
	}
	if s.PageCount <= 0 || s.FrameCount <= 0 || refLen < 0 {
		return nil, fmt.Errorf("invalid trace header: pages=%d frames=%d refs=%d",
			s.PageCount, s.FrameCount, refLen)
	}
	s.Refs = make([]int, refLen)
	for i := 0; i < refLen; i++ {
		if _, err := fmt.Fscan(r, &s.Refs[i]); err != nil {
			return nil, fmt.Errorf("read of reference %d failed: %w", i, err)
		}
		if s.Refs[i] < 0 || s.Refs[i] >= s.PageCount {
			return nil, fmt.Errorf("reference %d: page %d out of range [0, %d)",
				i, s.Refs[i], s.PageCount)
		}
	}
	return s, nil
}
