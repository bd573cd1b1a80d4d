package common

import (
	"fmt"
	"strings"
)

// Algorithm selects the page replacement policy used by a page table.
type Algorithm int

const (
	FIFO Algorithm = iota
	LRU
	MFU
)

// EmptyFrame marks a free slot in the frame table, and the frame number of
// a page that has never been placed in memory.
const EmptyFrame = -1

// ParseAlgorithm maps a command line name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToUpper(name) {
	case "FIFO":
		return FIFO, nil
	case "LRU":
		return LRU, nil
	case "MFU":
		return MFU, nil
	default:
		return 0, fmt.Errorf("unknown replacement algorithm %q", name)
	}
}
