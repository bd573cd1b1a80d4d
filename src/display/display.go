package display

import (
	"fmt"
	"strings"

	"vmsim-golang/src/common"
	"vmsim-golang/src/paging"
)

// AlgorithmName maps a replacement algorithm to its display label.
func AlgorithmName(a common.Algorithm) string {
	switch a {
	case common.FIFO:
		return "FIFO"
	case common.LRU:
		return "LRU"
	case common.MFU:
		return "MFU"
	default:
		return "UNKNOWN"
	}
}

// Render formats the algorithm, the fault count and the table contents.
func Render(pt *paging.PageTable) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Replacement algorithm: %s\n", AlgorithmName(pt.Algorithm()))
	fmt.Fprintf(&b, "Page faults: %d\n", pt.Faults())
	b.WriteString(RenderContents(pt))
	return b.String()
}

// RenderContents formats the per-page entries followed by the frame table.
func RenderContents(pt *paging.PageTable) string {
	var b strings.Builder
	b.WriteString("Page Table\n")
	for p := 0; p < pt.PageCount(); p++ {
		e, _ := pt.Entry(p)
		resident := 0
		if e.Resident() {
			resident = 1
		}
		fmt.Fprintf(&b, "%5d frame:%d resident:%d\n", p, e.FrameNumber(), resident)
	}
	b.WriteString("Frame Table\n")
	for f := 0; f < pt.FrameCount(); f++ {
		page, _ := pt.FramePage(f)
		if page == common.EmptyFrame {
			fmt.Fprintf(&b, "%5d inuse:0\n", f)
		} else {
			fmt.Fprintf(&b, "%5d inuse:1 page:%d\n", f, page)
		}
	}
	return b.String()
}
