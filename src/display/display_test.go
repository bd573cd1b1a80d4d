package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"vmsim-golang/src/common"
	"vmsim-golang/src/paging"
)

func buildTable(t *testing.T, algorithm common.Algorithm, refs []int) *paging.PageTable {
	pt, err := paging.New(4, 3, algorithm)
	require.Nil(t, err)
	for _, page := range refs {
		require.Nil(t, pt.Access(page))
	}
	return pt
}

func TestAlgorithmName(t *testing.T) {
	require.Equal(t, "FIFO", AlgorithmName(common.FIFO))
	require.Equal(t, "LRU", AlgorithmName(common.LRU))
	require.Equal(t, "MFU", AlgorithmName(common.MFU))
	require.Equal(t, "UNKNOWN", AlgorithmName(common.Algorithm(42)))
}

func TestRender(t *testing.T) {
	pt := buildTable(t, common.LRU, []int{0, 1, 2, 0, 3})

	out := Render(pt)
	require.Contains(t, out, "Replacement algorithm: LRU")
	require.Contains(t, out, "Page faults: 4")
	require.Contains(t, out, "Page Table")
	require.Contains(t, out, "Frame Table")
}

func TestRenderContents(t *testing.T) {
	pt := buildTable(t, common.FIFO, []int{0, 1})

	out := RenderContents(pt)
	// One line per page, one per frame, plus the two section headers.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Equal(t, pt.PageCount()+pt.FrameCount()+2, len(lines))
	require.Contains(t, out, "frame:0 resident:1")
	require.Contains(t, out, "frame:-1 resident:0")
	require.Contains(t, out, "inuse:1 page:0")
	require.Contains(t, out, "inuse:0")
}
