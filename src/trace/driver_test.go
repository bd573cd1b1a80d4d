package trace

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vmsim-golang/src/common"
)

func TestRun_FIFO(t *testing.T) {
	s := &Scenario{PageCount: 8, FrameCount: 3, Refs: []int{0, 1, 2, 3, 0}}

	pt, err := Run(s, common.FIFO, false)
	require.Nil(t, err)
	require.Equal(t, 5, pt.Faults())
	require.Equal(t, common.FIFO, pt.Algorithm())
}

func TestRun_LRU(t *testing.T) {
	s := &Scenario{PageCount: 8, FrameCount: 3, Refs: []int{0, 1, 2, 0, 3}}

	pt, err := Run(s, common.LRU, true)
	require.Nil(t, err)
	require.Equal(t, 4, pt.Faults())

	e, err := pt.Entry(1)
	require.Nil(t, err)
	require.Equal(t, false, e.Resident())
}

func TestRun_BadGeometry(t *testing.T) {
	s := &Scenario{PageCount: 0, FrameCount: 3}
	_, err := Run(s, common.FIFO, false)
	require.NotNil(t, err)
}

func TestRun_BadReference(t *testing.T) {
	// A scenario built by hand can bypass the loader's range check; the
	// table's own bounds check must still reject it.
	s := &Scenario{PageCount: 2, FrameCount: 1, Refs: []int{0, 5}}
	_, err := Run(s, common.FIFO, false)
	require.NotNil(t, err)
}
