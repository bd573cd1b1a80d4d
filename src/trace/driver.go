package trace

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"vmsim-golang/src/common"
	"vmsim-golang/src/display"
	"vmsim-golang/src/paging"
)

// Run replays a scenario against a freshly created page table and returns
// the finished table for inspection. When verbose is set the creation is
// logged; nothing is logged per reference.
func Run(s *Scenario, algorithm common.Algorithm, verbose bool) (*paging.PageTable, error) {
	pt, err := paging.New(s.PageCount, s.FrameCount, algorithm)
	if err != nil {
		return nil, err
	}
	if verbose {
		log.Infof("Created page_table{page_count=%d, frame_count=%d, replacement_algorithm=%s}",
			s.PageCount, s.FrameCount, display.AlgorithmName(algorithm))
	}
	for i, page := range s.Refs {
		if err := pt.Access(page); err != nil {
			return nil, fmt.Errorf("reference %d: %w", i, err)
		}
	}
	return pt, nil
}
