package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"vmsim-golang/src/common"
	"vmsim-golang/src/display"
	"vmsim-golang/src/trace"
)

func main() {
	algName := flag.String("algorithm", "FIFO", "replacement algorithm: FIFO, LRU or MFU")
	verbose := flag.Bool("v", false, "log page table creation")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-algorithm FIFO|LRU|MFU] [-v] <trace file>\n", os.Args[0])
		os.Exit(2)
	}

	algorithm, err := common.ParseAlgorithm(*algName)
	if err != nil {
		log.WithError(err).Fatalf("Bad algorithm name.")
	}
	scenario, err := trace.Load(flag.Arg(0))
	if err != nil {
		log.WithError(err).Fatalf("Cannot load trace file %s.", flag.Arg(0))
	}
	pt, err := trace.Run(scenario, algorithm, *verbose)
	if err != nil {
		log.WithError(err).Fatalf("Trace replay failed.")
	}
	fmt.Print(display.Render(pt))
}
