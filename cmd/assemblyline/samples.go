package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Xiuying/assemblyline/sampletable"
)

// samplesCmd checks a lane manifest and reports which lanes a run would use.
var samplesCmd = &cobra.Command{
	Use:   "samples [lane manifest]",
	Short: "Validate a tab-delimited lane manifest",
	Args:  cobra.ExactArgs(1),
	Run:   runSamples,
}

func init() {
	rootCmd.AddCommand(samplesCmd)
}

func runSamples(cmd *cobra.Command, args []string) {
	fh, err := os.Open(args[0])
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer fh.Close()

	lanes, err := sampletable.ReadLanes(fh)
	if err != nil {
		log.Fatalf("%s: %v", args[0], err)
	}
	valid := 0
	for _, l := range lanes {
		if l.IsValid() {
			valid++
			continue
		}
		fmt.Printf("skipping lane %s/%s/%s/%s\n", l.Cohort, l.Sample, l.Library, l.Lane)
	}
	fmt.Printf("%d of %d lanes valid\n", valid, len(lanes))
}
