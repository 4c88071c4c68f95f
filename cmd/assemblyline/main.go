// Command assemblyline assembles transcript isoforms from splice-graph loci.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "assemblyline",
	Short: `Assemble candidate transcript isoforms from a splice graph.
Loci are read from simple line-oriented files; see 'assemblyline assemble --help'`,
	Version: "0.1.0",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
