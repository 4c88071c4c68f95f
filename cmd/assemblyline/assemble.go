package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Xiuying/assemblyline/assemble"
	"github.com/Xiuying/assemblyline/config"
	"github.com/Xiuying/assemblyline/transcript"
)

// assembleCmd runs the pipeline on one locus file and prints its isoforms.
var assembleCmd = &cobra.Command{
	Use:   "assemble [locus file]",
	Short: "Assemble the isoforms of one splice-graph locus",
	Long: `Assemble candidate transcript isoforms from a line-oriented locus file.

The file describes the splice graph and its evidence paths:

  node <id> <start> <end>           an exon-segment node
  chain <id> <start-end> ...        mark a node as a collapsed exon chain
  edge <from> <to>                  a directed splice-graph edge
  path <score> <id> <id> ...        one scored partial path

Output is one line per isoform: score, then the exon chain.`,
	Args: cobra.ExactArgs(1),
	Run:  runAssemble,
}

func init() {
	f := assembleCmd.Flags()
	f.String("strand", "+", "strand of the locus, + or -")
	f.Int("kmax", 0, "cap on the k-mer window-size search (0 = derive from data)")
	f.Float64("ksensitivity", assemble.DefaultOptions().KSensitivity,
		"minimum fraction of evidence a candidate k must retain (0 disables the search)")
	f.Float64("fraction-major-path", assemble.DefaultOptions().FractionMajorPath,
		"minimum score, relative to the best path, for an isoform to be reported")
	f.Int("max-paths", assemble.DefaultOptions().MaxPaths, "cap on reported isoforms")

	must(viper.BindPFlag("kmax", f.Lookup("kmax")))
	must(viper.BindPFlag("ksensitivity", f.Lookup("ksensitivity")))
	must(viper.BindPFlag("fraction-major-path", f.Lookup("fraction-major-path")))
	must(viper.BindPFlag("max-paths", f.Lookup("max-paths")))

	rootCmd.AddCommand(assembleCmd)
}

func runAssemble(cmd *cobra.Command, args []string) {
	fh, err := os.Open(args[0])
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer fh.Close()

	sg, paths, err := parseLocus(fh)
	if err != nil {
		log.Fatalf("%s: %v", args[0], err)
	}

	strand := transcript.StrandPos
	if s, _ := cmd.Flags().GetString("strand"); s == "-" {
		strand = transcript.StrandNeg
	}

	settings, err := config.New()
	if err != nil {
		log.Fatalf("%v", err)
	}

	infos, err := assemble.TranscriptGraph(sg, strand, paths, settings.Options())
	if err != nil {
		log.Fatalf("%v", err)
	}
	for _, info := range infos {
		fmt.Println(formatPath(info))
	}
}

// formatPath renders one isoform as "score<TAB>start-end,start-end,...".
func formatPath(info transcript.PathInfo) string {
	exons := make([]string, len(info.Exons))
	for i, e := range info.Exons {
		exons[i] = fmt.Sprintf("%d-%d", e.Start, e.End)
	}
	return fmt.Sprintf("%.3f\t%s", info.Score, strings.Join(exons, ","))
}

func must(err error) {
	if err != nil {
		log.Fatalf("%v", err)
	}
}
