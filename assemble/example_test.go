package assemble_test

import (
	"fmt"
	"log"

	"github.com/Xiuying/assemblyline/assemble"
	"github.com/Xiuying/assemblyline/splice"
	"github.com/Xiuying/assemblyline/transcript"
)

// Assemble a three-node locus whose first two exons touch: the isoform comes
// back with the touching run collapsed into one maximal exon.
func ExampleTranscriptGraph() {
	sg := splice.NewGraph()
	sg.AddNode(1, transcript.Exon{Start: 100, End: 120})
	sg.AddNode(2, transcript.Exon{Start: 120, End: 140})
	sg.AddNode(3, transcript.Exon{Start: 160, End: 180})
	if err := sg.AddEdge(1, 2); err != nil {
		log.Fatal(err)
	}
	if err := sg.AddEdge(2, 3); err != nil {
		log.Fatal(err)
	}

	paths := []splice.PartialPath{
		{Nodes: []splice.NodeID{1, 2, 3}, Score: 2},
	}
	infos, err := assemble.TranscriptGraph(sg, transcript.StrandPos, paths, assemble.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}
	for _, info := range infos {
		fmt.Printf("score=%.1f exons=%v\n", info.Score, info.Exons)
	}
	// Output:
	// score=2.0 exons=[[100,140) [160,180)]
}
