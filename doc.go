// Package assemblyline assembles candidate transcript isoforms from splice
// graphs built out of aligned RNA-Seq coverage.
//
// The hard problem it solves: read evidence arrives as fragmented,
// variable-length, noisy partial paths through a splice graph. assemblyline
// re-encodes that evidence into one consistent de-Bruijn-style graph at a
// chosen window size k, repairs the structural artifacts the re-encoding
// exposes, searches over k for the resolution that keeps connectivity without
// losing evidence, and enumerates a bounded set of high-scoring end-to-end
// paths — one per plausible isoform — mapped back to genomic exon
// coordinates.
//
// The pipeline, package by package:
//
//	splice/      — the input side: splice graphs and scored partial paths
//	kgraph/      — k-mer graph construction, short-fragment score
//	               redistribution, dangling-end repair, window-size search
//	smooth/      — spreads path-boundary score mass through the graph
//	pathfinder/  — enumerates suboptimal Source→Sink paths by bottleneck score
//	assemble/    — orchestrates one locus end to end, reconstructs exon models
//	transcript/  — Exon, Strand and PathInfo value types
//	config/      — process-level settings
//	sampletable/ — sample-manifest parsing for multi-sample runs
//
// Everything is in-memory and synchronous: one assemble call owns all of its
// state, so independent loci can be assembled concurrently by any outer
// scheduler without locking.
//
// Quick start:
//
//	sg := splice.NewGraph()
//	// ... add nodes, edges and collect partial paths ...
//	infos, err := assemble.TranscriptGraph(sg, transcript.StrandPos, paths,
//	    assemble.DefaultOptions())
//
// See cmd/assemblyline for the command-line front end.
package assemblyline
