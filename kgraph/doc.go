// Package kgraph builds and repairs the de-Bruijn-style k-mer graph at the
// heart of transcript assembly, and searches for the window size k that best
// balances graph connectivity against information loss.
//
// What
//
//   - Build re-encodes scored partial paths into a directed graph whose
//     vertices are k-length windows ("k-mers") of splice-graph node ids.
//     Windows shared between paths collapse into one vertex that accumulates
//     the score of every contributing path. Paths shorter than k that are not
//     full-length are deferred into per-length buckets.
//   - ResolveShortPaths matches each deferred path against the finished graph
//     through a substring-hash index and redistributes its score across the
//     k-mers that contain it; paths matching nothing are reported as lost.
//   - ResolveDangling repairs structural fragmentation: the clip policy
//     removes vertices with no predecessor or no successor to a fixed point,
//     the connect policy instead wires them to the Source/Sink sentinels.
//   - Optimize iterates k ascending over [kmin, kmax], rebuilding the graph at
//     each candidate, and selects the largest k whose retained score fraction
//     ("sensitivity") still clears the configured threshold.
//
// Vertex model
//
//	Vertices carry a dense non-negative integer id into a flat vertex table
//	(tuple, score, and three smoothing accumulators held in parallel slices),
//	plus the two reserved sentinel ids Source and Sink. Adjacency is kept as
//	forward and reverse neighbor sets so that both degree queries and clip
//	frontier expansion are O(degree).
//
// Score conservation
//
//	Total input score = score retained in the final graph
//	                  + score lost to unmatched short paths
//	                  + score lost to clipping.
//	Sensitivity, as computed by Optimize, measures exactly this equation on
//	length-weighted scores.
//
// Every Graph is ephemeral: one is built per candidate k per locus and only
// the winning graph survives into smoothing and path enumeration. Nothing in
// this package is safe for concurrent mutation; a graph is owned by a single
// assembly invocation.
//
// Complexity (P = Σ path lengths, V = k-mer vertices, E = edges)
//
//   - Build:             O(P) expected (one hash-map probe per window)
//   - ResolveShortPaths: O(V·k) per distinct short length, plus O(matches)
//   - ResolveDangling:   O(V + E) (work-queue fixpoint, each vertex removed once)
//   - Optimize:          one Build+Resolve pipeline per candidate k
package kgraph
