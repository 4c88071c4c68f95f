package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Xiuying/assemblyline/splice"
	"github.com/Xiuying/assemblyline/transcript"
)

// ErrBadLocusLine is returned for a malformed locus-file line.
var ErrBadLocusLine = errors.New("locus: malformed line")

// parseLocus reads the line-oriented locus format: node, chain, edge and path
// records in any order, as long as every referenced node is declared first.
// Blank lines and #-comments are skipped.
func parseLocus(r io.Reader) (*splice.Graph, []splice.PartialPath, error) {
	sg := splice.NewGraph()
	var paths []splice.PartialPath

	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		var err error
		switch fields[0] {
		case "node":
			err = parseNode(sg, fields[1:])
		case "chain":
			err = parseChain(sg, fields[1:])
		case "edge":
			err = parseEdge(sg, fields[1:])
		case "path":
			paths, err = parsePath(paths, fields[1:])
		default:
			err = fmt.Errorf("%w: unknown record %q", ErrBadLocusLine, fields[0])
		}
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return sg, paths, nil
}

func parseNode(sg *splice.Graph, fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("%w: node wants <id> <start> <end>", ErrBadLocusLine)
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadLocusLine, err)
	}
	exon, err := parseExon(fields[1] + "-" + fields[2])
	if err != nil {
		return err
	}
	sg.AddNode(splice.NodeID(id), exon)
	return nil
}

func parseChain(sg *splice.Graph, fields []string) error {
	if len(fields) < 2 {
		return fmt.Errorf("%w: chain wants <id> <start-end>...", ErrBadLocusLine)
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadLocusLine, err)
	}
	chain := make([]transcript.Exon, 0, len(fields)-1)
	for _, f := range fields[1:] {
		exon, err := parseExon(f)
		if err != nil {
			return err
		}
		chain = append(chain, exon)
	}
	return sg.SetChain(splice.NodeID(id), chain)
}

func parseEdge(sg *splice.Graph, fields []string) error {
	if len(fields) != 2 {
		return fmt.Errorf("%w: edge wants <from> <to>", ErrBadLocusLine)
	}
	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadLocusLine, err)
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadLocusLine, err)
	}
	return sg.AddEdge(splice.NodeID(u), splice.NodeID(v))
}

func parsePath(paths []splice.PartialPath, fields []string) ([]splice.PartialPath, error) {
	if len(fields) < 2 {
		return paths, fmt.Errorf("%w: path wants <score> <id>...", ErrBadLocusLine)
	}
	score, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return paths, fmt.Errorf("%w: %v", ErrBadLocusLine, err)
	}
	nodes := make([]splice.NodeID, 0, len(fields)-1)
	for _, f := range fields[1:] {
		id, err := strconv.Atoi(f)
		if err != nil {
			return paths, fmt.Errorf("%w: %v", ErrBadLocusLine, err)
		}
		nodes = append(nodes, splice.NodeID(id))
	}
	p := splice.PartialPath{Nodes: nodes, Score: score}
	if err := p.Validate(); err != nil {
		return paths, err
	}
	return append(paths, p), nil
}

func parseExon(s string) (transcript.Exon, error) {
	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return transcript.Exon{}, fmt.Errorf("%w: exon wants start-end", ErrBadLocusLine)
	}
	a, err := strconv.ParseInt(start, 10, 64)
	if err != nil {
		return transcript.Exon{}, fmt.Errorf("%w: %v", ErrBadLocusLine, err)
	}
	b, err := strconv.ParseInt(end, 10, 64)
	if err != nil {
		return transcript.Exon{}, fmt.Errorf("%w: %v", ErrBadLocusLine, err)
	}
	return transcript.Exon{Start: a, End: b}, nil
}
