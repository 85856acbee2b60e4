package molfile

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/tklehn/gomces/molgraph"
)

// ParseAdjacencyList reads an unlabeled adjacency-list graph (one line per
// vertex, "<u> <v1> <v2> ...") alongside its companion anchor file (one
// line per anchor edge, "<u> <v>"), producing a single unlabeled Record.
// Edges with no atom/bond information use BondNone throughout.
func ParseAdjacencyList(graphR, anchorR io.Reader) (Record, error) {
	pairs, maxVertex, err := scanAdjacency(graphR)
	if err != nil {
		return Record{}, err
	}

	g := molgraph.New(maxVertex + 1)
	edgeIndex := make(map[[2]int]int, len(pairs))
	for _, p := range pairs {
		key := normalizedPair(p[0], p[1])
		if _, exists := edgeIndex[key]; exists {
			continue
		}
		idx, err := g.AddEdge(p[0], p[1], molgraph.BondNone)
		if err != nil {
			return Record{}, err
		}
		edgeIndex[key] = idx
	}

	var anchorEdges []int
	if anchorR != nil {
		anchorPairs, _, err := scanAdjacencyPairs(anchorR)
		if err != nil {
			return Record{}, err
		}
		for _, p := range anchorPairs {
			idx, ok := edgeIndex[normalizedPair(p[0], p[1])]
			if !ok {
				return Record{}, ErrUnknownVertex
			}
			anchorEdges = append(anchorEdges, idx)
		}
	}

	return Record{Graph: g, AnchorEdges: anchorEdges}, nil
}

func normalizedPair(u, v int) [2]int {
	if u > v {
		return [2]int{v, u}
	}
	return [2]int{u, v}
}

// scanAdjacency parses "<u> <v1> <v2> ..." lines into one (u, vi) pair per
// neighbor, and returns the largest vertex id seen.
func scanAdjacency(r io.Reader) ([][2]int, int, error) {
	scanner := bufio.NewScanner(r)
	var pairs [][2]int
	maxVertex := -1
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, 0, &ParseError{Line: lineNo, Text: line, Err: ErrMalformedVertexLine}
		}
		if u > maxVertex {
			maxVertex = u
		}
		for _, f := range fields[1:] {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, 0, &ParseError{Line: lineNo, Text: line, Err: ErrMalformedEdgeLine}
			}
			if v > maxVertex {
				maxVertex = v
			}
			pairs = append(pairs, [2]int{u, v})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return pairs, maxVertex, nil
}

// scanAdjacencyPairs parses "<u> <v>" lines (the companion anchor-file
// format: one anchor edge per line).
func scanAdjacencyPairs(r io.Reader) ([][2]int, int, error) {
	scanner := bufio.NewScanner(r)
	var pairs [][2]int
	maxVertex := -1
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, 0, &ParseError{Line: lineNo, Text: line, Err: ErrMalformedEdgeLine}
		}
		u, errU := strconv.Atoi(fields[0])
		v, errV := strconv.Atoi(fields[1])
		if errU != nil || errV != nil {
			return nil, 0, &ParseError{Line: lineNo, Text: line, Err: ErrMalformedEdgeLine}
		}
		if u > maxVertex {
			maxVertex = u
		}
		if v > maxVertex {
			maxVertex = v
		}
		pairs = append(pairs, [2]int{u, v})
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return pairs, maxVertex, nil
}
