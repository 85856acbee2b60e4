package molfile

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/tklehn/gomces/molgraph"
)

const recordSeparator = "---New Instance---"
const sectionSeparator = "###"

type numberedLine struct {
	no   int
	text string
}

// ParseRecords streams a sequence of molecule-text records (spec §6): each
// record's header lines ("<int> <atom_type>") list vertices, a literal
// "###" line opens the edge section, and each edge line is
// "<u> <v> <bond_symbol>" or "<u> <v> anchor, <bond_symbol>". Records are
// separated by a literal "---New Instance---" line.
func ParseRecords(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	var records []Record

	var vertexLines []numberedLine
	var edgeLines []numberedLine
	inEdges := false
	lineNo := 0

	flush := func() error {
		if len(vertexLines) == 0 && len(edgeLines) == 0 {
			return nil
		}
		if !inEdges {
			return &ParseError{Line: lineNo, Text: "<end of record>", Err: ErrMissingSeparator}
		}
		rec, err := buildRecord(vertexLines, edgeLines)
		if err != nil {
			return err
		}
		records = append(records, rec)
		vertexLines = nil
		edgeLines = nil
		inEdges = false
		return nil
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch {
		case line == recordSeparator:
			if err := flush(); err != nil {
				return nil, err
			}
		case line == sectionSeparator:
			inEdges = true
		case !inEdges:
			vertexLines = append(vertexLines, numberedLine{lineNo, line})
		default:
			edgeLines = append(edgeLines, numberedLine{lineNo, line})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return records, nil
}

func buildRecord(vertexLines, edgeLines []numberedLine) (Record, error) {
	var vertexOrder []int
	atomTypes := make(map[int]molgraph.AtomType, len(vertexLines))
	for _, nl := range vertexLines {
		id, atom, err := parseVertexLine(nl.text)
		if err != nil {
			return Record{}, &ParseError{Line: nl.no, Text: nl.text, Err: err}
		}
		vertexOrder = append(vertexOrder, id)
		atomTypes[id] = atom
	}

	idToDense := make(map[int]int, len(vertexOrder))
	for i, id := range vertexOrder {
		idToDense[id] = i
	}
	g := molgraph.New(len(vertexOrder))
	for id, dense := range idToDense {
		_ = g.SetAtomType(dense, atomTypes[id])
	}

	var anchorEdges []int
	for _, nl := range edgeLines {
		du, dv, bond, isAnchor, err := parseEdgeLine(nl.text, idToDense)
		if err != nil {
			return Record{}, &ParseError{Line: nl.no, Text: nl.text, Err: err}
		}
		idx, err := g.AddEdge(du, dv, bond)
		if err != nil {
			return Record{}, &ParseError{Line: nl.no, Text: nl.text, Err: err}
		}
		if isAnchor {
			anchorEdges = append(anchorEdges, idx)
		}
	}

	return Record{Graph: g, AnchorEdges: anchorEdges}, nil
}

func parseVertexLine(line string) (int, molgraph.AtomType, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, "", ErrMalformedVertexLine
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, "", ErrMalformedVertexLine
	}
	return id, molgraph.AtomType(fields[1]), nil
}

func parseEdgeLine(line string, idToDense map[int]int) (u, v int, bond molgraph.BondType, isAnchor bool, err error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, 0, 0, false, ErrMalformedEdgeLine
	}
	rawU, errU := strconv.Atoi(fields[0])
	rawV, errV := strconv.Atoi(fields[1])
	if errU != nil || errV != nil {
		return 0, 0, 0, false, ErrMalformedEdgeLine
	}
	du, ok1 := idToDense[rawU]
	dv, ok2 := idToDense[rawV]
	if !ok1 || !ok2 {
		return 0, 0, 0, false, ErrUnknownVertex
	}

	rest := strings.Join(fields[2:], " ")
	isAnchor = strings.HasPrefix(rest, "anchor")
	var symbol string
	if isAnchor {
		if idx := strings.Index(rest, ","); idx >= 0 {
			symbol = strings.TrimSpace(rest[idx+1:])
		}
	} else {
		symbol = strings.TrimSpace(rest)
	}
	return du, dv, bondFromSymbol(symbol), isAnchor, nil
}
