package main

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/tklehn/gomces/mcesapi"
	"github.com/tklehn/gomces/molfile"
	"github.com/tklehn/gomces/molgraph"
)

// loadRecord parses the single molecule-text record expected in path and
// returns an error for a file holding more than one record. Every command,
// multiCmd included, loads one graph per file through this function.
func loadRecord(path string) (molfile.Record, error) {
	records, err := loadRecords(path)
	if err != nil {
		return molfile.Record{}, err
	}
	if len(records) != 1 {
		return molfile.Record{}, errors.Newf("gomces: %s: expected exactly one record, found %d", path, len(records))
	}
	return records[0], nil
}

func loadRecords(path string) ([]molfile.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "gomces: open %s", path)
	}
	defer f.Close()

	records, err := molfile.ParseRecords(f)
	if err != nil {
		return nil, errors.Wrapf(err, "gomces: parse %s", path)
	}
	return records, nil
}

func graphsOf(records []molfile.Record) []*molgraph.Graph {
	out := make([]*molgraph.Graph, len(records))
	for i, r := range records {
		out[i] = r.Graph
	}
	return out
}

// loadAnchorPairs reads PairwiseMCES's vertex-correspondence seed from a
// "<g_vertex> <h_vertex>" line-per-pair file. This is a cross-graph vertex
// pairing, distinct from molfile's adjacency-pair anchor format (which
// marks anchor edges within a single graph).
func loadAnchorPairs(path string) ([]mcesapi.NodePair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "gomces: open %s", path)
	}
	defer f.Close()

	var pairs []mcesapi.NodePair
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, errors.Newf("gomces: %s:%d: expected \"<g_vertex> <h_vertex>\"", path, lineNo)
		}
		g, errG := strconv.Atoi(fields[0])
		h, errH := strconv.Atoi(fields[1])
		if errG != nil || errH != nil {
			return nil, errors.Newf("gomces: %s:%d: expected \"<g_vertex> <h_vertex>\"", path, lineNo)
		}
		pairs = append(pairs, mcesapi.NodePair{G: g, H: h})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "gomces: read %s", path)
	}
	return pairs, nil
}
