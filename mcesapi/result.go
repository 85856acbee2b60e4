package mcesapi

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

var resultJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Result is the serializable summary of one top-level call, used for
// `--format json` CLI output and golden test fixtures (spec §10.6).
type Result struct {
	RunID    string        `json:"run_id"`
	Mappings [][]EdgeTuple `json:"mappings,omitempty"`
	Solution []NodeMapping `json:"solution,omitempty"`
	ArcsLeft int           `json:"arcs_left,omitempty"`
	Elapsed  time.Duration `json:"elapsed_ns"`
}

// NodeMapping is one vertex-to-vertex pair in a PairwiseMCES solution,
// serialized as a flat struct rather than a Go map so field order and JSON
// shape stay stable across runs.
type NodeMapping struct {
	G int `json:"g"`
	H int `json:"h"`
}

// MarshalJSON renders a Result with json-iterator's standard-library
// compatible codec (spec §10.6).
func (r Result) MarshalJSON() ([]byte, error) {
	type alias Result
	return resultJSON.Marshal(alias(r))
}

// UnmarshalJSON parses a Result previously produced by MarshalJSON.
func (r *Result) UnmarshalJSON(data []byte) error {
	type alias Result
	var a alias
	if err := resultJSON.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = Result(a)
	return nil
}
