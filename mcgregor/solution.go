package mcgregor

import "github.com/tklehn/gomces/marcs"

// Solution is one maximum-arcsleft leaf recorded during search: a complete
// vertex injection from G into H, the MARCS matrix as it stood at that leaf,
// and the arcsleft value the leaf was accepted under (spec §4.5 "Output").
type Solution struct {
	Mapping  map[int]int
	MARCS    *marcs.MARCS
	ArcsLeft int
}

func copyMapping(mapping []int) map[int]int {
	out := make(map[int]int, len(mapping))
	for v, x := range mapping {
		if x != -1 {
			out[v] = x
		}
	}
	return out
}
