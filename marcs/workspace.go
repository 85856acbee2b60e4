package marcs

// Workspace is a decision-point snapshot of a MARCS matrix: the values of
// MARCS, arcsleft, rowOnes, and the killed stack at the moment the search
// advanced past a given vertex depth (spec §3 "workspaces").
//
// Snapshots are full clones rather than the delta log spec.md's design
// notes mention as an alternative (§9 "Deep copies of MARCS"): the killed
// stack is reset to a fresh batch at every depth in the reference search
// (spec §4.5 step 3 "clear killed"), so a depth's own batch cannot be
// replayed in isolation without also knowing which cells belonged to
// deeper, already-abandoned branches. A global-stack-with-markers delta
// scheme is possible but adds bookkeeping the stack's workspace count
// (bounded by |V(G)|) does not need to justify.
type Workspace struct {
	marcs    *MARCS
	arcsleft int
	rowOnes  []int
	killed   []Cell
}

// Snapshot captures the current state of m as a Workspace.
func Snapshot(m *MARCS) *Workspace {
	return &Workspace{
		marcs:    m.Clone(),
		arcsleft: m.arcsleft,
		rowOnes:  append([]int(nil), m.rowOnes...),
		killed:   append([]Cell(nil), m.killed...),
	}
}

// Restore returns the MARCS matrix captured by the snapshot, with its own
// arcsleft/rowOnes/killed already consistent (they were cloned together).
func (w *Workspace) Restore() *MARCS {
	return w.marcs
}
