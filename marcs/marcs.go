// Package marcs implements the MARCS compatibility matrix and its
// workspace stack, shared by the mcgregor backtracking engine (spec §3
// "MARCS", §4.5).
//
// Unlike the teacher's matrix.Dense (a float64 linear-algebra primitive),
// MARCS only ever holds 0/1 cells, so it is backed by a flat []bool and
// tracked by a parallel rowOnes counter — the same row-major flat-slice
// shape, specialized to the one operation this engine actually needs.
package marcs

import "github.com/cockroachdb/errors"

// ErrInvalidDimensions indicates a non-positive row or column count.
var ErrInvalidDimensions = errors.New("marcs: dimensions must be > 0")

// Cell is a (gEdge, hEdge) coordinate killed during refinement.
type Cell struct {
	GEdge, HEdge int
}

// MARCS is a rows×cols {0,1} matrix tracking which edges of G may still be
// mapped to which edges of H, plus the bookkeeping spec.md names explicitly:
// rowOnes (per-row 1-count), arcsleft (rows with rowOnes > 0), and a killed
// stack of cells flipped 1→0 by Kill since the last ClearKilled or
// RestoreKilled.
type MARCS struct {
	rows, cols int
	data       []bool
	rowOnes    []int
	arcsleft   int
	killed     []Cell
}

// New returns a MARCS matrix initialized to all 1s: rows x cols, with
// rowOnes[i] == cols and arcsleft == rows (assuming cols > 0).
func New(rows, cols int) (*MARCS, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	m := &MARCS{
		rows:    rows,
		cols:    cols,
		data:    make([]bool, rows*cols),
		rowOnes: make([]int, rows),
	}
	for i := range m.data {
		m.data[i] = true
	}
	for i := range m.rowOnes {
		m.rowOnes[i] = cols
	}
	m.arcsleft = rows

	return m, nil
}

func (m *MARCS) idx(i, j int) int { return i*m.cols + j }

// At reports whether edge i of G may still be mapped to edge j of H.
func (m *MARCS) At(i, j int) bool { return m.data[m.idx(i, j)] }

// Rows returns the row count (|E(G)|).
func (m *MARCS) Rows() int { return m.rows }

// Cols returns the column count (|E(H)|).
func (m *MARCS) Cols() int { return m.cols }

// RowOnes returns the number of live 1s remaining in row i.
func (m *MARCS) RowOnes(i int) int { return m.rowOnes[i] }

// ArcsLeft returns the number of rows with at least one live 1.
func (m *MARCS) ArcsLeft() int { return m.arcsleft }

// Kill sets cell (i,j) to 0 if it was 1, pushing it onto the killed stack
// and decrementing rowOnes[i] (and arcsleft, if the row just hit zero).
// It is a no-op if the cell is already 0.
//
// Invariant (spec §3): for every (i,j) in killed, At(i,j) == false.
func (m *MARCS) Kill(i, j int) {
	k := m.idx(i, j)
	if !m.data[k] {
		return
	}
	m.data[k] = false
	m.killed = append(m.killed, Cell{GEdge: i, HEdge: j})
	m.rowOnes[i]--
	if m.rowOnes[i] == 0 {
		m.arcsleft--
	}
}

// KillPermanent behaves like Kill but does not push onto the killed stack,
// for edits that must never be rolled back by RestoreKilled (anchor seeding
// and label filtering, spec §4.5 steps 2-3).
func (m *MARCS) KillPermanent(i, j int) {
	k := m.idx(i, j)
	if !m.data[k] {
		return
	}
	m.data[k] = false
	m.rowOnes[i]--
	if m.rowOnes[i] == 0 {
		m.arcsleft--
	}
}

// ClearKilled drops the killed stack without restoring any cell, used once
// a tentative mapping becomes permanent (spec §4.5 step 3).
func (m *MARCS) ClearKilled() {
	m.killed = m.killed[:0]
}

// Killed returns the live killed stack (read-only by convention).
func (m *MARCS) Killed() []Cell {
	return m.killed
}

// RestoreKilled flips every cell currently on the killed stack back to 1,
// incrementing rowOnes (and arcsleft when a row regains its first 1), then
// clears the stack. Used when backtracking releases a tentative mapping.
func (m *MARCS) RestoreKilled() {
	for _, c := range m.killed {
		k := m.idx(c.GEdge, c.HEdge)
		if m.data[k] {
			continue
		}
		m.data[k] = true
		if m.rowOnes[c.GEdge] == 0 {
			m.arcsleft++
		}
		m.rowOnes[c.GEdge]++
	}
	m.killed = m.killed[:0]
}

// Clone returns a deep, independent copy (used when recording a solution and
// by Snapshot for every workspace).
func (m *MARCS) Clone() *MARCS {
	out := &MARCS{
		rows:     m.rows,
		cols:     m.cols,
		data:     append([]bool(nil), m.data...),
		rowOnes:  append([]int(nil), m.rowOnes...),
		arcsleft: m.arcsleft,
		killed:   append([]Cell(nil), m.killed...),
	}
	return out
}
