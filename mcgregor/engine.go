// Package mcgregor implements the McGregor backtracking pairwise engine
// (spec §4.5): it enumerates vertex injections from G into H, maintaining a
// MARCS compatibility matrix over the edges of G and H and backtracking
// whenever no legal candidate extends the current partial mapping.
//
// The search is written as an explicit state machine over a single depth
// variable rather than recursion, so the workspace stack (one marcs.Workspace
// per depth) is the only place state escapes the loop body — mirroring how
// the reference algorithm is itself iterative, not the teacher's usual
// recursive dfsWalker shape.
package mcgregor

import (
	"github.com/tklehn/gomces/marcs"
	"github.com/tklehn/gomces/molgraph"
)

// Engine runs one pairwise McGregor search between two graphs.
type Engine struct {
	g, h *molgraph.Graph
	cfg  config
}

// New builds an Engine for graphs g and h. Returns ErrNilGraph if either is
// nil, ErrTooManyVertices if |V(G)| > |V(H)| (spec §7 precondition).
func New(g, h *molgraph.Graph, opts ...Option) (*Engine, error) {
	if g == nil || h == nil {
		return nil, ErrNilGraph
	}
	if g.VertexCount() > h.VertexCount() {
		return nil, ErrTooManyVertices
	}
	c := config{anchor: map[int]int{}}
	for _, o := range opts {
		o(&c)
	}
	for gv, hv := range c.anchor {
		if gv < 0 || gv >= g.VertexCount() || hv < 0 || hv >= h.VertexCount() {
			return nil, ErrVertexOutOfRange
		}
	}
	return &Engine{g: g, h: h, cfg: c}, nil
}

// Run executes the search to completion and returns every recorded solution
// tied for the largest arcsleft reached (spec §4.5 "Output").
func (e *Engine) Run() ([]Solution, error) {
	nG, nH := e.g.VertexCount(), e.h.VertexCount()
	eG, eH := e.g.EdgeCount(), e.h.EdgeCount()

	mapping := make([]int, nG)
	for i := range mapping {
		mapping[i] = -1
	}
	anchored := make([]bool, nG)
	hMapped := make([]bool, nH)
	for gv, hv := range e.cfg.anchor {
		anchored[gv] = true
		mapping[gv] = hv
		hMapped[hv] = true
	}

	firstNonAnchor := nG
	for v := 0; v < nG; v++ {
		if !anchored[v] {
			firstNonAnchor = v
			break
		}
	}

	// With no edges to constrain on either side, MARCS is vacuous: no edge
	// compatibility to refine, arcsleft is always 0, and the only meaningful
	// result is whatever the caller already fixed via anchor.
	if eG == 0 || eH == 0 {
		return []Solution{{Mapping: copyMapping(mapping), MARCS: nil, ArcsLeft: 0}}, nil
	}

	m, err := marcs.New(eG, eH)
	if err != nil {
		return nil, err
	}

	for gv, hv := range e.cfg.anchor {
		e.refine(m, gv, hv, true)
	}
	e.seedAnchorEdges(m, anchored, mapping)
	if e.cfg.molecule {
		for i := 0; i < eG; i++ {
			gEdge, _ := e.g.Edge(i)
			for j := 0; j < eH; j++ {
				hEdge, _ := e.h.Edge(j)
				if gEdge.BondType != hEdge.BondType {
					m.KillPermanent(i, j)
				}
			}
		}
	}
	m.ClearKilled()

	if firstNonAnchor >= nG || m.ArcsLeft() == 0 {
		return []Solution{{Mapping: copyMapping(mapping), MARCS: m.Clone(), ArcsLeft: m.ArcsLeft()}}, nil
	}

	hTried := make([][]bool, nG)
	workspaces := make([]*marcs.Workspace, nG)
	hTried[firstNonAnchor] = make([]bool, nH)

	var solutions []Solution
	bestArcsLeft := 0
	v := firstNonAnchor

	for v >= firstNonAnchor {
		x := -1
		for cand := 0; cand < nH; cand++ {
			if hTried[v][cand] || hMapped[cand] {
				continue
			}
			if e.cfg.molecule && !e.atomTypesMatch(v, cand) {
				continue
			}
			if !e.legal(v, cand, mapping, hMapped) {
				continue
			}
			x = cand
			break
		}

		if x == -1 {
			if mapping[v] != -1 {
				hMapped[mapping[v]] = false
				mapping[v] = -1
			}
			v--
			for v > firstNonAnchor && anchored[v] {
				v--
			}
			if v < firstNonAnchor {
				break
			}
			m = workspaces[v].Restore()
			continue
		}

		if mapping[v] != -1 {
			hMapped[mapping[v]] = false
			m.RestoreKilled()
		}
		mapping[v] = x
		hTried[v][x] = true
		hMapped[x] = true
		m.ClearKilled()
		e.refine(m, v, x, false)

		// arcsleft >= bestArcsLeft unconditionally: the reference keeps every
		// mapping tied with the running best, not only the first found, and
		// filters down to the global maximum once search ends.
		if m.ArcsLeft() < bestArcsLeft {
			continue
		}

		next := v + 1
		for next < nG && anchored[next] {
			next++
		}
		if next == nG {
			solutions = append(solutions, Solution{
				Mapping:  copyMapping(mapping),
				MARCS:    m.Clone(),
				ArcsLeft: m.ArcsLeft(),
			})
			bestArcsLeft = m.ArcsLeft()
			continue
		}

		workspaces[v] = marcs.Snapshot(m)
		v = next
		hTried[v] = make([]bool, nH)
		m.ClearKilled()
	}

	return filterMaxArcsLeft(solutions), nil
}

func filterMaxArcsLeft(solutions []Solution) []Solution {
	if len(solutions) == 0 {
		return solutions
	}
	max := solutions[0].ArcsLeft
	for _, s := range solutions {
		if s.ArcsLeft > max {
			max = s.ArcsLeft
		}
	}
	out := make([]Solution, 0, len(solutions))
	for _, s := range solutions {
		if s.ArcsLeft == max {
			out = append(out, s)
		}
	}
	return out
}

// legal reports whether mapping vertex v to candidate x keeps the partial
// injection a valid one (spec §4.5 "is_legal_pair"): every already-mapped
// H-neighbor of x must be the image of a G-neighbor of v.
func (e *Engine) legal(v, x int, mapping []int, hMapped []bool) bool {
	hAllowed := make(map[int]bool)
	for _, gn := range e.g.Neighbors(v) {
		if mapping[gn] != -1 {
			hAllowed[mapping[gn]] = true
		}
	}
	for _, hn := range e.h.Neighbors(x) {
		if mapping[v] == hn {
			continue
		}
		if hMapped[hn] && !hAllowed[hn] {
			return false
		}
	}
	return true
}

func (e *Engine) atomTypesMatch(v, x int) bool {
	gt, gok := e.g.AtomTypeOf(v)
	ht, hok := e.h.AtomTypeOf(x)
	return gok && hok && gt == ht
}

// refine zeros MARCS[eg][eh] for every edge eg incident to v and every edge
// eh of H not incident to x (spec §4.5 "update_MARCS"). permanent selects
// KillPermanent (anchor seeding) over the restorable Kill (search steps).
func (e *Engine) refine(m *marcs.MARCS, v, x int, permanent bool) {
	for _, eg := range e.g.IncidentEdges(v) {
		for eh := 0; eh < e.h.EdgeCount(); eh++ {
			hEdge, _ := e.h.Edge(eh)
			if hEdge.U == x || hEdge.V == x {
				continue
			}
			if permanent {
				m.KillPermanent(eg, eh)
			} else {
				m.Kill(eg, eh)
			}
		}
	}
}

// seedAnchorEdges pins every edge directly implied by two already-anchored
// vertices: if (u,w) is an edge of G with both endpoints anchored and their
// images form an edge of H, that pair is the only surviving correspondence
// for both its row and its column (spec §4.5 step 2, third clause).
func (e *Engine) seedAnchorEdges(m *marcs.MARCS, anchored []bool, mapping []int) {
	for _, edge := range e.g.Edges() {
		if !anchored[edge.U] || !anchored[edge.V] {
			continue
		}
		hu, hw := mapping[edge.U], mapping[edge.V]
		if !e.h.HasEdge(hu, hw) {
			continue
		}
		gEdgeIdx, err := e.g.EdgeIndexOf(edge.U, edge.V)
		if err != nil {
			continue
		}
		hEdgeIdx, err := e.h.EdgeIndexOf(hu, hw)
		if err != nil {
			continue
		}
		for hh := 0; hh < e.h.EdgeCount(); hh++ {
			if hh != hEdgeIdx {
				m.KillPermanent(gEdgeIdx, hh)
			}
		}
		for gg := 0; gg < e.g.EdgeCount(); gg++ {
			if gg != gEdgeIdx {
				m.KillPermanent(gg, hEdgeIdx)
			}
		}
	}
}
