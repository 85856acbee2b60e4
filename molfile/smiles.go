package molfile

import "github.com/tklehn/gomces/molgraph"

// SMILESAtom is one atom as an external SMILES parser would yield it:
// element symbol, formal charge, and bonds to earlier atoms by index with
// a SMILES bond order. Its position in the owning slice is its vertex id.
type SMILESAtom struct {
	Symbol string
	Charge int
	Bonds  []SMILESBond
}

// SMILESBond connects this atom to an earlier atom by index, with a SMILES
// bond order (1, 2, 3, 4, or 1.5 for aromatic).
type SMILESBond struct {
	To    int
	Order float64
}

// FromSMILESAtoms converts SMILES-shaped atom records into a molgraph.Graph
// (spec §6 "SMILES ingestion"): atom_type is the element concatenated with
// its non-zero charge, bond_type follows {1:s, 2:d, 3:t, 4:q, 1.5:a}. The
// SMILES parser itself is an external collaborator; this is only the data
// contract at the boundary.
func FromSMILESAtoms(atoms []SMILESAtom) *molgraph.Graph {
	g := molgraph.New(len(atoms))
	for i, a := range atoms {
		_ = g.SetAtomType(i, atomTypeFromSMILES(a))
	}
	seen := make(map[[2]int]bool)
	for i, a := range atoms {
		for _, b := range a.Bonds {
			key := normalizedPair(i, b.To)
			if seen[key] {
				continue
			}
			seen[key] = true
			_, _ = g.AddEdge(i, b.To, bondFromSMILESOrder(b.Order))
		}
	}
	return g
}

func atomTypeFromSMILES(a SMILESAtom) molgraph.AtomType {
	if a.Charge == 0 {
		return molgraph.AtomType(a.Symbol)
	}
	sign := "+"
	n := a.Charge
	if n < 0 {
		sign = "-"
		n = -n
	}
	suffix := sign
	if n > 1 {
		suffix = itoa(n) + sign
	}
	return molgraph.AtomType(a.Symbol + suffix)
}

func bondFromSMILESOrder(order float64) molgraph.BondType {
	switch order {
	case 1:
		return molgraph.BondSingle
	case 2:
		return molgraph.BondDouble
	case 3:
		return molgraph.BondTriple
	case 4:
		return molgraph.BondQuadruple
	case 1.5:
		return molgraph.BondAromatic
	default:
		return molgraph.BondQuadruple
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
