package molfile

import "github.com/tklehn/gomces/molgraph"

// bondFromSymbol maps a molecule-file bond token to a BondType; any symbol
// not in the table falls back to BondQuadruple (spec §6/§7's explicit
// "unknown bond symbol" policy — never an error).
func bondFromSymbol(symbol string) molgraph.BondType {
	switch symbol {
	case "-":
		return molgraph.BondSingle
	case "=":
		return molgraph.BondDouble
	case ":":
		return molgraph.BondAromatic
	case "==":
		return molgraph.BondTriple
	case "-=":
		return molgraph.BondSingleDouble
	case "=-":
		return molgraph.BondDoubleSingle
	default:
		return molgraph.BondQuadruple
	}
}
