package gspmi

// project implements the database projector (C3): it lifts the
// postfix generator over every group of a projected database to
// produce the next level's PDB. A group that produces no postfixes is
// dropped; surviving groups keep the order of the input PDB, so the
// i-th output group still corresponds to the same originating input
// sequence.
func project(pdb PDB, projector Pair, itemize Itemize) PDB {
	out := make(PDB, 0, len(pdb))
	for _, group := range pdb {
		var next Group
		for _, pf := range group {
			if pfs := postfixes(pf, projector, false, itemize); len(pfs) > 0 {
				next = append(next, pfs[0])
			}
		}
		if len(next) > 0 {
			out = append(out, next)
		}
	}
	return out
}
