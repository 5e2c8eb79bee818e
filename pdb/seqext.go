package pdb

import (
	"github.com/andrew-torda/biohub/pdb/cmmn"
	"github.com/andrew-torda/biohub/pkg/aa"
)

// SeqKeys returns the one letter sequence of the first chain in the
// ATOM records and the residue each letter came from. HETATM records
// are ignored, so a ligand before the protein does not decide the
// chain. Each residue number gives one letter, no matter how many
// atoms it has. Residues that are not one of the standard twenty are
// left out.
func SeqKeys(atoms []cmmn.Atom) ([]byte, []cmmn.ResKey) {
	var ref cmmn.ChainRef
	seen := make(map[cmmn.ResKey]bool)
	var seq []byte
	var keys []cmmn.ResKey
	for i := range atoms {
		a := &atoms[i]
		if a.Het || !ref.Match(a.ChainID) {
			continue
		}
		k := a.Key()
		if seen[k] {
			continue
		}
		if c, ok := aa.ThreeToOne[a.ResName]; ok {
			seq = append(seq, c)
			keys = append(keys, k)
			seen[k] = true
		}
	}
	return seq, keys
}

// SeqFromAtoms is SeqKeys without the residue keys.
func SeqFromAtoms(atoms []cmmn.Atom) []byte {
	seq, _ := SeqKeys(atoms)
	return seq
}

// ReadSeq reads a pdb file and returns the sequence of its first chain.
// A missing file gives an empty sequence and the error.
func ReadSeq(fname string, opts *Options) ([]byte, error) {
	atoms, _, err := ReadAtoms(fname, opts)
	if err != nil {
		return nil, err
	}
	return SeqFromAtoms(atoms), nil
}
