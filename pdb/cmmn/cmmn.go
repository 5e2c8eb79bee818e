// Package pdb/cmmn has common definitions for atoms, residues and
// coordinates read from pdb files
package cmmn

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Atom is one ATOM or HETATM record.
type Atom struct {
	Xyz     r3.Vec // coordinates in Angstrom
	Serial  int    // atom serial number, 0 if blank or unreadable
	Name    string // atom name like "CA", spaces removed
	ResName string // three letter residue name
	ResNum  int    // residue number from the file. Not an index
	ChainID byte   // like 'A' or ' '
	Element string // upper case element symbol
	Het     bool   // true for HETATM records
}

// ResKey identifies a residue. The residue number is the one from
// the file, so it can be negative or have gaps.
type ResKey struct {
	ChainID byte
	ResNum  int
}

// Key returns the residue an atom belongs to.
func (a *Atom) Key() ResKey { return ResKey{a.ChainID, a.ResNum} }

// AtomKey identifies one atom within a residue, for per-atom results.
type AtomKey struct {
	ResKey
	Serial int
}

// AtomKey returns the key for per-atom results.
func (a *Atom) AtomKey() AtomKey { return AtomKey{a.Key(), a.Serial} }

// ChainRef remembers the first chain seen. The zero value has not
// seen anything. Match sets it on the first call and afterwards only
// compares.
type ChainRef struct {
	id  byte
	set bool
}

// Match reports whether id is the reference chain, taking id as the
// reference if there is none yet.
func (c *ChainRef) Match(id byte) bool {
	if !c.set {
		c.id, c.set = id, true
	}
	return c.id == id
}

// ID returns the reference chain and whether one has been seen.
func (c *ChainRef) ID() (byte, bool) { return c.id, c.set }

// FirstChain returns the ATOM records (not HETATM) belonging to the
// first chain which appears in ATOM records.
func FirstChain(atoms []Atom) []Atom {
	var ref ChainRef
	var ret []Atom
	for _, a := range atoms {
		if a.Het {
			continue
		}
		if ref.Match(a.ChainID) {
			ret = append(ret, a)
		}
	}
	return ret
}

// ResGrp is a residue and the indices of its atoms in some atom slice.
type ResGrp struct {
	Key     ResKey
	ResName string
	Ndx     []int
}

// GroupRes collects atoms into residues, keeping the order in which
// residues are first seen.
func GroupRes(atoms []Atom) []ResGrp {
	where := make(map[ResKey]int)
	var ret []ResGrp
	for i := range atoms {
		k := atoms[i].Key()
		j, ok := where[k]
		if !ok {
			j = len(ret)
			where[k] = j
			ret = append(ret, ResGrp{Key: k, ResName: atoms[i].ResName})
		}
		ret[j].Ndx = append(ret[j].Ndx, i)
	}
	return ret
}
