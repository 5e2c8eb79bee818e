// Package contact finds residues which are close in space but not
// neighbours in sequence.
package contact

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"runtime"
	"slices"

	"github.com/andrew-torda/biohub/pdb/cmmn"
	"github.com/andrew-torda/biohub/pdb/geom"
	"github.com/andrew-torda/matrix"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

type Error string

func (e Error) Error() string { return string(e) }

const ErrBadParam = Error("bad contact parameter")

const DfltThreshold = 8.0 // Angstrom

// Policy says how the distance between two residues is measured.
type Policy int

const (
	CAlpha  Policy = iota // between alpha carbons
	AllAtom               // closest pair of atoms
)

func (p Policy) String() string {
	switch p {
	case CAlpha:
		return "calpha"
	case AllAtom:
		return "allatom"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// Options for Find. A nil *Options means DfltOptions.
type Options struct {
	Threshold float64 // pairs at this distance or closer are in contact
	Policy    Policy
	NWorker   int // goroutines for AllAtom, runtime.NumCPU() if < 1
}

func DfltOptions() Options { return Options{Threshold: DfltThreshold} }

// Contact is a pair of residues with Res1 before Res2 in numbering.
type Contact struct {
	Res1, Res2 cmmn.ResKey
	Dist       float64
}

// tooClose is true for a residue and itself or its sequence neighbours.
func tooClose(a, b cmmn.ResKey) bool {
	d := a.ResNum - b.ResNum
	return d >= -1 && d <= 1
}

// mkContact orders the pair by residue number.
func mkContact(a, b cmmn.ResKey, d float64) Contact {
	if b.ResNum < a.ResNum {
		a, b = b, a
	}
	return Contact{Res1: a, Res2: b, Dist: d}
}

func sortContacts(c []Contact) {
	slices.SortFunc(c, func(x, y Contact) int {
		if n := cmp.Compare(x.Res1.ResNum, y.Res1.ResNum); n != 0 {
			return n
		}
		return cmp.Compare(x.Res2.ResNum, y.Res2.ResNum)
	})
}

// caList returns the first CA of each residue, in order.
func caList(grps []cmmn.ResGrp, atoms []cmmn.Atom) ([]cmmn.ResKey, []r3.Vec) {
	var keys []cmmn.ResKey
	var xyz []r3.Vec
	for _, g := range grps {
		for _, i := range g.Ndx {
			if atoms[i].Name == "CA" {
				keys = append(keys, g.Key)
				xyz = append(xyz, atoms[i].Xyz)
				break
			}
		}
	}
	return keys, xyz
}

func findCA(ctx context.Context, grps []cmmn.ResGrp, atoms []cmmn.Atom, thresh float64) ([]Contact, error) {
	keys, xyz := caList(grps, atoms)
	var ret []Contact
	for i := range keys {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for j := i + 1; j < len(keys); j++ {
			if tooClose(keys[i], keys[j]) {
				continue
			}
			if d := geom.Dist(xyz[i], xyz[j]); d <= thresh {
				ret = append(ret, mkContact(keys[i], keys[j], d))
			}
		}
	}
	return ret, nil
}

// findAll compares every atom of one residue with every atom of
// another. Each residue's row of comparisons is one job for the pool
// and writes only its own slot of found.
func findAll(ctx context.Context, grps []cmmn.ResGrp, atoms []cmmn.Atom, thresh float64, nworker int) ([]Contact, error) {
	xyz := make([][]r3.Vec, len(grps))
	for i, g := range grps {
		for _, n := range g.Ndx {
			xyz[i] = append(xyz[i], atoms[n].Xyz)
		}
	}
	found := make([][]Contact, len(grps))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(nworker)
	for i := range grps {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for j := i + 1; j < len(grps); j++ {
				if tooClose(grps[i].Key, grps[j].Key) {
					continue
				}
				d2, err := geom.MinDist2(xyz[i], xyz[j])
				if err != nil {
					return err
				}
				if d := math.Sqrt(d2); d <= thresh {
					found[i] = append(found[i], mkContact(grps[i].Key, grps[j].Key, d))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var ret []Contact
	for _, f := range found {
		ret = append(ret, f...)
	}
	return ret, nil
}

// Find returns residue pairs closer than or at opts.Threshold. Only
// ATOM records of the first chain are considered, and residues whose
// numbers differ by one or less are never reported. The result is
// sorted by the first residue number and then the second.
func Find(ctx context.Context, atoms []cmmn.Atom, opts *Options) ([]Contact, error) {
	if opts == nil {
		o := DfltOptions()
		opts = &o
	}
	if opts.Threshold < 0 || math.IsNaN(opts.Threshold) {
		return nil, fmt.Errorf("%w: threshold %g", ErrBadParam, opts.Threshold)
	}
	chain := cmmn.FirstChain(atoms)
	grps := cmmn.GroupRes(chain)
	var ret []Contact
	var err error
	switch opts.Policy {
	case CAlpha:
		ret, err = findCA(ctx, grps, chain, opts.Threshold)
	case AllAtom:
		nworker := opts.NWorker
		if nworker < 1 {
			nworker = runtime.NumCPU()
		}
		ret, err = findAll(ctx, grps, chain, opts.Threshold, nworker)
	default:
		return nil, fmt.Errorf("%w: %v", ErrBadParam, opts.Policy)
	}
	if err != nil {
		return nil, err
	}
	sortContacts(ret)
	return ret, nil
}

// Map puts contacts into an nres by nres matrix indexed by residue
// number - 1. In contact entries hold the distance, the rest are zero.
// Residues numbered outside 1..nres are left out.
func Map(contacts []Contact, nres int) *matrix.FMatrix2d {
	if nres < 1 {
		return nil
	}
	m := matrix.NewFMatrix2d(nres, nres)
	for _, c := range contacts {
		i, j := c.Res1.ResNum-1, c.Res2.ResNum-1
		if i < 0 || j < 0 || i >= nres || j >= nres {
			continue
		}
		m.Mat[i][j] = float32(c.Dist)
		m.Mat[j][i] = float32(c.Dist)
	}
	return m
}
