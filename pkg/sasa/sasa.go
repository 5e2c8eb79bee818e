// Package sasa calculates solvent accessible surface area with the
// Shrake and Rupley method. Each atom is blown up by the radius of a
// probe and points are scattered over its surface. A point which is
// not inside any other blown up atom is accessible.
package sasa

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/andrew-torda/biohub/pdb/cmmn"
	"github.com/andrew-torda/biohub/pkg/sphere"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

type Error string

func (e Error) Error() string { return string(e) }

const ErrBadParam = Error("bad sasa parameter")

const (
	DfltProbe  = 1.4 // water, in Angstrom
	DfltNPoint = 960
	dfltVdw    = 1.70
)

// vdwRadii are keyed by element symbol.
var vdwRadii = map[string]float64{
	"H":  1.20,
	"C":  1.70,
	"N":  1.55,
	"O":  1.52,
	"S":  1.80,
	"P":  1.80,
	"F":  1.47,
	"CL": 1.75,
	"BR": 1.85,
	"I":  1.98,
}

// Vdw returns the van der Waals radius of an element, or a carbon
// sized default if we do not know it.
func Vdw(element string) float64 {
	if r, ok := vdwRadii[element]; ok {
		return r
	}
	return dfltVdw
}

// Options for a calculation. A nil *Options means all the defaults.
type Options struct {
	Probe   float64 // probe radius
	NPoint  int     // points per atom
	NWorker int     // goroutines, runtime.NumCPU() if < 1
}

// DfltOptions returns water as probe and the usual number of points.
func DfltOptions() Options {
	return Options{Probe: DfltProbe, NPoint: DfltNPoint}
}

// Result has areas in square Angstrom. PerAtom is in the same order
// as the atoms we were given. ResOrder is the order in which residues
// were first seen.
type Result struct {
	Total    float64
	PerAtom  []float64
	PerRes   map[cmmn.ResKey]float64
	ResOrder []cmmn.ResKey
}

// ByAtom returns per atom areas keyed by residue and serial number.
// atoms must be the slice the result was calculated from.
func (r *Result) ByAtom(atoms []cmmn.Atom) map[cmmn.AtomKey]float64 {
	m := make(map[cmmn.AtomKey]float64, len(atoms))
	for i := range atoms {
		m[atoms[i].AtomKey()] += r.PerAtom[i]
	}
	return m
}

// ball is an atom blown up by the probe radius.
type ball struct {
	c  r3.Vec
	r  float64
	r2 float64
}

// firstOccluder returns the first of the candidate balls which has p
// strictly inside it, or -1 if p is accessible.
func firstOccluder(p r3.Vec, cand []int, balls []ball) int {
	for _, j := range cand {
		if r3.Norm2(r3.Sub(p, balls[j].c)) < balls[j].r2 {
			return j
		}
	}
	return -1
}

// neighbours returns the balls which overlap ball i. Nothing else can
// hide one of its points.
func neighbours(i int, balls []ball) []int {
	var nbr []int
	bi := balls[i]
	for j, bj := range balls {
		if j == i {
			continue
		}
		rsum := bi.r + bj.r
		if r3.Norm2(r3.Sub(bi.c, bj.c)) < rsum*rsum {
			nbr = append(nbr, j)
		}
	}
	return nbr
}

// atomArea is the accessible area of ball i.
func atomArea(i int, balls []ball, pts []r3.Vec) float64 {
	bi := balls[i]
	nbr := neighbours(i, balls)
	nAcc := 0
	for _, u := range pts {
		p := r3.Add(bi.c, r3.Scale(bi.r, u))
		if firstOccluder(p, nbr, balls) < 0 {
			nAcc++
		}
	}
	return float64(nAcc) / float64(len(pts)) * sphereArea(bi.r)
}

func sphereArea(r float64) float64 { return 4 * math.Pi * r * r }

// Calc finds the accessible surface of every atom. atoms are only read.
// No atoms gives a nil result and no error. With no points, every
// area is zero. The outer loop over atoms is spread over
// opts.NWorker goroutines and stops when ctx is cancelled. The sums
// are done afterwards in atom order, so the number of workers does
// not change the result.
func Calc(ctx context.Context, atoms []cmmn.Atom, opts *Options) (*Result, error) {
	if opts == nil {
		o := DfltOptions()
		opts = &o
	}
	if opts.NPoint < 0 {
		return nil, fmt.Errorf("%w: %d points", ErrBadParam, opts.NPoint)
	}
	if opts.Probe < 0 {
		return nil, fmt.Errorf("%w: probe radius %g", ErrBadParam, opts.Probe)
	}
	if len(atoms) == 0 {
		return nil, nil
	}
	nworker := opts.NWorker
	if nworker < 1 {
		nworker = runtime.NumCPU()
	}

	balls := make([]ball, len(atoms))
	for i := range atoms {
		r := Vdw(atoms[i].Element) + opts.Probe
		balls[i] = ball{c: atoms[i].Xyz, r: r, r2: r * r}
	}
	perAtom := make([]float64, len(atoms))
	if pts := sphere.Points(opts.NPoint); len(pts) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(nworker)
		for i := range balls {
			if gctx.Err() != nil {
				break
			}
			i := i
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				perAtom[i] = atomArea(i, balls, pts)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{
		Total:   floats.Sum(perAtom),
		PerAtom: perAtom,
		PerRes:  make(map[cmmn.ResKey]float64),
	}
	for _, grp := range cmmn.GroupRes(atoms) {
		var s float64
		for _, i := range grp.Ndx {
			s += perAtom[i]
		}
		res.PerRes[grp.Key] = s
		res.ResOrder = append(res.ResOrder, grp.Key)
	}
	return res, nil
}
