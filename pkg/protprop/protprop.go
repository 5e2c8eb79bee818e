// Package protprop calculates properties of a protein from its
// sequence alone: weight, charge, hydropathy and a few indices
// which are rules of thumb more than physics.
package protprop

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/andrew-torda/biohub/pkg/aa"
	"gonum.org/v1/gonum/floats"
)

type Error string

func (e Error) Error() string { return string(e) }

const ErrEmpty = Error("empty sequence")

const (
	stableBelow = 40.0 // instability index
	nPhStep     = 1400 // pI scan goes from 0 to 14 in steps of 0.01
	extTrp      = 5500
	extTyr      = 1490
	extCystine  = 125
)

// HalfLife is a guess from the first residue only, following the
// N-end rule. It is not a measured or calculated lifetime.
type HalfLife int

const (
	HalfUnknown HalfLife = iota
	HalfLong
	HalfShort
)

func (h HalfLife) String() string {
	switch h {
	case HalfLong:
		return "long"
	case HalfShort:
		return "short"
	}
	return "unknown"
}

func halfLife(first byte) HalfLife {
	switch {
	case bytes.IndexByte([]byte("MGASTVCP"), first) >= 0:
		return HalfLong
	case bytes.IndexByte([]byte("RKFLWYIDENQH"), first) >= 0:
		return HalfShort
	}
	return HalfUnknown
}

// Props are the results. Comp is indexed in the order of aa.Letters.
type Props struct {
	Length      int
	Comp        [aa.NAA]int
	NOther      int     // letters which are not one of the twenty
	MolWt       float64 // Da
	Gravy       float64
	PI          float64
	Instab      float64
	Stable      bool
	Aliphatic   float64
	HalfLife    HalfLife
	ExtReduced  int // M^-1 cm^-1 at 280 nm, no disulfides
	ExtOxidized int // all cysteines in disulfides
	NAcidic     int
	NBasic      int
	NPolar      int
	NNonpolar   int
}

// Count returns the number of residue c in the sequence.
func (p *Props) Count(c byte) int {
	if i := aa.Ndx(c); i >= 0 {
		return p.Comp[i]
	}
	return 0
}

// countOf adds up counts of the residues in s.
func (p *Props) countOf(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n += p.Count(s[i])
	}
	return n
}

// posFrac is the charged fraction of a group which is positive when
// protonated and negFrac the same for a group which is negative when
// not protonated.
func posFrac(pKa, pH float64) float64 {
	a := math.Pow(10, pKa)
	return a / (a + math.Pow(10, pH))
}

func negFrac(pKa, pH float64) float64 {
	b := math.Pow(10, pH)
	return b / (math.Pow(10, pKa) + b)
}

// Charge is the net charge of the chain at the given pH.
func (p *Props) Charge(pH float64) float64 {
	q := posFrac(aa.PkaNTerm, pH) - negFrac(aa.PkaCTerm, pH)
	for _, c := range []byte("RHK") {
		q += float64(p.Count(c)) * posFrac(aa.PkaSide[c], pH)
	}
	for _, c := range []byte("DECY") {
		q -= float64(p.Count(c)) * negFrac(aa.PkaSide[c], pH)
	}
	return q
}

// isoelectric scans pH and returns the first pH where the size of the
// charge is smallest.
func (p *Props) isoelectric() float64 {
	best, pI := math.Inf(1), 0.0
	for i := 0; i <= nPhStep; i++ {
		pH := float64(i) / 100
		if q := math.Abs(p.Charge(pH)); q < best {
			best, pI = q, pH
		}
	}
	return pI
}

// instability is the Guruprasad index. Pairs with a letter that is
// not in the table count as zero.
func instability(seq []byte) float64 {
	if len(seq) < 2 {
		return 0
	}
	var sum float64
	for i := 0; i < len(seq)-1; i++ {
		if w, ok := aa.Diwv(seq[i], seq[i+1]); ok {
			sum += w
		}
	}
	return 10 / float64(len(seq)) * sum
}

// Calc works out everything in Props. The sequence is upper-cased
// first. Letters outside the twenty standard ones count towards the
// length, but weigh nothing and have zero hydropathy.
func Calc(seq []byte) (*Props, error) {
	if len(seq) == 0 {
		return nil, ErrEmpty
	}
	seq = bytes.ToUpper(seq)
	p := &Props{Length: len(seq)}
	kd := make([]float64, len(seq))
	for i, c := range seq {
		if n := aa.Ndx(c); n >= 0 {
			p.Comp[n]++
		} else {
			p.NOther++
		}
		p.MolWt += aa.MolWt[c]
		kd[i] = aa.KyteDoolittle[c]
	}
	p.MolWt -= float64(len(seq)-1) * aa.WaterWt
	fLen := float64(len(seq))
	p.Gravy = floats.Sum(kd) / fLen
	p.PI = p.isoelectric()
	p.Instab = instability(seq)
	p.Stable = p.Instab < stableBelow
	p.Aliphatic = (float64(p.Count('A')) + 2.9*float64(p.Count('V')) +
		3.9*float64(p.Count('I')+p.Count('L'))) / fLen * 100
	p.HalfLife = halfLife(seq[0])
	p.ExtReduced = extTrp*p.Count('W') + extTyr*p.Count('Y')
	p.ExtOxidized = p.ExtReduced + extCystine*(p.Count('C')/2)
	p.NAcidic = p.countOf("DE")
	p.NBasic = p.countOf("RKH")
	p.NPolar = p.countOf("NQSTYC")
	p.NNonpolar = p.countOf("AVLIPFWMG")
	return p, nil
}

// Write prints the properties as a report, one value per line.
func (p *Props) Write(w io.Writer) error {
	stab := "unstable"
	if p.Stable {
		stab = "stable"
	}
	_, err := fmt.Fprintf(w, `length            %d
molecular weight  %.2f Da
isoelectric point %.2f
GRAVY             %.3f
instability index %.2f (%s)
aliphatic index   %.2f
half-life class   %v
ext. coeff.       %d reduced, %d oxidized
charge groups     acidic %d basic %d polar %d non-polar %d
`, p.Length, p.MolWt, p.PI, p.Gravy, p.Instab, stab, p.Aliphatic, p.HalfLife,
		p.ExtReduced, p.ExtOxidized, p.NAcidic, p.NBasic, p.NPolar, p.NNonpolar)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "composition")
	for i, n := range p.Comp {
		if _, err := fmt.Fprintf(w, "  %c %4d %6.2f%%\n", aa.Letters[i], n,
			100*float64(n)/float64(p.Length)); err != nil {
			return err
		}
	}
	if p.NOther > 0 {
		fmt.Fprintf(w, "  other %d\n", p.NOther)
	}
	return nil
}
