package protprop_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/biohub/pdb/pdbtest"
	"github.com/andrew-torda/biohub/pkg/common"
	. "github.com/andrew-torda/biohub/pkg/protprop"
)

func notApproxEqual(x, y, tol float64) bool { return math.Abs(x-y) > tol }

func calc(t *testing.T, s string) *Props {
	t.Helper()
	p, err := Calc([]byte(s))
	if err != nil {
		t.Fatal(s, err)
	}
	return p
}

func TestComposition(t *testing.T) {
	p := calc(t, "ACDEFGHIKLMNPQRSTVWY")
	if p.Length != 20 || p.NOther != 0 {
		t.Errorf("length %d other %d", p.Length, p.NOther)
	}
	for i, n := range p.Comp {
		if n != 1 {
			t.Errorf("residue %d count %d", i, n)
		}
	}
	if p.NAcidic != 2 || p.NBasic != 3 || p.NPolar != 6 || p.NNonpolar != 9 {
		t.Errorf("groups %d %d %d %d", p.NAcidic, p.NBasic, p.NPolar, p.NNonpolar)
	}
	p = calc(t, "AAXGb")
	if p.Count('A') != 2 || p.Count('G') != 1 || p.Count('X') != 0 || p.NOther != 2 {
		t.Errorf("counts A %d other %d", p.Count('A'), p.NOther)
	}
}

var numtests = []struct {
	seq  string
	what string
	get  func(*Props) float64
	want float64
}{
	{"G", "weight", func(p *Props) float64 { return p.MolWt }, 75.07},
	{"GG", "weight", func(p *Props) float64 { return p.MolWt }, 132.125},
	{"AI", "gravy", func(p *Props) float64 { return p.Gravy }, 3.15},
	{"AX", "gravy", func(p *Props) float64 { return p.Gravy }, 0.9},
	{"AVIL", "aliphatic", func(p *Props) float64 { return p.Aliphatic }, 292.5},
	{"AG", "instability", func(p *Props) float64 { return p.Instab }, 5.0},
	{"GA", "instability", func(p *Props) float64 { return p.Instab }, -37.45},
	{"W", "instability", func(p *Props) float64 { return p.Instab }, 0},
	{"AXG", "instability", func(p *Props) float64 { return p.Instab }, 0},
	{"WYCC", "ext red", func(p *Props) float64 { return float64(p.ExtReduced) }, 6990},
	{"WYCC", "ext ox", func(p *Props) float64 { return float64(p.ExtOxidized) }, 7115},
	{"WYC", "ext ox", func(p *Props) float64 { return float64(p.ExtOxidized) }, 6990},
}

func TestNumbers(t *testing.T) {
	for _, tt := range numtests {
		p := calc(t, tt.seq)
		if got := tt.get(p); notApproxEqual(got, tt.want, 1e-4) {
			t.Errorf("%s of %s got %g wanted %g", tt.what, tt.seq, got, tt.want)
		}
	}
}

func TestInstabilityOrder(t *testing.T) {
	ag, ga := calc(t, "AG"), calc(t, "GA")
	if ag.Instab == ga.Instab {
		t.Error("reversing a sequence should change the instability index")
	}
	if !ag.Stable || !ga.Stable {
		t.Error("AG and GA are both below 40")
	}
	if p := calc(t, "RW"); p.Stable { // 5 * 58.28
		t.Errorf("RW index %g should be unstable", p.Instab)
	}
}

// With only the termini charged, the pI is between their pKa values.
func TestPI(t *testing.T) {
	for _, s := range []string{"AG", "G", "AVLIGGPFWM"} {
		p := calc(t, s)
		if p.PI <= 3.65 || p.PI >= 8.0 {
			t.Errorf("%s pI %g", s, p.PI)
		}
		if notApproxEqual(p.PI, 5.825, 0.006) {
			t.Errorf("%s pI %g should be mid way between termini", s, p.PI)
		}
	}
	if p := calc(t, "KKKKKKRR"); p.PI < 9 {
		t.Errorf("basic peptide pI %g", p.PI)
	}
	if p := calc(t, "DDDDDEEE"); p.PI > 4 {
		t.Errorf("acidic peptide pI %g", p.PI)
	}
	p := calc(t, "ACDEFGHIKLMNPQRSTVWY")
	if p.Charge(0) <= 0 || p.Charge(14) >= 0 {
		t.Errorf("charge at 0 %g and 14 %g", p.Charge(0), p.Charge(14))
	}
	if p.PI < 0 || p.PI > 14 || notApproxEqual(math.Round(p.PI*100), p.PI*100, 1e-6) {
		t.Errorf("pI %g not on the scan grid", p.PI)
	}
}

func TestHalfLife(t *testing.T) {
	for _, tt := range []struct {
		seq  string
		want HalfLife
	}{{"MKV", HalfLong}, {"pAA", HalfLong}, {"RAA", HalfShort}, {"hAA", HalfShort}, {"XAA", HalfUnknown}} {
		if got := calc(t, tt.seq).HalfLife; got != tt.want {
			t.Errorf("%s got %v wanted %v", tt.seq, got, tt.want)
		}
	}
}

func TestCase(t *testing.T) {
	up, low := calc(t, "MKVLAAGW"), calc(t, "mkvlaagw")
	if *up != *low {
		t.Errorf("upper %+v\nlower %+v", up, low)
	}
}

func TestEmpty(t *testing.T) {
	for _, s := range [][]byte{nil, {}} {
		if p, err := Calc(s); p != nil || !errors.Is(err, ErrEmpty) {
			t.Errorf("empty sequence gave %v %v", p, err)
		}
	}
}

func TestMymain(t *testing.T) {
	outfile := filepath.Join(t.TempDir(), "props")
	flags := CmdFlag{RawSeq: true}
	if err := Mymain(&flags, "MKVLAAGW", outfile); err != nil {
		t.Fatal(err)
	}
	out, _ := os.ReadFile(outfile)
	if !strings.HasPrefix(string(out), "length            8\n") {
		t.Errorf("report:\n%s", out)
	}

	infile, err := common.WrtTemp(pdbtest.File(
		pdbtest.CA(1, 'A', 1, "MET", 0, 0, 0),
		pdbtest.CA(2, 'A', 2, "LYS", 3.8, 0, 0)))
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(infile)
	flags.RawSeq = false
	if err := Mymain(&flags, infile, outfile); err != nil {
		t.Fatal(err)
	}
	out, _ = os.ReadFile(outfile)
	if !strings.HasPrefix(string(out), "length            2\n") {
		t.Errorf("report:\n%s", out)
	}
	if err := Mymain(&flags, "/not/here.pdb", outfile); err == nil {
		t.Error("missing file should be an error")
	}
	empty, _ := common.WrtTemp(pdbtest.File())
	defer os.Remove(empty)
	if err := Mymain(&flags, empty, outfile); !errors.Is(err, ErrEmpty) {
		t.Errorf("file without residues gave %v", err)
	}
}
