package contact_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/biohub/pdb"
	"github.com/andrew-torda/biohub/pdb/cmmn"
	"github.com/andrew-torda/biohub/pdb/pdbtest"
	. "github.com/andrew-torda/biohub/pkg/contact"
	"github.com/andrew-torda/biohub/pkg/common"
	"github.com/google/go-cmp/cmp"
)

func parse(t *testing.T, recs ...pdbtest.Rec) []cmmn.Atom {
	t.Helper()
	atoms, _, err := pdb.ParseAtoms(strings.NewReader(pdbtest.File(recs...)), nil)
	if err != nil {
		t.Fatal(err)
	}
	return atoms
}

var both = []Policy{CAlpha, AllAtom}

// Two residues next to each other are never in contact, however close.
func TestNeighbours(t *testing.T) {
	for _, sep := range []float64{10, 5} {
		atoms := parse(t,
			pdbtest.Rec{Serial: 1, Name: "N", ResName: "ALA", Chain: 'A', ResNum: 1, X: -1.4, Element: "N"},
			pdbtest.CA(2, 'A', 1, "ALA", 0, 0, 0),
			pdbtest.CA(3, 'A', 2, "GLY", sep, 0, 0))
		for _, p := range both {
			c, err := Find(context.Background(), atoms, &Options{Threshold: DfltThreshold, Policy: p})
			if err != nil {
				t.Fatal(err)
			}
			if len(c) != 0 {
				t.Errorf("%v %g A apart gave %v", p, sep, c)
			}
		}
	}
}

// A distance equal to the threshold counts.
func TestInclusive(t *testing.T) {
	atoms := parse(t,
		pdbtest.CA(1, 'A', 1, "ALA", 0, 0, 0),
		pdbtest.CA(2, 'A', 3, "ALA", 8, 0, 0))
	for _, p := range both {
		c, err := Find(context.Background(), atoms, &Options{Threshold: 8, Policy: p})
		if err != nil {
			t.Fatal(err)
		}
		if len(c) != 1 || c[0].Dist != 8 {
			t.Errorf("%v got %v wanted one contact at 8", p, c)
		}
		c, _ = Find(context.Background(), atoms, &Options{Threshold: 7.999, Policy: p})
		if len(c) != 0 {
			t.Errorf("%v below threshold got %v", p, c)
		}
	}
}

// Side chains can touch when the alpha carbons are far apart.
func TestPolicy(t *testing.T) {
	atoms := parse(t,
		pdbtest.CA(1, 'A', 1, "LYS", 0, 0, 0),
		pdbtest.Rec{Serial: 2, Name: "NZ", ResName: "LYS", Chain: 'A', ResNum: 1, X: 4.5, Element: "N"},
		pdbtest.CA(3, 'A', 5, "ASP", 12, 0, 0),
		pdbtest.Rec{Serial: 4, Name: "OD1", ResName: "ASP", Chain: 'A', ResNum: 5, X: 7.5, Element: "O"})
	c, _ := Find(context.Background(), atoms, nil)
	if len(c) != 0 {
		t.Errorf("alpha carbons 12 A apart gave %v", c)
	}
	c, _ = Find(context.Background(), atoms, &Options{Threshold: 4, Policy: AllAtom})
	want := []Contact{{Res1: cmmn.ResKey{ChainID: 'A', ResNum: 1}, Res2: cmmn.ResKey{ChainID: 'A', ResNum: 5}, Dist: 3}}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("all atom (-want +got):\n%s", diff)
	}
}

// Only the first chain, only ATOM records, first CA of a residue, and
// sorted output no matter what order the file has.
func TestSelection(t *testing.T) {
	atoms := parse(t,
		pdbtest.CA(1, 'A', 10, "ALA", 0, 0, 0),
		pdbtest.CA(2, 'A', 10, "ALA", 50, 0, 0), // second CA, ignored
		pdbtest.CA(3, 'A', 3, "ALA", 3, 0, 0),
		pdbtest.CA(4, 'A', 7, "ALA", 0, 3, 0),
		pdbtest.Rec{Het: true, Serial: 5, Name: "CA", ResName: "CA", Chain: 'A', ResNum: 20, X: 1, Element: "CA"},
		pdbtest.CA(6, 'B', 30, "ALA", 0, 0, 1))
	c, err := Find(context.Background(), atoms, nil)
	if err != nil {
		t.Fatal(err)
	}
	var got [][2]int
	for _, x := range c {
		got = append(got, [2]int{x.Res1.ResNum, x.Res2.ResNum})
	}
	want := [][2]int{{3, 7}, {3, 10}, {7, 10}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pairs (-want +got):\n%s", diff)
	}
}

// randChain is a random walk of residues with a few atoms each.
func randChain(nres int) []pdbtest.Rec {
	rng := rand.New(rand.NewPCG(1, 2))
	var recs []pdbtest.Rec
	var x, y, z float64
	serial := 1
	for r := 1; r <= nres; r++ {
		x += rng.Float64()*6 - 3
		y += rng.Float64()*6 - 3
		z += rng.Float64()*6 - 3
		recs = append(recs, pdbtest.CA(serial, 'A', r, "ALA", x, y, z))
		serial++
		for _, n := range []string{"N", "CB"} {
			recs = append(recs, pdbtest.Rec{Serial: serial, Name: n, ResName: "ALA", Chain: 'A', ResNum: r,
				X: x + rng.Float64() - 0.5, Y: y + rng.Float64() - 0.5, Z: z + rng.Float64() - 0.5, Element: n[:1]})
			serial++
		}
	}
	return recs
}

func TestNeverAdjacent(t *testing.T) {
	atoms := parse(t, randChain(60)...)
	for _, p := range both {
		for _, thresh := range []float64{0, 3, 8, 20, 1000} {
			c, err := Find(context.Background(), atoms, &Options{Threshold: thresh, Policy: p})
			if err != nil {
				t.Fatal(err)
			}
			for i, x := range c {
				if d := x.Res2.ResNum - x.Res1.ResNum; d <= 1 {
					t.Fatalf("%v threshold %g reported %v", p, thresh, x)
				}
				if x.Dist > thresh {
					t.Fatalf("%v contact %v beyond %g", p, x, thresh)
				}
				if i > 0 && x.Res1.ResNum == c[i-1].Res1.ResNum && x.Res2.ResNum < c[i-1].Res2.ResNum {
					t.Fatalf("%v not sorted at %d", p, i)
				}
			}
			if thresh == 1000 && len(c) != 59*58/2 {
				t.Errorf("%v with huge threshold got %d pairs", p, len(c))
			}
		}
	}
}

func TestWorkers(t *testing.T) {
	atoms := parse(t, randChain(80)...)
	c1, _ := Find(context.Background(), atoms, &Options{Threshold: 8, Policy: AllAtom, NWorker: 1})
	c8, _ := Find(context.Background(), atoms, &Options{Threshold: 8, Policy: AllAtom, NWorker: 8})
	if len(c1) == 0 {
		t.Fatal("random chain should have some contacts")
	}
	if diff := cmp.Diff(c1, c8); diff != "" {
		t.Errorf("1 vs 8 workers (-1 +8):\n%s", diff)
	}
}

func TestBad(t *testing.T) {
	atoms := parse(t, randChain(10)...)
	if _, err := Find(context.Background(), atoms, &Options{Threshold: -1}); !errors.Is(err, ErrBadParam) {
		t.Errorf("negative threshold gave %v", err)
	}
	if _, err := Find(context.Background(), atoms, &Options{Threshold: 8, Policy: 7}); !errors.Is(err, ErrBadParam) {
		t.Errorf("unknown policy gave %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, p := range both {
		if _, err := Find(ctx, atoms, &Options{Threshold: 8, Policy: p}); !errors.Is(err, context.Canceled) {
			t.Errorf("%v cancelled gave %v", p, err)
		}
	}
	if c, err := Find(context.Background(), nil, nil); c != nil || err != nil {
		t.Errorf("no atoms gave %v %v", c, err)
	}
}

func TestMap(t *testing.T) {
	c := []Contact{
		{Res1: cmmn.ResKey{ResNum: 1}, Res2: cmmn.ResKey{ResNum: 4}, Dist: 6.5},
		{Res1: cmmn.ResKey{ResNum: 2}, Res2: cmmn.ResKey{ResNum: 9}, Dist: 3}, // off the end
	}
	m := Map(c, 5)
	if m.Mat[0][3] != 6.5 || m.Mat[3][0] != 6.5 {
		t.Errorf("contact missing from map %v", m.Mat)
	}
	var sum float32
	for _, row := range m.Mat {
		for _, v := range row {
			sum += v
		}
	}
	if sum != 13 {
		t.Errorf("map sum %g wanted 13", sum)
	}
	if Map(c, 0) != nil {
		t.Error("empty map should be nil")
	}
}

func TestMymain(t *testing.T) {
	infile, err := common.WrtTemp(pdbtest.File(randChain(20)...))
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(infile)
	outfile := filepath.Join(t.TempDir(), "contacts")
	flags := CmdFlag{Threshold: 8, AllAtom: true, NWorker: 2}
	if err := Mymain(context.Background(), &flags, infile, outfile); err != nil {
		t.Fatal(err)
	}
	out, _ := os.ReadFile(outfile)
	if !strings.HasPrefix(string(out), "# ") || !strings.Contains(string(out), "allatom") {
		t.Errorf("output looks wrong:\n%s", out)
	}
	if err := Mymain(context.Background(), &flags, "/not/here.pdb", outfile); err == nil {
		t.Error("missing file should be an error")
	}
}
