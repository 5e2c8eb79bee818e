package aa_test

import (
	"math"
	"testing"

	. "github.com/andrew-torda/biohub/pkg/aa"
)

// Every table has to have exactly the twenty standard residues.
func TestTableSizes(t *testing.T) {
	if len(ThreeToOne) != NAA || len(MolWt) != NAA || len(KyteDoolittle) != NAA {
		t.Fatalf("table sizes %d %d %d", len(ThreeToOne), len(MolWt), len(KyteDoolittle))
	}
	seen := make(map[byte]bool)
	for three, one := range ThreeToOne {
		if seen[one] {
			t.Errorf("%c appears twice, second time for %s", one, three)
		}
		seen[one] = true
		if _, ok := MolWt[one]; !ok {
			t.Errorf("%c missing from MolWt", one)
		}
		if _, ok := KyteDoolittle[one]; !ok {
			t.Errorf("%c missing from KyteDoolittle", one)
		}
	}
}

func TestNdx(t *testing.T) {
	for i := 0; i < NAA; i++ {
		if got := Ndx(Letters[i]); got != i {
			t.Errorf("Ndx(%c) = %d wanted %d", Letters[i], got, i)
		}
	}
	for _, c := range []byte{'B', 'X', 'a', '-', 0, 200} {
		if Ndx(c) != -1 {
			t.Errorf("Ndx(%d) should be -1", c)
		}
	}
}

var diwvtests = []struct {
	x, y byte
	w    float64
	ok   bool
}{
	{'A', 'G', 1.0, true},
	{'G', 'A', -7.49, true},
	{'R', 'W', 58.28, true},
	{'W', 'R', 1.0, true},
	{'Y', 'R', -15.91, true},
	{'F', 'Y', 33.601, true},
	{'A', 'X', 0, false},
	{'b', 'A', 0, false},
}

func TestDiwv(t *testing.T) {
	for _, tt := range diwvtests {
		w, ok := Diwv(tt.x, tt.y)
		if ok != tt.ok {
			t.Errorf("Diwv(%c, %c) ok %v wanted %v", tt.x, tt.y, ok, tt.ok)
		}
		if math.Abs(w-tt.w) > 1e-5 {
			t.Errorf("Diwv(%c, %c) = %g wanted %g", tt.x, tt.y, w, tt.w)
		}
	}
}
