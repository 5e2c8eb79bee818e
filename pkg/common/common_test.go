package common_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	. "github.com/andrew-torda/biohub/pkg/common"
)

func TestWrtTemp(t *testing.T) {
	const s = "some text\n"
	fname, err := WrtTemp(s)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	b, err := os.ReadFile(fname)
	if err != nil || string(b) != s {
		t.Errorf("got %q %v", b, err)
	}
}

func TestWrtAtt(t *testing.T) {
	var buf bytes.Buffer
	vals := []ResVal{{'A', 1, 12.5}, {' ', 7, 0}}
	if err := WrtAtt(&buf, "sasa", vals); err != nil {
		t.Fatal(err)
	}
	s := buf.String()
	for _, want := range []string{
		"attribute: sasa\n", "match mode: 1-to-1\n", "recipient: residues\n",
		"\t:1.A\t12.5000\n", "\t:7\t0.00000\n",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %q in\n%s", want, s)
		}
	}
}

func TestOpenOut(t *testing.T) {
	for _, name := range []string{"", "-"} {
		fp, err := OpenOut(name)
		if err != nil {
			t.Fatal(err)
		}
		if err := fp.Close(); err != nil {
			t.Error("closing stdout should be a no-op", err)
		}
	}
	if _, err := OpenOut("/does/not/exist/out.txt"); err == nil {
		t.Error("expected error for impossible file")
	}
}
