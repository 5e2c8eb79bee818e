// Test Zwrap
package zwrap_test

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/andrew-torda/biohub/pdb/zwrap"
)

const plain = "ATOM      1  N   MET A   1      27.340  24.430   2.614  1.00  9.67           N\n"

// gzipped returns plain, compressed.
func gzipped(t *testing.T) []byte {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(plain)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

type gztest struct {
	data    []byte
	gzipped bool
}

// writeToTmp writes a byte slice to a temporary file and returns
// a file pointer, rewound to the start.
func writeToTmp(t *testing.T, data []byte) *os.File {
	tmpf, err := os.CreateTemp(t.TempDir(), "del_me_testing")
	if err != nil {
		t.Fatal(errors.New("Fail getting TempFile"))
	}
	if _, err := tmpf.Write(data); err != nil {
		t.Fatal("fail writing to tempfile")
	}
	if _, err := tmpf.Seek(0, io.SeekStart); err != nil {
		t.Fatal("Seek fail on " + tmpf.Name())
	}
	return tmpf
}

func TestWrap(t *testing.T) {
	gztests := []gztest{{gzipped(t), true}, {[]byte(plain), false}}
	for _, x := range gztests {
		fp := writeToTmp(t, x.data)
		z, err := zwrap.Wrap(fp)
		if err != nil {
			if x.gzipped {
				t.Error("Fail on correctly gzipped file")
			}
			fp.Close()
			continue
		}
		if !x.gzipped {
			t.Error("Fail on not compressed file")
		}
		got, err := io.ReadAll(z)
		if err != nil || string(got) != plain {
			t.Errorf("wrong contents %q %v", got, err)
		}
		if err := z.Close(); err != nil {
			t.Errorf("Error closing: %s", err)
		}
	}
}

// Calling WrapMaybe should not fail since it guesses if the file
// is compressed or not.
func TestWrapMaybe(t *testing.T) {
	gztests := []gztest{{gzipped(t), true}, {[]byte(plain), false}, {nil, false}}
	for _, x := range gztests {
		fp := writeToTmp(t, x.data)
		z, err := zwrap.WrapMaybe(fp)
		if err != nil {
			t.Fatalf("Fail on file where compressed was %v: %v", x.gzipped, err)
		}
		if z.Compressed() != x.gzipped {
			t.Errorf("Compressed() %v wanted %v", z.Compressed(), x.gzipped)
		}
		got, err := io.ReadAll(z)
		if err != nil {
			t.Error(err)
		}
		want := plain
		if x.data == nil {
			want = ""
		}
		if string(got) != want {
			t.Errorf("wrong string: %q", got)
		}
		if err := z.Close(); err != nil {
			t.Errorf("Error closing: %s", err)
		}
	}
}

func TestIsGzip(t *testing.T) {
	if !zwrap.IsGzip(gzipped(t)) {
		t.Error("gzip data not recognised")
	}
	for _, b := range [][]byte{nil, {0x1f}, []byte(plain)} {
		if zwrap.IsGzip(b) {
			t.Errorf("%q taken as gzip", b)
		}
	}
}
