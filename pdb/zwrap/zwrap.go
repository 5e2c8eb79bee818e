// Package zwrap takes a file pointer and optionally wraps it so upon
// calling Close, the decompressor will be closed, followed by the
// underlying file.
// PDB files come as .pdb or .ent.gz, so the readers in pdb should not
// have to care.

package zwrap

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
)

// gzMagic is what every gzip stream starts with.
var gzMagic = []byte{0x1f, 0x8b}

type FpGzip struct { // This is what we return.
	fp   io.ReadCloser
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying backing readCloser.
func (fc *FpGzip) Close() error {
	if fc.zrdr == nil {
		return fc.fp.Close()
	}
	return errors.Join(fc.zrdr.Close(), fc.fp.Close())
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (fc *FpGzip) Read(p []byte) (int, error) {
	if fc.zrdr != nil {
		return fc.zrdr.Read(p)
	}
	return fc.fp.Read(p)
}

// Compressed says whether this reader is decompressing.
func (fc *FpGzip) Compressed() bool { return fc.zrdr != nil }

// IsGzip looks at the first bytes of some data and says if they
// look like the start of a gzip stream.
func IsGzip(b []byte) bool { return bytes.HasPrefix(b, gzMagic) }

// Wrap takes a source like a file pointer and wraps it in a
// decompressor. It fails if the source is not gzipped.
func Wrap(fp io.ReadCloser) (*FpGzip, error) {
	zrdr, err := gzip.NewReader(fp)
	if err != nil {
		return nil, err
	}
	return &FpGzip{fp: fp, zrdr: zrdr}, nil
}

// ReadSeekCloser is what we need to be able to peek and rewind.
type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// WrapMaybe will decide if the underlying stream is compressed
// and wrap the file pointer if necessary.
// You do lose something. If you pass in something which can seek,
// you get back a ReadCloser which cannot seek.
func WrapMaybe(fpIn ReadSeekCloser) (*FpGzip, error) {
	var head [2]byte
	n, err := io.ReadFull(fpIn, head[:])
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	if _, err := fpIn.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	if IsGzip(head[:n]) {
		return Wrap(fpIn)
	}
	return &FpGzip{fp: fpIn}, nil // Leave the zrdr nil
}
