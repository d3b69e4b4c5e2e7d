// Package zwrap gives back a reader for PDB data which may or may not
// be gzip compressed. Calling Close closes the decompressor, followed by
// whatever is underneath, be it a file, a memory map or an http body.
// I benchmarked with and without buffering in Wrap(). I could not measure
// any difference.
package zwrap

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Reader is what we return.
type Reader struct {
	fp   io.ReadCloser
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying backing readCloser.
func (fc *Reader) Close() error {
	if fc.zrdr == nil {
		return fc.fp.Close()
	}
	return errors.Join(fc.zrdr.Close(), fc.fp.Close())
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (fc *Reader) Read(p []byte) (int, error) {
	if fc.zrdr != nil {
		return fc.zrdr.Read(p)
	}
	return fc.fp.Read(p)
}

// Wrap takes a compressed source like a file pointer or http stream and
// wraps it so the correct Close and Read will be called.
func Wrap(fp io.ReadCloser) (*Reader, error) {
	zrdr, err := gzip.NewReader(fp)
	return &Reader{fp: fp, zrdr: zrdr}, err
}

// ReadSeekCloser is a source we can rewind after peeking.
type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// WrapMaybe decides if the underlying stream is compressed and wraps the
// file pointer if necessary. You lose something. If you pass in
// something which can seek, you get back a ReadCloser which cannot seek.
func WrapMaybe(fpIn ReadSeekCloser) (*Reader, error) {
	if out, err := Wrap(fpIn); err == nil {
		return out, nil
	}
	_, err := fpIn.Seek(0, io.SeekStart)
	return &Reader{fp: fpIn}, err
}

// gzipMagic starts every gzip stream.
var gzipMagic = []byte{0x1f, 0x8b}

// IsGzip looks at the first bytes of some data.
func IsGzip(data []byte) bool { return bytes.HasPrefix(data, gzipMagic) }

// FromBytes is for data already in memory, like a download.
func FromBytes(data []byte) (*Reader, error) {
	src := io.NopCloser(bytes.NewReader(data))
	if IsGzip(data) {
		return Wrap(src)
	}
	return &Reader{fp: src}, nil
}

// mapped is a memory mapped file. Close unmaps it and closes the file.
type mapped struct {
	*bytes.Reader
	m  mmap.MMap
	fp *os.File
}

func (m *mapped) Close() error {
	return errors.Join(m.m.Unmap(), m.fp.Close())
}

// Open opens a local file. Compressed files are read through gzip. Plain
// files are memory mapped, unless they cannot be, like empty files or
// things in /proc, and then they are read the normal way.
func Open(fname string) (*Reader, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	var magic [2]byte
	n, _ := io.ReadFull(fp, magic[:])
	if IsGzip(magic[:n]) {
		if _, err := fp.Seek(0, io.SeekStart); err != nil {
			fp.Close()
			return nil, err
		}
		r, err := Wrap(fp)
		if err != nil {
			fp.Close()
			return nil, err
		}
		return r, nil
	}
	if m, err := mmap.Map(fp, mmap.RDONLY, 0); err == nil {
		return &Reader{fp: &mapped{Reader: bytes.NewReader(m), m: m, fp: fp}}, nil
	}
	if _, err := fp.Seek(0, io.SeekStart); err != nil {
		fp.Close()
		return nil, err
	}
	return &Reader{fp: fp}, nil
}

// Mapped says if the reader is reading from a memory map.
func (fc *Reader) Mapped() bool {
	_, ok := fc.fp.(*mapped)
	return ok
}
