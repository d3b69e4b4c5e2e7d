// Package brokenio wraps an io.ReadCloser so reads fail on purpose.
// Typical use: you have a file, a gzip reader or an http body and write
// rdr = brokenio.NewReader(rdr). Everything works as before, but with
// artificial errors, so one can check that a reader gives up cleanly
// instead of returning half a protein.
//
// Failures are either at a fixed byte offset (SetFailAfter), which is what
// tests want, or random with given probabilities, which is what one wants
// when hammering a directory of files. A failure on the first read with
// no error is what one sees with a zero length file.
package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrInjected is the error from a deliberate failure.
var ErrInjected = errors.New("brokenio: injected read failure")

// Reader is a wrapper with knobs for how often things go wrong.
// Probabilities are fractions, so 0.05 means failure in 5% of reads.
type Reader struct {
	orig         io.ReadCloser
	rnd          *rand.Rand
	probZeroFile float32 // return nothing on the first read
	probFail     float32 // trash part of a read and return an error
	fracFail     float32 // how much of the buffer to trash
	failAfter    int     // fail once this many bytes have gone through, < 0 for never
	nCalled      int
	nByte        int
	verbose      bool
}

// NewReader returns a wrapper around rIn which does not fail until told
// to.
func NewReader(rIn io.ReadCloser) *Reader {
	return &Reader{
		orig:      rIn,
		rnd:       rand.New(rand.NewSource(1)),
		fracFail:  0.5,
		failAfter: -1,
	}
}

// SetVerbose prints the amount of data when the reader is closed.
func (r *Reader) SetVerbose(newV bool) { r.verbose = newV }

// SetSeed makes the random failures repeatable.
func (r *Reader) SetSeed(seed int64) { r.rnd = rand.New(rand.NewSource(seed)) }

// SetFracFail sets the fraction of a buffer which is trashed on failure.
func (r *Reader) SetFracFail(frac float32) { r.fracFail = frac }

// SetProbZeroFile sets how often the first read returns nothing.
// The argument is not checked.
func (r *Reader) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail sets the probability of a read failing.
func (r *Reader) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAfter makes the reader fail, every time, once n bytes have been
// delivered.
func (r *Reader) SetFailAfter(n int) { r.failAfter = n }

// trashSlice zeroes the last part of a slice. With frac 0.3 the
// last 30% goes.
func trashSlice(p []byte, frac float32) (int, error) {
	nkeep := int(float32(len(p)) * (1. - frac))
	if nkeep == len(p) {
		return nkeep, nil
	}
	err := fmt.Errorf("%w: wiped out last %d of %d", ErrInjected, len(p)-nkeep, len(p))
	clear(p[nkeep:])
	return nkeep, err
}

// Read passes the call on and counts what has gone through, unless it
// decides to fail.
func (r *Reader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && r.rnd.Float32() < r.probZeroFile {
		return 0, io.EOF
	}
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrInjected
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err = r.orig.Read(p)
	r.nCalled++
	r.nByte += n
	if r.probFail > 0 && r.fracFail > 0 && r.rnd.Float32() < r.probFail {
		return trashSlice(p[:n], r.fracFail)
	}
	return n, err
}

// Close closes the wrapped reader.
func (r *Reader) Close() error {
	if r.verbose {
		fmt.Println("Closing", r.nCalled, "calls and", r.nByte, "bytes")
	}
	return r.orig.Close()
}
