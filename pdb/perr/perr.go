// Package perr has the kinds of error the pdb readers return.
// Each kind is a struct, so callers can pull out the details with
// errors.As, and each one matches a sentinel with errors.Is, so a caller
// who only wants to know the kind of problem does not need the type.
package perr

import (
	"errors"
	"fmt"
	"strconv"
)

const maxMsgLen = 70

// Sentinels for errors.Is.
var (
	ErrMalformed    = errors.New("malformed record")
	ErrUnresolved   = errors.New("unresolved reference")
	ErrNotFound     = errors.New("not found")
	ErrInvalidQuery = errors.New("invalid query")
)

func firstPart(s string) string {
	l := len(s)
	if l > maxMsgLen {
		l = maxMsgLen
	}
	return s[:l]
}

// MalformedRecordError is a line which breaks the fixed column rules.
// N is the line number, if we know it. Field names the columns we could
// not read.
type MalformedRecordError struct {
	N      int
	Field  string
	Inline string
	Err    error
}

func (e *MalformedRecordError) Error() string {
	var errmsg string
	if e.N != 0 {
		errmsg = "Line: " + strconv.Itoa(e.N) + " "
	}
	errmsg += "malformed record, field " + e.Field
	if e.Err != nil {
		errmsg += ": " + e.Err.Error()
	}
	if e.Inline != "" {
		errmsg += "\nLine starting with\n" + firstPart(e.Inline)
	}
	return errmsg
}

func (e *MalformedRecordError) Is(target error) bool { return target == ErrMalformed }
func (e *MalformedRecordError) Unwrap() error        { return e.Err }

// UnresolvedReferenceError is a bond or CONECT record naming an
// atom serial number we have never seen.
type UnresolvedReferenceError struct {
	N      int    // line number
	Serial int    // the atom we could not find
	From   string // what was referring to it, like "CONECT"
}

func (e *UnresolvedReferenceError) Error() string {
	s := fmt.Sprintf("%s refers to unknown atom %d", e.From, e.Serial)
	if e.N != 0 {
		s = "Line: " + strconv.Itoa(e.N) + " " + s
	}
	return s
}

func (e *UnresolvedReferenceError) Is(target error) bool { return target == ErrUnresolved }

// NotFoundError is a remote source which had nothing for an identifier.
type NotFoundError struct {
	ID     string
	Source string
	Err    error
}

func (e *NotFoundError) Error() string {
	s := e.ID + " not found"
	if e.Source != "" {
		s += " at " + e.Source
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
func (e *NotFoundError) Unwrap() error        { return e.Err }

// InvalidQueryError is a lookup on a built structure with a key that
// was never there.
type InvalidQueryError struct {
	What string // "atom", "chain", ...
	Key  string
}

func (e *InvalidQueryError) Error() string {
	return "no " + e.What + " " + e.Key
}

func (e *InvalidQueryError) Is(target error) bool { return target == ErrInvalidQuery }

// BadAtom is a shorthand for the most common query error.
func BadAtom(serial int) error {
	return &InvalidQueryError{What: "atom", Key: strconv.Itoa(serial)}
}
