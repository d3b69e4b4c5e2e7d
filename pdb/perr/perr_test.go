package perr_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	. "github.com/andrew-torda/prot3d/pdb/perr"
)

func TestIsAndAs(t *testing.T) {
	var tests = []struct {
		err  error
		kind error
	}{
		{&MalformedRecordError{N: 3, Field: "x"}, ErrMalformed},
		{&UnresolvedReferenceError{Serial: 7, From: "CONECT"}, ErrUnresolved},
		{&NotFoundError{ID: "1abc"}, ErrNotFound},
		{BadAtom(12), ErrInvalidQuery},
	}
	kinds := []error{ErrMalformed, ErrUnresolved, ErrNotFound, ErrInvalidQuery}
	for _, tt := range tests {
		wrapped := fmt.Errorf("reading: %w", tt.err)
		for _, k := range kinds {
			if got := errors.Is(wrapped, k); got != (k == tt.kind) {
				t.Errorf("errors.Is(%v, %v) = %v", tt.err, k, got)
			}
		}
	}
	var mre *MalformedRecordError
	if !errors.As(fmt.Errorf("x: %w", &MalformedRecordError{Field: "serial"}), &mre) {
		t.Fatal("errors.As failed")
	}
	if mre.Field != "serial" {
		t.Error("lost the field name")
	}
}

func TestMalformedMessage(t *testing.T) {
	long := strings.Repeat("A", 200)
	e := &MalformedRecordError{N: 12, Field: "resSeq", Inline: long}
	s := e.Error()
	if !strings.HasPrefix(s, "Line: 12 ") {
		t.Error("missing line number:", s)
	}
	if strings.Contains(s, long) {
		t.Error("line should be truncated")
	}
}
