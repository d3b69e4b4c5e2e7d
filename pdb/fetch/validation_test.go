package fetch

import (
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/prot3d/pdb/perr"
	"github.com/andrew-torda/prot3d/pdb/protein"
)

const validationXML = `<?xml version="1.0" encoding="UTF-8"?>
<wwPDB-validation-information>
  <Entry pdbid="1abc" DataCompleteness="98.70" percent-RSRZ-outliers="1.50" TwinL="0.495" TwinL2="0.330" PDB-resolution="1.80"/>
  <ModelledSubgroup resname="ALA"/>
</wwPDB-validation-information>
`

func TestParseValidation(t *testing.T) {
	v, err := ParseValidation([]byte(validationXML))
	require.NoError(t, err)
	assert.Equal(t, protein.Validation{DataCompleteness: 98.7, RSRZ: 1.5, TwinL: 0.495, TwinL2: 0.33}, v)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte(validationXML))
	require.NoError(t, zw.Close())
	vz, err := ParseValidation(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, v, vz)
}

func TestValidationDefaults(t *testing.T) {
	v, err := ParseValidation([]byte(`<wwPDB-validation-information><Entry pdbid="1abc"/></wwPDB-validation-information>`))
	require.NoError(t, err)
	assert.Equal(t, protein.Validation{RSRZ: 100}, v)

	_, err = ParseValidation([]byte(`<wwPDB-validation-information><Entry TwinL="lots"/></wwPDB-validation-information>`))
	assert.Error(t, err)
	_, err = ParseValidation([]byte(`<html><body>not here</body></html>`))
	assert.Error(t, err)
}

func TestValidationFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ab/1abc/1abc_validation.xml" {
			_, _ = w.Write([]byte(validationXML))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()
	v := &ValidationFetcher{Client: srv.Client(), Base: srv.URL + "/"}
	got, err := v.Fetch(context.Background(), "1abc")
	require.NoError(t, err)
	assert.Equal(t, 1.5, got.RSRZ)
	_, err = v.Fetch(context.Background(), "2xyz")
	assert.ErrorIs(t, err, perr.ErrNotFound)
}
