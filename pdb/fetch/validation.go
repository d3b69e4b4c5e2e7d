package fetch

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/andrew-torda/prot3d/pdb/metrics"
	"github.com/andrew-torda/prot3d/pdb/protein"
	"github.com/andrew-torda/prot3d/pdb/zwrap"
)

// ValidationBase is where the wwPDB keeps validation reports.
const ValidationBase = "https://files.rcsb.org/pub/pdb/validation_reports/"

// ValidationFetcher gets the numbers from a validation report.
type ValidationFetcher struct {
	Client *http.Client
	Base   string
}

// NewValidationFetcher uses ValidationBase.
func NewValidationFetcher() *ValidationFetcher {
	return &ValidationFetcher{Client: &http.Client{Timeout: 2 * time.Minute}, Base: ValidationBase}
}

// URL is like .../ab/1abc/1abc_validation.xml
func (v *ValidationFetcher) URL(code string) string {
	return v.Base + code[1:3] + "/" + code + "/" + code + "_validation.xml"
}

// Fetch downloads and reads a report.
func (v *ValidationFetcher) Fetch(ctx context.Context, code string) (protein.Validation, error) {
	code, err := checkCode(code)
	if err != nil {
		return protein.Validation{}, err
	}
	b, err := get(ctx, v.Client, v.URL(code), code)
	metrics.Fetch("validation", outcome(err))
	if err != nil {
		return protein.Validation{}, err
	}
	return ParseValidation(b)
}

type validationDoc struct {
	XMLName xml.Name `xml:"wwPDB-validation-information"`
	Entry   struct {
		Attrs []xml.Attr `xml:",any,attr"`
	} `xml:"Entry"`
}

// ParseValidation reads the attributes of the Entry element. Missing
// numbers get the values one would want for a bad structure: nothing
// complete, every residue an outlier, no twinning.
func ParseValidation(data []byte) (protein.Validation, error) {
	v := protein.Validation{RSRZ: 100}
	r, err := zwrap.FromBytes(data)
	if err != nil {
		return v, err
	}
	defer r.Close()
	var doc validationDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return v, fmt.Errorf("validation report: %w", err)
	}
	dest := map[string]*float64{
		"DataCompleteness":      &v.DataCompleteness,
		"percent-RSRZ-outliers": &v.RSRZ,
		"TwinL":                 &v.TwinL,
		"TwinL2":                &v.TwinL2,
	}
	for _, a := range doc.Entry.Attrs {
		p, ok := dest[a.Name.Local]
		if !ok {
			continue
		}
		x, err := strconv.ParseFloat(a.Value, 64)
		if err != nil {
			return v, fmt.Errorf("validation report %s: %w", a.Name.Local, err)
		}
		*p = x
	}
	return v, nil
}
