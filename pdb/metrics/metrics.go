// Package metrics counts parses and downloads. Nothing is served. The
// counters go to a file in the Prometheus text format, for the node
// exporter's textfile collector, when a program is finished.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcomes.
const (
	OK       = "ok"
	Failed   = "error"
	NotFound = "not_found"
)

// Registry holds our counters and nothing else.
var Registry = prometheus.NewRegistry()

var (
	parses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "prot3d_parse_total",
		Help: "PDB files parsed, by outcome.",
	}, []string{"outcome"})
	atoms = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "prot3d_atoms_parsed",
		Help: "Atoms read from successfully parsed files.",
	})
	fetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "prot3d_fetch_total",
		Help: "Remote fetches, by source and outcome.",
	}, []string{"source", "outcome"})
)

func init() {
	Registry.MustRegister(parses, atoms, fetches)
}

// Parse counts one parse and the atoms it found.
func Parse(err error, natoms int) {
	if err != nil {
		parses.WithLabelValues(Failed).Inc()
		return
	}
	parses.WithLabelValues(OK).Inc()
	atoms.Add(float64(natoms))
}

// Fetch counts one fetch from a source, like "http", "s3" or "cache".
func Fetch(source, outcome string) {
	fetches.WithLabelValues(source, outcome).Inc()
}

// WriteFile writes everything in Registry to path.
func WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
