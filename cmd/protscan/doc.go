/*
Protscan reads every PDB file (names ending in .pdb or .ent, possibly
gzipped) below a directory, using several goroutines, and writes a csv
file with one line per structure. Files which cannot be read are listed
with the error.

Usage:

	protscan [flags] directory [outfile]

The flags are:

	-r n
		Number of reader goroutines
	-d n
		Stop after this many files
	-b prob
		Make reads fail with this probability, for testing
	-l logfile
		Where to send parsing chatter, "stdout" or a file name
	-m metricsfile
		Write Prometheus counters to this file at the end
	-c cpuprofile
		Write a CPU profile
*/
package main
