/*
Protinfo reads protein structures in PDB format and prints a summary of
each: atom, residue, chain and bond counts, the sequence of each chain,
the quality numbers from the header, missing residues and atoms and any
metal ions.

Usage:

	protinfo [flags] file_or_code ...

The flags are:

	-c chain
		Only report on this chain
	-f
		Arguments are four character PDB codes to fetch, not file names
	-s site
		Which web mirror to fetch from, 0, 1 or 2
	-w
		Remove water before reporting
	-v
		Fetch the wwPDB validation report for completeness, RSRZ and twinning
	-e
		Fetch EDIA scores for each atom
	-l logfile
		Where to send parsing chatter, "stdout" or a file name
	-m metricsfile
		Write Prometheus counters to this file at the end
	-o outfile
		Output file instead of standard output

When fetching, the environment variables PROT3D_S3_BUCKET, PROT3D_S3_REGION,
PROT3D_S3_ENDPOINT, PROT3D_S3_PATH_STYLE and PROT3D_S3_PREFIX switch from the
web to an S3 mirror and PROT3D_CACHE names an SQLite file for keeping
downloads.
*/
package main
