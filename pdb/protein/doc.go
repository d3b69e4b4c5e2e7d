// Package protein builds a structured model of a protein from a PDB
// format file and answers questions about it.
//
// A Structure is built in one pass over the file by Parse. It holds
// chains of residues, the atoms, a table of heteroatoms (ligands, ions,
// water), the residues and atoms listed as missing in the header, the
// alternate conformations and a bond graph. Nothing is returned until the
// whole file has been read, so a caller never sees half a protein.
//
// Atoms and residues live in one arena and are referred to by their index
// everywhere else. A Structure made by ExtractChain shares the arena with
// its parent, so freezing an atom or setting its score in one is seen in
// the other.
//
// A Structure may be read from many goroutines. The mutating methods
// (Freeze, StripAtoms, StripHetMol, SetScores and the Set... methods) do no
// locking.
package protein
