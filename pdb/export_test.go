package pdb

// Export for testing.
var OldOrMmcif = oldOrMmcif

const (
	Old_fmt   = oldFmt
	Mmcif_fmt = mmcifFmt
)
