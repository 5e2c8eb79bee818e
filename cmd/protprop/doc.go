// 19 Oct 2026

/*
Protprop prints properties calculated from a protein sequence:
composition, molecular weight, isoelectric point, GRAVY, the
instability and aliphatic indices, extinction coefficients and a
rough N-end rule half-life class. The half-life is a rule of thumb,
not a measurement.

The sequence is the first chain of a pdb file, or with -s, the
argument itself.

Usage:
	protprop [flags] pdbfile
	protprop -s [flags] SEQUENCE

The flags are:
	-s
		The argument is a one letter sequence.
	-o outfile
		Output file name, instead of standard output.
*/
package main
