// 19 Oct 2026

/*
Hydro writes a Kyte and Doolittle hydropathy profile, averaged over a
window centred on each residue. Near the ends of the chain the window
is cut short. The sequence comes from the first chain of a pdb file or,
with -s, straight from the command line.

Usage:
	hydro [flags] pdbfile
	hydro -s [flags] SEQUENCE

The flags are:
	-w window
		Window width, which must be odd.
	-a attfile
		Also write the profile as a chimera attribute file.
	-s
		The argument is a one letter sequence.
	-o outfile
		Output file name, instead of standard output.
*/
package main
