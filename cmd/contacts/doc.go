// 19 Oct 2026

/*
Contacts lists residues of the first chain in a pdb file which are
close in space. Residues next to each other in sequence are never
reported. By default the distance is between alpha carbons. With -all
it is the closest approach of any two atoms of the residues.

Output is one line per pair, chain, the two residue numbers and the
distance, sorted by the first residue and then the second.

Usage:
	contacts [flags] pdbfile

The flags are:
	-t threshold
		Pairs this close or closer are in contact, in Angstrom.
	-all
		Use all atoms, not just alpha carbons.
	-n nworker
		Goroutines for -all, one per cpu by default.
	-o outfile
		Output file name, instead of standard output.
	-strict
		Stop at the first broken record.
	-log logfile
		Where to write complaints about broken records.
*/
package main
