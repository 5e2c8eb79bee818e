// 19 Oct 2026

/*
Sasa calculates the solvent accessible surface area of every atom in a
pdb file with the Shrake and Rupley method and sums it up per residue.
All ATOM and HETATM records are used, so remove waters and ligands
first if you do not want them to cover the protein.

Broken atom records are skipped with a warning unless you ask for
-strict. The file may be gzipped.

Usage:
	sasa [flags] pdbfile

The flags are:
	-p probe
		Probe radius in Angstrom, 1.4 for water.
	-n npoint
		Points on each atom's sphere. More is slower and smoother.
	-j nworker
		Number of goroutines, one per cpu by default.
	-a attfile
		Write per residue areas as a chimera attribute file.
	-b bfacpdb
		Write a copy of the input with per atom areas in the
		B-factor column.
	-atom
		List atoms instead of residues.
	-o outfile
		Output file name, instead of standard output.
	-strict
		Stop at the first broken record.
	-log logfile
		Where to write complaints about broken records, "stderr" for
		the terminal.
*/
package main
