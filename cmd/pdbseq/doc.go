// 19 Oct 2026

/*
Pdbseq reads pdb files and prints the one letter sequence of the first
chain of each. Only ATOM records are used, and residues which are not
one of the twenty standard amino acids are left out. Files are read in
parallel, but the output is in the order the files were given.

Each line has the file name, the sequence length and the sequence.
Files which cannot be read are reported on standard error and left out.

Usage:
	pdbseq [flags] file.pdb [file.pdb.gz ...]

The flags are:
	-r nreader
		Number of files to read at once.
	-o outfile
		Output file name, instead of standard output.
*/
package main
