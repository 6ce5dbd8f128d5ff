// Package pipeline wires the gbneighbors flow: load records (parse a GenBank
// file or read a record cache), select neighbor windows and export FASTA.
//
// genbank and neighbors stay pure; this package owns files and logging.
package pipeline
