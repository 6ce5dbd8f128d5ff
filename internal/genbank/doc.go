// Package genbank extracts gene records from GenBank-style annotation flat files.
//
// Only the feature table matters here: a feature opens on a line with five
// leading spaces followed by the feature key (CDS unless configured), and its
// qualifiers sit on lines indented by 21 spaces. For each feature the first
// /gene= value and the /translation= value (possibly quoted and wrapped over
// many lines) are collected. Features lacking either are dropped; the rest are
// numbered 1, 2, 3... in file order.
//
// Parser is the pure line-by-line transform. Parse, ParseFile and Each wrap it
// with I/O, cancellation and an optional Sink.
package genbank
