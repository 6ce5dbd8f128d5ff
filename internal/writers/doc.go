// Package writers turns gene records into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (text table, TSV, JSON/JSONL, FASTA).
//   - genbank stays parse-only; neighbors stays selection-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
