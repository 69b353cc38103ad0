// Package multihash computes several digests of a file in a single streaming
// pass. An Accumulator owns one fresh hash state per supported algorithm,
// reads its target file once in fixed-size blocks, and feeds every block to
// every state so that asking for a second algorithm never re-reads the file.
//
// SupportedAlgorithms reports the identifiers an Accumulator instantiates.
// Both are driven by the same algorithm table and cannot diverge.
package multihash
