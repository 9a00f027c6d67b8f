// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bwt inverts the Burrows-Wheeler Transform of a genomic-style
// text over the fixed alphabet {'\n', 'A', 'C', 'G', 'T'}.
//
// The package exposes a single streaming pass over the L-column (the
// last column of the sorted rotation matrix) that builds a checkpointed
// occurrence index, then an LF-mapping walk that reconstructs the
// original text in reverse. Forward transformation (encoding) is out of
// scope; see the Non-goals paragraph in SPEC_FULL.md.
package bwt

const (
	// ChunkSize is the slab size used by Builder's streaming pass over
	// the L-column file and by Inverter's output buffer.
	ChunkSize = 4096

	// SymbolCount is the size of the fixed alphabet.
	SymbolCount = 5

	// BlockSize is the spacing, in L-column positions, between
	// occurrence checkpoints.
	BlockSize = 64

	// FileBlock is the spacing, in L-column positions, between sparse
	// L-column samples.
	FileBlock = 320

	// MaxTableSize bounds the number of occurrence checkpoint rows a
	// Builder will allocate, mirroring the static capacity of the
	// original C implementation.
	MaxTableSize = 235000

	// MaxFileTableSize bounds the number of sparse L-column samples a
	// Builder will allocate.
	MaxFileTableSize = 46880
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "bwt: " + string(e) }

var (
	// ErrInvalidSymbol indicates a byte outside the fixed alphabet was
	// found in the L-column.
	ErrInvalidSymbol error = Error("byte outside the fixed alphabet {\\n,A,C,G,T}")

	// ErrNoSentinel indicates the L-column contained no '\n' byte.
	ErrNoSentinel error = Error("no sentinel byte found in L-column")

	// ErrMultipleSentinels indicates the L-column contained more than
	// one '\n' byte, violating the single-sentinel invariant.
	ErrMultipleSentinels error = Error("more than one sentinel byte found in L-column")

	// ErrCapacity indicates the L-column is larger than the configured
	// checkpoint/sample table capacity.
	ErrCapacity error = Error("input exceeds configured table capacity")

	// ErrEmpty indicates a zero-length L-column, which cannot contain a
	// sentinel.
	ErrEmpty error = Error("empty L-column")

	// ErrClosed indicates an operation was attempted on an already
	// released session.
	ErrClosed error = Error("session closed")

	// ErrCorruptColumn indicates the LF walk did not visit every
	// L-column position exactly once: it returned to the sentinel after
	// fewer steps than the L-column has positions, or ran for more steps
	// than that. A genuine BWT L-column is a single permutation cycle
	// over all of its positions; this only fires on a corrupted or
	// hand-crafted column that is structurally valid (one sentinel,
	// alphabet-only bytes) but does not correspond to any sorted-rotation
	// matrix.
	ErrCorruptColumn error = Error("LF mapping is not a single cycle through every L-column position")
)

// symbols is the fixed, ordered alphabet. Index order doubles as sort
// order: the sentinel sorts first, consistent with BWT's F-column
// ordering.
var symbols = [SymbolCount]byte{'\n', 'A', 'C', 'G', 'T'}

// symbolIndex maps a byte to its alphabet index, or -1 if absent.
var symbolIndex [256]int8

func init() {
	for i := range symbolIndex {
		symbolIndex[i] = -1
	}
	for i, s := range symbols {
		symbolIndex[s] = int8(i)
	}
}

// Sym returns the alphabet symbol at index i. The caller must ensure
// 0 <= i < SymbolCount; this mirrors the fixed, data-independent nature
// of the alphabet codec.
func Sym(i int) byte {
	return symbols[i]
}

// Idx returns the alphabet index of b, or ErrInvalidSymbol if b is not
// one of {'\n', 'A', 'C', 'G', 'T'}.
func Idx(b byte) (int, error) {
	if i := symbolIndex[b]; i >= 0 {
		return int(i), nil
	}
	return 0, ErrInvalidSymbol
}
