// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bwt

import (
	"hash/crc32"

	"github.com/dsnet/golib/hashutil"
)

// Index is the set of read-only structures produced by a single
// streaming pass over an L-column: the total symbol counts, the C-table
// derived from them, the checkpointed occurrence table, the sparse
// L-sample, and the sentinel position. Once built, an Index is safe for
// concurrent read-only use by any number of LF inversions.
type Index struct {
	n        int64
	cnt      [SymbolCount]int64
	ctable   [SymbolCount]int64
	occ      []int64 // column-major: occ[s*occRows+k] == Occ[s][k]
	occRows  int
	ls       []byte
	sentinel int64
	checksum uint32
}

// N returns the size of the L-column this Index was built from.
func (ix *Index) N() int64 { return ix.n }

// Sentinel returns the position of the unique '\n' byte in the L-column.
func (ix *Index) Sentinel() int64 { return ix.sentinel }

// Checksum returns a folded CRC-32 (IEEE) over every byte of the
// L-column as observed during the streaming pass. It is a defense in
// depth check, not part of the inversion algorithm: a caller that
// independently knows the expected checksum of its L-column file can
// compare it against this value to catch truncation or reordering
// before trusting the rest of the Index.
func (ix *Index) Checksum() uint32 { return ix.checksum }

// CTable returns C[s], the first row in the sorted-rotations matrix
// whose first column equals the symbol at alphabet index s.
func (ix *Index) CTable(s int) int64 { return ix.ctable[s] }

// Count returns the total number of occurrences of the symbol at
// alphabet index s across the whole L-column.
func (ix *Index) Count(s int) int64 { return ix.cnt[s] }

// occRowCount computes the number of checkpoint rows the builder will
// write for an L-column of size n: one bootstrap row at position 0,
// plus one row for every position in [1, n-1] that is either a
// BlockSize multiple or the final position n-1 (the two coincide
// exactly when n-1 is itself a BlockSize multiple, contributing a
// single row, not two). That trailing count is ceil((n-1)/BlockSize).
func occRowCount(n int64) int {
	return 1 + int(ceilDiv(n-1, BlockSize))
}

// lsEntryCount computes the number of sparse L-column samples the
// builder will write for an L-column of size n, by the same reasoning
// as occRowCount but spaced every FileBlock positions.
func lsEntryCount(n int64) int {
	return 1 + int(ceilDiv(n-1, FileBlock))
}

// ceilDiv returns ceil(x/y) for x >= 0, y > 0.
func ceilDiv(x, y int64) int64 {
	if x <= 0 {
		return 0
	}
	return (x + y - 1) / y
}

// Builder performs the single forward streaming pass over an L-column
// described in spec §4.3, producing an Index. It mirrors the structure
// of the original C implementation's chunkProcessing/setTables pair,
// keeping separate write-index counters for the checkpoint and sample
// rows and checking them against occRowCount and lsEntryCount once the
// pass is complete.
type Builder struct {
	rd *Reader
	n  int64
}

// NewBuilder prepares a Builder for an L-column of n bytes readable
// through rd. It returns ErrEmpty for n == 0 and ErrCapacity if n
// exceeds the configured checkpoint/sample table capacity.
func NewBuilder(rd *Reader, n int64) (*Builder, error) {
	if n == 0 {
		return nil, ErrEmpty
	}
	if n > int64(MaxTableSize)*BlockSize || n > int64(MaxFileTableSize)*FileBlock {
		return nil, ErrCapacity
	}
	return &Builder{rd: rd, n: n}, nil
}

// Build runs the streaming pass and returns the completed Index.
func (b *Builder) Build() (*Index, error) {
	occRows := occRowCount(b.n)
	lsRows := lsEntryCount(b.n)

	out := &Index{
		n:        b.n,
		occ:      make([]int64, SymbolCount*occRows),
		occRows:  occRows,
		ls:       make([]byte, lsRows),
		sentinel: -1,
	}

	var cnt [SymbolCount]int64
	occRow := 0
	lsRow := 0
	var g int64
	var crc uint32

	buf := make([]byte, ChunkSize)
	for g < b.n {
		want := int64(ChunkSize)
		if remaining := b.n - g; remaining < want {
			want = remaining
		}
		chunk := buf[:want]
		if _, rerr := b.rd.NextChunk(chunk); rerr != nil {
			return nil, rerr
		}

		chunkCRC := crc32.ChecksumIEEE(chunk)
		crc = hashutil.CombineCRC32(crc32.IEEE, crc, chunkCRC, int64(len(chunk)))

		for d, sym := range chunk {
			pos := g + int64(d)
			if sym == '\n' {
				if out.sentinel >= 0 {
					return nil, ErrMultipleSentinels
				}
				out.sentinel = pos
			}

			idx, ierr := Idx(sym)
			if ierr != nil {
				return nil, ierr
			}

			if pos == 0 {
				cnt[idx]++
				for s := 0; s < SymbolCount; s++ {
					out.occ[s*occRows+occRow] = cnt[s]
				}
				out.ls[lsRow] = sym
				occRow++
				lsRow++
				continue
			}

			cnt[idx]++
			last := pos == b.n-1
			if pos%BlockSize == 0 || last {
				for s := 0; s < SymbolCount; s++ {
					out.occ[s*occRows+occRow] = cnt[s]
				}
				occRow++
			}
			if pos%FileBlock == 0 || last {
				out.ls[lsRow] = sym
				lsRow++
			}
		}

		g += int64(len(chunk))
	}

	if out.sentinel < 0 {
		return nil, ErrNoSentinel
	}
	if cnt[0] != 1 {
		return nil, ErrMultipleSentinels
	}
	if occRow != occRows || lsRow != lsRows {
		return nil, Error("internal: checkpoint/sample row accounting mismatch")
	}

	out.cnt = cnt
	out.ctable[0] = 0
	out.ctable[1] = cnt[0]
	for s := 2; s < SymbolCount; s++ {
		out.ctable[s] = out.ctable[s-1] + cnt[s-1]
	}
	out.checksum = crc

	return out, nil
}
