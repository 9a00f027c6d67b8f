// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bwt

import "io"

// Source is the minimal capability the L-column reader needs: sequential
// forward reads for the index builder's streaming pass, and absolute
// random reads for the occurrence oracle's intra-block scans and the
// sparse-sample fallback lookups. *os.File satisfies this directly.
type Source interface {
	io.Reader
	io.ReaderAt
}

// Reader provides sequential streaming reads and random single-byte or
// block reads over an L-column Source. It does not buffer across calls
// and is not safe for concurrent use — positioning for sequential reads
// is whatever the underlying Source's current offset is, while random
// reads always use an absolute offset and never disturb it.
type Reader struct {
	src Source
}

// NewReader wraps src for use by Builder, the occurrence oracle, and the
// L lookup.
func NewReader(src Source) *Reader {
	return &Reader{src: src}
}

// NextChunk reads len(buf) bytes starting from the Source's current
// position, retrying short reads until buf is full, io.EOF is reached,
// or a genuine I/O error occurs. The caller must pass a positive-sized
// buffer.
func (r *Reader) NextChunk(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, Error("NextChunk requires a positive-sized buffer")
	}
	n, err := io.ReadFull(r.src, buf)
	if err == io.ErrUnexpectedEOF {
		// A short final chunk is not an error; the caller sized buf to
		// the exact number of remaining bytes, so this should not
		// normally trigger, but tolerate it defensively.
		return n, nil
	}
	return n, err
}

// ReadByte returns the single byte at absolute position pos.
func (r *Reader) ReadByte(pos int64) (byte, error) {
	var b [1]byte
	if _, err := r.readBlockAt(b[:], pos); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadBlock fills buf (len(buf) <= BlockSize) with the bytes starting at
// absolute position pos, retrying short reads to completion.
func (r *Reader) ReadBlock(pos int64, buf []byte) (int, error) {
	if len(buf) > BlockSize {
		return 0, Error("block read request exceeds BlockSize")
	}
	return r.readBlockAt(buf, pos)
}

func (r *Reader) readBlockAt(buf []byte, pos int64) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := r.src.ReadAt(buf[total:], pos+int64(total))
		total += n
		if err != nil {
			if err == io.EOF && total == len(buf) {
				return total, nil
			}
			return total, err
		}
	}
	return total, nil
}
