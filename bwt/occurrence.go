// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bwt

// Occurrence answers Occ(s, p): the number of occurrences of the
// alphabet symbol at index s within L[0..=p]. It is backed by an Index's
// checkpoint table plus a Reader for the bounded intra-block scan,
// mirroring the original C implementation's fileCharLookup.
type Occurrence struct {
	ix *Index
	rd *Reader
}

// NewOccurrence binds an Index to the Reader it was built from. rd must
// read the same L-column ix was built against.
func NewOccurrence(ix *Index, rd *Reader) *Occurrence {
	return &Occurrence{ix: ix, rd: rd}
}

// At returns Occ(s, p), the count of the symbol at alphabet index s in
// L[0..=p]. p must satisfy 0 <= p < ix.N().
func (o *Occurrence) At(s int, p int64) (int64, error) {
	ix := o.ix
	q := p / BlockSize
	r := p % BlockSize

	if p == ix.n-1 {
		// The final checkpoint row was snapshotted after processing the
		// last byte and always equals the total count for s.
		return ix.occ[int64(s)*int64(ix.occRows)+int64(ix.occRows-1)], nil
	}
	if r == 0 {
		return ix.occ[int64(s)*int64(ix.occRows)+q], nil
	}

	// Scan the up-to-BlockSize bytes strictly after the checkpoint
	// position q*BlockSize, up to but not past p. The checkpoint byte
	// itself is already folded into the stored checkpoint count, so the
	// scan window starts at the next position to avoid double-counting.
	start := q*BlockSize + 1
	length := r
	if start+length > ix.n {
		length = ix.n - start
	}

	buf := make([]byte, length)
	if _, err := o.rd.ReadBlock(start, buf); err != nil {
		return 0, err
	}

	sym := Sym(s)
	count := int64(0)
	for _, b := range buf {
		if b == sym {
			count++
		}
	}

	return ix.occ[int64(s)*int64(ix.occRows)+q] + count, nil
}
