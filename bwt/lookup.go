// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bwt

// Lookup answers L_at(i): the byte at position i of the L-column,
// preferring the sparse sample materialized in the Index over a random
// disk read whenever possible.
type Lookup struct {
	ix *Index
	rd *Reader
}

// NewLookup binds an Index to the Reader it was built from.
func NewLookup(ix *Index, rd *Reader) *Lookup {
	return &Lookup{ix: ix, rd: rd}
}

// At returns L[i]. i must satisfy 0 <= i < ix.N().
func (l *Lookup) At(i int64) (byte, error) {
	ix := l.ix
	q := i / FileBlock
	r := i % FileBlock

	if i == ix.n-1 {
		return ix.ls[len(ix.ls)-1], nil
	}
	if r == 0 {
		return ix.ls[q], nil
	}
	return l.rd.ReadByte(i)
}
