// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bwt

import "io"

// Inverter walks the LF mapping backward from the sentinel row, emitting
// the original text's characters in reverse order. It flushes
// fixed-size buffers to an io.Writer as it goes so memory use stays
// bounded regardless of input size.
//
// The output of WriteTo is the original text with each line's bytes
// reversed and the lines themselves in reverse order — "reverse-line,
// reverse-order" form. A caller must run the two whole-file reversals
// in package postprocess to recover the original text.
type Inverter struct {
	ix  *Index
	occ *Occurrence
	lk  *Lookup
}

// NewInverter builds an Inverter over ix, reading random-access bytes
// through rd (the same Reader, or an equivalent one, that built ix).
func NewInverter(ix *Index, rd *Reader) *Inverter {
	return &Inverter{
		ix:  ix,
		occ: NewOccurrence(ix, rd),
		lk:  NewLookup(ix, rd),
	}
}

// WriteTo streams the reverse-line, reverse-order rendering of the
// original text to w and returns the number of bytes written.
func (inv *Inverter) WriteTo(w io.Writer) (int64, error) {
	t := inv.ix.Sentinel()
	bufCap := ChunkSize - 1
	buf := make([]byte, 0, bufCap)
	var total int64

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		n, err := w.Write(buf)
		total += int64(n)
		buf = buf[:0]
		return err
	}

	buf = append(buf, '\n')

	nlIdx, _ := Idx('\n') // the alphabet codec guarantees '\n' is always valid
	occAtT, err := inv.occ.At(nlIdx, t)
	if err != nil {
		return total, err
	}
	p := inv.ix.CTable(nlIdx) + occAtT - 1

	if p == t {
		// LF has no fixed point except in the single-row cycle (N == 1):
		// the sentinel is its own predecessor, so the text is just the
		// sentinel byte already in buf.
		err := flush()
		return total, err
	}

	c, err := inv.lk.At(p)
	if err != nil {
		return total, err
	}
	buf = append(buf, c)

	// A genuine BWT L-column is a single permutation cycle over all of
	// its N positions: the walk must visit every position exactly once
	// before returning to t. visited counts the positions computed so
	// far (p from the preamble, plus one per loop iteration) so a
	// corrupted column that forms a shorter or longer cycle is caught
	// instead of silently truncating the output or looping forever.
	visited := int64(1)
	for {
		idx, err := Idx(c)
		if err != nil {
			return total, err
		}
		occAtP, err := inv.occ.At(idx, p)
		if err != nil {
			return total, err
		}
		p = inv.ix.CTable(idx) + occAtP - 1
		visited++
		if visited > inv.ix.N() {
			return total, ErrCorruptColumn
		}

		c, err = inv.lk.At(p)
		if err != nil {
			return total, err
		}

		if c != '\n' && len(buf) < bufCap {
			buf = append(buf, c)
		}

		if p == t {
			if visited != inv.ix.N() {
				return total, ErrCorruptColumn
			}
			if err := flush(); err != nil {
				return total, err
			}
			break
		} else if len(buf) == bufCap {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}

	return total, nil
}
