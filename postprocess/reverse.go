// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package postprocess undoes the "reverse-line, reverse-order" encoding
// that package bwt's Inverter writes. The inverter walks the LF mapping
// backward from the sentinel, which is cheap to do in a single forward
// pass but leaves each line's bytes reversed and the lines themselves in
// reverse order. Recovering the original text takes two whole-file
// passes: reverse the bytes within every line, then reverse the order of
// the lines.
//
// The original C implementation shells out to the rev and tac utilities
// for these two passes. This package reimplements both natively so the
// CLI has no external process dependency.
package postprocess

import "bytes"

// record is one line of a file together with whether it was terminated
// by a trailing newline. The final line of a file that does not end in
// '\n' has hasNL == false; every other line has hasNL == true.
type record struct {
	content []byte
	hasNL   bool
}

// splitRecords partitions data into records at '\n' boundaries. The
// terminator itself is not included in content; it is tracked by hasNL
// so joinRecords can reproduce it.
func splitRecords(data []byte) []record {
	var recs []record
	start := 0
	for i, b := range data {
		if b == '\n' {
			recs = append(recs, record{content: data[start:i], hasNL: true})
			start = i + 1
		}
	}
	if start < len(data) {
		recs = append(recs, record{content: data[start:], hasNL: false})
	}
	return recs
}

// joinRecords is splitRecords' inverse: it reproduces exactly the byte
// stream that would split into recs.
func joinRecords(recs []record) []byte {
	var buf bytes.Buffer
	for _, r := range recs {
		buf.Write(r.content)
		if r.hasNL {
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// ReverseLineBytes reverses the byte order within every line of data,
// leaving line boundaries (and the presence or absence of a final
// trailing newline) untouched. This is the native equivalent of the rev
// utility.
func ReverseLineBytes(data []byte) []byte {
	recs := splitRecords(data)
	for i := range recs {
		c := append([]byte(nil), recs[i].content...)
		reverseBytes(c)
		recs[i].content = c
	}
	return joinRecords(recs)
}

// ReverseLineOrder reverses the order of the lines in data, carrying
// each line's own terminator along with it. This is the native
// equivalent of the tac utility: unlike a naive split-and-rejoin on
// '\n', a line's terminator moves with its content, so a file that does
// not end in '\n' keeps its unterminated line in the record that was
// originally last, now wherever reversal places it.
func ReverseLineOrder(data []byte) []byte {
	recs := splitRecords(data)
	for i, j := 0, len(recs)-1; i < j; i, j = i+1, j-1 {
		recs[i], recs[j] = recs[j], recs[i]
	}
	return joinRecords(recs)
}

// Invert undoes the bwt Inverter's reverse-line, reverse-order encoding,
// applying the two passes in the same order the original pipeline does:
// byte-reverse every line first, then reverse the line order.
func Invert(data []byte) []byte {
	return ReverseLineOrder(ReverseLineBytes(data))
}
