// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bwt

import (
	"bytes"
	"testing"
)

func TestLookupAt(t *testing.T) {
	l := "ACGT\nACGT"
	rd := NewReader(bytes.NewReader([]byte(l)))
	b, err := NewBuilder(rd, int64(len(l)))
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	ix, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	lk := NewLookup(ix, rd)
	for i := 0; i < len(l); i++ {
		got, err := lk.At(int64(i))
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		if got != l[i] {
			t.Errorf("At(%d) = %q, want %q", i, got, l[i])
		}
	}
}

// TestLookupAtSampleBoundary exercises the sparse-sample fast path and
// the random-read fallback together by building an L-column longer than
// FileBlock.
func TestLookupAtSampleBoundary(t *testing.T) {
	body := bytes.Repeat([]byte("ACGT"), FileBlock) // 4*FileBlock bytes
	body[3] = '\n'
	l := string(body)
	rd := NewReader(bytes.NewReader([]byte(l)))
	b, err := NewBuilder(rd, int64(len(l)))
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	ix, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	lk := NewLookup(ix, rd)

	for _, i := range []int64{0, FileBlock, FileBlock + 17, int64(len(l)) - 1} {
		got, err := lk.At(i)
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		if got != l[i] {
			t.Errorf("At(%d) = %q, want %q", i, got, l[i])
		}
	}
}
