// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package postprocess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReverseLineBytes(t *testing.T) {
	vector := []struct {
		in, want string
	}{
		{"", ""},
		{"\n", "\n"},
		{"A\n", "A\n"},
		{"AC\n", "CA\n"},
		{"AC\nGT\n", "CA\nTG\n"},
		{"AC\nGT", "CA\nTG"}, // no trailing newline on final line
	}
	for _, v := range vector {
		got := ReverseLineBytes([]byte(v.in))
		if string(got) != v.want {
			t.Errorf("ReverseLineBytes(%q) = %q, want %q", v.in, got, v.want)
		}
	}
}

func TestReverseLineOrder(t *testing.T) {
	vector := []struct {
		in, want string
	}{
		{"", ""},
		{"\n", "\n"},
		{"A\n", "A\n"},
		{"A\nB\n", "B\nA\n"},
		{"A\nB\nC\n", "C\nB\nA\n"},
		{"A\nB", "BA\n"}, // final unterminated line moves to front, with no newline between
	}
	for _, v := range vector {
		got := ReverseLineOrder([]byte(v.in))
		if string(got) != v.want {
			t.Errorf("ReverseLineOrder(%q) = %q, want %q", v.in, got, v.want)
		}
	}
}

// TestInvertRoundTrips exercises the scenarios from the inversion
// algorithm's output: Invert composes ReverseLineBytes then
// ReverseLineOrder, recovering the pre-transform text exactly.
func TestInvertRoundTrips(t *testing.T) {
	vector := []struct {
		name, core, original string
	}{
		{"smallest", "\n", "\n"},
		{"two-symbol", "\nA", "A\n"},
		{"repeated", "\nAAA", "AAA\n"},
		{"multi-symbol", "\nTGCA", "ACGT\n"},
	}
	for _, v := range vector {
		t.Run(v.name, func(t *testing.T) {
			got := Invert([]byte(v.core))
			if diff := cmp.Diff(v.original, string(got)); diff != "" {
				t.Errorf("Invert(%q) mismatch (-want +got):\n%s", v.core, diff)
			}
		})
	}
}

func TestInvertIsSelfInverseOnSingleLine(t *testing.T) {
	// A file with no embedded newline and no trailing newline is a
	// single unterminated record: ReverseLineBytes reverses it and
	// ReverseLineOrder leaves it in place, so applying Invert twice
	// restores the input.
	in := []byte("ACGT")
	got := Invert(in)
	if string(got) != "TGCA" {
		t.Errorf("Invert(%q) = %q, want %q", in, got, "TGCA")
	}
	if back := Invert(got); string(back) != "ACGT" {
		t.Errorf("Invert(%q) = %q, want %q", got, back, "ACGT")
	}
}
