// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bwtinvert recovers the original text from the L-column of a
// Burrows-Wheeler Transform over the fixed alphabet {'\n', 'A', 'C',
// 'G', 'T'}.
//
// Usage:
//
//	bwtinvert <input-file> <output-file>
package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/mktom/bwtinvert/bwt"
	"github.com/mktom/bwtinvert/postprocess"
)

func main() {
	os.Exit(run(os.Args, os.Stderr))
}

// run parses args and performs the inversion, returning the process
// exit code. It never calls os.Exit itself so it can be exercised
// directly in tests.
func run(args []string, errOut io.Writer) int {
	flags := flag.NewFlagSet("bwtinvert", flag.ContinueOnError)
	flags.SetOutput(errOut)
	flags.Usage = func() {
		fmt.Fprintf(errOut, "usage: %s <input-file> <output-file>\n", flags.Name())
	}
	if err := flags.Parse(args[1:]); err != nil {
		return 2
	}

	// The original implementation silently no-ops (exit 0) for any argv
	// shape other than exactly two positional arguments.
	positional := flags.Args()
	if len(positional) != 2 {
		return 0
	}

	if err := invertFile(positional[0], positional[1]); err != nil {
		fmt.Fprintf(errOut, "bwtinvert: %v\n", err)
		return 1
	}
	return 0
}

func invertFile(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	stat, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	rd := bwt.NewReader(in)
	builder, err := bwt.NewBuilder(rd, stat.Size())
	if err != nil {
		out.Close()
		return err
	}
	index, err := builder.Build()
	if err != nil {
		out.Close()
		return err
	}

	inv := bwt.NewInverter(index, rd)
	if _, err := inv.WriteTo(out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return postprocess.RewriteFile(outPath)
}
