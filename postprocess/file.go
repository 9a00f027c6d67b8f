// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package postprocess

import (
	"bytes"
	"os"

	"github.com/natefinch/atomic"
)

// RewriteFile reads the whole file at path, applies Invert, and writes
// the result back to path atomically. This mirrors the original
// pipeline's "rev file | sponge file; tac file | sponge file" shell
// commands as one in-process read/transform/replace, without ever
// leaving a partially written file visible to a concurrent reader.
func RewriteFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return atomic.WriteFile(path, bytes.NewReader(Invert(data)))
}
