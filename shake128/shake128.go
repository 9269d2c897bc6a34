// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shake128

// This file defines the XOF interface, the SHAKE128 constructor, and
// the one-shot Sum function.

import "io"

// XOF defines the interface to the SHAKE128 extendable-output
// function.
type XOF interface {
	// Write absorbs more data into the hash's state. It returns
	// ErrWriteAfterDigest if output has already been read.
	io.Writer

	// Digest finalizes the hash if necessary and returns n bytes of
	// output. Repeated calls re-emit output from the start of the
	// squeeze phase, so Digest(n1) is a prefix of Digest(n2) for
	// n1 <= n2.
	Digest(n int) []byte

	// Clone returns a copy of the XOF in its current state.
	Clone() XOF

	// Reset restores the XOF to its initial state.
	Reset()

	// SpongeSize returns the size, in bytes, of the sponge state.
	SpongeSize() int
	// Rate returns the number of bytes absorbed or squeezed per
	// permutation.
	Rate() int
	// SecurityStrength returns the generic security strength, in
	// bits, of this instance.
	SecurityStrength() int
	// State returns whether the sponge is absorbing or squeezing.
	State() SpongeDirection
}

// New creates a new SHAKE128 XOF. Its generic security strength is
// 128 bits against all attacks if at least 32 bytes of its output are
// used.
func New() XOF { return &state{} }

// Sum returns an n-byte SHAKE128 digest of data. It is equivalent to
// writing data to a fresh XOF and requesting an n-byte digest.
func Sum(data []byte, n int) []byte {
	var d state
	d.Write(data)
	return d.Digest(n)
}
