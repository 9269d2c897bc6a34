// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shake128 implements the SHAKE128 extendable-output function
// (XOF) defined by FIPS-202.
//
// SHAKE128 uses the "sponge" construction and the KeccakF-1600
// permutation. For a detailed specification, see
// http://keccak.noekeon.org/
//
// Guidance
//
// SHAKE128 provides 128-bit security strength against all attacks,
// provided that at least 32 bytes of its output are used. (Requesting
// more than 32 bytes of output does not increase collision-resistance
// above 128 bits.)
//
// The sponge construction
//
// A sponge builds a pseudo-random function from a pseudo-random
// permutation, by applying the permutation to a state of
// "rate + capacity" bytes, but hiding "capacity" of the bytes.
//
// A sponge starts out with its state zero. To hash an input, up to
// "rate" bytes of the input are xored into the sponge's state. The
// sponge is then "filled up", and the permutation is applied. This
// process is repeated until all the input has been "absorbed". The
// input is then padded. The digest is "squeezed" from the sponge by
// the same method, except that output is copied out.
//
// SHAKE128 splits the 200-byte KeccakF-1600 state into a rate of 168
// bytes and a capacity of 32 bytes, and pads with the domain-separator
// byte 0x1f.
package shake128
