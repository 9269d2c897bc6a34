// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shake128

// This file implements the KeccakF-1600 permutation and the
// byte-addressed lane primitives used by the sponge: xoring input
// bytes into the state and extracting output bytes from it.
//
// The state is 25 lanes of 64 bits. Byte b of the 200-byte state is
// the little-endian byte at bit position 8*(b%8) of lane b/8.

import "encoding/binary"

const rounds = 24

var roundConstants = [rounds]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// rotationConstants[i] is the Rho rotation applied when lane
// piLane[i-1] moves to lane piLane[i]; the two tables walk the
// Rho-Pi cycle starting from lane 1.
var rotationConstants = [24]uint{
	1, 3, 6, 10, 15, 21, 28, 36,
	45, 55, 2, 14, 27, 41, 56, 8,
	25, 43, 62, 18, 39, 61, 20, 44,
}

var piLane = [24]uint{
	10, 7, 11, 17, 18, 3, 5, 16,
	8, 21, 24, 4, 15, 23, 19, 13,
	12, 2, 20, 14, 22, 9, 6, 1,
}

func rotl64(x uint64, n uint) uint64 {
	return (x << n) | (x >> (64 - n))
}

// keccakF applies the 24-round KeccakF-1600 permutation to the state.
func keccakF(a *[25]uint64) {
	var bc [5]uint64
	for r := 0; r < rounds; r++ {
		// theta
		for i := range bc {
			bc[i] = a[i] ^ a[5+i] ^ a[10+i] ^ a[15+i] ^ a[20+i]
		}
		for i := range bc {
			t := bc[(i+4)%5] ^ rotl64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				a[i+j] ^= t
			}
		}

		// rho and pi, fused: walk the lane cycle
		temp := a[1]
		for i := range piLane {
			j := piLane[i]
			temp2 := a[j]
			a[j] = rotl64(temp, rotationConstants[i])
			temp = temp2
		}

		// chi
		for j := 0; j < 25; j += 5 {
			for i := range bc {
				bc[i] = a[j+i]
			}
			for i := range bc {
				a[j+i] ^= (^bc[(i+1)%5]) & bc[(i+2)%5]
			}
		}

		// iota
		a[0] ^= roundConstants[r]
	}
}

// xorByte xors v into the state byte at offset off.
//
// Precondition: 0 <= off < 200.
func xorByte(a *[25]uint64, v byte, off int) {
	a[off>>3] ^= uint64(v) << uint(8*(off&7))
}

// xorBytesFrom xors buf into the state starting at byte offset off,
// byte-swapping to little-endian as necessary.
//
// Precondition: off + len(buf) <= 200.
func xorBytesFrom(a *[25]uint64, buf []byte, off int) {
	for len(buf) > 0 && off&7 != 0 {
		xorByte(a, buf[0], off)
		buf = buf[1:]
		off++
	}
	for len(buf) >= 8 {
		a[off>>3] ^= binary.LittleEndian.Uint64(buf)
		buf = buf[8:]
		off += 8
	}
	for i, v := range buf {
		xorByte(a, v, off+i)
	}
}

// copyBytesInto copies state bytes starting at byte offset off into buf.
//
// Precondition: off + len(buf) <= 200.
func copyBytesInto(buf []byte, a *[25]uint64, off int) {
	for len(buf) > 0 && off&7 != 0 {
		buf[0] = byte(a[off>>3] >> uint(8*(off&7)))
		buf = buf[1:]
		off++
	}
	for len(buf) >= 8 {
		binary.LittleEndian.PutUint64(buf, a[off>>3])
		buf = buf[8:]
		off += 8
	}
	for i := range buf {
		buf[i] = byte(a[off>>3] >> uint(8*i))
	}
}
