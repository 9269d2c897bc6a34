// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shake128

import (
	"bytes"
	"testing"
)

// keccakFZeroState is KeccakF-1600 applied to the all-zero state, from
// the Keccak reference test vectors.
var keccakFZeroState = [25]uint64{
	0xF1258F7940E1DDE7, 0x84D5CCF933C0478A, 0xD598261EA65AA9EE, 0xBD1547306F80494D, 0x8B284E056253D057,
	0xFF97A42D7F8E6FD4, 0x90FEE5A0A44647C4, 0x8C5BDA0CD6192E76, 0xAD30A6F71B19059C, 0x30935AB7D08FFC64,
	0xEB5AA93F2317D635, 0xA9A6E6260D712103, 0x81A57C16DBCF555F, 0x43B831CD0347C826, 0x01F22F1A11A5569F,
	0x05E5635A21D9AE61, 0x64BEFEF28CC970F2, 0x613670957BC46611, 0xB87C5A554FD00ECB, 0x8C3EE88A1CCF32C8,
	0x940C7922AE3A2614, 0x1841F924A2C509E4, 0x16F53526E70465C2, 0x75F644E97F30A13B, 0xEAF1FF7B5CECA249,
}

func TestKeccakFZeroState(t *testing.T) {
	var a [25]uint64
	keccakF(&a)
	if a != keccakFZeroState {
		t.Errorf("KeccakF-1600(0) = %016x, want %016x", a, keccakFZeroState)
	}
}

// TestByteAddressing checks that state byte b reads as the
// little-endian byte at bit position 8*(b%8) of lane b/8.
func TestByteAddressing(t *testing.T) {
	var a [25]uint64
	for i := range a {
		a[i] = 0x0123456789ABCDEF * uint64(i+1)
	}
	got := make([]byte, 200)
	copyBytesInto(got, &a, 0)
	for b := 0; b < 200; b++ {
		want := byte(a[b/8] >> uint(8*(b%8)))
		if got[b] != want {
			t.Fatalf("state byte %d = %#02x, want %#02x", b, got[b], want)
		}
	}
}

// TestXorExtractRoundTrip xors a buffer in at an unaligned offset,
// extracts it again, and checks that a second xor cancels the first.
func TestXorExtractRoundTrip(t *testing.T) {
	buf := sequentialBytes(47)
	for _, off := range []int{0, 1, 3, 7, 8, 61, 153} {
		var a [25]uint64
		xorBytesFrom(&a, buf, off)

		got := make([]byte, len(buf))
		copyBytesInto(got, &a, off)
		if !bytes.Equal(got, buf) {
			t.Errorf("offset %d: extracted %x, want %x", off, got, buf)
		}

		xorBytesFrom(&a, buf, off)
		if a != ([25]uint64{}) {
			t.Errorf("offset %d: double xor did not cancel", off)
		}
	}
}

func TestXorByte(t *testing.T) {
	var a [25]uint64
	xorByte(&a, 0x1f, 167)
	xorByte(&a, 0x80, 167)
	if a[20] != 0x9f<<56 {
		t.Errorf("coinciding padding bytes: lane 20 = %#016x, want %#016x", a[20], uint64(0x9f)<<56)
	}
}

// BenchmarkPermutationFunction measures the speed of the permutation function with no input data.
func BenchmarkPermutationFunction(b *testing.B) {
	b.SetBytes(int64(200))
	var lanes [25]uint64
	for i := 0; i < b.N; i++ {
		keccakF(&lanes)
	}
}
