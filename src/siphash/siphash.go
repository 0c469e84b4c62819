// Package siphash implements SipHash-2-4, a keyed 64-bit hash function
// by Jean-Philippe Aumasson and Daniel J. Bernstein.
//
// The seed keeps the mapping unpredictable to anyone who does not know
// it, which makes the function suitable for hashing attacker-controlled
// keys (hash tables, caches) without exposing the process to
// hash-flooding. It is not a general-purpose MAC: do not rely on
// collision resistance against an adversary who knows the seed.
//
// The package offers a one-shot form (Hash, HashString), a streaming
// State with the same init/append/finalize shape as the reference
// implementation, and a Digest wrapper satisfying hash.Hash64.
package siphash

import (
	"encoding/binary"
	"math/bits"
)

const (
	// SeedSize is the seed length in bytes.
	SeedSize = 16

	// Size is the length of a finalized hash in bytes.
	Size = 8

	// BlockSize is the size of the internal word in bytes.
	BlockSize = 8
)

// Initial lane values before the seed is mixed in. Taken from the
// reference implementation ("somepseudorandomlygeneratedbytes").
const (
	init0 = 0x736f6d6570736575
	init1 = 0x646f72616e646f6d
	init2 = 0x6c7967656e657261
	init3 = 0x7465646279746573
)

// State is an in-progress SipHash-2-4 computation. It is a fixed-size
// value with no backing allocation, so it can be copied, stored inline
// and discarded freely. A State hashes exactly one logical message:
// once Finalize has been called the state is spent and must be
// replaced via New before hashing again.
//
// A State must not be shared between concurrent hash computations.
// Independent computations use independent States.
type State struct {
	v0, v1, v2, v3 uint64

	// padding accumulates trailing input bytes that do not yet form a
	// complete 64-bit word, each byte at its little-endian position.
	// Exactly nBytes%8 low positions are occupied between calls.
	padding uint64

	// nBytes counts every byte ever passed to Append.
	nBytes uint64
}

// New returns a State keyed with the given 128-bit seed. The two seed
// words are read little-endian: k0 from seed[0:8], k1 from seed[8:16].
func New(seed [SeedSize]byte) State {
	k0 := binary.LittleEndian.Uint64(seed[0:8])
	k1 := binary.LittleEndian.Uint64(seed[8:16])

	return State{
		v0: init0 ^ k0,
		v1: init1 ^ k1,
		v2: init2 ^ k0,
		v3: init3 ^ k1,
	}
}

// NewSeed packs two 64-bit words into seed bytes, little-endian, so
// that New(NewSeed(k0, k1)) keys the state with exactly k0 and k1.
func NewSeed(k0, k1 uint64) [SeedSize]byte {
	var seed [SeedSize]byte

	binary.LittleEndian.PutUint64(seed[0:8], k0)
	binary.LittleEndian.PutUint64(seed[8:16], k1)

	return seed
}

// round applies the ARX permutation to the four lanes. The ordering
// and the rotation amounts (13, 32, 16, 21, 17, 32) are fixed by the
// SipHash specification; changing any of them yields an incompatible
// function.
func (s *State) round() {
	s.v0 += s.v1
	s.v1 = bits.RotateLeft64(s.v1, 13)
	s.v1 ^= s.v0
	s.v0 = bits.RotateLeft64(s.v0, 32)

	s.v2 += s.v3
	s.v3 = bits.RotateLeft64(s.v3, 16)
	s.v3 ^= s.v2

	s.v0 += s.v3
	s.v3 = bits.RotateLeft64(s.v3, 21)
	s.v3 ^= s.v0

	s.v2 += s.v1
	s.v1 = bits.RotateLeft64(s.v1, 17)
	s.v1 ^= s.v2
	s.v2 = bits.RotateLeft64(s.v2, 32)
}

// mix folds one complete 64-bit word into the lanes with the two
// compression rounds of SipHash-2-4.
func (s *State) mix(m uint64) {
	s.v3 ^= m
	s.round()
	s.round()
	s.v0 ^= m
}

// Append feeds p into the hash. The result never depends on how the
// message is chunked across calls: Append(a) followed by Append(b)
// hashes the same message as a single Append of the concatenation.
// An empty (or nil) p is a no-op.
func (s *State) Append(p []byte) {
	left := s.nBytes & 7
	s.nBytes += uint64(len(p))

	// Finish the partially filled word from the previous call first.
	if left > 0 {
		for ; len(p) > 0 && left < 8; left++ {
			s.padding |= uint64(p[0]) << (left * 8)
			p = p[1:]
		}

		if left < 8 {
			return
		}

		s.mix(s.padding)
		s.padding = 0
	}

	// Word-aligned now, so the bulk of the input goes in as whole
	// little-endian 64-bit words.
	for len(p) >= 8 {
		s.mix(binary.LittleEndian.Uint64(p))
		p = p[8:]
	}

	// Stash the 0..7 trailing bytes for the next call or Finalize.
	for i, b := range p {
		s.padding |= uint64(b) << (i * 8)
	}
}

// Finalize mixes in the message length, runs the four finalization
// rounds and returns the 64-bit hash. Only the low byte of the length
// is folded into the final word; that truncation is part of the
// SipHash specification, not an overflow bug.
//
// Finalize spends the state: appending to or finalizing it again
// yields a meaningless (though memory-safe) value. Reuse requires a
// fresh New.
func (s *State) Finalize() uint64 {
	b := s.padding | s.nBytes<<56

	s.mix(b)

	s.v2 ^= 0xff

	s.round()
	s.round()
	s.round()
	s.round()

	return s.v0 ^ s.v1 ^ s.v2 ^ s.v3
}

// Hash returns the SipHash-2-4 of p under seed. It is equivalent to
// New followed by a single Append of p and a Finalize.
func Hash(seed [SeedSize]byte, p []byte) uint64 {
	s := New(seed)
	s.Append(p)

	return s.Finalize()
}
