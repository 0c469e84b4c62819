package siphash

import (
	"encoding/binary"
	"hash"
)

// Digest adapts State to the standard hash.Hash64 interface. Unlike
// the raw State, a Digest survives reading the sum: Sum64 finalizes a
// copy, so writes may continue afterwards and Reset restores the
// freshly keyed state.
type Digest struct {
	state State
	seed  [SeedSize]byte
}

var _ hash.Hash64 = (*Digest)(nil)

// NewDigest returns a hash.Hash64 computing SipHash-2-4 under seed.
func NewDigest(seed [SeedSize]byte) *Digest {
	d := &Digest{seed: seed}
	d.Reset()

	return d
}

// Reset discards everything written so far, keeping the seed.
func (d *Digest) Reset() {
	d.state = New(d.seed)
}

// Write feeds p into the hash. It always succeeds; the returned error
// is nil.
func (d *Digest) Write(p []byte) (int, error) {
	d.state.Append(p)

	return len(p), nil
}

// Sum64 returns the hash of everything written so far.
func (d *Digest) Sum64() uint64 {
	s := d.state

	return s.Finalize()
}

// Sum appends the current hash, big-endian, to b and returns the
// resulting slice.
func (d *Digest) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, d.Sum64())
}

// Size returns the number of bytes Sum appends.
func (d *Digest) Size() int {
	return Size
}

// BlockSize returns the hash's internal block size.
func (d *Digest) BlockSize() int {
	return BlockSize
}
