package siphash

import "unsafe"

// HashString returns the SipHash-2-4 of s under seed without copying
// the string. The byte view is read-only and never escapes the call.
func HashString(seed [SeedSize]byte, s string) uint64 {
	return Hash(seed, unsafe.Slice(unsafe.StringData(s), len(s)))
}
