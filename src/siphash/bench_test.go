package siphash

import "testing"

func benchmarkHash(b *testing.B, size int) {
	seed := refSeed()
	msg := refMessage(size)

	b.SetBytes(int64(size))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		Hash(seed, msg)
	}
}

func BenchmarkHash8(b *testing.B)   { benchmarkHash(b, 8) }
func BenchmarkHash64(b *testing.B)  { benchmarkHash(b, 64) }
func BenchmarkHash1K(b *testing.B)  { benchmarkHash(b, 1024) }
func BenchmarkHash16K(b *testing.B) { benchmarkHash(b, 16*1024) }

func BenchmarkHashString(b *testing.B) {
	seed := refSeed()
	s := "a moderately sized hash table key"

	b.SetBytes(int64(len(s)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		HashString(seed, s)
	}
}

func BenchmarkDigestChunked(b *testing.B) {
	seed := refSeed()
	msg := refMessage(1024)

	b.SetBytes(int64(len(msg)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		d := NewDigest(seed)
		for off := 0; off < len(msg); off += 64 {
			_, _ = d.Write(msg[off : off+64])
		}
		d.Sum64()
	}
}
