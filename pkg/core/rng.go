package core

import "math/rand"

// Per-pixel random streams. Every pixel derives its own generator from the
// root seed and its coordinates, so a render is bit-identical for a fixed
// seed no matter how the image is partitioned across workers.

// mix64 is the splitmix64 finalizer, a cheap high-quality bit mixer.
func mix64(v uint64) uint64 {
	v ^= v >> 30
	v *= 0xbf58476d1ce4e5b9
	v ^= v >> 27
	v *= 0x94d049bb133111eb
	v ^= v >> 31
	return v
}

// PixelSeed derives a well-mixed seed for the pixel at (x, y) from the root
// seed. Neighboring pixels get uncorrelated streams.
func PixelSeed(seed int64, x, y int) int64 {
	h := mix64(uint64(seed))
	h = mix64(h ^ (uint64(uint32(x)) << 32) ^ uint64(uint32(y)))
	return int64(h)
}

// NewPixelSampler creates the deterministic sample stream for one pixel.
func NewPixelSampler(seed int64, x, y int) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(PixelSeed(seed, x, y))))
}
