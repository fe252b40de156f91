package bitops

import "math/bits"

// Generic Optimized forms of the word functions. Ch and Maj use the
// equivalent reduced expressions with one fewer operation each.
type Generic struct{}

//go:nosplit
func (Generic) Ch(x, y, z uint32) uint32 {
	return z ^ (x & (y ^ z))
}

//go:nosplit
func (Generic) Maj(x, y, z uint32) uint32 {
	return (x & y) ^ (z & (x ^ y))
}

//go:nosplit
func (Generic) BigSigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
}

//go:nosplit
func (Generic) BigSigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
}

//go:nosplit
func (Generic) SmallSigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3)
}

//go:nosplit
func (Generic) SmallSigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ (x >> 10)
}

var _ Operations = Generic{}
