package bitops

// Reference Literal FIPS 180-4 formulas with an explicit rotate, for
// environments where math/bits intrinsics are unavailable and for
// cross-checking other providers.
type Reference struct{}

// Rotr rotates x right by n bits, 0 < n < 32.
func Rotr(x uint32, n uint) uint32 {
	return (x >> n) | (x << (32 - n))
}

func (Reference) Ch(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

func (Reference) Maj(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}

func (Reference) BigSigma0(x uint32) uint32 {
	return Rotr(x, 2) ^ Rotr(x, 13) ^ Rotr(x, 22)
}

func (Reference) BigSigma1(x uint32) uint32 {
	return Rotr(x, 6) ^ Rotr(x, 11) ^ Rotr(x, 25)
}

func (Reference) SmallSigma0(x uint32) uint32 {
	return Rotr(x, 7) ^ Rotr(x, 18) ^ (x >> 3)
}

func (Reference) SmallSigma1(x uint32) uint32 {
	return Rotr(x, 17) ^ Rotr(x, 19) ^ (x >> 10)
}

var _ Operations = Reference{}
