// Package bitops implements the six SHA-256 word functions of FIPS 180-4 §4.1.2
// behind a common interface, so an execution environment offering its own
// arithmetic (a zkVM host call, a constrained interpreter) can be substituted
// without touching the compression loop.
package bitops

// Operations The word functions consumed by the compression function.
type Operations interface {
	// Ch (x & y) ^ (^x & z)
	Ch(x, y, z uint32) uint32
	// Maj (x & y) ^ (x & z) ^ (y & z)
	Maj(x, y, z uint32) uint32

	// BigSigma0 Σ0, applied to working variable a
	BigSigma0(x uint32) uint32
	// BigSigma1 Σ1, applied to working variable e
	BigSigma1(x uint32) uint32

	// SmallSigma0 σ0, message schedule
	SmallSigma0(x uint32) uint32
	// SmallSigma1 σ1, message schedule
	SmallSigma1(x uint32) uint32
}

// Default The provider used when none is supplied.
var Default Operations = Generic{}

// Or returns ops, or Default when ops is nil.
func Or(ops Operations) Operations {
	if ops == nil {
		return Default
	}
	return ops
}
