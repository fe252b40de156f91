package sha256

import (
	"git.gammaspectra.live/P2Pool/sha256/types"
)

// Digest returns the SHA-256 checksum of message.
func Digest(message []byte) types.Hash {
	return Sum256(message)
}

// Sum256 returns the SHA-256 checksum of data.
func Sum256(data []byte) (h types.Hash) {
	var c Context
	c.Init(SHA256)
	_ = c.Update(data)
	c.finalize((*[Size]byte)(&h))
	return h
}

// Sum224 returns the SHA-224 checksum of data.
func Sum224(data []byte) (h types.Hash224) {
	var c Context
	c.Init(SHA224)
	_ = c.Update(data)
	var sum [Size]byte
	c.finalize(&sum)
	copy(h[:], sum[:])
	return h
}
