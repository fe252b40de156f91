package sha256

import (
	"fmt"
	"hash"

	"git.gammaspectra.live/P2Pool/sha256/bitops"
)

// Hasher Adapts Context to hash.Hash. Sum does not spend the running state, so
// writing can continue after it, and Write never fails.
//
// The zero value is ready to use and computes SHA-256.
type Hasher struct {
	ctx Context
}

// New returns a hash.Hash computing SHA-256.
func New() hash.Hash {
	return NewHasher(SHA256, nil)
}

// New224 returns a hash.Hash computing SHA-224.
func New224() hash.Hash {
	return NewHasher(SHA224, nil)
}

// NewHasher returns a Hasher for the variant compressing through ops, or bitops.Default when nil.
func NewHasher(v Variant, ops bitops.Operations) *Hasher {
	h := &Hasher{}
	h.ctx.ops = ops
	h.ctx.Init(v)
	return h
}

func (h *Hasher) init() {
	if h.ctx.status == statusUninitialized {
		h.ctx.Init(SHA256)
	}
}

func (h *Hasher) Write(p []byte) (int, error) {
	h.init()
	_ = h.ctx.Update(p)
	return len(p), nil
}

func (h *Hasher) Sum(in []byte) []byte {
	h.init()
	c := h.ctx
	var sum [Size]byte
	c.finalize(&sum)
	return append(in, sum[:c.size]...)
}

func (h *Hasher) Reset() {
	h.ctx.Init(h.ctx.Variant())
}

func (h *Hasher) Size() int {
	h.init()
	return h.ctx.size
}

func (h *Hasher) BlockSize() int {
	return BlockSize
}

func (h *Hasher) MarshalBinary() ([]byte, error) {
	h.init()
	return h.ctx.MarshalBinary()
}

// UnmarshalBinary only accepts a checkpoint of the same variant, so Size never changes.
func (h *Hasher) UnmarshalBinary(b []byte) error {
	h.init()
	magic := magic256
	if h.ctx.Variant() == SHA224 {
		magic = magic224
	}
	if len(b) < len(magic) || string(b[:len(magic)]) != magic {
		return fmt.Errorf("identifier: %w", ErrInvalidState)
	}
	return h.ctx.UnmarshalBinary(b)
}

var _ hash.Hash = (*Hasher)(nil)
