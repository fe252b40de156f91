// Package sha256 implements the SHA-256 and SHA-224 hash algorithms as defined in FIPS 180-4.
//
// Every computation owns its Context. Contexts share no state, so independent
// messages can be hashed from different goroutines, but a single Context is not
// safe for concurrent use.
package sha256

import (
	"encoding/binary"
	"errors"

	"git.gammaspectra.live/P2Pool/sha256/bitops"
	"git.gammaspectra.live/P2Pool/sha256/block"
	"git.gammaspectra.live/P2Pool/sha256/types"
)

// Size The size of a SHA-256 checksum in bytes.
const Size = types.HashSize

// Size224 The size of a SHA-224 checksum in bytes.
const Size224 = types.Hash224Size

// BlockSize The block size of SHA-256 and SHA-224 in bytes.
const BlockSize = block.Size

// Variant Digest selector, in bits.
type Variant int

const (
	SHA224 Variant = 224
	SHA256 Variant = 256
)

var (
	// Initial values. These words were obtained by taking the first 32 bits of the
	// fractional parts of the square roots of the first eight prime numbers.
	iv256 = [8]uint32{
		0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
		0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
	}

	// FIPS 180-4 §5.3.2, second 32 bits of the fractional parts of the square
	// roots of the 9th through 16th primes.
	iv224 = [8]uint32{
		0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
		0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
	}
)

var (
	ErrNotInitialized   = errors.New("sha256: context not initialized")
	ErrAlreadyFinalized = errors.New("sha256: context already finalized")
	ErrShortBuffer      = errors.New("sha256: output buffer too small")
	ErrInvalidState     = errors.New("sha256: invalid hash state")
)

type status uint8

const (
	statusUninitialized = status(iota)
	statusActive
	statusFinalized
)

// Context Running state of a single message. The zero value must be initialized with Init before use.
type Context struct {
	state  [8]uint32
	buffer [BlockSize]byte
	// number of processed bytes, buffer holds length % BlockSize of them
	length uint64
	size   int
	status status

	ops bitops.Operations
}

// NewContext returns an initialized Context for the variant.
func NewContext(v Variant) *Context {
	c := new(Context)
	c.Init(v)
	return c
}

// NewContextWithOperations returns an initialized Context that compresses through ops.
func NewContextWithOperations(v Variant, ops bitops.Operations) *Context {
	c := &Context{ops: ops}
	c.Init(v)
	return c
}

// Init resets the Context to begin a new message. Any Variant other than SHA224
// selects SHA-256. The bit operation provider is kept.
func (c *Context) Init(v Variant) {
	if v == SHA224 {
		c.state = iv224
		c.size = Size224
	} else {
		c.state = iv256
		c.size = Size
	}
	c.length = 0
	c.status = statusActive
}

// SetOperations replaces the bit operation provider. nil selects bitops.Default.
// Providers must be numerically identical, so this can happen at any point of a message.
func (c *Context) SetOperations(ops bitops.Operations) {
	c.ops = ops
}

// Variant of the last Init. SHA256 on a zero Context.
func (c *Context) Variant() Variant {
	if c.size == Size224 {
		return SHA224
	}
	return SHA256
}

// Size digest length in bytes that Finalize emits
func (c *Context) Size() int {
	if c.size == 0 {
		return Size
	}
	return c.size
}

// Len number of message bytes consumed so far
func (c *Context) Len() uint64 {
	return c.length
}

func (c *Context) check() error {
	switch c.status {
	case statusActive:
		return nil
	case statusFinalized:
		return ErrAlreadyFinalized
	default:
		return ErrNotInitialized
	}
}

// Update appends data to the message. It can be called any number of times,
// with the same result as a single call on the concatenated data.
func (c *Context) Update(data []byte) error {
	if err := c.check(); err != nil {
		return err
	}

	index := int(c.length & (BlockSize - 1))
	c.length += uint64(len(data))

	// fill partial block
	if index > 0 {
		n := copy(c.buffer[index:], data)
		if index+n < BlockSize {
			return nil
		}
		block.Blocks(c.ops, &c.state, c.buffer[:])
		data = data[n:]
	}

	// aligned blocks straight from input
	if len(data) >= BlockSize {
		n := len(data) &^ (BlockSize - 1)
		block.Blocks(c.ops, &c.state, data[:n])
		data = data[n:]
	}

	if len(data) > 0 {
		copy(c.buffer[:], data)
	}
	return nil
}

// Write implements io.Writer over Update.
func (c *Context) Write(p []byte) (int, error) {
	if err := c.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Finalize pads the message and returns its digest, Size() bytes long.
// The Context must be initialized again before further use.
func (c *Context) Finalize() ([]byte, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	out := make([]byte, c.size)
	if _, err := c.FinalizeTo(out); err != nil {
		return nil, err
	}
	return out, nil
}

// FinalizeTo is Finalize writing into out. The Context is left untouched when out is too small.
func (c *Context) FinalizeTo(out []byte) (n int, err error) {
	if err = c.check(); err != nil {
		return 0, err
	}
	if len(out) < c.size {
		return 0, ErrShortBuffer
	}

	var sum [Size]byte
	c.finalize(&sum)
	return copy(out, sum[:c.size]), nil
}

// finalize writes the full 32-byte state into sum. Callers truncate to size.
func (c *Context) finalize(sum *[Size]byte) {
	index := int(c.length & (BlockSize - 1))

	c.buffer[index] = 0x80
	index++

	// no room left for the 64-bit message length
	if index > BlockSize-8 {
		clear(c.buffer[index:])
		block.Blocks(c.ops, &c.state, c.buffer[:])
		index = 0
	}

	clear(c.buffer[index : BlockSize-8])
	binary.BigEndian.PutUint64(c.buffer[BlockSize-8:], c.length<<3)
	block.Blocks(c.ops, &c.state, c.buffer[:])

	block.StoreWords(sum[:], c.state[:])
	c.status = statusFinalized
}
