package sha256

import (
	"encoding/binary"
	"fmt"
)

const (
	magic224      = "sha\x02"
	magic256      = "sha\x03"
	marshaledSize = len(magic256) + 8*4 + BlockSize + 8
)

// MarshalBinary checkpoints an active Context, to be resumed later with UnmarshalBinary.
func (c *Context) MarshalBinary() ([]byte, error) {
	return c.AppendBinary(make([]byte, 0, marshaledSize))
}

func (c *Context) AppendBinary(b []byte) ([]byte, error) {
	if err := c.check(); err != nil {
		return nil, err
	}

	if c.size == Size224 {
		b = append(b, magic224...)
	} else {
		b = append(b, magic256...)
	}
	for _, v := range c.state {
		b = binary.BigEndian.AppendUint32(b, v)
	}
	n := int(c.length & (BlockSize - 1))
	b = append(b, c.buffer[:n]...)
	b = append(b, make([]byte, BlockSize-n)...)
	b = binary.BigEndian.AppendUint64(b, c.length)
	return b, nil
}

// UnmarshalBinary restores a checkpoint into c, including its variant. The provider of c is kept.
func (c *Context) UnmarshalBinary(b []byte) error {
	if len(b) < len(magic256) || (string(b[:len(magic256)]) != magic224 && string(b[:len(magic256)]) != magic256) {
		return fmt.Errorf("identifier: %w", ErrInvalidState)
	}
	if len(b) != marshaledSize {
		return fmt.Errorf("size %d: %w", len(b), ErrInvalidState)
	}

	if string(b[:len(magic224)]) == magic224 {
		c.Init(SHA224)
	} else {
		c.Init(SHA256)
	}
	b = b[len(magic256):]

	for i := range c.state {
		c.state[i] = binary.BigEndian.Uint32(b)
		b = b[4:]
	}
	b = b[copy(c.buffer[:], b):]
	c.length = binary.BigEndian.Uint64(b)
	return nil
}
