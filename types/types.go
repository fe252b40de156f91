package types

import (
	"errors"

	fasthex "github.com/tmthrgd/go-hex"
)

// HashSize SHA-256 digest size in bytes
const HashSize = 32

// Hash224Size SHA-224 digest size in bytes
const Hash224Size = 28

//nolint:recvcheck
type Hash [HashSize]byte

//nolint:recvcheck
type Hash224 [Hash224Size]byte

var ZeroHash Hash

func MustHashFromString(s string) Hash {
	if h, err := HashFromString(s); err != nil {
		panic(err)
	} else {
		return h
	}
}

func HashFromString(s string) (h Hash, err error) {
	err = decodeDigest(h[:], s)
	return h, err
}

func MustHash224FromString(s string) Hash224 {
	if h, err := Hash224FromString(s); err != nil {
		panic(err)
	} else {
		return h
	}
}

func Hash224FromString(s string) (h Hash224, err error) {
	err = decodeDigest(h[:], s)
	return h, err
}

// decodeDigest parses a hex digest, which must decode to exactly len(dst) bytes.
func decodeDigest(dst []byte, s string) error {
	if buf, err := fasthex.DecodeString(s); err != nil {
		return err
	} else {
		if len(buf) != len(dst) {
			return errors.New("wrong size")
		}
		copy(dst, buf)
		return nil
	}
}

// HashFromBytes returns ZeroHash when buf is not exactly HashSize bytes.
func HashFromBytes(buf []byte) (h Hash) {
	if len(buf) != HashSize {
		return
	}
	copy(h[:], buf)
	return
}

func (h Hash) Slice() []byte {
	return h[:]
}

func (h Hash) String() string {
	return fasthex.EncodeToString(h[:])
}

func (h Hash) MarshalJSON() ([]byte, error) {
	return marshalDigest(h[:]), nil
}

func (h *Hash) UnmarshalJSON(b []byte) error {
	return unmarshalDigest(h[:], b)
}

func (h Hash224) Slice() []byte {
	return h[:]
}

func (h Hash224) String() string {
	return fasthex.EncodeToString(h[:])
}

func (h Hash224) MarshalJSON() ([]byte, error) {
	return marshalDigest(h[:]), nil
}

func (h *Hash224) UnmarshalJSON(b []byte) error {
	return unmarshalDigest(h[:], b)
}

func marshalDigest(h []byte) []byte {
	buf := make([]byte, len(h)*2+2)
	buf[0] = '"'
	buf[len(buf)-1] = '"'
	fasthex.Encode(buf[1:], h)
	return buf
}

func unmarshalDigest(dst, b []byte) error {
	// empty string and null leave dst untouched
	if len(b) == 0 || len(b) == 2 || string(b) == "null" {
		return nil
	}

	if len(b) != len(dst)*2+2 || b[0] != '"' || b[len(b)-1] != '"' {
		return errors.New("wrong hash size")
	}

	if _, err := fasthex.Decode(dst, b[1:len(b)-1]); err != nil {
		return err
	}

	return nil
}

//nolint:recvcheck
type Bytes []byte

func (b Bytes) MarshalJSON() ([]byte, error) {
	return marshalDigest(b), nil
}

func (b Bytes) String() string {
	return fasthex.EncodeToString(b)
}

func (b *Bytes) UnmarshalJSON(buf []byte) error {
	if len(buf) < 2 || (len(buf)%2) != 0 || buf[0] != '"' || buf[len(buf)-1] != '"' {
		return errors.New("invalid bytes")
	}

	*b = make(Bytes, (len(buf)-2)/2)

	if _, err := fasthex.Decode(*b, buf[1:len(buf)-1]); err != nil {
		return err
	}

	return nil
}
