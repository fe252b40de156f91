package block

import "encoding/binary"

// LoadWords decodes the first Size bytes of p as big-endian words.
func LoadWords(w *[Words]uint32, p []byte) {
	_ = p[Size-1]
	for i := range w {
		w[i] = binary.BigEndian.Uint32(p[i*4:])
	}
}

// StoreWords encodes state as big-endian bytes into dst, which must hold 4*len(state) bytes.
func StoreWords(dst []byte, state []uint32) {
	_ = dst[len(state)*4-1]
	for i, v := range state {
		binary.BigEndian.PutUint32(dst[i*4:], v)
	}
}
