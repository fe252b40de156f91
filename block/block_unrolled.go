//go:build !purego

package block

import (
	"math/bits"

	"git.gammaspectra.live/P2Pool/sha256/bitops"
)

func compress(ops bitops.Operations, state *[8]uint32, w *[Words]uint32) {
	if ops == nil {
		compressUnrolled(state, w)
		return
	}
	if _, ok := ops.(bitops.Generic); ok {
		compressUnrolled(state, w)
		return
	}
	compressLoop(ops, state, w)
}

// round Returns the new d and h. Callers rotate the argument order instead of the values.
func round(a, b, c, d, e, f, g, h, kw uint32) (uint32, uint32) {
	t1 := h + (bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)) + (g ^ (e & (f ^ g))) + kw
	t2 := (bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)) + ((a & b) ^ (c & (a ^ b)))
	return d + t1, t1 + t2
}

// compressUnrolled Same result as compressLoop with bitops.Generic, eight rounds per iteration.
func compressUnrolled(state *[8]uint32, w *[Words]uint32) {
	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]

	for t := 0; t < Rounds; t += 8 {
		if t >= Words {
			for i := t; i < t+8; i++ {
				v1 := w[(i-2)&15]
				v2 := w[(i-15)&15]
				w[i&15] += (bits.RotateLeft32(v1, -17) ^ bits.RotateLeft32(v1, -19) ^ (v1 >> 10)) +
					w[(i-7)&15] +
					(bits.RotateLeft32(v2, -7) ^ bits.RotateLeft32(v2, -18) ^ (v2 >> 3))
			}
		}

		k := K[t : t+8 : t+8]
		ws := w[t&15 : t&15+8 : t&15+8]

		d, h = round(a, b, c, d, e, f, g, h, k[0]+ws[0])
		c, g = round(h, a, b, c, d, e, f, g, k[1]+ws[1])
		b, f = round(g, h, a, b, c, d, e, f, k[2]+ws[2])
		a, e = round(f, g, h, a, b, c, d, e, k[3]+ws[3])
		h, d = round(e, f, g, h, a, b, c, d, k[4]+ws[4])
		g, c = round(d, e, f, g, h, a, b, c, k[5]+ws[5])
		f, b = round(c, d, e, f, g, h, a, b, k[6]+ws[6])
		e, a = round(b, c, d, e, f, g, h, a, k[7]+ws[7])
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}
