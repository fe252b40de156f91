// Package block implements the SHA-256 compression function of FIPS 180-4 §6.2.2.
package block

import "git.gammaspectra.live/P2Pool/sha256/bitops"

// Compress Processes one block. w holds the block as 16 words and is consumed
// as the rolling message schedule, so its contents are overwritten.
//
// A nil ops selects bitops.Default.
func Compress(ops bitops.Operations, state *[8]uint32, w *[Words]uint32) {
	compress(ops, state, w)
}

// Blocks Compresses every complete block of p in order. Trailing bytes are ignored.
func Blocks(ops bitops.Operations, state *[8]uint32, p []byte) {
	var w [Words]uint32
	for len(p) >= Size {
		LoadWords(&w, p)
		compress(ops, state, &w)
		p = p[Size:]
	}
}

// compressLoop Round loop over an 8-slot register file. Round t plays role r
// (a = 0 ... h = 7) with slot (r - t) & 7, so after a round the slot written as
// h becomes the next a without moving any values. After 64 rounds the roles are
// back in slot order.
func compressLoop(ops bitops.Operations, state *[8]uint32, w *[Words]uint32) {
	v := *state

	for t := range Rounds {
		if t >= Words {
			w[t&15] += ops.SmallSigma1(w[(t-2)&15]) + w[(t-7)&15] + ops.SmallSigma0(w[(t-15)&15])
		}

		a, b, c := v[(0-t)&7], v[(1-t)&7], v[(2-t)&7]
		e, f, g, h := v[(4-t)&7], v[(5-t)&7], v[(6-t)&7], v[(7-t)&7]

		t1 := h + ops.BigSigma1(e) + ops.Ch(e, f, g) + K[t] + w[t&15]
		v[(3-t)&7] += t1
		v[(7-t)&7] = t1 + ops.BigSigma0(a) + ops.Maj(a, b, c)
	}

	for i := range state {
		state[i] += v[i]
	}
}
