//go:build purego

package block

import "git.gammaspectra.live/P2Pool/sha256/bitops"

func compress(ops bitops.Operations, state *[8]uint32, w *[Words]uint32) {
	compressLoop(bitops.Or(ops), state, w)
}
