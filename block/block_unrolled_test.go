//go:build !purego

package block

import (
	"math/rand/v2"
	"testing"

	"git.gammaspectra.live/P2Pool/sha256/bitops"
	"github.com/stretchr/testify/require"
)

func TestUnrolledMatchesLoop(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))

	for range 1000 {
		var state [8]uint32
		var w [Words]uint32
		for i := range state {
			state[i] = r.Uint32()
		}
		for i := range w {
			w[i] = r.Uint32()
		}

		a, b := state, state
		wa, wb := w, w
		compressLoop(bitops.Generic{}, &a, &wa)
		compressUnrolled(&b, &wb)
		require.Equal(t, a, b)
		require.Equal(t, wa, wb, "schedule must end in the same state")
	}
}
