package sha256

import (
	"git.gammaspectra.live/P2Pool/sha256/bitops"
	"git.gammaspectra.live/P2Pool/sha256/types"
	"git.gammaspectra.live/P2Pool/sha256/utils"
	"golang.org/x/sys/cpu"
)

// batchWorker one Context per goroutine, padded so neighbours do not share cache lines
type batchWorker struct {
	_   cpu.CacheLinePad
	ctx Context
	_   cpu.CacheLinePad
}

// SumBatch returns the SHA-256 checksum of every message, in order, hashing
// independent messages concurrently over routines goroutines (<= 0 for one per CPU).
// Each message is still processed sequentially by a single Context.
func SumBatch(messages [][]byte, routines int) []types.Hash {
	out := make([]types.Hash, len(messages))
	sumBatch(SHA256, nil, messages, routines, func(i uint64, sum *[Size]byte) {
		out[i] = *sum
	})
	return out
}

// SumBatch224 is SumBatch for SHA-224.
func SumBatch224(messages [][]byte, routines int) []types.Hash224 {
	out := make([]types.Hash224, len(messages))
	sumBatch(SHA224, nil, messages, routines, func(i uint64, sum *[Size]byte) {
		copy(out[i][:], sum[:])
	})
	return out
}

// SumBatchWithOperations is SumBatch compressing through ops. ops is shared by all
// goroutines and must be safe for concurrent use.
func SumBatchWithOperations(messages [][]byte, routines int, ops bitops.Operations) []types.Hash {
	out := make([]types.Hash, len(messages))
	sumBatch(SHA256, ops, messages, routines, func(i uint64, sum *[Size]byte) {
		out[i] = *sum
	})
	return out
}

func sumBatch(v Variant, ops bitops.Operations, messages [][]byte, routines int, emit func(i uint64, sum *[Size]byte)) {
	var workers []batchWorker

	// neither callback returns errors
	_ = utils.SplitWork(routines, uint64(len(messages)), func(workIndex uint64, routineIndex int) error {
		w := &workers[routineIndex]
		w.ctx.Init(v)
		_ = w.ctx.Update(messages[workIndex])

		var sum [Size]byte
		w.ctx.finalize(&sum)
		emit(workIndex, &sum)
		return nil
	}, func(routines, routineIndex int) error {
		if routineIndex == 0 {
			utils.Debugf("SHA256", "hashing %d messages over %d routines", len(messages), routines)
			workers = make([]batchWorker, routines)
		}
		workers[routineIndex].ctx.ops = ops
		return nil
	})
}
