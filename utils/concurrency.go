package utils

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// SplitWork Runs do for every index in [0, workSize) across routines goroutines,
// each index exactly once. routines <= 0 uses one goroutine per CPU, and never more
// goroutines than work items are started.
//
// init, when not nil, is called sequentially for every routine index before any work
// starts, so per-routine state can be allocated without locking. The first error
// returned by init or do is returned; remaining work is abandoned.
func SplitWork(routines int, workSize uint64, do func(workIndex uint64, routineIndex int) error, init func(routines, routineIndex int) error) error {
	if workSize == 0 {
		return nil
	}

	if routines <= 0 {
		routines = runtime.NumCPU()
	}

	if workSize < uint64(routines) {
		routines = int(workSize)
	}

	if init != nil {
		for routineIndex := range routines {
			if err := init(routines, routineIndex); err != nil {
				return err
			}
		}
	}

	var counter atomic.Uint64
	var failed atomic.Bool

	var eg errgroup.Group

	for routineIndex := range routines {
		eg.Go(func() error {
			for !failed.Load() {
				workIndex := counter.Add(1)
				if workIndex > workSize {
					return nil
				}

				if err := do(workIndex-1, routineIndex); err != nil {
					failed.Store(true)
					return err
				}
			}
			return nil
		})
	}
	return eg.Wait()
}
