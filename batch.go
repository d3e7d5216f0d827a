package shake128

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sync/errgroup"
)

// SumAll computes Sum(msgs[i], outLen) for each message in parallel and returns the results in order. Each
// computation owns its own state; no synchronization happens beyond waiting for all of them to finish. It panics if
// outLen is negative.
func SumAll(msgs [][]byte, outLen int) [][]byte {
	if outLen < 0 {
		panic("shake128: negative output length")
	}

	out := make([][]byte, len(msgs))
	var g errgroup.Group
	g.SetLimit(workers())
	for i, msg := range msgs {
		g.Go(func() error {
			out[i] = Sum(msg, outLen)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// workers returns the number of concurrent hash computations SumAll runs.
func workers() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}
