// Package simulation holds the pieces shared by the auction and
// negotiation engines: the bounded worker pool, per-item monotonic
// timestamps, outcome states and seeded randomness.
package simulation

import (
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// MaxWorkers caps both the per-item fan-out and the per-buyer round pool,
// protecting the shared ledger from unbounded concurrency.
const MaxWorkers = 8

// PoolLimit returns the worker-pool size for n tasks: min(n, MaxWorkers).
func PoolLimit(n int) int {
	if n < MaxWorkers {
		return n
	}
	return MaxWorkers
}

// RunPool executes fn(i) for i in [0, n) on a pool bounded to
// min(n, MaxWorkers) concurrent workers and blocks until all complete.
// Workers report failures through their own results, never through the
// pool, so one worker's failure cannot cancel its siblings.
func RunPool(n int, fn func(i int)) {
	if n == 0 {
		return
	}
	g := new(errgroup.Group)
	g.SetLimit(PoolLimit(n))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	// Workers never return errors, so Wait only joins.
	_ = g.Wait()
}

// NewRand returns a rand.Rand derived from seed for worker index i.
// Workers get independent generators because rand.Rand is not safe for
// concurrent use. A zero seed is replaced by the caller before derivation.
func NewRand(seed int64, i int) *rand.Rand {
	return rand.New(rand.NewSource(seed + int64(i)*0x9e3779b9))
}

// Uniform returns a float64 drawn uniformly from [lo, hi).
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
