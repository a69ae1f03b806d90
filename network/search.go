package network

import (
	"context"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dhruvmanila/intcode/internal"
)

// Result is the best signal found by a search, and its phase settings.
type Result struct {
	Signal int
	Phases []int
}

// Search evaluates every ordering of the phase settings on its own network,
// starting from a zero signal, and returns the ordering with the highest
// output. Ties go to the lexicographically smallest ordering.
func Search(ctx context.Context, program []int, phases []int, feedback bool) (best Result, err error) {
	if len(phases) == 0 {
		err = ErrPhasesEmpty
		return
	}

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	var lock sync.Mutex
	found := false

	for perm := range internal.Permutations(phases) {
		if gctx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			net, err := newNetwork(program, feedback, perm...)
			if err != nil {
				return err
			}
			signal, err := net.Run(0)
			if err != nil {
				return err
			}

			lock.Lock()
			defer lock.Unlock()
			if !found || signal > best.Signal ||
				(signal == best.Signal && slices.Compare(perm, best.Phases) < 0) {
				best = Result{Signal: signal, Phases: perm}
				found = true
			}
			return nil
		})
	}

	err = group.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		best = Result{}
	}

	return
}
