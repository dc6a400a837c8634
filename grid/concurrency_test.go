// SPDX-License-Identifier: MIT
package grid_test

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGrid_ConcurrentUse mixes writers, path searches and snapshots on one
// grid; the race detector and Verify catch any unguarded access.
func TestGrid_ConcurrentUse(t *testing.T) {
	g := open(t, 10, 10)
	ids := g.Blueprint().Space().IDs()
	require.NoError(t, g.NewGroup("watch"))

	const workers, ops = 8, 200
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(int64(w)))
			for k := 0; k < ops; k++ {
				id := ids[rng.Intn(len(ids))]
				var err error
				switch k % 6 {
				case 0:
					err = g.Occupy(id, fmt.Sprintf("u%d-%d", w, k))
				case 1:
					err = g.Vacate(id)
				case 2:
					err = g.Obstruct(id, w)
				case 3:
					err = g.Destruct(id)
				case 4:
					err = g.Join("watch", id)
				case 5:
					_, err = g.Path(ids[0], id)
					_ = g.Snapshot()
				}
				if err != nil {
					errs <- err
					return
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	require.NoError(t, g.Verify())
}
