package tendon

import (
	"fmt"
	"sync"
)

const DEFAULT_WORKERS = 1

func task[T any](workersCount int, data []T, fn func(data T)) {
	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(data[i])
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, dataSize))
	}
	wg.Wait()
}

// PlanLimbs plans several limbs across workersCount goroutines. Plan is pure,
// so the specs need no coordination; plans come back in spec order. The first
// failing limb (by input order) fails the whole batch.
func PlanLimbs(workersCount int, specs []LimbSpec) ([]*RigPlan, error) {
	workersCount = max(DEFAULT_WORKERS, workersCount)

	plans := make([]*RigPlan, len(specs))
	errs := make([]error, len(specs))

	indices := make([]int, len(specs))
	for i := range indices {
		indices[i] = i
	}

	task(workersCount, indices, func(i int) {
		plans[i], errs[i] = Plan(specs[i])
	})

	for i, err := range errs {
		if err != nil {
			root := "?"
			if len(specs[i].Joints) > 0 {
				root = specs[i].Joints[0].Name
			}
			return nil, fmt.Errorf("limb %d (root %q): %w", i, root, err)
		}
	}

	return plans, nil
}
