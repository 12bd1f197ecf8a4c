package ocol2d

import "sync"

// task splits data in workersCount contiguous chunks and calls fn on every element, one goroutine per chunk.
// fn receives the element's index in data.
func task[T any](workersCount int, data []T, fn func(i int, data T)) {
	var wg sync.WaitGroup
	dataSize := len(data)
	if dataSize == 0 {
		return
	}
	workersCount = min(max(1, workersCount), dataSize)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i, data[i])
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, dataSize))
	}
	wg.Wait()
}
