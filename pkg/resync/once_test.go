package resync_test

import (
	"sync"
	"testing"

	"github.com/julien-sobczak/ulysses-export/pkg/resync"
	"github.com/stretchr/testify/assert"
)

func TestOnce(t *testing.T) {
	var once resync.Once
	calls := 0

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			once.Do(func() { calls++ })
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, calls)

	// Reset allows a new initialization
	once.Reset()
	once.Do(func() { calls++ })
	once.Do(func() { calls++ })
	assert.Equal(t, 2, calls)
}
