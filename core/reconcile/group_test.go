package reconcile

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGroup_SharesConcurrentCalls(t *testing.T) {
	var g Group[uint]
	var calls int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	results := make([]uint, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := g.Do("category/news", func() (uint, error) {
				atomic.AddInt32(&calls, 1)
				<-release
				return 7, nil
			})
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&calls), int32(5))
	for _, v := range results {
		assert.Equal(t, uint(7), v)
	}
}

func TestGroup_Error(t *testing.T) {
	var g Group[string]
	_, err := g.Do("k", func() (string, error) { return "", errors.New("create failed") })
	assert.EqualError(t, err, "create failed")

	v, err := g.Do("k", func() (string, error) { return "second", nil })
	assert.NoError(t, err)
	assert.Equal(t, "second", v)
}
