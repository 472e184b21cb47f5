package concurrency

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockManager_SerializesSameKey(t *testing.T) {
	lm := NewLockManager()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := lm.Lock("guild-1")
			defer unlock()

			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Equal(t, 0, lm.Len())
}

func TestLockManager_DifferentKeysDontBlock(t *testing.T) {
	lm := NewLockManager()

	unlockA := lm.Lock("guild-a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := lm.Lock("guild-b")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
}

func TestLockManager_ReleasesEntries(t *testing.T) {
	lm := NewLockManager()

	unlock := lm.Lock("guild-1")
	assert.Equal(t, 1, lm.Len())

	unlock()
	unlock()
	assert.Equal(t, 0, lm.Len())

	// the key can be taken again after release
	unlock = lm.Lock("guild-1")
	unlock()
	assert.Equal(t, 0, lm.Len())
}
