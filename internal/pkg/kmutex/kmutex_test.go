//go:build unit

package kmutex_test

import (
	"sync"
	"testing"

	"car-auction/internal/pkg/kmutex"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestKMutex_SerializesPerKey(t *testing.T) {
	km := kmutex.New[uuid.UUID]()
	key := uuid.New()

	const goroutines = 50
	counter := 0

	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock(key)
			defer km.Unlock(key)
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, counter)
}

func TestKMutex_IndependentKeys(t *testing.T) {
	km := kmutex.New[uuid.UUID]()
	a, b := uuid.New(), uuid.New()

	km.Lock(a)

	done := make(chan struct{})
	go func() {
		km.Lock(b)
		km.Unlock(b)
		close(done)
	}()

	// Holding key a must not block key b.
	<-done
	km.Unlock(a)
}

func TestKMutex_ReleasesEntries(t *testing.T) {
	km := kmutex.New[string]()

	km.Lock("x")
	km.Unlock("x")

	assert.Panics(t, func() { km.Unlock("x") })
}
