package mem

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func TestTTLStore_Expiry(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s := NewTTLStore[int]()
	s.now = clock.now

	s.Set("a", 1, time.Minute)
	v, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	clock.t = clock.t.Add(2 * time.Minute)
	_, ok = s.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len(), "expired entry removed on read")
}

func TestTTLStore_SweepOnGrowth(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s := NewTTLStore[string]()
	s.now = clock.now
	s.sweepAt = 3

	s.Set("a", "1", time.Second)
	s.Set("b", "2", time.Second)
	s.Set("c", "3", time.Hour)
	clock.t = clock.t.Add(time.Minute)

	s.Set("d", "4", time.Hour)
	assert.Equal(t, 2, s.Len())
}

func TestTTLStore_DeleteAndConcurrentUse(t *testing.T) {
	s := NewTTLStore[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%5)
			s.Set(key, i, time.Minute)
			s.Get(key)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 5, s.Len())

	s.Delete("k0")
	_, ok := s.Get("k0")
	assert.False(t, ok)
}
