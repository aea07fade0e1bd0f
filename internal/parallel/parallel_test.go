package parallel

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForRange(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 100000

	ForRange(n, func(s, e int) {
		atomic.AddInt64(&counter, int64(e-s))
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestForRange_Sequential(t *testing.T) {
	cfg := Sequential()

	var calls, counter int64
	ForRange(100, func(s, e int) {
		atomic.AddInt64(&calls, 1)
		atomic.AddInt64(&counter, int64(e-s))
	}, cfg)

	if calls != 1 || counter != 100 {
		t.Errorf("Expected one call over 100 elements, got %d calls over %d", calls, counter)
	}
}

func TestForRange_CoversEveryIndexOnce(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16}
	n := 1001
	hits := make([]int32, n)

	var mu sync.Mutex
	var chunks int
	ForRange(n, func(s, e int) {
		mu.Lock()
		chunks++
		mu.Unlock()
		for i := s; i < e; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	}, cfg)

	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d visited %d times", i, h)
		}
	}
	assert.Equal(t, 4, chunks)
}

func TestForRange_SmallInputRunsOnce(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 8, MinChunkSize: 64}

	var calls int
	ForRange(100, func(s, e int) {
		calls++
		assert.Equal(t, 0, s)
		assert.Equal(t, 100, e)
	}, cfg)
	assert.Equal(t, 1, calls)
}

func TestForRange_Empty(t *testing.T) {
	ForRange(0, func(_, _ int) {
		t.Fatal("must not be called for n == 0")
	}, DefaultConfig())
}
