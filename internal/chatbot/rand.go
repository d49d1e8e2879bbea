package chatbot

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the randomness source used for template selection and the
// probabilistic features. Implementations must be safe for concurrent use.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// lockedRand guards a *rand.Rand with a mutex so one engine instance can
// serve concurrent requests.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededRand returns a concurrency-safe Rand with a fixed seed,
// so tests can replay the exact same draw sequence.
func NewSeededRand(seed int64) Rand {
	return &lockedRand{rng: rand.New(rand.NewSource(seed))}
}

func newDefaultRand() Rand {
	return &lockedRand{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}
