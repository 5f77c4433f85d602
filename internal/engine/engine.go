package engine

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"minichess/internal/minichess"
)

const (
	DefaultDepth = 4

	evalCacheCap = 500_000
)

var ErrInvalidDepth = errors.New("search depth must be at least 1")

type Config struct {
	Depth     int // plies searched from the root
	Workers   int // root moves searched concurrently; <= 1 runs sequentially
	CacheSize int // static evaluations kept in memory; 0 disables the cache
}

func DefaultConfig() Config {
	return Config{
		Depth:     DefaultDepth,
		Workers:   runtime.NumCPU(),
		CacheSize: evalCacheCap,
	}
}

// Side ratings of one position, keyed by board hash.
type evalCache struct {
	mu  sync.RWMutex
	cap int
	m   map[uint64][2]int
}

func newEvalCache(capacity int) *evalCache {
	if capacity <= 0 {
		return nil
	}
	return &evalCache{
		cap: capacity,
		m:   make(map[uint64][2]int, min(capacity, 1<<16)),
	}
}

func (c *evalCache) get(key uint64) ([2]int, bool) {
	if c == nil {
		return [2]int{}, false
	}
	c.mu.RLock()
	v, ok := c.m[key]
	c.mu.RUnlock()
	return v, ok
}

func (c *evalCache) store(key uint64, v [2]int) {
	if c == nil {
		return
	}
	c.mu.Lock()
	if len(c.m) >= c.cap {
		c.m = make(map[uint64][2]int, min(c.cap, 1<<16))
	}
	c.m[key] = v
	c.mu.Unlock()
}

type Engine struct {
	cfg   Config
	nodes int64
	cache *evalCache
}

func NewEngine(cfg Config) (*Engine, error) {
	if cfg.Depth < 1 {
		return nil, fmt.Errorf("depth %d: %w", cfg.Depth, ErrInvalidDepth)
	}
	return &Engine{
		cfg:   cfg,
		cache: newEvalCache(cfg.CacheSize),
	}, nil
}

func (e *Engine) Config() Config { return e.cfg }

// Nodes reports how many positions the last search visited.
func (e *Engine) Nodes() int64 { return atomic.LoadInt64(&e.nodes) }

// sideRates returns Board.Rate for light and dark, going through the cache.
func (e *Engine) sideRates(b *minichess.Board) (light, dark int) {
	key := b.Hash()
	if v, ok := e.cache.get(key); ok {
		return v[0], v[1]
	}
	light, dark = b.Rate(minichess.Light), b.Rate(minichess.Dark)
	e.cache.store(key, [2]int{light, dark})
	return light, dark
}
