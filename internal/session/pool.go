// Package session holds per-run state: the pool of artworks seen since
// launch, and the reset that wipes local data.
package session

import (
	"sync"

	"github.com/mmcdole/dailyart/internal/domain"
)

// Pool accumulates artworks seen this session, deduplicated by id,
// in first-seen order. It is never persisted.
type Pool struct {
	mu    sync.RWMutex
	items []domain.Artwork
	index map[string]int
}

// NewPool creates an empty pool
func NewPool() *Pool {
	return &Pool{index: make(map[string]int)}
}

// Add inserts artworks not yet seen and returns how many were new
func (p *Pool) Add(artworks ...domain.Artwork) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	added := 0
	for _, a := range artworks {
		if _, ok := p.index[a.ID]; ok {
			continue
		}
		p.index[a.ID] = len(p.items)
		p.items = append(p.items, a)
		added++
	}
	return added
}

// Items returns a snapshot in first-seen order
func (p *Pool) Items() []domain.Artwork {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]domain.Artwork, len(p.items))
	copy(out, p.items)
	return out
}

func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.items)
}

func (p *Pool) Contains(id string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.index[id]
	return ok
}

// Reset empties the pool
func (p *Pool) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = nil
	p.index = make(map[string]int)
}
