package coordinator

import (
	"context"
	"sync"
	"time"
)

// Factory создает координатор для пользователя
type Factory func(userID int64) *Coordinator

type registryEntry struct {
	c    *Coordinator
	seen time.Time
}

// Registry координаторы по пользователям, создаются при первом обращении.
// Простаивающие координаторы удаляет EvictIdle.
type Registry struct {
	mu      sync.Mutex
	m       map[int64]*registryEntry
	factory Factory
	now     func() time.Time
}

func NewRegistry(factory Factory) *Registry {
	return &Registry{
		m:       make(map[int64]*registryEntry),
		factory: factory,
		now:     time.Now,
	}
}

// Get координатор пользователя
func (r *Registry) Get(userID int64) *Coordinator {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.m[userID]
	if e == nil {
		e = &registryEntry{c: r.factory(userID)}
		r.m[userID] = e
	}
	e.seen = r.now()
	return e.c
}

// Remove забывает координатор (выход пользователя)
func (r *Registry) Remove(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.m, userID)
}

// Len количество пользователей с координатором
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.m)
}

// EvictIdle удаляет координаторы, к которым не обращались дольше ttl.
// Координаторы с подписчиками или запросом в полете остаются.
func (r *Registry) EvictIdle(ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	deadline := r.now().Add(-ttl)
	evicted := 0
	for userID, e := range r.m {
		if e.seen.After(deadline) || e.c.Busy() {
			continue
		}
		delete(r.m, userID)
		evicted++
	}
	return evicted
}

// RunEviction вызывает EvictIdle каждые interval до отмены ctx
func (r *Registry) RunEviction(ctx context.Context, interval, ttl time.Duration, log Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.EvictIdle(ttl); n > 0 {
				log.Info("Registry: evicted %d idle coordinators, remaining=%d", n, r.Len())
			}
		}
	}
}
