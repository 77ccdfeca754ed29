// Package memory is the process-local session cache.
//
// Eviction at capacity is FIFO by insertion time, not LRU: reads never
// reorder entries. Replacing an existing key counts as a fresh insertion.
package memory

import (
	"container/list"
	"sync"
	"time"

	"github.com/JMURv/session-core/internal/config"
	md "github.com/JMURv/session-core/internal/models"
	metrics "github.com/JMURv/session-core/internal/observability/metrics/prometheus"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Config struct {
	Size              int
	TTL               time.Duration
	ActivityThreshold time.Duration
	SweepInterval     time.Duration
}

func ConfigFrom(conf config.SessionConfig) Config {
	return Config{
		Size:              conf.CacheSize,
		TTL:               conf.CacheTTL,
		ActivityThreshold: conf.ActivityThreshold,
		SweepInterval:     conf.SweepInterval,
	}
}

type entry struct {
	session    *md.Session
	insertedAt time.Time
	ttl        time.Duration
	elem       *list.Element
}

type Cache struct {
	mu      sync.Mutex
	conf    Config
	entries map[string]*entry
	order   *list.List
	byUser  map[uuid.UUID]map[string]struct{}
	marks   map[string]time.Time
	now     func() time.Time

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func New(conf Config) *Cache {
	if conf.Size <= 0 {
		conf.Size = 10000
	}
	if conf.TTL <= 0 {
		conf.TTL = config.MinCacheTime
	}

	c := &Cache{
		conf:    conf,
		entries: make(map[string]*entry),
		order:   list.New(),
		byUser:  make(map[uuid.UUID]map[string]struct{}),
		marks:   make(map[string]time.Time),
		now:     time.Now,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}

	if conf.SweepInterval > 0 {
		go c.janitor(conf.SweepInterval)
	} else {
		close(c.done)
	}
	return c
}

// WithClock replaces the time source. Intended for tests.
func (c *Cache) WithClock(now func() time.Time) *Cache {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
	return c
}

func (c *Cache) janitor(every time.Duration) {
	defer close(c.done)

	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			if n := c.Sweep(); n > 0 {
				zap.L().Debug("swept expired sessions", zap.Int("count", n))
			}
		case <-c.stop:
			return
		}
	}
}

// Get returns a copy of the cached session while its entry is within TTL.
// It does not check IsActive or ExpiresAt.
func (c *Cache) Get(id string) (*md.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[id]
	if !ok {
		metrics.CacheMisses.Inc()
		return nil, false
	}

	if c.now().Sub(e.insertedAt) > e.ttl {
		c.remove(id, e)
		metrics.CacheEvictions.WithLabelValues("ttl").Inc()
		metrics.CacheMisses.Inc()
		return nil, false
	}

	metrics.CacheHits.Inc()
	return e.session.Clone(), true
}

func (c *Cache) Set(id string, s *md.Session, ttl ...time.Duration) {
	if s == nil {
		return
	}

	d := c.conf.TTL
	if len(ttl) > 0 && ttl[0] > 0 {
		d = ttl[0]
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.entries[id]; ok {
		c.remove(id, old)
	} else if len(c.entries) >= c.conf.Size {
		if front := c.order.Front(); front != nil {
			oldest := front.Value.(string)
			c.remove(oldest, c.entries[oldest])
			delete(c.marks, oldest)
			metrics.CacheEvictions.WithLabelValues("capacity").Inc()
		}
	}

	e := &entry{
		session:    s.Clone(),
		insertedAt: c.now(),
		ttl:        d,
	}
	e.elem = c.order.PushBack(id)
	c.entries[id] = e

	ids, ok := c.byUser[s.UserID]
	if !ok {
		ids = make(map[string]struct{})
		c.byUser[s.UserID] = ids
	}
	ids[id] = struct{}{}
}

// Invalidate drops the entry and its activity throttle marker.
func (c *Cache) Invalidate(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[id]; ok {
		c.remove(id, e)
	}
	delete(c.marks, id)
}

func (c *Cache) InvalidateUserSessions(uid uuid.UUID) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := c.byUser[uid]
	n := 0
	for id := range ids {
		if e, ok := c.entries[id]; ok {
			c.remove(id, e)
			n++
		}
		delete(c.marks, id)
	}
	delete(c.byUser, uid)
	return n
}

// ShouldUpdateLastActive reports true at most once per threshold window per id.
func (c *Cache) ShouldUpdateLastActive(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if last, ok := c.marks[id]; ok && now.Sub(last) < c.conf.ActivityThreshold {
		return false
	}

	c.marks[id] = now
	return true
}

// Sweep evicts every entry past its TTL and returns how many were removed.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := 0
	for id, e := range c.entries {
		if now.Sub(e.insertedAt) > e.ttl {
			c.remove(id, e)
			n++
		}
	}
	for id, at := range c.marks {
		if _, ok := c.entries[id]; !ok && now.Sub(at) >= c.conf.ActivityThreshold {
			delete(c.marks, id)
		}
	}

	if n > 0 {
		metrics.CacheEvictions.WithLabelValues("ttl").Add(float64(n))
	}
	return n
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Close stops the janitor. Safe to call more than once.
func (c *Cache) Close() error {
	c.once.Do(func() { close(c.stop) })
	<-c.done
	return nil
}

// remove must be called with mu held.
func (c *Cache) remove(id string, e *entry) {
	c.order.Remove(e.elem)
	delete(c.entries, id)
	if ids, ok := c.byUser[e.session.UserID]; ok {
		delete(ids, id)
		if len(ids) == 0 {
			delete(c.byUser, e.session.UserID)
		}
	}
}
