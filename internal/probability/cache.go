package probability

import "sync"

// Key identifies a distribution by number of rolls and sides per die
type Key struct {
	Rolls int
	Dice  int
}

// Cache memoizes distributions by Key. Entries are never invalidated.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]Distribution
}

// NewCache creates an empty distribution cache
func NewCache() *Cache {
	return &Cache{
		entries: make(map[Key]Distribution),
	}
}

// Get returns the cached distribution for (rolls, dice), computing and
// storing it on first use.
func (c *Cache) Get(rolls, dice int) (Distribution, error) {
	key := Key{Rolls: rolls, Dice: dice}

	c.mu.RLock()
	dist, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return dist, nil
	}

	dist, err := Calculate(rolls, dice)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another caller may have stored it first
	if existing, ok := c.entries[key]; ok {
		return existing, nil
	}
	c.entries[key] = dist
	return dist, nil
}

// Has reports whether (rolls, dice) is already cached
func (c *Cache) Has(rolls, dice int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[Key{Rolls: rolls, Dice: dice}]
	return ok
}

// Len returns the number of cached distributions
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Snapshot returns a shallow copy of every cached entry
func (c *Cache) Snapshot() map[Key]Distribution {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[Key]Distribution, len(c.entries))
	for k, v := range c.entries {
		out[k] = v
	}
	return out
}

// Load adds previously computed distributions. Keys already present are
// kept as they are.
func (c *Cache) Load(entries map[Key]Distribution) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range entries {
		if _, ok := c.entries[k]; ok {
			continue
		}
		c.entries[k] = v
	}
}
