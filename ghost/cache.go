package ghost

// Key identifies the document state a suggestion was computed for.
type Key struct {
	DocID   string
	Version uint64
	Cursor  int
}

// Cache remembers the last computed suggestion, including a negative result.
// It holds a single entry: suggestions are requested for one cursor at a
// time and any edit bumps the version.
type Cache struct {
	valid   bool
	key     Key
	present bool
	s       Suggestion
}

func (c *Cache) Get(key Key) (Suggestion, bool, bool) {
	if !c.valid || c.key != key {
		return Suggestion{}, false, false
	}
	return c.s, c.present, true
}

func (c *Cache) Put(key Key, s Suggestion, present bool) {
	c.valid = true
	c.key = key
	c.present = present
	c.s = s
}

// Reset drops the cached entry.
func (c *Cache) Reset() { *c = Cache{} }
