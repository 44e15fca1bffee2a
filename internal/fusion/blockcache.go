package fusion

import (
	"slices"
	"sync"

	"instfusion/internal/decode"
)

// cachedBlock is the decode of one block address.
type cachedBlock struct {
	Addr  uint64
	Words []uint32
	Insts []decode.Inst
}

// blockCache memoizes decodes per address. A lookup hits only while the
// stored words still equal the observed ones.
type blockCache struct {
	sync.RWMutex
	cache map[uint64]*cachedBlock
}

func newBlockCache() *blockCache {
	return &blockCache{cache: make(map[uint64]*cachedBlock)}
}

func (c *blockCache) Get(addr uint64, words []uint32) *cachedBlock {
	c.RLock()
	defer c.RUnlock()
	if ent, ok := c.cache[addr]; ok && slices.Equal(ent.Words, words) {
		return ent
	}
	return nil
}

// Put stores a decode and reports whether it replaced a different one.
func (c *blockCache) Put(addr uint64, words []uint32, insts []decode.Inst) (replaced bool) {
	c.Lock()
	defer c.Unlock()
	_, replaced = c.cache[addr]
	c.cache[addr] = &cachedBlock{
		Addr:  addr,
		Words: slices.Clone(words),
		Insts: insts,
	}
	return replaced
}

func (c *blockCache) Len() int {
	c.RLock()
	defer c.RUnlock()
	return len(c.cache)
}
