package lhset

import "github.com/histdb/linhash/arena"

// bucket is a fixed capacity run of keys. keys[n:] is always zeroed.
type bucket[K Key] struct {
	keys []K
	n    int
	next arena.P[bucket[K]] // overflow bucket, owned by this one
}

func (b *bucket[K]) full() bool  { return b.n == len(b.keys) }
func (b *bucket[K]) empty() bool { return b.n == 0 }

func (b *bucket[K]) find(k K) int {
	for i, bk := range b.keys[:b.n] {
		if bk == k {
			return i
		}
	}
	return -1
}

func (b *bucket[K]) push(k K) {
	b.keys[b.n] = k
	b.n++
}

// remove closes the gap at i by shifting the later keys left.
func (b *bucket[K]) remove(i int) {
	copy(b.keys[i:b.n], b.keys[i+1:b.n])
	b.n--
	b.keys[b.n] = *new(K)
}

// newBucket allocates an empty bucket sized for the set. It is not linked
// anywhere yet.
func (t *T[K]) newBucket() arena.P[bucket[K]] {
	size := t.cfg.bucketSize()
	return t.buckets.New(func(b *bucket[K]) {
		if cap(b.keys) >= size {
			b.keys = b.keys[:size]
		} else {
			b.keys = make([]K, size)
		}
		b.n = 0
		b.next = arena.P[bucket[K]]{}
	})
}

// releaseChain returns every bucket of the chain starting at p to the arena.
func (t *T[K]) releaseChain(p arena.P[bucket[K]]) {
	for !p.Nil() {
		b := t.buckets.Get(p)
		next := b.next
		clear(b.keys[:b.n])
		b.n, b.next = 0, arena.P[bucket[K]]{}
		t.buckets.Free(p)
		p = next
	}
}
