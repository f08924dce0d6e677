package lhset

import "github.com/histdb/linhash/arena"

// split divides the chain at the split pointer into itself and a new chain
// at index 2^d + next. Which chain splits does not depend on which chain
// overflowed.
func (t *T[K]) split() {
	eles := t.eles

	t.growDirectory()

	lo, hi := t.newBucket(), t.newBucket()
	old := t.dir[t.next]
	t.dir = append(t.dir, hi)
	t.dir[t.next] = lo
	t.next++

	t.rehash(old)
	t.eles = eles

	if t.next == 1<<t.d {
		t.d++
		t.next = 0
	}
	t.epoch++
}

// rehash reinserts every key of the detached chain at head and releases its
// buckets. The reinserts never split.
func (t *T[K]) rehash(head arena.P[bucket[K]]) {
	for p := head; !p.Nil(); {
		b := t.buckets.Get(p)
		for _, k := range b.keys[:b.n] {
			t.insert(k, false)
		}
		p = b.next
	}
	t.releaseChain(head)
}
