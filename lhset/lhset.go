// Package lhset implements a set using linear hashing. The directory of
// bucket chains grows by one chain per split, in round-robin order governed
// by a generation d and a split pointer, instead of doubling all at once.
//
// A T is not safe for concurrent use.
package lhset

import (
	"iter"

	"github.com/histdb/linhash/arena"
)

// Key is the constraint on set elements. Digest is the hash used for
// addressing; equality is ==.
type Key interface {
	comparable
	Digest() uint64
}

// T is a linear hashing set. The zero value is an empty set with buckets of
// 13 keys.
type T[K Key] struct {
	_ [0]func() // no equality

	cfg     Config
	buckets arena.T[bucket[K]]
	dir     []arena.P[bucket[K]] // len is table_size, cap is real_table_size
	d       uint
	next    int // next_to_split
	eles    int
	epoch   uint64
}

// New returns an empty set shaped by cfg.
func New[K Key](cfg Config) (*T[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &T[K]{cfg: cfg, d: cfg.Generation}
	if cfg.TableSize > 0 {
		dir := make([]arena.P[bucket[K]], 0, 1<<(cfg.Generation+1))
		for range cfg.TableSize {
			dir = append(dir, t.newBucket())
		}
		t.dir = dir
		t.next = cfg.TableSize - 1<<cfg.Generation
	}
	return t, nil
}

// Of returns a set with the default configuration holding keys.
func Of[K Key](keys ...K) *T[K] {
	t := new(T[K])
	t.InsertAll(keys...)
	return t
}

func (t *T[K]) Len() int    { return t.eles }
func (t *T[K]) Empty() bool { return t.eles == 0 }

// Count returns 1 if k is in the set and 0 otherwise.
func (t *T[K]) Count(k K) int {
	if t.Contains(k) {
		return 1
	}
	return 0
}

func (t *T[K]) Contains(k K) bool {
	_, _, _, ok := t.find(k)
	return ok
}

// Find returns an iterator positioned on k, or End if k is absent.
func (t *T[K]) Find(k K) Iterator[K] {
	dir, p, i, ok := t.find(k)
	if !ok {
		return t.End()
	}
	return Iterator[K]{t: t, dir: dir, b: p, i: i, epoch: t.epoch}
}

// Insert adds k if it is absent. It returns an iterator on the element and
// whether the insert added it.
func (t *T[K]) Insert(k K) (Iterator[K], bool) {
	if it := t.Find(k); it.Valid() {
		return it, false
	}
	t.insert(k, true)
	return t.Find(k), true
}

// InsertAll adds every absent key and returns how many were added.
func (t *T[K]) InsertAll(keys ...K) (added int) {
	for _, k := range keys {
		if !t.Contains(k) {
			t.insert(k, true)
			added++
		}
	}
	return added
}

// InsertSeq is InsertAll over a sequence.
func (t *T[K]) InsertSeq(keys iter.Seq[K]) (added int) {
	for k := range keys {
		if !t.Contains(k) {
			t.insert(k, true)
			added++
		}
	}
	return added
}

// Erase removes k and returns the number of keys removed, 0 or 1. Buckets
// left empty stay allocated.
func (t *T[K]) Erase(k K) int {
	_, p, i, ok := t.find(k)
	if !ok {
		return 0
	}
	t.buckets.Get(p).remove(i)
	t.eles--
	t.epoch++
	return 1
}

// Clear empties the set. The configuration is kept.
func (t *T[K]) Clear() {
	*t = T[K]{
		cfg:   t.cfg,
		d:     t.cfg.Generation,
		epoch: t.epoch + 1,
	}
}

// Swap exchanges the contents of t and o. Iterators on either set are
// invalidated.
func (t *T[K]) Swap(o *T[K]) {
	epoch := max(t.epoch, o.epoch) + 1
	t.cfg, o.cfg = o.cfg, t.cfg
	t.buckets, o.buckets = o.buckets, t.buckets
	t.dir, o.dir = o.dir, t.dir
	t.d, o.d = o.d, t.d
	t.next, o.next = o.next, t.next
	t.eles, o.eles = o.eles, t.eles
	t.epoch, o.epoch = epoch, epoch
}

// Clone returns a deep copy of t. The copy has the same directory shape, so
// every key sits in the same chain as in t.
func (t *T[K]) Clone() *T[K] {
	c := &T[K]{cfg: t.cfg, d: t.d, next: t.next}
	if len(t.dir) > 0 {
		dir := make([]arena.P[bucket[K]], 0, cap(t.dir))
		for range t.dir {
			dir = append(dir, c.newBucket())
		}
		c.dir = dir
		for k := range t.All() {
			c.insert(k, false)
		}
	}
	return c
}

// Equal reports whether t and o hold the same keys.
func (t *T[K]) Equal(o *T[K]) bool { return Equal(t, o) }

// Equal reports whether a and b hold the same keys, regardless of layout.
func Equal[K Key](a, b *T[K]) bool {
	if a.eles != b.eles {
		return false
	}
	for k := range b.All() {
		if !a.Contains(k) {
			return false
		}
	}
	return true
}

// All yields every key in directory order. The set must not be modified
// while the sequence is running.
func (t *T[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, head := range t.dir {
			for p := head; !p.Nil(); {
				b := t.buckets.Get(p)
				for _, k := range b.keys[:b.n] {
					if !yield(k) {
						return
					}
				}
				p = b.next
			}
		}
	}
}

// find locates k, returning its chain index, bucket and slot.
func (t *T[K]) find(k K) (dir int, p arena.P[bucket[K]], i int, ok bool) {
	if len(t.dir) == 0 {
		return 0, p, 0, false
	}
	dir = t.address(k)
	for p = t.dir[dir]; !p.Nil(); {
		b := t.buckets.Get(p)
		if i = b.find(k); i >= 0 {
			return dir, p, i, true
		}
		p = b.next
	}
	return 0, p, 0, false
}

// insert stores k without checking for duplicates. When allowSplit is set,
// an insert that needs an overflow bucket also runs one split.
func (t *T[K]) insert(k K, allowSplit bool) {
	if len(t.dir) == 0 {
		t.materialize()
	}

	b := t.buckets.Get(t.dir[t.address(k)])
	for b.full() && !b.next.Nil() {
		b = t.buckets.Get(b.next)
	}

	overflow := false
	if b.full() {
		p := t.newBucket()
		b.next = p
		b = t.buckets.Get(p)
		overflow = true
	}

	b.push(k)
	t.eles++

	if overflow && allowSplit {
		t.split()
	}
}
