package lhset

import (
	"github.com/zeebo/errs/v2"

	"github.com/histdb/linhash/arena"
)

var (
	// ErrInvalidIterator is returned when dereferencing or advancing an
	// iterator that is not positioned on a key.
	ErrInvalidIterator = errs.Errorf("iterator cannot be dereferenced")

	// ErrStaleIterator is returned when using an iterator after the set was
	// changed in a way that may have moved keys.
	ErrStaleIterator = errs.Errorf("iterator invalidated by set mutation")
)

// Iterator is a forward position in a set: a chain index, a bucket in that
// chain and a slot in that bucket. Keys come out chain by chain, and within
// a chain in bucket order.
//
// Iterators are invalidated by any split, by Erase of a present key, and by
// Clear and Swap. Inserts that do not split leave them valid. Using an
// invalidated iterator reports ErrStaleIterator.
type Iterator[K Key] struct {
	t     *T[K]
	dir   int
	b     arena.P[bucket[K]]
	i     int
	epoch uint64
}

// Begin returns an iterator on the first key, or End if the set is empty.
func (t *T[K]) Begin() Iterator[K] {
	it := t.End()
	if t.eles == 0 {
		return it
	}
	it.b = t.dir[0]
	it.skip()
	return it
}

// End returns the position past the last key.
func (t *T[K]) End() Iterator[K] {
	return Iterator[K]{t: t, epoch: t.epoch}
}

func (it Iterator[K]) stale() bool { return it.t != nil && it.epoch != it.t.epoch }

// Valid reports whether the iterator can be dereferenced.
func (it Iterator[K]) Valid() bool { return !it.b.Nil() && !it.stale() }

// Key returns the key under the iterator.
func (it Iterator[K]) Key() (k K, err error) {
	switch {
	case it.b.Nil():
		return k, ErrInvalidIterator
	case it.stale():
		return k, ErrStaleIterator
	}
	return it.t.buckets.Get(it.b).keys[it.i], nil
}

// Equal reports whether both iterators refer to the same slot. End
// iterators are equal to each other.
func (it Iterator[K]) Equal(o Iterator[K]) bool {
	if it.b.Nil() || o.b.Nil() {
		return it.b.Nil() && o.b.Nil()
	}
	return it.t == o.t && it.b == o.b && it.i == o.i
}

// Next advances to the following key, becoming End after the last one.
func (it *Iterator[K]) Next() error {
	switch {
	case it.b.Nil():
		return ErrInvalidIterator
	case it.stale():
		return ErrStaleIterator
	}

	b := it.t.buckets.Get(it.b)
	if it.i++; it.i < b.n {
		return nil
	}
	it.b = b.next
	it.skip()
	return nil
}

// skip moves forward from the bucket at it.b, or from the head of the next
// chain if it.b is nil, to the first non-empty bucket.
func (it *Iterator[K]) skip() {
	t := it.t
	for {
		for p := it.b; !p.Nil(); {
			b := t.buckets.Get(p)
			if !b.empty() {
				it.b, it.i = p, 0
				return
			}
			p = b.next
		}
		if it.dir++; it.dir >= len(t.dir) {
			*it = t.End()
			return
		}
		it.b = t.dir[it.dir]
	}
}
