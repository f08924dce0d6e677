package lhset

import (
	"errors"
	"testing"

	"github.com/zeebo/assert"

	"github.com/histdb/linhash"
	"github.com/histdb/linhash/testhelp"
)

func collect(t *testing.T, s *T[linhash.U64]) (keys []linhash.U64) {
	t.Helper()
	for it := s.Begin(); it.Valid(); {
		k, err := it.Key()
		assert.NoError(t, err)
		keys = append(keys, k)
		assert.NoError(t, it.Next())
	}
	return keys
}

func TestIterEmpty(t *testing.T) {
	var s T[linhash.U64]
	assert.That(t, s.Begin().Equal(s.End()))

	_, err := s.End().Key()
	assert.That(t, errors.Is(err, ErrInvalidIterator))

	it := s.End()
	assert.That(t, errors.Is(it.Next(), ErrInvalidIterator))

	var zero Iterator[linhash.U64]
	_, err = zero.Key()
	assert.That(t, errors.Is(err, ErrInvalidIterator))
}

func TestIterOrder(t *testing.T) {
	s := newSet(t, 2)
	s.InsertAll(1, 2, 3, 4, 5)

	assert.Equal(t, collect(t, s), []linhash.U64{4, 1, 3, 5, 2})

	var all []linhash.U64
	for k := range s.All() {
		all = append(all, k)
	}
	assert.Equal(t, all, collect(t, s))
}

func TestIterVisitsAll(t *testing.T) {
	s := newSet(t, 3)
	keys := testhelp.U64s(3, 2000)
	s.InsertAll(keys...)

	seen := make(map[linhash.U64]bool)
	for _, k := range collect(t, s) {
		assert.That(t, !seen[k])
		seen[k] = true
	}
	assert.Equal(t, len(seen), len(keys))
}

func TestIterSkipsEmptyBuckets(t *testing.T) {
	s := newSet(t, 2)
	s.InsertAll(0, 1024, 2048, 1, 3)

	s.Erase(0)
	s.Erase(1024)
	assert.Equal(t, collect(t, s), []linhash.U64{2048, 1, 3})

	s.Erase(2048)
	assert.Equal(t, collect(t, s), []linhash.U64{1, 3})

	s.Erase(1)
	s.Erase(3)
	assert.That(t, s.Begin().Equal(s.End()))
}

func TestIterEqual(t *testing.T) {
	s := newSet(t, 2)
	s.InsertAll(testhelp.Dense(50)...)

	for it := s.Begin(); it.Valid(); it.Next() {
		k, err := it.Key()
		assert.NoError(t, err)
		assert.That(t, it.Equal(s.Find(k)))
		assert.That(t, !it.Equal(s.End()))
	}

	a, b := s.Find(1), s.Find(2)
	assert.That(t, !a.Equal(b))

	o := s.Clone()
	assert.That(t, !s.Find(1).Equal(o.Find(1)))
	assert.That(t, s.End().Equal(o.End()))
}

func TestIterInvalidation(t *testing.T) {
	s := newSet(t, 2)
	s.InsertAll(1, 2)

	it := s.Find(1)
	assert.That(t, it.Valid())

	// the only chain is full, so 3 overflows and splits.
	s.Insert(3)
	assert.That(t, !it.Valid())
	_, err := it.Key()
	assert.That(t, errors.Is(err, ErrStaleIterator))
	assert.That(t, errors.Is(it.Next(), ErrStaleIterator))

	it = s.Find(1)
	s.Insert(4) // lands in chain 0 which has room
	k, err := it.Key()
	assert.NoError(t, err)
	assert.Equal(t, k, linhash.U64(1))

	s.Erase(4)
	_, err = it.Key()
	assert.That(t, errors.Is(err, ErrStaleIterator))

	it = s.Find(1)
	s.Erase(99)
	assert.That(t, it.Valid())

	s.Clear()
	assert.That(t, !it.Valid())
}
