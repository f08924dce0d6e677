package lhset

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/zeebo/errs/v2"
)

// Verify walks the whole structure and returns an error describing the
// first broken invariant it finds.
func (t *T[K]) Verify() error {
	if len(t.dir) == 0 {
		if t.eles != 0 || t.buckets.Allocated() != 0 {
			return errs.Errorf("empty directory with %d keys and %d buckets",
				t.eles, t.buckets.Allocated())
		}
		return nil
	}

	if t.next >= 1<<t.d {
		return errs.Errorf("next_to_split %d not below 2^%d", t.next, t.d)
	}
	if len(t.dir) != 1<<t.d+t.next {
		return errs.Errorf("table_size %d != 2^%d + %d", len(t.dir), t.d, t.next)
	}

	size := t.cfg.bucketSize()
	owned := roaring.New()
	seen := make(map[K]int, t.eles)

	for idx, head := range t.dir {
		if head.Nil() {
			return errs.Errorf("chain %d has no head bucket", idx)
		}
		for p := head; !p.Nil(); {
			if !owned.CheckedAdd(p.Raw()) {
				return errs.Errorf("bucket %d reachable more than once", p.Raw())
			}
			b := t.buckets.Get(p)
			if len(b.keys) != size || b.n < 0 || b.n > size {
				return errs.Errorf("bucket %d holds %d of %d slots (want %d)",
					p.Raw(), b.n, len(b.keys), size)
			}
			for _, k := range b.keys[:b.n] {
				if got := t.address(k); got != idx {
					return errs.Errorf("key %v in chain %d addresses to %d", k, idx, got)
				}
				if prev, ok := seen[k]; ok {
					return errs.Errorf("key %v stored twice (chains %d and %d)", k, prev, idx)
				}
				seen[k] = idx
			}
			p = b.next
		}
	}

	if len(seen) != t.eles {
		return errs.Errorf("found %d keys but size is %d", len(seen), t.eles)
	}
	if n := owned.GetCardinality(); n != uint64(t.buckets.Allocated()) {
		return errs.Errorf("%d buckets reachable but %d allocated", n, t.buckets.Allocated())
	}
	return nil
}
