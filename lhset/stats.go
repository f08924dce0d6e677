package lhset

import "github.com/histdb/linhash/sizeof"

// Stats describes the shape of a set.
type Stats struct {
	Len             int
	Chains          int  // table_size
	Capacity        int  // real_table_size
	Buckets         int  // primary plus overflow
	OverflowBuckets int
	Generation      uint // d
	NextToSplit     int
	BucketSize      int // N
}

func (t *T[K]) Stats() Stats {
	s := Stats{
		Len:         t.eles,
		Chains:      len(t.dir),
		Capacity:    cap(t.dir),
		Generation:  t.d,
		NextToSplit: t.next,
		BucketSize:  t.cfg.bucketSize(),
	}
	for _, head := range t.dir {
		for p := head; !p.Nil(); p = t.buckets.Get(p).next {
			s.Buckets++
		}
	}
	s.OverflowBuckets = s.Buckets - s.Chains
	return s
}

// Load is the fraction of primary bucket slots in use. Overflow buckets
// push it above 1.
func (t *T[K]) Load() float64 {
	if len(t.dir) == 0 {
		return 0
	}
	return float64(t.eles) / float64(len(t.dir)*t.cfg.bucketSize())
}

// Size is an estimate of the memory held by the set in bytes.
func (t *T[K]) Size() uint64 {
	return 0 +
		/* cfg     */ sizeof.Of[Config]() +
		/* buckets */ t.buckets.Size() + uint64(t.buckets.Allocated())*uint64(t.cfg.bucketSize())*sizeof.Of[K]() +
		/* dir     */ sizeof.Slice(t.dir) +
		/* d       */ 8 +
		/* next    */ 8 +
		/* eles    */ 8 +
		/* epoch   */ 8 +
		0
}
