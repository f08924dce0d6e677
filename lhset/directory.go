package lhset

import "github.com/histdb/linhash/arena"

// address maps k to a chain. Chains below the split pointer have already
// been split this generation, so they use one more bit of the digest.
func (t *T[K]) address(k K) int {
	h := k.Digest()
	idx := h & (1<<t.d - 1)
	if idx < uint64(t.next) {
		idx = h & (1<<(t.d+1) - 1)
	}
	return int(idx)
}

// materialize creates the 2^d empty chains of a set that has none.
func (t *T[K]) materialize() {
	chains := 1 << t.d
	dir := make([]arena.P[bucket[K]], 0, 2*chains)
	for range chains {
		dir = append(dir, t.newBucket())
	}
	t.dir = dir
	t.next = 0
}

// growDirectory makes room for at least one more chain, doubling the
// capacity when the directory is full.
func (t *T[K]) growDirectory() {
	if len(t.dir) < cap(t.dir) {
		return
	}
	dir := make([]arena.P[bucket[K]], len(t.dir), max(1, 2*cap(t.dir)))
	copy(dir, t.dir)
	t.dir = dir
}
