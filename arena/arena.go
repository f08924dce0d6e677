package arena

import "github.com/histdb/linhash/sizeof"

// T hands out stable pointers to values of type V addressed by small integer
// handles. Handle 0 is never allocated so the zero P can mean "none". Freed
// handles are reused by later calls to New. It is not safe for concurrent
// use.
type T[V any] struct {
	_ [0]func() // no equality

	s    []*V
	free []uint32
}

type tag[V any] struct{}

// P is a handle to a value allocated from a T[V].
type P[V any] struct {
	_ tag[V]
	v uint32
}

func Raw[V any](v uint32) P[V] { return P[V]{v: v} }
func (p P[V]) Raw() uint32     { return p.v }
func (p P[V]) Nil() bool       { return p.v == 0 }

func (a *T[V]) Size() uint64 {
	return 0 +
		/* s    */ sizeof.Slice(a.s) + uint64(len(a.s))*sizeof.Of[V]() +
		/* free */ sizeof.Slice(a.free) +
		0
}

// Allocated returns the number of live handles.
func (a *T[V]) Allocated() int {
	if len(a.s) == 0 {
		return 0
	}
	return len(a.s) - 1 - len(a.free)
}

// Get returns the value for p. The pointer stays valid until p is freed.
func (a *T[V]) Get(p P[V]) *V {
	return a.s[p.v]
}

// New allocates a value. If reset is non-nil it is called on the value
// before it is returned, both for fresh and for reused values.
func (a *T[V]) New(reset func(*V)) (p P[V]) {
	if n := len(a.free); n > 0 {
		p.v = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		if len(a.s) == 0 {
			a.s = append(a.s, nil)
		}
		p.v = uint32(len(a.s))
		a.s = append(a.s, new(V))
	}
	if reset != nil {
		reset(a.s[p.v])
	}
	return p
}

// Free returns p to the free list. Using p afterwards is a bug.
func (a *T[V]) Free(p P[V]) {
	if p.v == 0 {
		return
	}
	a.free = append(a.free, p.v)
}

// Reset drops every allocation.
func (a *T[V]) Reset() {
	*a = T[V]{}
}
