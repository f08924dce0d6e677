package lhset

import (
	"fmt"
	"io"

	"github.com/zeebo/errs/v2"

	"github.com/histdb/linhash/arena"
)

// Dump writes a human readable picture of the directory to w: the split
// state followed by one line per chain, overflow buckets joined by "<--".
// The format is for debugging and may change.
func (t *T[K]) Dump(w io.Writer) error {
	_, err := w.Write(t.appendDump(nil))
	return errs.Wrap(err)
}

func (t *T[K]) String() string { return string(t.appendDump(nil)) }

func (t *T[K]) appendDump(buf []byte) []byte {
	buf = fmt.Appendf(buf, "curr_size = %d, table_size = %d\n", t.eles, len(t.dir))
	buf = fmt.Appendf(buf, "d = %d, next_to_split = %d\n", t.d, t.next)
	buf = fmt.Appendf(buf, "N = %d\n", t.cfg.bucketSize())
	for idx, head := range t.dir {
		buf = fmt.Appendf(buf, "%d: ", idx)
		buf = t.appendChain(buf, head)
		buf = append(buf, '\n')
	}
	return buf
}

func (t *T[K]) appendChain(buf []byte, p arena.P[bucket[K]]) []byte {
	for first := true; !p.Nil(); first = false {
		if !first {
			buf = append(buf, " <-- "...)
		}
		b := t.buckets.Get(p)
		buf = append(buf, '[')
		for _, k := range b.keys[:b.n] {
			buf = fmt.Appendf(buf, "(%v)", k)
		}
		for range len(b.keys) - b.n {
			buf = append(buf, "(-)"...)
		}
		buf = append(buf, ']')
		p = b.next
	}
	return buf
}
