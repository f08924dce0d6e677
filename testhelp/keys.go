package testhelp

import (
	"github.com/zeebo/mwc"

	"github.com/histdb/linhash"
)

// U64s returns n pseudo-random keys. The same seed gives the same keys.
func U64s(seed uint64, n int) []linhash.U64 {
	rng := mwc.New(seed, seed)
	keys := make([]linhash.U64, n)
	for i := range keys {
		keys[i] = linhash.U64(rng.Uint64())
	}
	return keys
}

// Dense returns the keys 0 through n-1.
func Dense(n int) []linhash.U64 {
	keys := make([]linhash.U64, n)
	for i := range keys {
		keys[i] = linhash.U64(i)
	}
	return keys
}

// Strs returns n pseudo-random lowercase strings of the given length.
func Strs(seed uint64, n, length int) []linhash.Str {
	rng := mwc.New(seed, seed)
	keys := make([]linhash.Str, n)
	buf := make([]byte, length)
	for i := range keys {
		for j := range buf {
			buf[j] = 'a' + byte(rng.Uint64n(26))
		}
		keys[i] = linhash.Str(buf)
	}
	return keys
}

func UUIDs(n int) []linhash.UUID {
	keys := make([]linhash.UUID, n)
	for i := range keys {
		keys[i] = linhash.NewUUID()
	}
	return keys
}

// Shuffle permutes keys in place.
func Shuffle[K any](seed uint64, keys []K) {
	rng := mwc.New(seed, seed)
	for i := len(keys) - 1; i > 0; i-- {
		j := int(rng.Uint64n(uint64(i + 1)))
		keys[i], keys[j] = keys[j], keys[i]
	}
}
