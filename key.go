// Package linhash holds key types usable with the lhset linear-hashing set.
package linhash

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/zeebo/errs/v2"
	"github.com/zeebo/xxh3"
)

// U64 hashes to itself, so placement in the directory follows the low bits
// of the value.
type U64 uint64

func (u U64) Digest() uint64   { return uint64(u) }
func (u U64) String() string   { return strconv.FormatUint(uint64(u), 10) }
func (u U64) Equal(v U64) bool { return u == v }

// I64 hashes to its two's complement bit pattern.
type I64 int64

func (i I64) Digest() uint64   { return uint64(i) }
func (i I64) String() string   { return strconv.FormatInt(int64(i), 10) }
func (i I64) Equal(j I64) bool { return i == j }

type Str string

func (s Str) Digest() uint64   { return xxh3.HashString(string(s)) }
func (s Str) String() string   { return string(s) }
func (s Str) Equal(t Str) bool { return s == t }

type UUID [16]byte

func NewUUID() UUID { return UUID(uuid.New()) }

func ParseUUID(s string) (UUID, error) {
	u, err := uuid.Parse(s)
	return UUID(u), errs.Wrap(err)
}

func (u UUID) Digest() uint64    { return xxh3.Hash(u[:]) }
func (u UUID) String() string    { return uuid.UUID(u).String() }
func (u UUID) Equal(v UUID) bool { return u == v }
